package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/beatofspace/internal/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

const (
	resampleQuality = 4
	minRatio        = 0.01
)

// Player is a Clock driven by the audio stream itself.
type Player struct {
	Now func() time.Time

	log       *log.Logger
	streamer  beep.StreamSeekCloser
	format    beep.Format
	resampler *beep.Resampler
	ctrl      *beep.Ctrl
	rate      float64
	startAt   time.Time
	timer     *time.Timer
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, beep.Format{}, fmt.Errorf("unable to open audio: %w", err)
	}

	var s beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".ogg":
		s, format, err = vorbis.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unsupported audio file %v", path)
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unable to decode %v: %w", path, err)
	}
	return s, format, nil
}

// Open decodes the song and initialises the speaker at the song's sample
// rate. volume is linear, 0 to 1.
func Open(path string, rate, volume float64, logger *log.Logger) (*Player, error) {
	s, format, err := decode(path)
	if nil != err {
		return nil, err
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		s.Close()
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}

	p := &Player{
		Now:      time.Now,
		log:      logger,
		streamer: s,
		format:   format,
		rate:     rate,
	}
	p.resampler = beep.ResampleRatio(resampleQuality, ratio(rate, 1), s)
	p.ctrl = &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: p.resampler,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-3)),
		Silent:   volume <= 0,
	}}
	logger.Infof("opened %v at %v Hz", path, format.SampleRate)
	return p, nil
}

func ratio(rate, multiplier float64) float64 {
	return math.Max(minRatio, rate*multiplier)
}

func (p *Player) Start(delay time.Duration) {
	p.startAt = p.Now().Add(delay)
	p.timer = time.AfterFunc(delay, func() {
		speaker.Play(p.ctrl)
	})
}

// Position is read from the decoder, so it stays in song time whatever the
// playback ratio.
func (p *Player) Position() float64 {
	now := p.Now()
	if now.Before(p.startAt) {
		return -p.startAt.Sub(now).Seconds()
	}
	speaker.Lock()
	n := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(n).Seconds()
}

// Length of the decoded song in seconds.
func (p *Player) Length() float64 {
	return p.format.SampleRate.D(p.streamer.Len()).Seconds()
}

func (p *Player) SetRate(multiplier float64) {
	speaker.Lock()
	p.resampler.SetRatio(ratio(p.rate, multiplier))
	speaker.Unlock()
}

func (p *Player) Close() error {
	if nil != p.timer {
		p.timer.Stop()
	}
	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()
	return p.streamer.Close()
}
