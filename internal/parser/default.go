package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.lost.host/meutraa/beatofspace/internal/game"
	"gopkg.in/yaml.v3"
)

type DefaultParser struct{}

// document mirrors the on-disk song definition
type document struct {
	SongFilepath string      `json:"song_filepath" yaml:"song_filepath"`
	SongLength   float64     `json:"song_length" yaml:"song_length"`
	BPM          float64     `json:"bpm" yaml:"bpm"`
	Credits      string      `json:"credits" yaml:"credits"`
	HighScore    int         `json:"high_score" yaml:"high_score"`
	Notes        [][]float64 `json:"notes" yaml:"notes"`     // beat, lane, hold length
	Attacks      [][]float64 `json:"attacks" yaml:"attacks"` // beat, duration, lane
}

func (p *DefaultParser) Parse(file string) (*game.Song, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}

	var format string
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		format = "json"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		return nil, fmt.Errorf("%s: %w", file, ErrUnknownFormat)
	}

	song, err := p.ParseBytes(data, format)
	if nil != err {
		return nil, fmt.Errorf("unable to parse %s: %w", file, err)
	}
	song.Path = file
	if song.AudioFile != "" && !filepath.IsAbs(song.AudioFile) {
		song.AudioFile = filepath.Join(filepath.Dir(file), song.AudioFile)
	}
	return song, nil
}

// ParseBytes decodes a song definition. Entries that cannot be played are
// skipped and recorded in Song.Rejected rather than failing the whole song.
func (p *DefaultParser) ParseBytes(data []byte, format string) (*game.Song, error) {
	var doc document
	switch format {
	case "json":
		if err := json.Unmarshal(data, &doc); nil != err {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); nil != err {
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}

	if !finite(doc.BPM) || doc.BPM <= 0 {
		return nil, fmt.Errorf("bpm must be positive, got %v", doc.BPM)
	}
	if !finite(doc.SongLength) || doc.SongLength < 0 {
		return nil, fmt.Errorf("song length must not be negative, got %v", doc.SongLength)
	}

	song := &game.Song{
		AudioFile: doc.SongFilepath,
		Length:    doc.SongLength,
		BPM:       doc.BPM,
		Credits:   doc.Credits,
		HighScore: doc.HighScore,
		Notes:     make([]game.Note, 0, len(doc.Notes)),
		Hazards:   make([]game.Hazard, 0, len(doc.Attacks)),
	}

	reject := func(kind game.RejectionKind, i int, format string, args ...interface{}) {
		song.Rejected = append(song.Rejected, game.Rejection{
			Kind:   kind,
			Index:  i,
			Reason: fmt.Sprintf(format, args...),
		})
	}

	for i, n := range doc.Notes {
		if len(n) != 3 {
			reject(game.RejectedNote, i, "expected 3 values, got %d", len(n))
			continue
		}
		beat, laneValue, hold := n[0], n[1], n[2]
		if !finite(beat) || !finite(hold) {
			reject(game.RejectedNote, i, "beat and hold length must be finite")
			continue
		}
		if hold < 0 {
			reject(game.RejectedNote, i, "negative hold length %v", hold)
			continue
		}
		lane, sub, err := game.ParseLane(laneValue)
		if nil != err {
			reject(game.RejectedNote, i, "%v", err)
			continue
		}
		song.Notes = append(song.Notes, game.Note{
			Beat:       beat,
			Lane:       lane,
			SubType:    sub,
			HoldLength: hold,
		})
	}

	for i, a := range doc.Attacks {
		if len(a) != 3 {
			reject(game.RejectedHazard, i, "expected 3 values, got %d", len(a))
			continue
		}
		beat, duration, laneValue := a[0], a[1], a[2]
		if !finite(beat) || !finite(duration) || duration <= 0 {
			reject(game.RejectedHazard, i, "invalid beat %v or duration %v", beat, duration)
			continue
		}
		lane, _, err := game.ParseLane(laneValue)
		if nil != err {
			reject(game.RejectedHazard, i, "%v", err)
			continue
		}
		song.Hazards = append(song.Hazards, game.Hazard{
			Beat:     beat,
			Duration: duration,
			Lane:     lane,
		})
	}

	// The judgment engine relies on beat order to let the earliest note win
	sort.SliceStable(song.Notes, func(i, j int) bool {
		return song.Notes[i].Beat < song.Notes[j].Beat
	})
	sort.SliceStable(song.Hazards, func(i, j int) bool {
		return song.Hazards[i].Beat < song.Hazards[j].Beat
	})

	return song, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
