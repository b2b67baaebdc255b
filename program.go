package main

import (
	"fmt"
	"io"
	"time"

	"git.lost.host/meutraa/beatofspace/internal/audio"
	"git.lost.host/meutraa/beatofspace/internal/config"
	"git.lost.host/meutraa/beatofspace/internal/engine"
	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/input"
	"git.lost.host/meutraa/beatofspace/internal/log"
	"git.lost.host/meutraa/beatofspace/internal/planner"
	"git.lost.host/meutraa/beatofspace/internal/render"
	"git.lost.host/meutraa/beatofspace/internal/score"
	"git.lost.host/meutraa/beatofspace/internal/settings"
	"git.lost.host/meutraa/beatofspace/internal/theme"
)

type Program struct {
	Config *config.Config
	Log    *log.Logger
	Song   *game.Song

	Scorer   score.Scorer
	Settings *settings.Manager
	Clock    audio.Clock
	Source   input.Source
	Renderer render.Renderer
	Scene    *render.Scene

	autopilot *planner.Autopilot
	tracker   input.Tracker
	canvas    *render.Canvas
	state     *engine.State

	recorder  *engine.Recorder
	lastFrame time.Time
	high      int
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Scorer = &score.DefaultScorer{Path: p.Config.Database, Log: p.Log}
	p.Renderer = &render.DefaultRenderer{}
	p.Scene = &render.Scene{
		Theme:          &theme.DefaultTheme{},
		ColumnsPerBeat: float64(p.Config.ColumnsPerBeat),
		Title:          fmt.Sprintf("%v  %v bpm  x%.2f", p.Song.Credits, p.Song.BPM, p.Config.Rate),
	}

	if err := p.Scorer.Init(); nil != err {
		return err
	}
	high, err := p.Scorer.HighScore(p.Song)
	if nil == err {
		p.high = high
	} else {
		p.high = p.Song.HighScore
	}

	p.Settings = settings.Open(p.Log)
	s := p.Settings.Settings()

	p.Clock = p.openClock(s.Volume)

	if p.Config.Device != "" {
		p.Source, err = input.OpenDevice(p.Config.Device, s.Codes.Map(), p.Log)
	} else {
		p.Source, err = input.OpenKeyboard(s.Keys.Runes(), p.Log)
	}
	if nil != err {
		return err
	}
	if !p.Source.Releases() {
		p.tracker.Grace = p.Config.HoldGrace
	}

	if p.Config.Command == config.CommandWatch {
		p.autopilot = &planner.Autopilot{BPM: p.Song.BPM}
	}

	p.state = engine.NewState(p.Song)
	p.recorder = engine.NewRecorder(p.state)
	return p.Renderer.Init()
}

func (p *Program) openClock(volume float64) audio.Clock {
	if p.Config.Mute || p.Song.AudioFile == "" {
		return audio.NewWallClock(p.Config.Rate)
	}
	player, err := audio.Open(p.Song.AudioFile, p.Config.Rate, volume, p.Log)
	if nil != err {
		p.Log.Warnf("playing without audio: %v", err)
		return audio.NewWallClock(p.Config.Rate)
	}
	if length := player.Length(); length < p.Song.Length {
		p.Log.Warnf("%v is %.1fs long, the song runs for %.1fs", p.Song.AudioFile, length, p.Song.Length)
	}
	return player
}

func (p *Program) Run() {
	p.Clock.Start(p.Config.Delay)
	p.Renderer.RenderLoop(p.Config.FramePeriod, p.Update)
}

// Update runs one frame. It returns false once the run is over.
func (p *Program) Update(now time.Time) bool {
	// Countdowns run in real time, the song slows down during game over
	delta := 0.0
	if !p.lastFrame.IsZero() {
		delta = now.Sub(p.lastFrame).Seconds()
	}
	p.lastFrame = now
	position := p.Clock.Position() + p.Config.Offset.Seconds()

	p.tracker.Drain(p.Source.Events())
	f := p.tracker.Frame(now, position, delta)
	if nil != p.autopilot {
		quit := f.Quit
		f = p.autopilot.Frame(p.state, position, delta)
		f.Quit = quit
	}

	outcome := engine.Update(p.state, f)
	p.recorder.Frame(f, p.state)
	p.Clock.SetRate(p.state.PlaybackRate())

	columns, rows := p.Renderer.Size()
	if nil == p.canvas || p.canvas.Columns != columns || p.canvas.Rows != rows {
		p.canvas = render.NewCanvas(columns, rows)
	}
	p.Scene.Draw(p.canvas, p.state)
	p.Renderer.Draw(p.canvas)

	return outcome == engine.OutcomeContinue
}

func (p *Program) Deinit() {
	if nil != p.Renderer {
		if err := p.Renderer.Deinit(); nil != err {
			p.Log.Errorf("unable to restore terminal: %v", err)
		}
	}
	if nil != p.Source {
		if err := p.Source.Close(); nil != err {
			p.Log.Warnf("unable to close input: %v", err)
		}
	}
	if nil != p.Clock {
		p.Clock.Close()
	}
}

func (p *Program) Close() {
	if nil != p.Scorer {
		p.Scorer.Deinit()
	}
}

// Finish stores the run and prints a summary. Watched and aborted runs are
// not stored.
func (p *Program) Finish(w io.Writer) error {
	s := p.state
	fmt.Fprintf(w, "%v: %v\n", p.Song.Credits, s.Outcome)
	fmt.Fprintf(w, "Score %d (best %d)\n", s.Score.Score, p.high)
	c := s.Score.Counts
	fmt.Fprintf(w, "Perfect %d  Good %d  Ok %d  Wrong %d  Miss %d  Holds %d/%d  Hits taken %d\n",
		c.Perfect, c.Good, c.Ok, c.Incorrect, c.Missed, c.HoldsCompleted, p.Song.HoldCount(), s.Collisions)

	if nil != p.autopilot || s.Outcome == engine.OutcomeAborted {
		return nil
	}
	if s.Outcome == engine.OutcomeCompleted && s.Score.Score > p.high {
		fmt.Fprintln(w, "New high score")
	}

	h := score.NewHistory(p.Song, s.Score, s.Outcome.String(), p.Config.Rate, p.recorder.Inputs)
	if err := p.Scorer.Save(p.Song, h); nil != err {
		return fmt.Errorf("unable to save run: %w", err)
	}
	p.Log.Infof("saved run %v", h.ID)
	return nil
}
