package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"git.lost.host/meutraa/beatofspace/internal/config"
	"git.lost.host/meutraa/beatofspace/internal/engine"
	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/log"
	"git.lost.host/meutraa/beatofspace/internal/parser"
	"git.lost.host/meutraa/beatofspace/internal/score"
)

// Frame step used to re-simulate stored runs
const replayStep = 1.0 / 240

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg); nil != err {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openLog(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if nil != err {
		return nil, err
	}
	if cfg.LogFile == "" {
		switch cfg.Command {
		case config.CommandPlay, config.CommandWatch:
			// The terminal belongs to the renderer
			return log.Discard(), nil
		}
		return log.New(os.Stderr, level), nil
	}
	return log.Open(cfg.LogFile, level)
}

func run(cfg *config.Config) error {
	logger, err := openLog(cfg)
	if nil != err {
		return err
	}
	defer logger.Close()

	var psr parser.Parser = &parser.DefaultParser{}
	song, err := psr.Parse(cfg.Song)
	if nil != err {
		return err
	}

	if err := song.Validate(); nil != err {
		var invalid *game.ValidationError
		if cfg.Command == config.CommandValidate {
			report(os.Stdout, song)
			return err
		}
		if cfg.Strict || !errors.As(err, &invalid) {
			return err
		}
		for _, r := range invalid.Rejections {
			logger.Warnf("%v: skipped %v", song.Path, r)
		}
	}

	switch cfg.Command {
	case config.CommandValidate:
		report(os.Stdout, song)
		return nil
	case config.CommandScores:
		var scorer score.Scorer = &score.DefaultScorer{Path: cfg.Database, Log: logger}
		if err := scorer.Init(); nil != err {
			return err
		}
		defer scorer.Deinit()
		return listScores(os.Stdout, scorer, song)
	}

	p := &Program{Config: cfg, Log: logger, Song: song}
	defer p.Close()
	if err := p.Init(); nil != err {
		p.Deinit()
		return err
	}
	p.Run()
	p.Deinit()

	return p.Finish(os.Stdout)
}

func report(w io.Writer, song *game.Song) {
	fmt.Fprintf(w, "%v\n", song.Path)
	fmt.Fprintf(w, "  credits  %v\n", song.Credits)
	fmt.Fprintf(w, "  bpm      %v\n", song.BPM)
	fmt.Fprintf(w, "  length   %.1fs\n", song.Length)
	fmt.Fprintf(w, "  notes    %v (%v holds)\n", len(song.Notes), song.HoldCount())
	fmt.Fprintf(w, "  attacks  %v\n", len(song.Hazards))
	fmt.Fprintf(w, "  hash     %v\n", song.Hash())
	for _, r := range song.Rejected {
		fmt.Fprintf(w, "  skipped  %v\n", r)
	}
}

func listScores(w io.Writer, scorer score.Scorer, song *game.Song) error {
	high, err := scorer.HighScore(song)
	switch {
	case errors.Is(err, score.ErrNoHistory):
		fmt.Fprintln(w, "No completed runs")
	case nil != err:
		return err
	default:
		fmt.Fprintf(w, "High score %d\n", high)
	}

	history, err := scorer.Load(song)
	if nil != err {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYED\tOUTCOME\tRATE\tSCORE\tREPLAY\tPERFECT\tGOOD\tOK\tWRONG\tMISS\tHOLDS")
	for _, h := range history {
		replayed := engine.Replay(song, h.Inputs, replayStep)
		fmt.Fprintf(tw, "%v\t%v\t%.2f\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d/%d\n",
			h.PlayedAt.Format("2006-01-02 15:04"), h.Outcome, h.Rate, h.Score, replayed.Score.Score,
			h.Counts.Perfect, h.Counts.Good, h.Counts.Ok, h.Counts.Incorrect, h.Counts.Missed,
			h.Counts.HoldsCompleted, h.Counts.HoldsCompleted+h.Counts.HoldsDropped)
	}
	return tw.Flush()
}
