package score

import (
	"errors"
	"time"

	"git.lost.host/meutraa/beatofspace/internal/game"
	"github.com/google/uuid"
)

var ErrNoHistory = errors.New("no completed runs for song")

type Scorer interface {
	Init() error
	Deinit()

	// Save the state of this performance
	Save(song *game.Song, history *History) error

	// Load up previous runs of the song, newest first
	Load(song *game.Song) ([]History, error)

	HighScore(song *game.Song) (int, error)
}

type History struct {
	ID       uuid.UUID
	Sum      string
	Rate     float64
	Score    int
	Counts   Counts
	Outcome  string
	PlayedAt time.Time
	Inputs   []game.Input
}

// NewHistory captures a finished run.
func NewHistory(song *game.Song, state State, outcome string, rate float64, inputs []game.Input) *History {
	return &History{
		ID:       uuid.New(),
		Sum:      song.Hash(),
		Rate:     rate,
		Score:    state.Score,
		Counts:   state.Counts,
		Outcome:  outcome,
		PlayedAt: time.Now(),
		Inputs:   inputs,
	}
}
