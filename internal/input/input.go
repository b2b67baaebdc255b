// Package input turns key events from a terminal or a Linux input device
// into per-frame lane state.
package input

import (
	"time"

	"git.lost.host/meutraa/beatofspace/internal/settings"
)

type Event struct {
	Action   settings.Action
	Released bool
	Quit     bool
	At       time.Time
}

// Source delivers key events until it is closed.
type Source interface {
	Events() <-chan Event
	// Releases is false for sources that only report presses.
	Releases() bool
	Close() error
}
