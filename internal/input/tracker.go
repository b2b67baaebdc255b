package input

import (
	"time"

	"git.lost.host/meutraa/beatofspace/internal/game"
)

// Tracker folds events into frames. Lane presses and ship moves are edge
// triggered and cleared by every Frame call.
type Tracker struct {
	// When non zero the source only reports presses. A lane then counts as
	// held until Grace passes without a repeat, and repeats are not presses.
	Grace time.Duration

	pressed  game.LaneSet
	held     game.LaneSet
	seen     [game.LaneDown + 1]time.Time
	shipUp   bool
	shipDown bool
	quit     bool
}

func (t *Tracker) Apply(e Event) {
	if e.Quit {
		t.quit = true
		return
	}
	if e.Action.ShipUp && !e.Released {
		t.shipUp = true
	}
	if e.Action.ShipDown && !e.Released {
		t.shipDown = true
	}

	lane := e.Action.Lane
	if !lane.Valid() {
		return
	}
	if e.Released {
		t.held = t.held.Without(lane)
		return
	}

	repeat := t.Grace > 0 && t.held.Has(lane) && e.At.Sub(t.seen[lane]) <= t.Grace
	t.seen[lane] = e.At
	if !repeat {
		t.pressed = t.pressed.With(lane)
	}
	t.held = t.held.With(lane)
}

// Drain applies every event waiting on the channel without blocking.
func (t *Tracker) Drain(events <-chan Event) {
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return
			}
			t.Apply(e)
		default:
			return
		}
	}
}

func (t *Tracker) Frame(now time.Time, position, delta float64) game.Frame {
	if t.Grace > 0 {
		for _, lane := range game.Lanes {
			if t.held.Has(lane) && now.Sub(t.seen[lane]) > t.Grace {
				t.held = t.held.Without(lane)
			}
		}
	}

	f := game.Frame{
		Position: position,
		Delta:    delta,
		Pressed:  t.pressed,
		Held:     t.held,
		ShipUp:   t.shipUp,
		ShipDown: t.shipDown,
		Quit:     t.quit,
	}
	t.pressed = 0
	t.shipUp, t.shipDown = false, false
	return f
}
