package engine

import (
	"math"

	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/health"
)

// Record turns the change in lanes between two frames into input events.
func Record(previous game.LaneSet, f game.Frame) []game.Input {
	var inputs []game.Input
	held := f.Held | f.Pressed
	for _, lane := range game.Lanes {
		if f.Pressed.Has(lane) {
			inputs = append(inputs, game.Input{Lane: lane, Time: f.Position})
		}
		if previous.Has(lane) && !held.Has(lane) {
			inputs = append(inputs, game.Input{Lane: lane, Time: f.Position, Released: true})
		}
	}
	return inputs
}

// Recorder collects everything needed to replay a session.
type Recorder struct {
	Inputs []game.Input

	held game.LaneSet
	ship game.LaneID
}

func NewRecorder(s *State) *Recorder {
	return &Recorder{ship: s.Ship.Lane}
}

// Frame records f, once Update has applied it to s.
func (r *Recorder) Frame(f game.Frame, s *State) {
	r.Inputs = append(r.Inputs, Record(r.held, f)...)
	r.held = f.Held | f.Pressed

	if s.Ship.Lane != r.ship {
		r.ship = s.Ship.Lane
		r.Inputs = append(r.Inputs, game.Input{Lane: r.ship, Time: f.Position, Ship: true})
	}
}

// Replay simulates recorded inputs at a fixed frame step and returns the
// final state. Inputs must be in time order. The step is real time, so the
// song position slows with the playback rate during game over the same way
// the audio clock does.
func Replay(song *game.Song, inputs []game.Input, step float64) *State {
	s := NewState(song)
	if step <= 0 {
		return s
	}

	var held game.LaneSet
	next := 0
	position := 0.0
	frames := int(math.Ceil((song.Length+health.GameOverDuration)/step)) + 1
	for i := 0; i <= frames; i++ {
		if s.Health.Armed() {
			position += step * s.PlaybackRate()
		} else {
			position = float64(i) * step
		}
		f := game.Frame{Position: position, Delta: step}
		if i == 0 {
			f.Delta = 0
		}

		for next < len(inputs) && inputs[next].Time <= position {
			in := inputs[next]
			switch {
			case in.Ship:
				f.ShipTarget = in.Lane
			case in.Released:
				held = held.Without(in.Lane)
			default:
				f.Pressed = f.Pressed.With(in.Lane)
				held = held.With(in.Lane)
			}
			next++
		}
		f.Held = held

		if Update(s, f) != OutcomeContinue {
			break
		}
	}
	return s
}
