// Package planner drives a session without a player, for watch mode. It
// presses due notes and steers the ship away from hazards.
package planner

import (
	"git.lost.host/meutraa/beatofspace/internal/engine"
	"git.lost.host/meutraa/beatofspace/internal/game"
)

const (
	// Hops searched in each direction along the lane graph
	MaxHops = 3

	// Notes are pressed once they are this close to the hit line
	pressLead = 0.05 / 1.5
)

// Plan picks the ship's target lane at beat. The ship only moves when its
// lane is in warning or lasering; it then takes the reachable lane whose
// nearest hazard is furthest away. Branches stop at a lane that is lasering
// and ties keep the first lane found, searching up before down.
func Plan(s *engine.State, beat float64) game.LaneID {
	current := s.Ship.Lane
	if !s.Lasering(current, beat) && !s.Warned(current, beat) {
		return current
	}

	best, bestDanger := current, s.Danger(current, beat)
	for _, up := range [...]bool{true, false} {
		lane := current
		for i := 0; i < MaxHops; i++ {
			moved, next := game.CanMove(lane, up)
			if !moved || s.Lasering(next, beat) {
				break
			}
			lane = next
			if d := s.Danger(lane, beat); d > bestDanger {
				best, bestDanger = lane, d
			}
		}
	}
	return best
}

// Autopilot builds frames in place of player input.
type Autopilot struct {
	BPM float64
}

// Frame presses every lane with a due note, holds every lane with an active
// hold and steers the ship.
func (a *Autopilot) Frame(s *engine.State, position, delta float64) game.Frame {
	beat := game.Beat(position, a.BPM)
	f := game.Frame{Position: position, Delta: delta}

	for _, n := range s.Notes {
		if n.Beat > beat+game.CorrectWindow {
			break
		}
		if n.Beat < beat-game.CorrectWindow {
			continue
		}
		if n.Beat-beat < pressLead {
			f.Pressed = f.Pressed.With(n.Lane)
		}
	}
	for _, h := range s.Holds {
		f.Held = f.Held.With(h.Lane)
	}
	f.Held |= f.Pressed

	f.ShipTarget = Plan(s, beat)
	return f
}
