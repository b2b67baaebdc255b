package engine

import (
	"math"

	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/health"
	"git.lost.host/meutraa/beatofspace/internal/score"
)

func (s *State) updateHazards() {
	beat := s.Beat

	kept := s.Hazards[:0]
	for _, h := range s.Hazards {
		if h.Expired(beat) {
			continue
		}
		kept = append(kept, h)

		if h.Active(beat) && h.Lane == s.Ship.Lane && s.Ship.Invincibility <= 0 {
			s.Health.Add(-health.LaserLoss)
			s.Score.Penalize(score.LaserPenalty)
			s.feedback(game.KindMiss, h.Lane)
			s.Ship.Invincibility = CollisionInvincibility
			s.Collisions++
		}
	}
	s.Hazards = kept
}

// Lasering is true when a hazard in the lane is damaging at beat.
func (s *State) Lasering(lane game.LaneID, beat float64) bool {
	for _, h := range s.Hazards {
		if h.Lane == lane && h.Active(beat) {
			return true
		}
	}
	return false
}

// Warned is true when a hazard in the lane is about to become active.
func (s *State) Warned(lane game.LaneID, beat float64) bool {
	for _, h := range s.Hazards {
		if h.Lane == lane && h.Warning(beat) {
			return true
		}
	}
	return false
}

// Danger scores a lane by the beat of its nearest upcoming hazard. A lane
// that is damaging now is -Inf and a lane with nothing scheduled is +Inf,
// so larger is safer.
func (s *State) Danger(lane game.LaneID, beat float64) float64 {
	if s.Lasering(lane, beat) {
		return math.Inf(-1)
	}
	for _, h := range s.Hazards {
		// Hazards are in beat order, the first match is the nearest
		if h.Lane == lane && h.Beat >= beat {
			return h.Beat
		}
	}
	return math.Inf(1)
}
