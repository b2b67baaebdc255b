package engine

import (
	"math"

	"git.lost.host/meutraa/beatofspace/internal/game"
)

// Progress of a hold at the given beat, in [0, 1].
func Progress(h game.Note, beat float64) float64 {
	return math.Max(0, math.Min(1, (beat-h.Beat)/h.HoldLength))
}

func (s *State) trackHolds(held game.LaneSet) {
	beat := s.Beat

	kept := s.Holds[:0]
	for _, h := range s.Holds {
		p := Progress(h, beat)
		down := held.Has(h.Lane)

		switch {
		case down && p >= 1:
			s.Score.HoldComplete(h.HoldLength)
			s.feedback(game.KindPerfect, h.Lane)
		case !down:
			s.Score.HoldPartial(h.HoldLength, p)
			s.feedback(game.KindOk, h.Lane)
			if p < 1 {
				s.Trails = append(s.Trails, game.Note{
					Beat:       beat,
					Lane:       h.Lane,
					SubType:    h.SubType,
					HoldLength: (1 - p) * h.HoldLength,
				})
			}
		default:
			kept = append(kept, h)
		}
	}
	s.Holds = kept

	trails := s.Trails[:0]
	for _, t := range s.Trails {
		if t.End() >= beat-MissBeats {
			trails = append(trails, t)
		}
	}
	s.Trails = trails
}
