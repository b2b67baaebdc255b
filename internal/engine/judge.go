package engine

import (
	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/health"
)

// judgeNotes classifies pending notes against this frame's presses and
// returns the lanes that resolved a note. Notes are visited in beat order,
// so the earliest due note of a lane wins.
func (s *State) judgeNotes(pressed game.LaneSet) game.LaneSet {
	var resolved game.LaneSet
	beat := s.Beat

	kept := s.Notes[:0]
	for _, n := range s.Notes {
		if n.Beat < beat-MissBeats {
			s.miss(n)
			continue
		}

		diff := game.Diff(n.Beat, beat)
		if diff < -game.CorrectWindow || diff > game.CorrectWindow {
			kept = append(kept, n)
			continue
		}

		if !pressed.Has(n.Lane) || resolved.Has(n.Lane) {
			kept = append(kept, n)
			continue
		}
		resolved = resolved.With(n.Lane)

		if n.IsHold() {
			s.Holds = append(s.Holds, n)
			continue
		}

		j := game.Judge(diff)
		s.Score.Hit(j)
		s.Health.Add(health.CorrectGain)
		s.feedback(j.Kind, n.Lane)
	}
	s.Notes = kept

	return resolved
}

func (s *State) miss(n game.Note) {
	s.Health.Add(-health.MissLoss)
	s.Score.Break(game.KindMiss)
	s.feedback(game.KindMiss, n.Lane)
}

// judgeIncorrect penalizes every press that did not resolve a note.
func (s *State) judgeIncorrect(pressed, resolved game.LaneSet) {
	if pressed.Empty() {
		return
	}
	for _, lane := range game.Lanes {
		if pressed.Has(lane) && !resolved.Has(lane) {
			s.Health.Add(-health.IncorrectLoss)
			s.Score.Break(game.KindIncorrect)
			s.feedback(game.KindIncorrect, lane)
		}
	}
}
