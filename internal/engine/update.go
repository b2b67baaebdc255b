package engine

import "git.lost.host/meutraa/beatofspace/internal/game"

// Update advances the session by one frame and reports how the run stands.
// Once the outcome is no longer OutcomeContinue the state is frozen.
func Update(s *State, f game.Frame) Outcome {
	if s.Outcome != OutcomeContinue {
		return s.Outcome
	}

	s.Beat = game.Beat(f.Position, s.Song.BPM)
	held := f.Held | f.Pressed

	s.tickFeedback(f.Delta)

	resolved := s.judgeNotes(f.Pressed)
	s.judgeIncorrect(f.Pressed, resolved)

	s.moveShip(f)

	s.trackHolds(held)
	s.Score.Clamp()

	s.Ship.Invincibility -= f.Delta
	s.updateHazards()

	s.Health.Settle()
	s.Health.Tick(f.Delta)

	switch {
	case f.Quit:
		s.Outcome = OutcomeAborted
	case s.Health.Done():
		s.Outcome = OutcomeFailed
	case s.Health.Armed():
		// A dying ship cannot finish the song
	case f.Position >= s.Song.Length:
		s.Outcome = OutcomeCompleted
	}
	return s.Outcome
}

// PlaybackRate is the audio rate the session wants, slowing to a stop while
// the game over countdown runs.
func (s *State) PlaybackRate() float64 {
	return s.Health.PlaybackRate()
}
