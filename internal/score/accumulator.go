package score

import (
	"math"

	"git.lost.host/meutraa/beatofspace/internal/game"
)

const (
	MinCombo = 1.0
	MaxCombo = 4.0

	HoldPointsPerBeat  = 1500.0
	HoldCompleteGrowth = 1.08
	HoldDropGrowth     = 0.98

	// Subtracted for every hazard collision
	LaserPenalty = 500
)

type Counts struct {
	Perfect   int `msgpack:"p"`
	Good      int `msgpack:"g"`
	Ok        int `msgpack:"o"`
	Incorrect int `msgpack:"i"`
	Missed    int `msgpack:"m"`

	HoldsCompleted int `msgpack:"hc"`
	HoldsDropped   int `msgpack:"hd"`
}

// State is the running score of a session. Only the accumulator methods
// below change it.
type State struct {
	Score  int
	Combo  float64
	Counts Counts
}

func NewState() State {
	return State{Combo: MinCombo}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Hit awards a tap judgement and returns the points added.
func (s *State) Hit(j game.Judgement) int {
	points := roundHalfUp(float64(j.Points) * s.Combo)
	s.Score += points
	s.Combo *= j.Growth
	switch j.Kind {
	case game.KindPerfect:
		s.Counts.Perfect++
	case game.KindGood:
		s.Counts.Good++
	case game.KindOk:
		s.Counts.Ok++
	}
	return points
}

// HoldComplete awards full credit for a hold of the given length in beats.
func (s *State) HoldComplete(length float64) int {
	points := roundHalfUp(HoldPointsPerBeat / length * s.Combo)
	s.Score += points
	s.Combo *= HoldCompleteGrowth
	s.Counts.HoldsCompleted++
	return points
}

// HoldPartial awards credit scaled by how much of the hold was completed.
func (s *State) HoldPartial(length, percent float64) int {
	percent = math.Max(0, math.Min(1, percent))
	points := roundHalfUp(HoldPointsPerBeat / length * percent * s.Combo)
	s.Score += points
	s.Combo *= HoldDropGrowth
	s.Counts.HoldsDropped++
	return points
}

// Break resets the combo for a miss or an incorrect press.
func (s *State) Break(kind game.Kind) {
	s.Combo = MinCombo
	switch kind {
	case game.KindMiss:
		s.Counts.Missed++
	case game.KindIncorrect:
		s.Counts.Incorrect++
	}
}

// Penalize subtracts points without touching the combo.
func (s *State) Penalize(points int) {
	s.Score -= points
}

// Clamp keeps the combo multiplier in range, once per frame.
func (s *State) Clamp() {
	s.Combo = math.Max(MinCombo, math.Min(MaxCombo, s.Combo))
}
