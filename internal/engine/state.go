// Package engine runs the per-frame judgment of a single session: note
// judgment, holds, hazards and the ship, against an explicit State.
package engine

import (
	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/health"
	"git.lost.host/meutraa/beatofspace/internal/score"
)

const (
	// Notes this far behind the current beat are missed
	MissBeats = 1.0

	// Seconds a feedback text stays visible
	FeedbackLifetime = 0.8

	// Seconds of invulnerability after a collision, and at the start
	CollisionInvincibility = 1.0
	StartInvincibility     = 0.25

	shipEase = 6.0
)

type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeCompleted
	OutcomeFailed
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	case OutcomeAborted:
		return "aborted"
	}
	return "unknown"
}

// Feedback is a judgment shown to the player for a short time.
type Feedback struct {
	Kind      game.Kind
	Lane      game.LaneID
	Remaining float64 // Seconds
}

type Ship struct {
	Lane          game.LaneID // Target lane, used for collisions
	Position      float64     // Eased row offset, display only
	Invincibility float64     // Seconds
}

// State is everything a session mutates. It is owned by a single update loop.
type State struct {
	Song *game.Song
	Beat float64

	Notes   []game.Note   // Not yet judged, in beat order
	Holds   []game.Note   // Being held
	Trails  []game.Note   // Remainders of dropped holds, display only
	Hazards []game.Hazard // Not yet expired

	Score  score.State
	Health *health.Model
	Ship   Ship

	Feedback   []Feedback
	Collisions int

	Outcome Outcome
}

func NewState(song *game.Song) *State {
	s := &State{
		Song:    song,
		Notes:   append([]game.Note(nil), song.Notes...),
		Hazards: append([]game.Hazard(nil), song.Hazards...),
		Score:   score.NewState(),
		Health:  health.New(),
		Ship: Ship{
			Lane:          game.LaneRight,
			Position:      200,
			Invincibility: StartInvincibility,
		},
	}
	return s
}

func (s *State) feedback(kind game.Kind, lane game.LaneID) {
	s.Feedback = append(s.Feedback, Feedback{Kind: kind, Lane: lane, Remaining: FeedbackLifetime})
}

func (s *State) tickFeedback(dt float64) {
	kept := s.Feedback[:0]
	for _, f := range s.Feedback {
		f.Remaining -= dt
		if f.Remaining > 0 {
			kept = append(kept, f)
		}
	}
	s.Feedback = kept
}
