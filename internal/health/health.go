// Package health tracks the ship's health and the one-way game over
// countdown that follows it reaching zero.
package health

const (
	Max = 500

	CorrectGain   = 15
	MissLoss      = 50
	IncorrectLoss = 50
	LaserLoss     = 75

	// Seconds from reaching zero health until the run fails
	GameOverDuration = 3.0
)

type Model struct {
	health int

	armed     bool
	remaining float64
}

func New() *Model {
	return &Model{health: Max, remaining: GameOverDuration}
}

func (m *Model) Health() int {
	return m.health
}

// Add applies a delta. The value may leave the valid range until Settle.
func (m *Model) Add(delta int) {
	m.health += delta
}

// Settle clamps health once all of a frame's deltas are applied and arms the
// countdown the first time health is zero. It reports whether the countdown
// was armed by this call.
func (m *Model) Settle() bool {
	if m.health < 0 {
		m.health = 0
	} else if m.health > Max {
		m.health = Max
	}
	if m.health == 0 && !m.armed {
		m.armed = true
		return true
	}
	return false
}

// Tick advances a running countdown. Health regenerating does not stop it.
func (m *Model) Tick(dt float64) {
	if m.armed && m.remaining > 0 {
		m.remaining -= dt
	}
}

func (m *Model) Armed() bool {
	return m.armed
}

// Progress runs from 0 to 1 over the countdown.
func (m *Model) Progress() float64 {
	if !m.armed {
		return 0
	}
	p := 1 - m.remaining/GameOverDuration
	if p > 1 {
		return 1
	}
	return p
}

// PlaybackRate ramps linearly to 0 over the countdown.
func (m *Model) PlaybackRate() float64 {
	return 1 - m.Progress()
}

// Done is true once the countdown has elapsed.
func (m *Model) Done() bool {
	return m.armed && m.remaining <= 0
}
