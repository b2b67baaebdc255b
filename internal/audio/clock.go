// Package audio plays the song and reports how far into it playback is. The
// audio position is the clock every judgment runs against.
package audio

import "time"

// Clock reports the song position in seconds. It is negative during the start
// delay and advances at the playback rate times the rate multiplier.
type Clock interface {
	Start(delay time.Duration)
	Position() float64
	// SetRate scales the configured playback rate, 1 is normal speed.
	SetRate(multiplier float64)
	Close() error
}

// WallClock is used when playing muted or without a sound device.
type WallClock struct {
	Rate float64
	Now  func() time.Time

	mark       time.Time
	base       float64
	multiplier float64
}

func NewWallClock(rate float64) *WallClock {
	return &WallClock{Rate: rate, Now: time.Now, multiplier: 1}
}

func (c *WallClock) Start(delay time.Duration) {
	c.mark = c.Now()
	c.base = -delay.Seconds()
}

func (c *WallClock) Position() float64 {
	elapsed := c.Now().Sub(c.mark).Seconds()
	if c.base < 0 {
		// The start delay always runs in real time
		if elapsed < -c.base {
			return c.base + elapsed
		}
		return (elapsed + c.base) * c.Rate * c.multiplier
	}
	return c.base + elapsed*c.Rate*c.multiplier
}

func (c *WallClock) SetRate(multiplier float64) {
	if multiplier == c.multiplier {
		return
	}
	c.base = c.Position()
	c.mark = c.Now()
	if c.base < 0 {
		c.base = 0
	}
	c.multiplier = multiplier
}

func (c *WallClock) Close() error {
	return nil
}
