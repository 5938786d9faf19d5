package page

import (
	"time"

	"github.com/chewxy/math32"
)

// TurnClock measures how long ago a page last flipped between opened and
// closed. Time is accumulated from frame deltas only.
type TurnClock struct {
	opened  bool
	turned  bool
	elapsed float32
}

// NewTurnClock returns a settled clock for a page in the given state.
func NewTurnClock(opened bool) TurnClock {
	return TurnClock{opened: opened}
}

// Observe records the page state and restarts the clock when it flipped.
// It reports whether a flip happened.
func (c *TurnClock) Observe(opened bool) bool {
	if opened == c.opened {
		return false
	}
	c.opened = opened
	c.turned = true
	c.elapsed = 0
	return true
}

// Advance adds dt seconds, saturating at the turn duration.
func (c *TurnClock) Advance(dt float32, duration time.Duration) {
	if !c.turned || dt <= 0 {
		return
	}
	limit := float32(duration.Seconds())
	c.elapsed = math32.Min(c.elapsed+dt, limit)
}

// Opened returns the last observed state.
func (c *TurnClock) Opened() bool { return c.opened }

// Progress returns how far the current turn has run, from 0 at the flip to 1
// once duration has elapsed. A clock that never flipped is settled at 1.
func (c *TurnClock) Progress(duration time.Duration) float32 {
	if !c.turned || duration <= 0 {
		return 1
	}
	return math32.Min(c.elapsed/float32(duration.Seconds()), 1)
}

// Remaining returns 1 right after a flip and decays to 0 over duration.
func (c *TurnClock) Remaining(duration time.Duration) float32 {
	return 1 - c.Progress(duration)
}

// TurningTime shapes the turn as sin(progress*Pi): zero at both ends of the
// turn and peaking halfway.
func (c *TurnClock) TurningTime(duration time.Duration) float32 {
	p := c.Progress(duration)
	if p >= 1 {
		return 0
	}
	return math32.Sin(p * math32.Pi)
}
