package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const turn = 400 * time.Millisecond

func TestTurnClockStartsSettled(t *testing.T) {
	c := NewTurnClock(false)
	assert.Equal(t, float32(1), c.Progress(turn))
	assert.Zero(t, c.Remaining(turn))
	assert.Zero(t, c.TurningTime(turn))
	assert.False(t, c.Observe(false), "same state is not a flip")
}

func TestTurnClockDecaysOverDuration(t *testing.T) {
	c := NewTurnClock(false)
	assert.True(t, c.Observe(true))
	assert.Equal(t, float32(1), c.Remaining(turn))
	assert.Zero(t, c.TurningTime(turn))

	c.Advance(0.2, turn)
	assert.InDelta(t, 0.5, c.Remaining(turn), 1e-5)
	assert.InDelta(t, 1, c.TurningTime(turn), 1e-5, "peaks half way")

	c.Advance(0.1, turn)
	assert.InDelta(t, 0.25, c.Remaining(turn), 1e-5)

	c.Advance(0.5, turn)
	assert.Zero(t, c.Remaining(turn))
	assert.Zero(t, c.TurningTime(turn))
}

func TestTurnClockRestartsOnEveryFlip(t *testing.T) {
	c := NewTurnClock(false)
	c.Observe(true)
	c.Advance(0.3, turn)

	// Flip back before the first turn finished.
	assert.True(t, c.Observe(false))
	assert.Equal(t, float32(1), c.Remaining(turn))
	assert.False(t, c.Opened())

	for i := 0; i < 30; i++ {
		c.Advance(1.0/60, turn)
	}
	assert.Zero(t, c.Remaining(turn))
}

func TestTurnClockIgnoresNonPositiveDelta(t *testing.T) {
	c := NewTurnClock(true)
	c.Observe(false)
	c.Advance(0, turn)
	c.Advance(-1, turn)
	assert.Equal(t, float32(1), c.Remaining(turn))
}
