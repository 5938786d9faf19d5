// Package navigation turns a requested page number into the page position the
// book animates toward, one page at a time.
package navigation

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/flipbook/internal/logger"
	"github.com/Faultbox/flipbook/pkg/math"
)

// Config controls how quickly the display position chases the target.
type Config struct {
	// FastStep is the delay between steps while far from the target.
	FastStep time.Duration
	// SlowStep is the delay between steps close to the target.
	SlowStep time.Duration
	// FarDistance is the distance above which FastStep applies.
	FarDistance int
}

// DefaultConfig returns fast-then-settle stepping: 50ms per page while more
// than two pages away, 150ms otherwise.
func DefaultConfig() Config {
	return Config{
		FastStep:    50 * time.Millisecond,
		SlowStep:    150 * time.Millisecond,
		FarDistance: 2,
	}
}

// Controller owns the target page and the display page of one book.
// The display page never leaves [0, pageCount] and moves one unit per step.
// A Controller is driven from the frame loop and is not safe for concurrent use.
type Controller struct {
	cfg       Config
	pageCount int
	target    int
	display   int

	// wait is the time left before the next step.
	wait    time.Duration
	stopped bool
}

// New creates a controller at rest on page 0.
func New(pageCount int, cfg Config) *Controller {
	if pageCount < 0 {
		pageCount = 0
	}
	return &Controller{cfg: cfg, pageCount: pageCount}
}

// SetTarget requests page n, clamped to [0, pageCount]. The display page is
// left alone; the next Update steps toward the new target right away.
func (c *Controller) SetTarget(n int) {
	if c.stopped {
		return
	}
	c.target = math.ClampInt(n, 0, c.pageCount)
	c.wait = 0
}

// Tick moves the display page one unit toward the target. It reports whether
// the display page changed.
func (c *Controller) Tick() bool {
	if c.stopped || c.display == c.target {
		return false
	}
	if c.target > c.display {
		c.display++
	} else {
		c.display--
	}
	logger.Debug("page stepped",
		zap.Int("display", c.display),
		zap.Int("target", c.target),
	)
	return true
}

// Update advances the step timer by dt seconds and takes at most one step
// when it runs out. It reports whether the display page changed.
func (c *Controller) Update(dt float64) bool {
	if c.stopped || c.display == c.target {
		return false
	}
	if dt > 0 {
		c.wait -= time.Duration(dt * float64(time.Second))
	}
	if c.wait > 0 {
		return false
	}

	c.wait = c.delay()
	return c.Tick()
}

// delay picks the wait after a step taken from the current position.
func (c *Controller) delay() time.Duration {
	distance := c.target - c.display
	if distance < 0 {
		distance = -distance
	}
	if distance > c.cfg.FarDistance {
		return c.cfg.FastStep
	}
	return c.cfg.SlowStep
}

// Stop freezes the controller. Further targets, ticks and updates are ignored.
func (c *Controller) Stop() {
	c.stopped = true
	c.target = c.display
	c.wait = 0
}

// Display returns the page the book is currently showing or animating to.
func (c *Controller) Display() int { return c.display }

// Target returns the requested page.
func (c *Controller) Target() int { return c.target }

// PageCount returns the number of pages.
func (c *Controller) PageCount() int { return c.pageCount }

// Settled reports whether the display page has reached the target.
func (c *Controller) Settled() bool { return c.display == c.target }

// Opened reports whether page i has been turned over.
func (c *Controller) Opened(i int) bool { return c.display > i }

// BookClosed reports whether the display page is on either cover.
func (c *Controller) BookClosed() bool {
	return c.display == 0 || c.display == c.pageCount
}
