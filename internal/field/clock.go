package field

import (
	"context"
	"time"
)

// ManualClock holds the requested callback until Tick is called.
type ManualClock struct {
	pending func()
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) RequestFrame(callback func()) {
	c.pending = callback
}

// Pending reports whether a frame has been requested.
func (c *ManualClock) Pending() bool {
	return c.pending != nil
}

// Tick runs the pending callback, if any, and reports whether one ran.
func (c *ManualClock) Tick() bool {
	cb := c.pending
	if cb == nil {
		return false
	}
	c.pending = nil
	cb()
	return true
}

// TickerClock fires the requested callback at a fixed rate. RequestFrame
// must be called from the goroutine running Run, or before Run starts.
type TickerClock struct {
	interval time.Duration
	pending  func()
	onFrame  func(time.Duration)
}

// NewTickerClock returns a clock firing fps times per second.
func NewTickerClock(fps int) *TickerClock {
	if fps <= 0 {
		fps = 60
	}
	return &TickerClock{interval: time.Second / time.Duration(fps)}
}

// OnFrame installs a hook receiving the duration of every callback.
func (c *TickerClock) OnFrame(hook func(time.Duration)) {
	c.onFrame = hook
}

func (c *TickerClock) RequestFrame(callback func()) {
	c.pending = callback
}

// Run dispatches frames until ctx is done or no frame is pending.
func (c *TickerClock) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cb := c.pending
			if cb == nil {
				return nil
			}
			c.pending = nil
			start := time.Now()
			cb()
			if c.onFrame != nil {
				c.onFrame(time.Since(start))
			}
		}
	}
}
