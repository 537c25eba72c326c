package engine

import (
	"context"
	"sync"
	"time"
)

// DefaultTickRate is the nominal tick rate, in ticks per second.
const DefaultTickRate = 60.0

// Clock paces the loop. By default each Wait sleeps for one full interval,
// so time spent between waits accumulates as drift. With drift compensation
// enabled, Wait sleeps until the next deadline on a fixed schedule instead.
type Clock struct {
	mu         sync.Mutex
	interval   time.Duration
	compensate bool
	deadline   time.Time
	last       time.Time
}

// NewClock creates a Clock ticking at the given rate (in Hz).
func NewClock(rate float64, compensate bool) *Clock {
	now := time.Now()
	return &Clock{
		interval:   rateInterval(rate),
		compensate: compensate,
		deadline:   now,
		last:       now,
	}
}

// Interval returns the nominal time between ticks.
func (c *Clock) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// SetRate changes the tick rate. It takes effect from the next Wait.
func (c *Clock) SetRate(rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interval = rateInterval(rate)
}

// Wait sleeps until the next tick is due. It returns early with the
// context's error if ctx is cancelled.
func (c *Clock) Wait(ctx context.Context) error {
	c.mu.Lock()
	sleep := c.interval
	if c.compensate {
		now := time.Now()
		c.deadline = c.deadline.Add(c.interval)
		if c.deadline.Before(now) {
			// Fell behind by more than a tick; skip ahead rather than
			// firing a burst of ticks to catch up.
			c.deadline = now
		}
		sleep = c.deadline.Sub(now)
	}
	c.mu.Unlock()

	if sleep <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Elapsed returns the monotonic time since the previous call to Elapsed (or
// since the clock was created.)
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	dt := now.Sub(c.last)
	c.last = now
	return dt
}

func rateInterval(rate float64) time.Duration {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Duration(float64(time.Second) / rate)
}
