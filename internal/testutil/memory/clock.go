package memory

import (
	"context"
	"sync"
	"time"
)

// Clock is a settable core.TimeProvider. Sleep advances the clock instead of blocking.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock at now
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the clock's current time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Since returns the time elapsed since t
func (c *Clock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

// Sleep advances the clock by d unless ctx is done
func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.Advance(d)
	return nil
}

// WithTimeout delegates to context.WithTimeout
func (c *Clock) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
