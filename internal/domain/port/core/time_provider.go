package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock so calendar and lifecycle rules are testable
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case
	Sleep(ctx context.Context, d time.Duration) error
	// WithTimeout derives a context that is cancelled after timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
