package admission

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
)

const (
	lockInitialBackoff = 10 * time.Millisecond
	lockMaxBackoff     = 250 * time.Millisecond
)

// lockKeys returns the admission locks for a request, sorted so every request
// acquires them in the same order
func lockKeys(assetID uint64, userID, category string) []string {
	keys := []string{
		fmt.Sprintf("asset:%d", assetID),
		fmt.Sprintf("quota:%s:%s", userID, category),
	}
	sort.Strings(keys)
	return keys
}

// acquireLocks takes every key for owner, retrying held locks with jittered
// exponential backoff until the lock timeout elapses. On failure nothing stays held.
func (c *Controller) acquireLocks(ctx context.Context, keys []string, owner string) error {
	started := c.timeProvider.Now()
	for i, key := range keys {
		if err := c.acquireLock(ctx, key, owner, started); err != nil {
			c.releaseLocks(ctx, keys[:i], owner)
			return err
		}
	}
	return nil
}

func (c *Controller) acquireLock(ctx context.Context, key, owner string, started time.Time) error {
	backoff := lockInitialBackoff
	for attempt := 1; ; attempt++ {
		err := c.locks.AcquireLock(ctx, key, owner, c.cfg.LockTTL)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrLockHeld) {
			return err
		}

		if c.timeProvider.Since(started) >= c.cfg.LockTimeout {
			c.logger.Warn("Timed out waiting for admission lock", map[string]any{
				"lock_key": key,
				"attempts": attempt,
				"waited":   c.timeProvider.Since(started).String(),
			})
			return errs.NewConflictError(errs.RuleConcurrentRequest,
				"another request for this equipment is in progress, please retry", map[string]any{"lock_key": key})
		}

		// Jitter between 50% and 100% of the current backoff
		wait := backoff/2 + time.Duration(rand.Int63n(int64(backoff/2)+1))
		if err := c.timeProvider.Sleep(ctx, wait); err != nil {
			return err
		}
		backoff = min(backoff*2, lockMaxBackoff)
	}
}

// releaseLocks releases keys in reverse order, detached from request cancellation
func (c *Controller) releaseLocks(ctx context.Context, keys []string, owner string) {
	ctx = context.WithoutCancel(ctx)
	for i := len(keys) - 1; i >= 0; i-- {
		if err := c.locks.ReleaseLock(ctx, keys[i], owner); err != nil {
			c.logger.Warn("Failed to release admission lock", map[string]any{
				"lock_key": keys[i],
				"error":    err.Error(),
			})
		}
	}
}
