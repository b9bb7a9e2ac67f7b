package persistence

import (
	"context"
	"time"
)

// AdmissionLockRepository manages expiring named locks that serialise admission
// requests touching the same asset or the same user quota
type AdmissionLockRepository interface {
	// AcquireLock takes the lock for key on behalf of owner until ttl elapses.
	// An expired lock held by someone else is taken over.
	//
	// Possible errors:
	// - ErrLockHeld: If another owner holds an unexpired lock on key
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, key, owner string, ttl time.Duration) error

	// ReleaseLock releases the lock if owner still holds it
	ReleaseLock(ctx context.Context, key, owner string) error

	// CleanupExpiredLocks deletes expired locks and returns how many were removed
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}
