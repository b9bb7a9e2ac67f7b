package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/model"
)

// AdmissionLockRepository implements expiring admission locks using GORM
type AdmissionLockRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAdmissionLockRepository creates a new AdmissionLockRepository instance
func NewAdmissionLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AdmissionLockRepository {
	return &AdmissionLockRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AcquireLock takes the lock for key. A row that is expired, or already
// held by the same owner, is overwritten in the same statement.
func (r *AdmissionLockRepository) AcquireLock(ctx context.Context, key, owner string, ttl time.Duration) error {
	r.logger.Debug("Attempting to acquire lock", map[string]any{
		"lock_key": key,
		"owner":    owner,
		"ttl":      ttl.String(),
	})

	now := r.timeProvider.Now()
	expiresAt := now.Add(ttl)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO admission_locks (key, owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE
		SET owner = EXCLUDED.owner,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE admission_locks.expires_at <= ? OR admission_locks.owner = EXCLUDED.owner`,
		key, owner, now, expiresAt, now, now,
		now,
	)

	if err := result.Error; err != nil {
		if isContextError(err) {
			r.logger.Warn("Context timeout acquiring lock", map[string]any{
				"lock_key": key,
				"error":    err.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", err)
		}

		r.logger.Error("Database error acquiring lock", map[string]any{
			"lock_key": key,
			"error":    err.Error(),
		})
		return TranslateError(err, nil)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Lock is held by another owner", map[string]any{
			"lock_key": key,
		})
		return errs.ErrLockHeld
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"lock_key":   key,
		"expires_at": expiresAt,
	})
	return nil
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled")
}

// ReleaseLock deletes the lock if owner still holds it. Releasing a lock that
// expired and was taken over is a no-op.
func (r *AdmissionLockRepository) ReleaseLock(ctx context.Context, key, owner string) error {
	result := r.db.WithContext(ctx).
		Where("key = ? AND owner = ?", key, owner).
		Delete(&model.AdmissionLock{})
	if result.Error != nil {
		r.logger.Error("Failed to release lock", map[string]any{
			"lock_key": key,
			"error":    result.Error.Error(),
		})
		return TranslateError(result.Error, nil)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No lock found to release - may have already expired", map[string]any{
			"lock_key": key,
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired locks
func (r *AdmissionLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", r.timeProvider.Now()).
		Delete(&model.AdmissionLock{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		r.logger.Error("Failed to cleanup expired locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, TranslateError(result.Error, nil)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Cleaned up expired locks", map[string]any{
			"count": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
