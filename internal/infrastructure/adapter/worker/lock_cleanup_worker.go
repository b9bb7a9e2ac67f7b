package worker

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
)

// LockCleanupWorker periodically deletes expired admission locks
type LockCleanupWorker struct {
	locks    persistence.AdmissionLockRepository
	interval time.Duration
	logger   coreport.Logger
}

// NewLockCleanupWorker creates a cleanup worker running every interval
func NewLockCleanupWorker(locks persistence.AdmissionLockRepository, interval time.Duration, logger coreport.Logger) *LockCleanupWorker {
	return &LockCleanupWorker{
		locks:    locks,
		interval: interval,
		logger:   logger,
	}
}

// Start runs until ctx is cancelled
func (w *LockCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Lock cleanup worker started", map[string]any{
		"interval": w.interval.String(),
	})

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Lock cleanup worker stopped", nil)
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single cleanup pass and returns the number of locks removed
func (w *LockCleanupWorker) RunOnce(ctx context.Context) int64 {
	removed, err := w.locks.CleanupExpiredLocks(ctx)
	if err != nil {
		w.logger.Error("Failed to clean up expired admission locks", map[string]any{
			"error": err.Error(),
		})
		return 0
	}

	if removed > 0 {
		w.logger.Info("Expired admission locks removed", map[string]any{
			"count": removed,
		})
	}
	return removed
}
