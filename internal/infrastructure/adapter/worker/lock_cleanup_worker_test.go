package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/amirhossein-jamali/cage-reservations/mocks/port/persistence"
)

func TestRunOnce(t *testing.T) {
	locks := persistencemocks.NewMockAdmissionLockRepository(t)
	locks.EXPECT().CleanupExpiredLocks(mock.Anything).Return(int64(3), nil).Once()

	w := NewLockCleanupWorker(locks, time.Minute, logger.NewNoopLogger())
	assert.Equal(t, int64(3), w.RunOnce(context.Background()))
}

func TestRunOnce_Error(t *testing.T) {
	locks := persistencemocks.NewMockAdmissionLockRepository(t)
	locks.EXPECT().CleanupExpiredLocks(mock.Anything).Return(int64(0), errors.New("connection refused")).Once()

	w := NewLockCleanupWorker(locks, time.Minute, logger.NewNoopLogger())
	assert.Equal(t, int64(0), w.RunOnce(context.Background()))
}

func TestStart_RunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	locks := persistencemocks.NewMockAdmissionLockRepository(t)
	locks.EXPECT().CleanupExpiredLocks(mock.Anything).
		Run(func(context.Context) { cancel() }).
		Return(int64(1), nil)

	w := NewLockCleanupWorker(locks, 5*time.Millisecond, logger.NewNoopLogger())

	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}
