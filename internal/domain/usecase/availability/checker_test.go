package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
	"github.com/amirhossein-jamali/cage-reservations/internal/testutil/memory"
)

func at(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func seed(store *memory.Store, assetID uint64, start, end time.Time, status entity.ReservationStatus) {
	store.AddReservation(&entity.Reservation{
		AssetID:   assetID,
		UserID:    "u1",
		Category:  "Video Camera",
		StartTime: start,
		EndTime:   end,
		Status:    status,
	})
}

func TestIsAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("Free asset", func(t *testing.T) {
		store := memory.NewStore(nil)
		checker := NewChecker(store)

		ok, err := checker.IsAvailable(ctx, 1, calendar.Window{Start: at(5, 9), End: at(5, 13)}, NoBuffer)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Active statuses block the asset", func(t *testing.T) {
		for _, status := range entity.ActiveStatuses {
			t.Run(string(status), func(t *testing.T) {
				store := memory.NewStore(nil)
				seed(store, 1, at(5, 9), at(5, 13), status)
				checker := NewChecker(store)

				ok, err := checker.IsAvailable(ctx, 1, calendar.Window{Start: at(5, 9), End: at(5, 13)}, NoBuffer)
				require.NoError(t, err)
				assert.False(t, ok)
			})
		}
	})

	t.Run("Cancelled and completed do not block", func(t *testing.T) {
		store := memory.NewStore(nil)
		seed(store, 1, at(5, 9), at(5, 13), entity.StatusCancelled)
		seed(store, 1, at(5, 9), at(5, 13), entity.StatusCompleted)
		checker := NewChecker(store)

		ok, err := checker.IsAvailable(ctx, 1, calendar.Window{Start: at(5, 9), End: at(5, 13)}, NoBuffer)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Other assets do not block", func(t *testing.T) {
		store := memory.NewStore(nil)
		seed(store, 2, at(5, 9), at(5, 13), entity.StatusConfirmed)
		checker := NewChecker(store)

		ok, err := checker.IsAvailable(ctx, 1, calendar.Window{Start: at(5, 9), End: at(5, 13)}, NoBuffer)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Touching endpoints overlap", func(t *testing.T) {
		store := memory.NewStore(nil)
		seed(store, 1, at(5, 5), at(5, 9), entity.StatusConfirmed)
		checker := NewChecker(store)

		ok, err := checker.IsAvailable(ctx, 1, calendar.Window{Start: at(5, 9), End: at(5, 13)}, NoBuffer)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Adjacent blocks without buffer", func(t *testing.T) {
		store := memory.NewStore(nil)
		seed(store, 1, at(5, 9), at(5, 13), entity.StatusConfirmed)
		checker := NewChecker(store)

		ok, err := checker.IsAvailable(ctx, 1, calendar.Window{Start: at(5, 14), End: at(5, 18)}, NoBuffer)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("One hour buffer blocks back-to-back handoff", func(t *testing.T) {
		store := memory.NewStore(nil)
		seed(store, 1, at(5, 9), at(5, 13), entity.StatusConfirmed)
		checker := NewChecker(store)

		ok, err := checker.IsAvailable(ctx, 1, calendar.Window{Start: at(5, 14), End: at(5, 18)}, time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = checker.IsAvailable(ctx, 1, calendar.Window{Start: at(6, 9), End: at(6, 13)}, time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestConflicts(t *testing.T) {
	store := memory.NewStore(nil)
	seed(store, 1, at(5, 9), at(5, 13), entity.StatusConfirmed)
	seed(store, 1, at(5, 14), at(5, 18), entity.StatusPending)
	checker := NewChecker(store)

	conflicts, err := checker.Conflicts(context.Background(), 1, calendar.Window{Start: at(5, 10), End: at(5, 14)}, NoBuffer)
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)
}

func TestFreeWindows(t *testing.T) {
	existing := []*entity.Reservation{
		{AssetID: 1, StartTime: at(5, 9), EndTime: at(5, 13), Status: entity.StatusConfirmed},
		{AssetID: 1, StartTime: at(6, 14), EndTime: at(6, 18), Status: entity.StatusCancelled},
	}
	windows := []calendar.Window{
		{Start: at(5, 9), End: at(5, 13)},
		{Start: at(5, 14), End: at(5, 18)},
		{Start: at(6, 14), End: at(6, 18)},
	}

	assert.Equal(t, []bool{false, true, true}, FreeWindows(existing, windows, NoBuffer))
	assert.Equal(t, []bool{false, false, true}, FreeWindows(existing, windows, time.Hour))
}
