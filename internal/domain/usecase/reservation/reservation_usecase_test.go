package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/quota"
	"github.com/amirhossein-jamali/cage-reservations/internal/testutil/memory"
)

// Wednesday 2024-03-06 noon
var now = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

func add(store *memory.Store, assetID uint64, category string, start time.Time, status entity.ReservationStatus) {
	store.AddReservation(&entity.Reservation{
		AssetID:   assetID,
		UserID:    "u1",
		Category:  category,
		StartTime: start,
		EndTime:   start.Add(4 * time.Hour),
		Status:    status,
	})
}

func newUseCase(store *memory.Store) *ReservationUseCase {
	cal := calendar.New(time.UTC, calendar.DefaultBlocks(false))
	return NewReservationUseCase(store, store.Assets(), quota.NewEnforcer(store, cal, 3), memory.NewClock(now))
}

func TestGetUserReservations(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(nil)
	store.AddUser(&entity.User{ID: "u1"})
	store.AddAsset(&entity.Asset{ID: 1, Tag: "CAM-0001", Name: "Sony FX3", Category: "Video Camera"})

	add(store, 1, "Video Camera", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), entity.StatusCompleted)
	add(store, 1, "Video Camera", time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC), entity.StatusCheckedOut)
	add(store, 1, "Video Camera", time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC), entity.StatusConfirmed)
	add(store, 1, "Video Camera", time.Date(2024, 3, 7, 14, 0, 0, 0, time.UTC), entity.StatusCancelled)
	add(store, 2, "Lighting", time.Date(2024, 3, 7, 14, 0, 0, 0, time.UTC), entity.StatusPending)

	summary, err := newUseCase(store).GetUserReservations(ctx, "u1")
	require.NoError(t, err)

	assert.Len(t, summary.Upcoming, 3)
	assert.Len(t, summary.Past, 2)
	assert.Equal(t, "CAM-0001", summary.Upcoming[0].AssetTag)
	assert.Equal(t, "Sony FX3", summary.Upcoming[0].ModelName)
	assert.Empty(t, summary.Upcoming[2].AssetTag, "asset 2 is not mirrored")

	video := summary.CategoryUsage["Video Camera"]
	assert.Equal(t, 2, video.BlocksUsed)
	assert.Equal(t, 1, video.BlocksRemaining)
	assert.True(t, video.CanReserve)
	assert.Equal(t, 1, summary.CategoryUsage["Lighting"].BlocksUsed)
}

func TestGetUserReservations_UnknownUser(t *testing.T) {
	_, err := newUseCase(memory.NewStore(nil)).GetUserReservations(context.Background(), "ghost")
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestListReservations(t *testing.T) {
	store := memory.NewStore(nil)
	add(store, 1, "Video Camera", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), entity.StatusConfirmed)
	add(store, 1, "Video Camera", time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), entity.StatusCancelled)
	add(store, 2, "Lighting", time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), entity.StatusConfirmed)

	list, err := newUseCase(store).ListReservations(context.Background(), persistence.ReservationFilter{
		StatusIn: []entity.ReservationStatus{entity.StatusConfirmed},
	})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = newUseCase(store).ListReservations(context.Background(), persistence.ReservationFilter{AssetID: 2})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
