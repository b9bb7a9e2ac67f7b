package migration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/cage-reservations/mocks/port/core"
)

type recordingUsers struct {
	created []*entity.User
	err     error
}

func (r *recordingUsers) Create(_ context.Context, u *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, u)
	return nil
}

type recordingAssets struct {
	upserted []*entity.Asset
}

func (r *recordingAssets) Upsert(_ context.Context, assets []*entity.Asset) error {
	r.upserted = append(r.upserted, assets...)
	return nil
}

func TestSeedDevData(t *testing.T) {
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	tp := coremocks.NewMockTimeProvider(t)
	tp.On("Now").Return(now)

	users := &recordingUsers{}
	assets := &recordingAssets{}

	require.NoError(t, SeedDevData(context.Background(), users, assets, tp, logger.NewNoopLogger()))

	require.Len(t, users.created, len(devUsers))
	assert.Equal(t, now, users.created[0].CreatedAt)
	assert.True(t, users.created[0].IsEnrolledIn("FILM101"))
	assert.Equal(t, entity.RoleAdmin, users.created[3].Role)

	require.Len(t, assets.upserted, len(devAssets))
	assert.True(t, assets.upserted[0].IsRestricted())
	assert.False(t, assets.upserted[1].IsRestricted())

	// the package-level fixtures must not be mutated
	assert.True(t, devUsers[0].CreatedAt.IsZero())
}

func TestSeedDevData_StopsOnUserError(t *testing.T) {
	tp := coremocks.NewMockTimeProvider(t)
	tp.On("Now").Return(time.Now())

	boom := errors.New("boom")
	assets := &recordingAssets{}
	err := SeedDevData(context.Background(), &recordingUsers{err: boom}, assets, tp, logger.NewNoopLogger())

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, assets.upserted)
}
