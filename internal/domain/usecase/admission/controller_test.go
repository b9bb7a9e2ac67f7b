package admission

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/availability"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/lifecycle"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/quota"
	"github.com/amirhossein-jamali/cage-reservations/internal/testutil/memory"
	coremocks "github.com/amirhossein-jamali/cage-reservations/mocks/port/core"
	inventorymocks "github.com/amirhossein-jamali/cage-reservations/mocks/port/inventory"
)

// Week 2024-W10: Monday 2024-03-04 .. Sunday 2024-03-10
var monday = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func block(dayOffset, startHour int) (time.Time, time.Time) {
	start := monday.AddDate(0, 0, dayOffset).Add(time.Duration(startHour) * time.Hour)
	return start, start.Add(4 * time.Hour)
}

type fixture struct {
	store      *memory.Store
	clock      *memory.Clock
	metrics    *memory.Metrics
	publisher  *memory.Publisher
	controller *Controller
}

func newLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newFixture(t *testing.T, cfg Config) *fixture {
	clock := memory.NewClock(monday.Add(-12 * time.Hour))
	store := memory.NewStore(clock.Now)
	store.AddAsset(&entity.Asset{ID: 1, Tag: "CAM-0001", Name: "Sony FX3", Category: "Video Camera"})
	store.AddAsset(&entity.Asset{ID: 2, Tag: "CAM-0002", Name: "Sony FX3", Category: "Video Camera"})
	store.AddAsset(&entity.Asset{ID: 3, Tag: "CAM-0003", Name: "Canon C70", Category: "Video Camera"})
	store.AddAsset(&entity.Asset{ID: 10, Tag: "AUD-0001", Name: "Zoom H6", Category: "Audio Recorder"})
	store.AddAsset(&entity.Asset{ID: 20, Tag: "CAM-0100", Name: "ARRI Alexa", Category: "Video Camera", RequiredCourses: []string{"FILM-401"}})
	store.AddUser(&entity.User{ID: "u1", ExternalID: 101, Role: entity.RoleStudent})

	cal := calendar.New(time.UTC, calendar.DefaultBlocks(false))
	logger := newLogger(t)
	metrics := memory.NewMetrics()
	publisher := &memory.Publisher{}
	manager := lifecycle.NewManager(store, inventorymocks.NewMockClient(t), publisher, metrics, clock, logger, false)

	return &fixture{
		store:     store,
		clock:     clock,
		metrics:   metrics,
		publisher: publisher,
		controller: NewController(
			cal,
			availability.NewChecker(store),
			quota.NewEnforcer(store, cal, quota.DefaultWeeklyLimit),
			manager,
			store,
			store.Assets(),
			store.Locks(),
			metrics,
			clock,
			logger,
			cfg,
		),
	}
}

func (f *fixture) seed(assetID uint64, userID, category string, dayOffset, startHour int) {
	start, end := block(dayOffset, startHour)
	f.store.AddReservation(&entity.Reservation{
		AssetID:   assetID,
		UserID:    userID,
		Category:  category,
		StartTime: start,
		EndTime:   end,
		Status:    entity.StatusConfirmed,
	})
}

func request(userID string, assetID uint64, dayOffset, startHour int) usecase.ReservationRequest {
	start, end := block(dayOffset, startHour)
	return usecase.ReservationRequest{UserID: userID, AssetID: assetID, StartTime: start, EndTime: end}
}

func TestRequestReservation_WeeklyLimitScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, DefaultConfig())
	f.seed(2, "u1", "Video Camera", 0, 9)
	f.seed(3, "u1", "Video Camera", 0, 14)

	// Third Video Camera block this week succeeds
	req := request("u1", 1, 1, 9)
	req.Category = "Video Camera"
	reservation, err := f.controller.RequestReservation(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, reservation.Status)
	assert.Equal(t, "Video Camera", reservation.Category)

	// Fourth in the same week is rejected
	_, err = f.controller.RequestReservation(ctx, request("u1", 1, 2, 9))
	require.Error(t, err)
	assert.EqualError(t, err, "Weekly limit exceeded for category Video Camera")
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	assert.Equal(t, errs.RuleBlockLimitExceeded, errs.RuleOf(err))

	// Another category is unaffected
	_, err = f.controller.RequestReservation(ctx, request("u1", 10, 2, 9))
	assert.NoError(t, err)

	// The adjacent week is unaffected
	_, err = f.controller.RequestReservation(ctx, request("u1", 1, 7, 9))
	assert.NoError(t, err)

	assert.Equal(t, 3, f.metrics.Decision(OutcomeAccepted, "NONE"))
	assert.Equal(t, 1, f.metrics.Decision(OutcomeRejected, string(errs.RuleBlockLimitExceeded)))
	assert.Len(t, f.publisher.Events(), 3)
	assert.Zero(t, f.store.HeldLocks())
}

func TestRequestReservation_BlockAlignment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, DefaultConfig())

	t.Run("Tuesday block A succeeds", func(t *testing.T) {
		_, err := f.controller.RequestReservation(ctx, request("u1", 1, 1, 9))
		assert.NoError(t, err)
	})

	t.Run("Straddling window is malformed and performs no I/O", func(t *testing.T) {
		begins := f.store.Begins
		start := monday.AddDate(0, 0, 1).Add(10 * time.Hour)
		_, err := f.controller.RequestReservation(ctx, usecase.ReservationRequest{
			UserID: "u1", AssetID: 1, StartTime: start, EndTime: start.Add(4 * time.Hour),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidBlock)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		assert.Equal(t, begins, f.store.Begins)
		assert.Zero(t, f.store.HeldLocks())
	})

	t.Run("Weekend is malformed", func(t *testing.T) {
		_, err := f.controller.RequestReservation(ctx, request("u1", 1, 5, 9))
		assert.ErrorIs(t, err, errs.ErrInvalidBlock)
	})

	t.Run("Past block is rejected", func(t *testing.T) {
		f.clock.Set(monday.AddDate(0, 0, 3).Add(10 * time.Hour))
		defer f.clock.Set(monday.Add(-12 * time.Hour))

		_, err := f.controller.RequestReservation(ctx, request("u1", 2, 3, 9))
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestRequestReservation_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("Overlapping reservation on the asset", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.store.AddUser(&entity.User{ID: "u2"})
		f.seed(1, "u2", "Video Camera", 1, 9)

		_, err := f.controller.RequestReservation(ctx, request("u1", 1, 1, 9))
		assert.Equal(t, errs.RuleAssetUnavailable, errs.RuleOf(err))
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	t.Run("Availability is checked before quota", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.seed(2, "u1", "Video Camera", 0, 9)
		f.seed(3, "u1", "Video Camera", 0, 14)
		f.seed(2, "u1", "Video Camera", 2, 9)
		f.seed(1, "u1", "Video Camera", 1, 9)

		_, err := f.controller.RequestReservation(ctx, request("u1", 1, 1, 9))
		assert.Equal(t, errs.RuleAssetUnavailable, errs.RuleOf(err))
	})

	t.Run("Category mismatch", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		req := request("u1", 1, 1, 9)
		req.Category = "Audio Recorder"

		_, err := f.controller.RequestReservation(ctx, req)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("Unknown asset", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		_, err := f.controller.RequestReservation(ctx, request("u1", 999, 1, 9))
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		_, err := f.controller.RequestReservation(ctx, request("ghost", 1, 1, 9))
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("Course restricted asset", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		_, err := f.controller.RequestReservation(ctx, request("u1", 20, 1, 9))
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
		assert.Equal(t, errs.RuleCourseRestriction, errs.RuleOf(err))
	})

	t.Run("Course restriction disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.EnforceEligibility = false
		f := newFixture(t, cfg)
		_, err := f.controller.RequestReservation(ctx, request("u1", 20, 1, 9))
		assert.NoError(t, err)
	})

	t.Run("Enrolled user may reserve restricted asset", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.store.AddUser(&entity.User{ID: "u1", ExternalID: 101, EnrolledCourses: []string{"FILM-401"}})
		_, err := f.controller.RequestReservation(ctx, request("u1", 20, 1, 9))
		assert.NoError(t, err)
	})

	t.Run("Outstanding balance", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.store.AddUser(&entity.User{ID: "u1", HasOutstandingBalance: true})
		_, err := f.controller.RequestReservation(ctx, request("u1", 1, 1, 9))
		assert.Equal(t, errs.RuleOutstandingBalance, errs.RuleOf(err))
		assert.Empty(t, f.store.Reservations())
	})

	t.Run("Outstanding balance policy disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BlockOnUnpaidFines = false
		f := newFixture(t, cfg)
		f.store.AddUser(&entity.User{ID: "u1", HasOutstandingBalance: true})
		_, err := f.controller.RequestReservation(ctx, request("u1", 1, 1, 9))
		assert.NoError(t, err)
	})
}

func TestRequestReservation_Buffer(t *testing.T) {
	ctx := context.Background()

	t.Run("Without buffer adjacent blocks are free", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.store.AddUser(&entity.User{ID: "u2"})
		f.seed(1, "u2", "Video Camera", 1, 9)

		_, err := f.controller.RequestReservation(ctx, request("u1", 1, 1, 14))
		assert.NoError(t, err)
	})

	t.Run("One hour buffer rejects back-to-back blocks", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Buffer = time.Hour
		f := newFixture(t, cfg)
		f.store.AddUser(&entity.User{ID: "u2"})
		f.seed(1, "u2", "Video Camera", 1, 9)

		_, err := f.controller.RequestReservation(ctx, request("u1", 1, 1, 14))
		assert.Equal(t, errs.RuleAssetUnavailable, errs.RuleOf(err))
	})
}

func TestRequestReservation_LockContention(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.LockTimeout = time.Second
	f := newFixture(t, cfg)
	require.NoError(t, f.store.Locks().AcquireLock(ctx, "asset:1", "someone-else", time.Hour))

	_, err := f.controller.RequestReservation(ctx, request("u1", 1, 1, 9))
	assert.Equal(t, errs.RuleConcurrentRequest, errs.RuleOf(err))
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	assert.Empty(t, f.store.Reservations())
	// Only the foreign lock remains
	assert.Equal(t, 1, f.store.HeldLocks())
}

func TestRequestReservation_ConcurrentRequestsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, DefaultConfig())

	const contenders = 20
	for i := 0; i < contenders; i++ {
		f.store.AddUser(&entity.User{ID: fmt.Sprintf("user-%d", i)})
	}

	var wg sync.WaitGroup
	results := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.controller.RequestReservation(ctx, request(fmt.Sprintf("user-%d", i), 1, 1, 9))
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		assert.Equal(t, errs.KindConflict, errs.KindOf(err), "loser must get a conflict, got %v", err)
	}
	assert.Equal(t, 1, winners)
	assert.Len(t, f.store.Reservations(), 1)
}

func TestRequestReservation_NoDoubleBooking(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))
	startHours := []int{9, 14}

	for round := 0; round < 25; round++ {
		f := newFixture(t, DefaultConfig())
		f.store.AddUser(&entity.User{ID: "first"})
		f.store.AddUser(&entity.User{ID: "second"})

		day1, hour1 := rng.Intn(4), startHours[rng.Intn(2)]
		day2, hour2 := rng.Intn(4), startHours[rng.Intn(2)]

		_, err := f.controller.RequestReservation(ctx, request("first", 1, day1, hour1))
		require.NoError(t, err)

		_, err = f.controller.RequestReservation(ctx, request("second", 1, day2, hour2))
		if day1 == day2 && hour1 == hour2 {
			assert.Equal(t, errs.RuleAssetUnavailable, errs.RuleOf(err), "round %d", round)
		} else {
			assert.NoError(t, err, "round %d", round)
		}

		active := f.store.Reservations()
		for i := range active {
			for j := i + 1; j < len(active); j++ {
				assert.False(t, active[i].Overlaps(active[j].StartTime, active[j].EndTime), "round %d double-booked", round)
			}
		}
	}
}

func TestRequestReservation_ConcurrentRequestsRespectWeeklyLimit(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	// the fake clock advances on every backoff sleep
	cfg.LockTimeout = time.Hour
	cfg.LockTTL = 24 * time.Hour
	f := newFixture(t, cfg)
	f.seed(2, "u1", "Video Camera", 0, 9)
	f.seed(3, "u1", "Video Camera", 0, 14)

	assetIDs := []uint64{1, 2, 3}
	for id := uint64(30); id < 38; id++ {
		f.store.AddAsset(&entity.Asset{ID: id, Tag: fmt.Sprintf("CAM-%04d", id), Name: "Sony FX3", Category: "Video Camera"})
		assetIDs = append(assetIDs, id)
	}

	var wg sync.WaitGroup
	results := make([]error, len(assetIDs))
	for i, assetID := range assetIDs {
		wg.Add(1)
		go func(i int, assetID uint64) {
			defer wg.Done()
			_, results[i] = f.controller.RequestReservation(ctx, request("u1", assetID, 2, 9))
		}(i, assetID)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
			continue
		}
		assert.Equal(t, errs.RuleBlockLimitExceeded, errs.RuleOf(err), "loser must hit the weekly limit, got %v", err)
	}
	assert.Equal(t, 1, winners)
	assert.Len(t, f.store.Reservations(), 3)
	assert.Zero(t, f.store.HeldLocks())
}
