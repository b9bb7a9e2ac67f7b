package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/events"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
	"github.com/amirhossein-jamali/cage-reservations/internal/testutil/memory"
	coremocks "github.com/amirhossein-jamali/cage-reservations/mocks/port/core"
	eventsmocks "github.com/amirhossein-jamali/cage-reservations/mocks/port/events"
	inventorymocks "github.com/amirhossein-jamali/cage-reservations/mocks/port/inventory"
)

var (
	blockStart = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	blockEnd   = time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC)
)

type fixture struct {
	store     *memory.Store
	clock     *memory.Clock
	inventory *inventorymocks.MockClient
	publisher *memory.Publisher
	metrics   *memory.Metrics
	manager   *Manager
}

func newLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newFixture(t *testing.T, requireApproval bool) *fixture {
	clock := memory.NewClock(blockStart.Add(-24 * time.Hour))
	store := memory.NewStore(clock.Now)
	store.AddUser(&entity.User{ID: "u1", ExternalID: 42, Role: entity.RoleStudent})
	store.AddUser(&entity.User{ID: "u2", ExternalID: 43, Role: entity.RoleStudent})
	store.AddUser(&entity.User{ID: "staff", ExternalID: 7, Role: entity.RoleStaff})

	f := &fixture{
		store:     store,
		clock:     clock,
		inventory: inventorymocks.NewMockClient(t),
		publisher: &memory.Publisher{},
		metrics:   memory.NewMetrics(),
	}
	f.manager = NewManager(store, f.inventory, f.publisher, f.metrics, clock, newLogger(t), requireApproval)
	return f
}

func (f *fixture) seed(status entity.ReservationStatus) uuid.UUID {
	id := uuid.New()
	f.store.AddReservation(&entity.Reservation{
		ID:        id,
		AssetID:   1,
		UserID:    "u1",
		Category:  "Video Camera",
		StartTime: blockStart,
		EndTime:   blockEnd,
		Status:    status,
	})
	return id
}

func (f *fixture) status(t *testing.T, id uuid.UUID) entity.ReservationStatus {
	r, ok := f.store.Reservation(id)
	require.True(t, ok)
	return r.Status
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	window := calendar.Window{Start: blockStart, End: blockEnd}

	t.Run("Starts confirmed without approval step", func(t *testing.T) {
		f := newFixture(t, false)
		r, err := f.manager.Create(ctx, 1, "u1", "Video Camera", window)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, r.Status)
		assert.Equal(t, entity.StatusConfirmed, f.status(t, r.ID))
	})

	t.Run("Starts pending with approval step", func(t *testing.T) {
		f := newFixture(t, true)
		r, err := f.manager.Create(ctx, 1, "u1", "Video Camera", window)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, r.Status)
	})

	t.Run("Created publishes an event", func(t *testing.T) {
		f := newFixture(t, false)
		r, err := f.manager.Create(ctx, 1, "u1", "Video Camera", window)
		require.NoError(t, err)

		f.manager.Created(ctx, r)
		published := f.publisher.Events()
		require.Len(t, published, 1)
		assert.Equal(t, events.EventReservationCreated, published[0].Type)
		assert.Equal(t, r.ID.String(), published[0].ReservationID)
		assert.Equal(t, 1, f.metrics.Transitions["NONE->CONFIRMED"])
	})
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending to confirmed", func(t *testing.T) {
		f := newFixture(t, true)
		id := f.seed(entity.StatusPending)

		r, err := f.manager.Confirm(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, r.Status)
		assert.Equal(t, 1, f.metrics.Transitions["PENDING->CONFIRMED"])
	})

	t.Run("Already confirmed", func(t *testing.T) {
		f := newFixture(t, true)
		id := f.seed(entity.StatusConfirmed)

		_, err := f.manager.Confirm(ctx, id)
		require.Error(t, err)
		var stErr *errs.StateTransitionError
		require.True(t, errors.As(err, &stErr))
		assert.Equal(t, "CONFIRMED", stErr.Current)
		assert.Equal(t, []string{"PENDING"}, stErr.Expected)
	})

	t.Run("Unknown reservation", func(t *testing.T) {
		f := newFixture(t, true)
		_, err := f.manager.Confirm(ctx, uuid.New())
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful checkout", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusConfirmed)
		f.inventory.EXPECT().Checkout(mock.Anything, uint64(1), uint64(42), blockEnd).Return(nil).Once()

		r, err := f.manager.Checkout(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCheckedOut, r.Status)
		assert.Equal(t, entity.StatusCheckedOut, f.status(t, id))
		assert.Equal(t, 1, f.metrics.Inventory["checkout/success"])

		published := f.publisher.Events()
		require.Len(t, published, 1)
		assert.Equal(t, events.EventReservationCheckedOut, published[0].Type)
	})

	t.Run("External failure leaves reservation confirmed", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusConfirmed)
		f.inventory.EXPECT().Checkout(mock.Anything, uint64(1), uint64(42), blockEnd).
			Return(errs.NewExternalServiceError("checkout", []string{"Asset already checked out"}, nil)).Once()

		_, err := f.manager.Checkout(ctx, id)
		require.Error(t, err)
		assert.True(t, errs.IsExternalServiceError(err))
		assert.Equal(t, entity.StatusConfirmed, f.status(t, id))
		assert.Empty(t, f.publisher.Events())
		assert.Equal(t, 1, f.metrics.Inventory["checkout/error"])
	})

	t.Run("Transport error is reported as external failure", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusConfirmed)
		f.inventory.EXPECT().Checkout(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("connection refused")).Once()

		_, err := f.manager.Checkout(ctx, id)
		assert.Equal(t, errs.KindExternalService, errs.KindOf(err))
		assert.Equal(t, entity.StatusConfirmed, f.status(t, id))
	})

	t.Run("Expired reservation", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusConfirmed)
		f.clock.Set(blockEnd.Add(time.Second))

		_, err := f.manager.Checkout(ctx, id)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrReservationExpired)
		assert.Equal(t, errs.KindStateTransition, errs.KindOf(err))
		assert.Equal(t, entity.StatusConfirmed, f.status(t, id))
	})

	t.Run("At end time is not expired", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusConfirmed)
		f.clock.Set(blockEnd)
		f.inventory.EXPECT().Checkout(mock.Anything, uint64(1), uint64(42), blockEnd).Return(nil).Once()

		_, err := f.manager.Checkout(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("Local update failure compensates", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusConfirmed)
		f.inventory.EXPECT().Checkout(mock.Anything, uint64(1), uint64(42), blockEnd).Return(nil).Once()
		f.inventory.EXPECT().Checkin(mock.Anything, uint64(1)).Return(nil).Once()
		f.store.UpdateStatusErr = errs.ErrDatabaseConnection

		_, err := f.manager.Checkout(ctx, id)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, entity.StatusConfirmed, f.status(t, id))
		assert.Empty(t, f.publisher.Events())
	})

	t.Run("Concurrent status change", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusConfirmed)
		f.inventory.EXPECT().Checkout(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		f.inventory.EXPECT().Checkin(mock.Anything, uint64(1)).Return(nil).Once()
		f.store.UpdateStatusErr = errs.ErrStaleStatus

		_, err := f.manager.Checkout(ctx, id)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		assert.Equal(t, errs.RuleConcurrentRequest, errs.RuleOf(err))
	})

	t.Run("Losing a race to the same checkout keeps the asset checked out", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusConfirmed)

		var winnerErr error
		f.inventory.EXPECT().Checkout(mock.Anything, uint64(1), uint64(42), blockEnd).
			RunAndReturn(func(ctx context.Context, _ uint64, _ uint64, _ time.Time) error {
				// the competing request commits while this one is still talking to the inventory system
				_, winnerErr = f.manager.Checkout(ctx, id)
				return nil
			}).Once()
		f.inventory.EXPECT().Checkout(mock.Anything, uint64(1), uint64(42), blockEnd).Return(nil).Once()

		_, err := f.manager.Checkout(ctx, id)
		require.NoError(t, winnerErr)
		assert.Equal(t, errs.RuleConcurrentRequest, errs.RuleOf(err))
		assert.Equal(t, entity.StatusCheckedOut, f.status(t, id))
		f.inventory.AssertNotCalled(t, "Checkin", mock.Anything, mock.Anything)
		assert.Equal(t, 0, f.metrics.Inventory["checkin/success"])
	})

	t.Run("Cancelled while checking out compensates", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusConfirmed)

		f.inventory.EXPECT().Checkout(mock.Anything, uint64(1), uint64(42), blockEnd).
			RunAndReturn(func(ctx context.Context, _ uint64, _ uint64, _ time.Time) error {
				_, err := f.manager.Cancel(ctx, id, nil)
				return err
			}).Once()
		f.inventory.EXPECT().Checkin(mock.Anything, uint64(1)).Return(nil).Once()

		_, err := f.manager.Checkout(ctx, id)
		assert.Equal(t, errs.RuleConcurrentRequest, errs.RuleOf(err))
		assert.Equal(t, entity.StatusCancelled, f.status(t, id))
	})

	t.Run("Publish failure does not fail checkout", func(t *testing.T) {
		f := newFixture(t, false)
		f.publisher.Err = errors.New("broker down")
		id := f.seed(entity.StatusConfirmed)
		f.inventory.EXPECT().Checkout(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		_, err := f.manager.Checkout(ctx, id)
		assert.NoError(t, err)
	})
}

func TestCheckin(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful checkin", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusCheckedOut)
		f.inventory.EXPECT().Checkin(mock.Anything, uint64(1)).Return(nil).Once()

		r, err := f.manager.Checkin(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, r.Status)
	})

	t.Run("External failure leaves reservation checked out", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusCheckedOut)
		f.inventory.EXPECT().Checkin(mock.Anything, uint64(1)).
			Return(errs.NewExternalServiceError("checkin", []string{"Asset is not checked out"}, nil)).Once()

		_, err := f.manager.Checkin(ctx, id)
		assert.True(t, errs.IsExternalServiceError(err))
		assert.Equal(t, entity.StatusCheckedOut, f.status(t, id))
	})

	t.Run("Local update failure checks the asset out again", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusCheckedOut)
		f.inventory.EXPECT().Checkin(mock.Anything, uint64(1)).Return(nil).Once()
		f.inventory.EXPECT().Checkout(mock.Anything, uint64(1), uint64(42), blockEnd).Return(nil).Once()
		f.store.UpdateStatusErr = errs.ErrDatabaseConnection

		_, err := f.manager.Checkin(ctx, id)
		assert.Error(t, err)
		assert.Equal(t, entity.StatusCheckedOut, f.status(t, id))
	})
}

func TestCheckinReportsCompletion(t *testing.T) {
	ctx := context.Background()
	clock := memory.NewClock(blockEnd)
	store := memory.NewStore(clock.Now)
	store.AddUser(&entity.User{ID: "u1", ExternalID: 42, Role: entity.RoleStudent})
	id := uuid.New()
	store.AddReservation(&entity.Reservation{
		ID:        id,
		AssetID:   1,
		UserID:    "u1",
		Category:  "Video Camera",
		StartTime: blockStart,
		EndTime:   blockEnd,
		Status:    entity.StatusCheckedOut,
	})

	inv := inventorymocks.NewMockClient(t)
	inv.EXPECT().Checkin(mock.Anything, uint64(1)).Return(nil).Once()

	metrics := coremocks.NewMockMetrics(t)
	metrics.EXPECT().InventoryCall("checkin", "success").Once()
	metrics.EXPECT().ReservationTransition("CHECKED_OUT", "COMPLETED").Once()

	publisher := eventsmocks.NewMockPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, events.ReservationEvent{
		Type:          events.EventReservationCompleted,
		ReservationID: id.String(),
		AssetID:       1,
		UserID:        "u1",
		Category:      "Video Camera",
		Status:        "COMPLETED",
		OccurredAt:    blockEnd,
	}).Return(nil).Once()

	manager := NewManager(store, inv, publisher, metrics, clock, newLogger(t), false)
	r, err := manager.Checkin(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, r.Status)
}

func TestLifecycleMonotonicity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	id := f.seed(entity.StatusCheckedOut)

	// From CHECKED_OUT only checkin is legal
	_, err := f.manager.Checkout(ctx, id)
	assert.True(t, errs.IsStateTransitionError(err))
	_, err = f.manager.Cancel(ctx, id, nil)
	assert.True(t, errs.IsStateTransitionError(err))
	_, err = f.manager.Confirm(ctx, id)
	assert.True(t, errs.IsStateTransitionError(err))
	assert.Equal(t, entity.StatusCheckedOut, f.status(t, id))

	f.inventory.EXPECT().Checkin(mock.Anything, uint64(1)).Return(nil).Once()
	_, err = f.manager.Checkin(ctx, id)
	require.NoError(t, err)

	// COMPLETED is terminal
	_, err = f.manager.Checkin(ctx, id)
	assert.True(t, errs.IsStateTransitionError(err))
	_, err = f.manager.Cancel(ctx, id, nil)
	assert.True(t, errs.IsStateTransitionError(err))
	assert.Equal(t, entity.StatusCompleted, f.status(t, id))
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		status  entity.ReservationStatus
		actorID string
		role    entity.Role
		kind    errs.Kind
	}{
		{"Owner cancels confirmed", entity.StatusConfirmed, "u1", entity.RoleStudent, ""},
		{"Owner cancels pending", entity.StatusPending, "u1", entity.RoleStudent, ""},
		{"Staff cancels for user", entity.StatusConfirmed, "staff", entity.RoleStaff, ""},
		{"Other student is forbidden", entity.StatusConfirmed, "u2", entity.RoleStudent, errs.KindForbidden},
		{"Cancelled is terminal", entity.StatusCancelled, "u1", entity.RoleStudent, errs.KindStateTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, false)
			id := f.seed(tc.status)

			r, err := f.manager.Cancel(ctx, id, &entity.User{ID: tc.actorID, Role: tc.role})
			if tc.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, entity.StatusCancelled, r.Status)
				return
			}
			assert.Equal(t, tc.kind, errs.KindOf(err))
			assert.Equal(t, tc.status, f.status(t, id))
		})
	}

	t.Run("Expected sources are reported", func(t *testing.T) {
		f := newFixture(t, false)
		id := f.seed(entity.StatusCompleted)

		_, err := f.manager.Cancel(ctx, id, nil)
		var stErr *errs.StateTransitionError
		require.True(t, errors.As(err, &stErr))
		assert.Equal(t, []string{"PENDING", "CONFIRMED"}, stErr.Expected)
		assert.Contains(t, err.Error(), "current status COMPLETED")
	})
}
