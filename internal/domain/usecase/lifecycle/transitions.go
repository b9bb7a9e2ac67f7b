package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/events"
)

// compensationTimeout bounds a compensating inventory call
const compensationTimeout = 30 * time.Second

// allStatuses is used to report which source states an operation accepts
var allStatuses = []entity.ReservationStatus{
	entity.StatusPending,
	entity.StatusConfirmed,
	entity.StatusCheckedOut,
	entity.StatusCompleted,
	entity.StatusCancelled,
}

// transition describes one lifecycle operation
type transition struct {
	operation string
	to        entity.ReservationStatus
	event     events.EventType

	// guard runs after the source state check and before any side effect
	guard func(r *entity.Reservation) error
	// external performs the inventory side effect that must precede the local update
	external func(ctx context.Context, r *entity.Reservation, u *entity.User) error
	// compensate undoes external when the local update fails afterwards
	compensate func(ctx context.Context, r *entity.Reservation, u *entity.User) error
}

// Confirm moves PENDING to CONFIRMED
func (m *Manager) Confirm(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return m.apply(ctx, id, transition{
		operation: "confirm",
		to:        entity.StatusConfirmed,
		event:     events.EventReservationConfirmed,
	})
}

// Checkout moves CONFIRMED to CHECKED_OUT after the inventory system records custody.
// An expired reservation cannot be checked out. If the inventory call fails the
// reservation stays CONFIRMED.
func (m *Manager) Checkout(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return m.apply(ctx, id, transition{
		operation: "checkout",
		to:        entity.StatusCheckedOut,
		event:     events.EventReservationCheckedOut,
		guard: func(r *entity.Reservation) error {
			if r.IsExpired(m.timeProvider.Now()) {
				return &errs.StateTransitionError{
					ReservationID: r.ID.String(),
					Operation:     "checkout",
					Current:       string(r.Status),
					Err:           errs.ErrReservationExpired,
				}
			}
			return nil
		},
		external:   m.inventoryCheckout,
		compensate: m.inventoryCheckin,
	})
}

// Checkin moves CHECKED_OUT to COMPLETED after the inventory system records the return
func (m *Manager) Checkin(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return m.apply(ctx, id, transition{
		operation:  "checkin",
		to:         entity.StatusCompleted,
		event:      events.EventReservationCompleted,
		external:   m.inventoryCheckin,
		compensate: m.inventoryCheckout,
	})
}

// Cancel moves PENDING or CONFIRMED to CANCELLED. A nil actor skips the ownership check.
func (m *Manager) Cancel(ctx context.Context, id uuid.UUID, actor *entity.User) (*entity.Reservation, error) {
	return m.apply(ctx, id, transition{
		operation: "cancel",
		to:        entity.StatusCancelled,
		event:     events.EventReservationCancelled,
		guard: func(r *entity.Reservation) error {
			if actor != nil && actor.ID != r.UserID && !actor.Role.IsStaff() {
				return errs.NewForbiddenError(errs.RuleInsufficientRole, "only the owner or staff may cancel a reservation")
			}
			return nil
		},
	})
}

func (m *Manager) apply(ctx context.Context, id uuid.UUID, t transition) (*entity.Reservation, error) {
	repo := m.uow.GetReservationRepository(ctx)

	// Load the reservation
	reservation, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			return nil, errs.NewNotFoundError("reservation", id.String(), errs.ErrReservationNotFound)
		}
		return nil, err
	}

	// Check the source state
	from := reservation.Status
	if !from.CanTransitionTo(t.to) {
		return nil, errs.NewStateTransitionError(id.String(), t.operation, string(from), expectedSources(t.to)...)
	}
	if t.guard != nil {
		if err := t.guard(reservation); err != nil {
			return nil, err
		}
	}

	// Perform the external side effect first
	var user *entity.User
	if t.external != nil {
		user, err = m.uow.GetUserRepository(ctx).GetByID(ctx, reservation.UserID)
		if err != nil {
			return nil, err
		}
		if err := t.external(ctx, reservation, user); err != nil {
			m.logger.Warn("Inventory call failed, reservation left unchanged", map[string]any{
				"reservation_id": id.String(),
				"operation":      t.operation,
				"status":         string(from),
				"error":          err.Error(),
			})
			return nil, err
		}
	}

	// Record the transition locally
	updated, err := repo.UpdateStatus(ctx, id, from, t.to, m.timeProvider.Now())
	if err != nil {
		m.logger.Error("Failed to update reservation status", map[string]any{
			"reservation_id": id.String(),
			"operation":      t.operation,
			"from":           string(from),
			"to":             string(t.to),
			"error":          err.Error(),
		})
		stale := errors.Is(err, errs.ErrStaleStatus)
		if t.compensate != nil && !(stale && m.reachedBy(ctx, id, t.to)) {
			m.runCompensation(ctx, t, reservation, user)
		}
		if stale {
			return nil, errs.NewConflictError(errs.RuleConcurrentRequest, "reservation was modified concurrently, please retry", map[string]any{
				"reservation_id": id.String(),
			})
		}
		return nil, err
	}

	m.metrics.ReservationTransition(string(from), string(t.to))
	m.logger.Info("Reservation status changed", map[string]any{
		"reservation_id": id.String(),
		"operation":      t.operation,
		"from":           string(from),
		"to":             string(t.to),
	})
	m.publish(ctx, t.event, updated)

	return updated, nil
}

// reachedBy reports whether a competing request already moved the reservation
// to target or past it. The inventory side effect then belongs to that request
// and must not be undone.
func (m *Manager) reachedBy(ctx context.Context, id uuid.UUID, target entity.ReservationStatus) bool {
	current, err := m.uow.GetReservationRepository(ctx).GetByID(ctx, id)
	if err != nil {
		m.logger.Warn("Failed to reload reservation after concurrent change", map[string]any{
			"reservation_id": id.String(),
			"error":          err.Error(),
		})
		return false
	}
	if current.Status == target || target.CanTransitionTo(current.Status) {
		m.logger.Info("Concurrent request completed the same transition, skipping compensation", map[string]any{
			"reservation_id": id.String(),
			"status":         string(current.Status),
		})
		return true
	}
	return false
}

func (m *Manager) runCompensation(ctx context.Context, t transition, r *entity.Reservation, u *entity.User) {
	// Detached from request cancellation
	compCtx, cancel := m.timeProvider.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if err := t.compensate(compCtx, r, u); err != nil {
		m.logger.Error("Compensating inventory call failed, manual reconciliation required", map[string]any{
			"reservation_id": r.ID.String(),
			"operation":      t.operation,
			"asset_id":       r.AssetID,
			"error":          err.Error(),
		})
		return
	}
	m.logger.Warn("Inventory change compensated after local update failure", map[string]any{
		"reservation_id": r.ID.String(),
		"operation":      t.operation,
		"asset_id":       r.AssetID,
	})
}

func (m *Manager) inventoryCheckout(ctx context.Context, r *entity.Reservation, u *entity.User) error {
	err := m.inventory.Checkout(ctx, r.AssetID, u.ExternalID, r.EndTime)
	m.metrics.InventoryCall("checkout", result(err))
	return asExternal("checkout", err)
}

func (m *Manager) inventoryCheckin(ctx context.Context, r *entity.Reservation, _ *entity.User) error {
	err := m.inventory.Checkin(ctx, r.AssetID)
	m.metrics.InventoryCall("checkin", result(err))
	return asExternal("checkin", err)
}

// asExternal makes every inventory failure an ExternalServiceError
func asExternal(operation string, err error) error {
	if err == nil || errs.IsExternalServiceError(err) {
		return err
	}
	return errs.NewExternalServiceError(operation, nil, err)
}

func expectedSources(to entity.ReservationStatus) []string {
	var out []string
	for _, s := range allStatuses {
		if s.CanTransitionTo(to) {
			out = append(out, string(s))
		}
	}
	return out
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
