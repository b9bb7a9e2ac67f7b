package lifecycle

import (
	"context"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/events"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/inventory"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
)

// Manager is the only writer of reservation status
type Manager struct {
	uow          persistence.UnitOfWork
	inventory    inventory.Client
	publisher    events.Publisher
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	initialStatus entity.ReservationStatus
}

// NewManager creates a lifecycle manager. When requireApproval is set new
// reservations start PENDING and need staff confirmation; otherwise they start CONFIRMED.
func NewManager(
	uow persistence.UnitOfWork,
	inventoryClient inventory.Client,
	publisher events.Publisher,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	requireApproval bool,
) *Manager {
	initial := entity.StatusConfirmed
	if requireApproval {
		initial = entity.StatusPending
	}
	return &Manager{
		uow:           uow,
		inventory:     inventoryClient,
		publisher:     publisher,
		metrics:       metrics,
		timeProvider:  timeProvider,
		logger:        logger,
		initialStatus: initial,
	}
}

// InitialStatus returns the status new reservations are created in
func (m *Manager) InitialStatus() entity.ReservationStatus {
	return m.initialStatus
}

// Create persists an admitted reservation through the transaction carried by ctx.
// Callers must have run every admission check in the same transaction.
func (m *Manager) Create(ctx context.Context, assetID uint64, userID, category string, window calendar.Window) (*entity.Reservation, error) {
	reservation, err := entity.NewReservation(assetID, userID, category, window.Start, window.End, m.initialStatus, m.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := m.uow.GetReservationRepository(ctx).Create(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// Created reports a committed creation to metrics and subscribers
func (m *Manager) Created(ctx context.Context, reservation *entity.Reservation) {
	m.metrics.ReservationTransition("NONE", string(reservation.Status))
	m.logger.Info("Reservation created", map[string]any{
		"reservation_id": reservation.ID.String(),
		"asset_id":       reservation.AssetID,
		"user_id":        reservation.UserID,
		"status":         string(reservation.Status),
	})
	m.publish(ctx, events.EventReservationCreated, reservation)
}

// publish delivers an event. Failures are logged and never fail the operation.
func (m *Manager) publish(ctx context.Context, eventType events.EventType, reservation *entity.Reservation) {
	event := events.ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID.String(),
		AssetID:       reservation.AssetID,
		UserID:        reservation.UserID,
		Category:      reservation.Category,
		Status:        string(reservation.Status),
		OccurredAt:    m.timeProvider.Now(),
	}
	if err := m.publisher.Publish(ctx, event); err != nil {
		m.logger.Warn("Failed to publish reservation event", map[string]any{
			"reservation_id": event.ReservationID,
			"type":           string(eventType),
			"error":          err.Error(),
		})
	}
}
