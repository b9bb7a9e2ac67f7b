package events

import (
	"context"
	"time"
)

// EventType names a reservation lifecycle event
type EventType string

// Event types
const (
	EventReservationCreated    EventType = "reservation.created"
	EventReservationConfirmed  EventType = "reservation.confirmed"
	EventReservationCheckedOut EventType = "reservation.checked_out"
	EventReservationCompleted  EventType = "reservation.completed"
	EventReservationCancelled  EventType = "reservation.cancelled"
)

// ReservationEvent is published after a reservation change commits
type ReservationEvent struct {
	Type          EventType `json:"type"`
	ReservationID string    `json:"reservationId"`
	AssetID       uint64    `json:"assetId"`
	UserID        string    `json:"userId"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Publisher delivers reservation events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
	Close() error
}
