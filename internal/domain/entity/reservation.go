package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

// Reservation statuses
const (
	StatusPending    ReservationStatus = "PENDING"
	StatusConfirmed  ReservationStatus = "CONFIRMED"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
	StatusCompleted  ReservationStatus = "COMPLETED"
	StatusCancelled  ReservationStatus = "CANCELLED"
)

// ActiveStatuses are the statuses that hold a claim on an asset and count toward quota
var ActiveStatuses = []ReservationStatus{StatusPending, StatusConfirmed, StatusCheckedOut}

// transitions lists the legal next states for each status.
// Every edge moves forward; terminal states have no edges.
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {StatusCompleted},
}

// ParseReservationStatus converts a string into a known status
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.Valid() {
		return "", errs.NewValidationError("status", fmt.Sprintf("unknown reservation status %q", s))
	}
	return status, nil
}

// Valid reports whether s is a known status
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedOut, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether a reservation in this status blocks its asset
func (s ReservationStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation is a claim on one asset for one contiguous time window
type Reservation struct {
	ID        uuid.UUID
	AssetID   uint64
	UserID    string
	Category  string // copied from the asset at creation time
	StartTime time.Time
	EndTime   time.Time
	Status    ReservationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReservation creates a reservation in the given initial status
func NewReservation(
	assetID uint64,
	userID string,
	category string,
	start, end time.Time,
	initial ReservationStatus,
	timeProvider coreport.TimeProvider,
) (*Reservation, error) {
	if assetID == 0 {
		return nil, errs.NewValidationError("assetId", "must be positive")
	}
	if userID == "" {
		return nil, errs.NewValidationError("userId", "is required")
	}
	if category == "" {
		return nil, errs.NewValidationError("category", "is required")
	}
	if !start.Before(end) {
		return nil, errs.NewValidationError("window", "start must be before end")
	}
	if initial != StatusPending && initial != StatusConfirmed {
		return nil, errs.NewValidationError("status", "initial status must be PENDING or CONFIRMED")
	}

	now := timeProvider.Now()
	return &Reservation{
		ID:        uuid.New(),
		AssetID:   assetID,
		UserID:    userID,
		Category:  category,
		StartTime: start,
		EndTime:   end,
		Status:    initial,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Overlaps reports whether the reservation's window intersects [start, end].
// Both ends are inclusive, so windows that touch at an endpoint overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return !r.StartTime.After(end) && !r.EndTime.Before(start)
}

// IsExpired reports whether the reservation window has ended at now
func (r *Reservation) IsExpired(now time.Time) bool {
	return now.After(r.EndTime)
}

// IsUpcoming reports whether the reservation is still ahead of or within now
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return !r.EndTime.Before(now) && r.Status != StatusCancelled
}
