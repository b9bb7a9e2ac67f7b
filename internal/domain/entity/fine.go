package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
)

// Fine is a monetary penalty tied to a user and optionally a reservation
type Fine struct {
	ID            uuid.UUID
	UserID        string
	ReservationID *uuid.UUID
	Reason        string
	AmountCents   int64
	Paid          bool
	IssuedAt      time.Time
	PaidAt        *time.Time
}

// NewFine creates an unpaid fine. Amount is a decimal string such as "12.50".
func NewFine(userID string, reservationID *uuid.UUID, reason, amount string, timeProvider coreport.TimeProvider) (*Fine, error) {
	if userID == "" {
		return nil, errs.NewValidationError("userId", "is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.NewValidationError("reason", "is required")
	}
	cents, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if cents == 0 {
		return nil, errs.NewValidationError("amount", "must be greater than zero")
	}

	return &Fine{
		ID:            uuid.New(),
		UserID:        userID,
		ReservationID: reservationID,
		Reason:        reason,
		AmountCents:   cents,
		IssuedAt:      timeProvider.Now(),
	}, nil
}

// Amount returns the amount formatted with two decimal places
func (f *Fine) Amount() string {
	return FormatCents(f.AmountCents)
}

// Settle marks the fine as paid
func (f *Fine) Settle(now time.Time) error {
	if f.Paid {
		return errs.NewValidationError("fine", "already paid")
	}
	f.Paid = true
	f.PaidAt = &now
	return nil
}
