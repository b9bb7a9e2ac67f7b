package dto

import (
	"time"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
)

// IssueFineRequest is the body of POST /admin/fines
type IssueFineRequest struct {
	UserID        string `json:"userId" binding:"required"`
	ReservationID string `json:"reservationId" binding:"omitempty,uuid"`
	Reason        string `json:"reason" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
}

// FineResponse represents a fine
type FineResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	ReservationID *string    `json:"reservationId,omitempty"`
	Reason        string     `json:"reason"`
	Amount        string     `json:"amount"`
	Paid          bool       `json:"paid"`
	IssuedAt      time.Time  `json:"issuedAt"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

// OutstandingFinesResponse lists unpaid fines and the total owed
type OutstandingFinesResponse struct {
	Fines []FineResponse `json:"fines"`
	Total string         `json:"total"`
}

// NewFineResponse maps a fine
func NewFineResponse(f *entity.Fine) FineResponse {
	resp := FineResponse{
		ID:       f.ID.String(),
		UserID:   f.UserID,
		Reason:   f.Reason,
		Amount:   f.Amount(),
		Paid:     f.Paid,
		IssuedAt: f.IssuedAt,
		PaidAt:   f.PaidAt,
	}
	if f.ReservationID != nil {
		id := f.ReservationID.String()
		resp.ReservationID = &id
	}
	return resp
}

// NewOutstandingFinesResponse maps the outstanding fines listing
func NewOutstandingFinesResponse(o *usecase.OutstandingFines) OutstandingFinesResponse {
	resp := OutstandingFinesResponse{
		Fines: make([]FineResponse, 0, len(o.Fines)),
		Total: entity.FormatCents(o.TotalCents),
	}
	for _, f := range o.Fines {
		resp.Fines = append(resp.Fines, NewFineResponse(f))
	}
	return resp
}
