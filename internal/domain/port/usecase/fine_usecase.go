package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
)

// IssueFineRequest is a staff request to fine a user
type IssueFineRequest struct {
	UserID        string
	ReservationID *uuid.UUID
	Reason        string
	Amount        string
}

// OutstandingFines lists unpaid fines and their total
type OutstandingFines struct {
	Fines      []*entity.Fine
	TotalCents int64
}

// FineUseCase manages fines and the outstanding-balance flag
type FineUseCase interface {
	IssueFine(ctx context.Context, req IssueFineRequest) (*entity.Fine, error)
	ListOutstanding(ctx context.Context, userID string) (*OutstandingFines, error)
	PayFine(ctx context.Context, id uuid.UUID) (*entity.Fine, error)
}
