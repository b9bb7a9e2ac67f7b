package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
)

// FineRepository is the persistence port for fines
type FineRepository interface {
	Create(ctx context.Context, fine *entity.Fine) error

	// GetByID returns ErrFineNotFound if absent
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Fine, error)

	// ListUnpaid returns unpaid fines, all users when userID is empty
	ListUnpaid(ctx context.Context, userID string) ([]*entity.Fine, error)

	// CountUnpaid returns the number of unpaid fines for a user
	CountUnpaid(ctx context.Context, userID string) (int, error)

	// MarkPaid settles an unpaid fine. Returns ErrFineNotFound if absent.
	MarkPaid(ctx context.Context, fine *entity.Fine) error
}
