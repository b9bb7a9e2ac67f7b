package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
)

// ReservationRequest is an admission request from a user
type ReservationRequest struct {
	UserID    string
	AssetID   uint64
	Category  string // optional; must match the asset's category when set
	StartTime time.Time
	EndTime   time.Time
}

// CategoryUsage is a user's weekly quota position for one category
type CategoryUsage struct {
	BlocksUsed      int  `json:"blocksUsed"`
	BlocksRemaining int  `json:"blocksRemaining"`
	CanReserve      bool `json:"canReserve"`
}

// ReservationView joins a reservation with the asset fields shown to users
type ReservationView struct {
	*entity.Reservation
	AssetTag  string
	ModelName string
}

// UserReservations is the per-user reservation summary
type UserReservations struct {
	Upcoming      []ReservationView
	Past          []ReservationView
	CategoryUsage map[string]CategoryUsage
}

// AdmissionUseCase decides whether a reservation may be created
type AdmissionUseCase interface {
	// RequestReservation runs every admission rule in order and creates the
	// reservation when all pass. Rejections are typed errors from the errs package.
	RequestReservation(ctx context.Context, req ReservationRequest) (*entity.Reservation, error)
}

// LifecycleUseCase owns reservation status transitions
type LifecycleUseCase interface {
	Confirm(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	Checkout(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	Checkin(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	// Cancel cancels on behalf of actor, who must own the reservation or be staff
	Cancel(ctx context.Context, id uuid.UUID, actor *entity.User) (*entity.Reservation, error)
}

// ReservationQueryUseCase serves read-only reservation views
type ReservationQueryUseCase interface {
	GetUserReservations(ctx context.Context, userID string) (*UserReservations, error)
	ListReservations(ctx context.Context, filter persistence.ReservationFilter) ([]*entity.Reservation, error)
}
