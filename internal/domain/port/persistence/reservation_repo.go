package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
)

// ReservationFilter selects reservations. Zero-valued fields do not constrain the query.
type ReservationFilter struct {
	AssetID  uint64
	UserID   string
	Category string
	StatusIn []entity.ReservationStatus

	// StartFrom and StartBefore bound StartTime to [StartFrom, StartBefore)
	StartFrom   time.Time
	StartBefore time.Time

	// OverlapStart and OverlapEnd select reservations whose window intersects
	// [OverlapStart, OverlapEnd] with both ends inclusive
	OverlapStart time.Time
	OverlapEnd   time.Time

	Limit  int
	Offset int
}

// ReservationRepository is the persistence port for reservations
type ReservationRepository interface {
	// Query returns reservations matching the filter ordered by start time
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Query(ctx context.Context, filter ReservationFilter) ([]*entity.Reservation, error)

	// Count returns the number of reservations matching the filter
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Count(ctx context.Context, filter ReservationFilter) (int, error)

	// Create stores a new reservation
	//
	// Possible errors:
	// - ConflictError(ASSET_UNAVAILABLE): If the storage-level overlap guard trips
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, reservation *entity.Reservation) error

	// GetByID loads one reservation
	//
	// Possible errors:
	// - ErrReservationNotFound: If no reservation has the id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

	// UpdateStatus moves a reservation from one status to another and returns the updated row
	//
	// Possible errors:
	// - ErrReservationNotFound: If no reservation has the id
	// - ErrStaleStatus: If the current status is not from
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.ReservationStatus, at time.Time) (*entity.Reservation, error)
}
