package reservation

import (
	"context"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/quota"
)

// DefaultListLimit caps admin listings without an explicit limit
const DefaultListLimit = 500

// ReservationUseCase serves read-only reservation views
type ReservationUseCase struct {
	uow          persistence.UnitOfWork
	assets       persistence.AssetRepository
	quota        *quota.Enforcer
	timeProvider coreport.TimeProvider
}

var _ usecase.ReservationQueryUseCase = (*ReservationUseCase)(nil)

// NewReservationUseCase creates a ReservationUseCase
func NewReservationUseCase(
	uow persistence.UnitOfWork,
	assets persistence.AssetRepository,
	quotaEnforcer *quota.Enforcer,
	timeProvider coreport.TimeProvider,
) *ReservationUseCase {
	return &ReservationUseCase{
		uow:          uow,
		assets:       assets,
		quota:        quotaEnforcer,
		timeProvider: timeProvider,
	}
}

// GetUserReservations splits the user's reservations into upcoming and past and
// reports weekly usage per category for the current ISO week
func (u *ReservationUseCase) GetUserReservations(ctx context.Context, userID string) (*usecase.UserReservations, error) {
	if _, err := u.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.NewNotFoundError("user", userID, errs.ErrUserNotFound)
		}
		return nil, err
	}

	reservations, err := u.uow.GetReservationRepository(ctx).Query(ctx, persistence.ReservationFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()
	assets := make(map[uint64]*entity.Asset)
	result := &usecase.UserReservations{
		Upcoming:      []usecase.ReservationView{},
		Past:          []usecase.ReservationView{},
		CategoryUsage: map[string]usecase.CategoryUsage{},
	}
	for _, r := range reservations {
		view := usecase.ReservationView{Reservation: r}
		asset, ok := assets[r.AssetID]
		if !ok {
			// A reservation may outlive its mirrored asset
			asset, err = u.assets.GetByID(ctx, r.AssetID)
			if err != nil && !errs.IsNotFoundError(err) {
				return nil, err
			}
			assets[r.AssetID] = asset
		}
		if asset != nil {
			view.AssetTag = asset.Tag
			view.ModelName = asset.Name
		}

		if r.IsUpcoming(now) {
			result.Upcoming = append(result.Upcoming, view)
		} else {
			result.Past = append(result.Past, view)
		}
	}

	usage, err := u.quota.UsageByCategory(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	for category, us := range usage {
		result.CategoryUsage[category] = usecase.CategoryUsage{
			BlocksUsed:      us.Used,
			BlocksRemaining: us.Remaining,
			CanReserve:      us.CanReserve(),
		}
	}
	return result, nil
}

// ListReservations returns reservations matching filter for staff listings and exports
func (u *ReservationUseCase) ListReservations(ctx context.Context, filter persistence.ReservationFilter) ([]*entity.Reservation, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	return u.uow.GetReservationRepository(ctx).Query(ctx, filter)
}
