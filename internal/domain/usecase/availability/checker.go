package availability

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
)

// NoBuffer checks the requested window as-is
const NoBuffer time.Duration = 0

// Checker decides whether an asset is free for a window.
// Repositories are resolved from the context so checks run inside the caller's transaction.
type Checker struct {
	uow persistence.UnitOfWork
}

// NewChecker creates an availability checker
func NewChecker(uow persistence.UnitOfWork) *Checker {
	return &Checker{uow: uow}
}

// Conflicts returns active reservations on the asset overlapping the window
// widened by buffer on both ends. Overlap is inclusive at both endpoints.
func (c *Checker) Conflicts(ctx context.Context, assetID uint64, window calendar.Window, buffer time.Duration) ([]*entity.Reservation, error) {
	checked := window.Widen(buffer)
	return c.uow.GetReservationRepository(ctx).Query(ctx, persistence.ReservationFilter{
		AssetID:      assetID,
		StatusIn:     entity.ActiveStatuses,
		OverlapStart: checked.Start,
		OverlapEnd:   checked.End,
	})
}

// IsAvailable reports whether no active reservation on the asset overlaps the buffered window
func (c *Checker) IsAvailable(ctx context.Context, assetID uint64, window calendar.Window, buffer time.Duration) (bool, error) {
	conflicts, err := c.Conflicts(ctx, assetID, window, buffer)
	if err != nil {
		return false, err
	}
	return len(conflicts) == 0, nil
}

// FreeWindows marks each window as free or taken using reservations already
// loaded for the asset. Used to render availability calendars without one query per block.
func FreeWindows(existing []*entity.Reservation, windows []calendar.Window, buffer time.Duration) []bool {
	free := make([]bool, len(windows))
	for i, w := range windows {
		checked := w.Widen(buffer)
		free[i] = true
		for _, r := range existing {
			if r.Status.IsActive() && r.Overlaps(checked.Start, checked.End) {
				free[i] = false
				break
			}
		}
	}
	return free
}
