package quota

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
)

// DefaultWeeklyLimit is the number of active reservations allowed per category per ISO week
const DefaultWeeklyLimit = 3

// Usage is a user's position against the weekly limit for one category
type Usage struct {
	Category  string
	Used      int
	Remaining int
	Limit     int
}

// CanReserve reports whether another reservation fits within the limit
func (u Usage) CanReserve() bool {
	return u.Used < u.Limit
}

// Enforcer caps a user's active reservations per category per ISO week
type Enforcer struct {
	uow      persistence.UnitOfWork
	calendar *calendar.Calendar
	limit    int
}

// NewEnforcer creates a quota enforcer. A non-positive limit uses DefaultWeeklyLimit.
func NewEnforcer(uow persistence.UnitOfWork, cal *calendar.Calendar, limit int) *Enforcer {
	if limit <= 0 {
		limit = DefaultWeeklyLimit
	}
	return &Enforcer{uow: uow, calendar: cal, limit: limit}
}

// Limit returns the configured weekly limit
func (e *Enforcer) Limit() int {
	return e.limit
}

// CountThisWeek counts the user's active reservations in category whose start
// falls in the ISO week containing ref
func (e *Enforcer) CountThisWeek(ctx context.Context, userID, category string, ref time.Time) (int, error) {
	from, to := e.calendar.WeekBounds(ref)
	return e.uow.GetReservationRepository(ctx).Count(ctx, persistence.ReservationFilter{
		UserID:      userID,
		Category:    category,
		StatusIn:    entity.ActiveStatuses,
		StartFrom:   from,
		StartBefore: to,
	})
}

// Check rejects with a BLOCK_LIMIT_EXCEEDED conflict when the user already
// holds the weekly limit in category for ref's week
func (e *Enforcer) Check(ctx context.Context, userID, category string, ref time.Time) error {
	used, err := e.CountThisWeek(ctx, userID, category, ref)
	if err != nil {
		return err
	}
	if used >= e.limit {
		return errs.NewWeeklyLimitError(category, used, e.limit)
	}
	return nil
}

// Usage returns the user's weekly position for one category
func (e *Enforcer) Usage(ctx context.Context, userID, category string, ref time.Time) (Usage, error) {
	used, err := e.CountThisWeek(ctx, userID, category, ref)
	if err != nil {
		return Usage{}, err
	}
	return e.usage(category, used), nil
}

// UsageByCategory returns the weekly position for every category the user has
// active reservations in during ref's week
func (e *Enforcer) UsageByCategory(ctx context.Context, userID string, ref time.Time) (map[string]Usage, error) {
	from, to := e.calendar.WeekBounds(ref)
	reservations, err := e.uow.GetReservationRepository(ctx).Query(ctx, persistence.ReservationFilter{
		UserID:      userID,
		StatusIn:    entity.ActiveStatuses,
		StartFrom:   from,
		StartBefore: to,
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, r := range reservations {
		counts[r.Category]++
	}
	usage := make(map[string]Usage, len(counts))
	for category, used := range counts {
		usage[category] = e.usage(category, used)
	}
	return usage, nil
}

func (e *Enforcer) usage(category string, used int) Usage {
	return Usage{
		Category:  category,
		Used:      used,
		Remaining: max(0, e.limit-used),
		Limit:     e.limit,
	}
}
