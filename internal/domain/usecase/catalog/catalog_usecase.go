package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/inventory"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/availability"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/quota"
)

// Availability window limits in days
const (
	DefaultAvailabilityDays = 30
	MaxAvailabilityDays     = 60

	DefaultCalendarDays = 30
	MaxCalendarDays     = 92
)

// CatalogUseCase serves equipment listings and availability calendars
type CatalogUseCase struct {
	assets       persistence.AssetRepository
	uow          persistence.UnitOfWork
	inventory    inventory.Client
	calendar     *calendar.Calendar
	quota        *quota.Enforcer
	buffer       time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.CatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase creates a CatalogUseCase. buffer must match the admission buffer
// so the calendar never offers a block that admission would reject.
func NewCatalogUseCase(
	assets persistence.AssetRepository,
	uow persistence.UnitOfWork,
	inventoryClient inventory.Client,
	cal *calendar.Calendar,
	quotaEnforcer *quota.Enforcer,
	buffer time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		assets:       assets,
		uow:          uow,
		inventory:    inventoryClient,
		calendar:     cal,
		quota:        quotaEnforcer,
		buffer:       buffer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListEquipment returns assets, optionally filtered by category
func (u *CatalogUseCase) ListEquipment(ctx context.Context, category string) ([]*entity.Asset, error) {
	return u.assets.List(ctx, category)
}

// GetAvailability returns every block offered over the next days days starting
// tomorrow, with the asset's availability for each. When userID is set the
// user's weekly usage for the asset's category is included.
func (u *CatalogUseCase) GetAvailability(ctx context.Context, assetID uint64, days int, userID string) (*usecase.AssetAvailability, error) {
	if days <= 0 {
		days = DefaultAvailabilityDays
	}
	if days > MaxAvailabilityDays {
		return nil, errs.NewValidationError("days", fmt.Sprintf("must be at most %d", MaxAvailabilityDays))
	}

	asset, err := u.assets.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, errs.ErrAssetNotFound) {
			return nil, errs.NewNotFoundError("asset", fmt.Sprint(assetID), errs.ErrAssetNotFound)
		}
		return nil, err
	}

	now := u.timeProvider.Now()
	today := u.calendar.StartOfDay(now)
	horizon := today.AddDate(0, 0, days+1)

	// Load every active reservation that could touch the horizon once
	existing, err := u.uow.GetReservationRepository(ctx).Query(ctx, persistence.ReservationFilter{
		AssetID:      asset.ID,
		StatusIn:     entity.ActiveStatuses,
		OverlapStart: today.Add(-u.buffer),
		OverlapEnd:   horizon.Add(u.buffer),
	})
	if err != nil {
		return nil, err
	}

	result := &usecase.AssetAvailability{Asset: asset}
	for i := 1; i <= days; i++ {
		date := today.AddDate(0, 0, i)
		ids := u.calendar.BlocksOfferedOn(date)
		if len(ids) == 0 {
			continue
		}

		windows := make([]calendar.Window, 0, len(ids))
		for _, id := range ids {
			w, err := u.calendar.ResolveBlockWindow(date, id)
			if err != nil {
				return nil, err
			}
			windows = append(windows, w)
		}
		free := availability.FreeWindows(existing, windows, u.buffer)

		day := usecase.DayAvailability{
			Date:      date.Format(time.DateOnly),
			DayOfWeek: date.Weekday().String()[:3],
		}
		for j, id := range ids {
			day.Blocks = append(day.Blocks, usecase.BlockAvailability{
				Block:     string(id),
				StartTime: windows[j].Start,
				EndTime:   windows[j].End,
				Available: free[j],
			})
		}
		result.Days = append(result.Days, day)
	}

	if userID != "" {
		usage, err := u.quota.Usage(ctx, userID, asset.Category, now)
		if err != nil {
			return nil, err
		}
		result.Usage = &usecase.CategoryUsage{
			BlocksUsed:      usage.Used,
			BlocksRemaining: usage.Remaining,
			CanReserve:      usage.CanReserve(),
		}
	}

	return result, nil
}

// Summary reports the current custody state of every asset
func (u *CatalogUseCase) Summary(ctx context.Context) (*usecase.CatalogSummary, error) {
	assets, err := u.assets.List(ctx, "")
	if err != nil {
		return nil, err
	}
	statuses, err := u.custody(ctx, assets)
	if err != nil {
		return nil, err
	}

	summary := &usecase.CatalogSummary{
		Assets:     statuses,
		Categories: totalsByCategory(statuses),
		Total:      len(statuses),
	}
	for _, s := range statuses {
		if s.CheckedOut {
			summary.CheckedOut++
		}
	}
	summary.Available = summary.Total - summary.CheckedOut
	return summary, nil
}

// Calendar lists the active reservations of every asset intersecting [start, end].
// A zero start means today in the calendar zone and a zero end DefaultCalendarDays later.
func (u *CatalogUseCase) Calendar(ctx context.Context, category string, start, end time.Time) (*usecase.EquipmentCalendar, error) {
	if start.IsZero() {
		start = u.calendar.StartOfDay(u.timeProvider.Now())
	}
	if end.IsZero() {
		end = start.AddDate(0, 0, DefaultCalendarDays)
	}
	if !end.After(start) {
		return nil, errs.NewValidationError("endDate", "must be after startDate")
	}
	if end.Sub(start) > MaxCalendarDays*24*time.Hour {
		return nil, errs.NewValidationError("endDate", fmt.Sprintf("range must be at most %d days", MaxCalendarDays))
	}

	assets, err := u.assets.List(ctx, category)
	if err != nil {
		return nil, err
	}
	statuses, err := u.custody(ctx, assets)
	if err != nil {
		return nil, err
	}

	reservations, err := u.uow.GetReservationRepository(ctx).Query(ctx, persistence.ReservationFilter{
		Category:     category,
		StatusIn:     entity.ActiveStatuses,
		OverlapStart: start,
		OverlapEnd:   end,
	})
	if err != nil {
		return nil, err
	}
	byAsset := make(map[uint64][]*entity.Reservation)
	for _, r := range reservations {
		byAsset[r.AssetID] = append(byAsset[r.AssetID], r)
	}

	result := &usecase.EquipmentCalendar{
		Start:      start,
		End:        end,
		Assets:     make([]usecase.AssetSchedule, 0, len(statuses)),
		Categories: totalsByCategory(statuses),
	}
	for _, s := range statuses {
		schedule := usecase.AssetSchedule{AssetStatus: s, Reservations: byAsset[s.Asset.ID]}
		result.TotalReservations += len(schedule.Reservations)
		result.Assets = append(result.Assets, schedule)
	}
	return result, nil
}

// custody marks the assets held under a CHECKED_OUT reservation that has not ended
func (u *CatalogUseCase) custody(ctx context.Context, assets []*entity.Asset) ([]usecase.AssetStatus, error) {
	held, err := u.uow.GetReservationRepository(ctx).Query(ctx, persistence.ReservationFilter{
		StatusIn: []entity.ReservationStatus{entity.StatusCheckedOut},
	})
	if err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()
	out := make(map[uint64]bool, len(held))
	for _, r := range held {
		if !r.EndTime.Before(now) {
			out[r.AssetID] = true
		}
	}

	statuses := make([]usecase.AssetStatus, 0, len(assets))
	for _, a := range assets {
		statuses = append(statuses, usecase.AssetStatus{Asset: a, CheckedOut: out[a.ID]})
	}
	return statuses, nil
}

func totalsByCategory(statuses []usecase.AssetStatus) []usecase.CategoryTotals {
	index := make(map[string]int)
	var totals []usecase.CategoryTotals
	for _, s := range statuses {
		i, ok := index[s.Asset.Category]
		if !ok {
			i = len(totals)
			index[s.Asset.Category] = i
			totals = append(totals, usecase.CategoryTotals{Category: s.Asset.Category})
		}
		totals[i].Total++
		if s.CheckedOut {
			totals[i].CheckedOut++
		} else {
			totals[i].Available++
		}
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals
}

// SyncFromInventory mirrors inventory hardware into the asset table and
// returns the number of assets written. Course restrictions are kept.
func (u *CatalogUseCase) SyncFromInventory(ctx context.Context) (int, error) {
	hardware, err := u.inventory.ListHardware(ctx)
	if err != nil {
		u.logger.Error("Failed to list inventory hardware", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}

	now := u.timeProvider.Now()
	assets := make([]*entity.Asset, 0, len(hardware))
	for _, h := range hardware {
		if h.ID == 0 || h.Tag == "" {
			u.logger.Warn("Skipping inventory item without id or tag", map[string]any{
				"hardware_id": h.ID,
				"tag":         h.Tag,
			})
			continue
		}
		name := h.Model
		if name == "" {
			name = h.Name
		}
		assets = append(assets, &entity.Asset{
			ID:        h.ID,
			Tag:       h.Tag,
			Name:      name,
			Category:  h.Category,
			ImageURL:  h.ImageURL,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := u.assets.Upsert(ctx, assets); err != nil {
		return 0, err
	}

	u.logger.Info("Inventory synchronised", map[string]any{
		"received": len(hardware),
		"written":  len(assets),
	})
	return len(assets), nil
}
