package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
)

// BlockAvailability describes one offered block on one day
type BlockAvailability struct {
	Block     string
	StartTime time.Time
	EndTime   time.Time
	Available bool
}

// DayAvailability lists the blocks offered on a date
type DayAvailability struct {
	Date      string // YYYY-MM-DD in the calendar zone
	DayOfWeek string
	Blocks    []BlockAvailability
}

// AssetAvailability is the availability calendar for one asset
type AssetAvailability struct {
	Asset *entity.Asset
	Days  []DayAvailability
	// Usage is the requesting user's quota position for the asset's category, nil when anonymous
	Usage *CategoryUsage
}

// AssetStatus is an asset with its current custody state
type AssetStatus struct {
	Asset *entity.Asset
	// CheckedOut is set while a CHECKED_OUT reservation on the asset has not ended
	CheckedOut bool
}

// CategoryTotals counts the assets of one category by custody state
type CategoryTotals struct {
	Category   string
	Total      int
	Available  int
	CheckedOut int
}

// UtilizationRate is the checked out share as a whole percentage
func (c CategoryTotals) UtilizationRate() int {
	if c.Total == 0 {
		return 0
	}
	return (c.CheckedOut*100 + c.Total/2) / c.Total
}

// CatalogSummary is the custody state of the whole catalog
type CatalogSummary struct {
	Assets     []AssetStatus
	Categories []CategoryTotals
	Total      int
	Available  int
	CheckedOut int
}

// AssetSchedule is one asset and its active reservations inside a calendar range
type AssetSchedule struct {
	AssetStatus
	Reservations []*entity.Reservation
}

// EquipmentCalendar lists active reservations of every asset over a date range
type EquipmentCalendar struct {
	Start             time.Time
	End               time.Time
	Assets            []AssetSchedule
	Categories        []CategoryTotals
	TotalReservations int
}

// CatalogUseCase serves the equipment catalog
type CatalogUseCase interface {
	ListEquipment(ctx context.Context, category string) ([]*entity.Asset, error)
	GetAvailability(ctx context.Context, assetID uint64, days int, userID string) (*AssetAvailability, error)
	// Summary reports per category how many assets are available or checked out
	Summary(ctx context.Context) (*CatalogSummary, error)
	// Calendar returns active reservations of every asset, optionally of one
	// category, that intersect [start, end]. Zero bounds select the defaults.
	Calendar(ctx context.Context, category string, start, end time.Time) (*EquipmentCalendar, error)
	// SyncFromInventory mirrors inventory hardware into the local asset table
	SyncFromInventory(ctx context.Context) (int, error)
}
