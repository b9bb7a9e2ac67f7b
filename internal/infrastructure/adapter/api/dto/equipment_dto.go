package dto

import (
	"time"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
)

// AssetResponse represents an asset in the catalog
type AssetResponse struct {
	ID              uint64   `json:"id"`
	AssetTag        string   `json:"assetTag"`
	ModelName       string   `json:"modelName"`
	Category        string   `json:"category"`
	RequiredCourses []string `json:"requiredCourses"`
	ImageURL        string   `json:"imageUrl,omitempty"`
}

// BlockResponse is one offered block on one day
type BlockResponse struct {
	Block     string    `json:"block"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
}

// DayResponse lists the blocks offered on a date
type DayResponse struct {
	Date      string          `json:"date"`
	DayOfWeek string          `json:"dayOfWeek"`
	Blocks    []BlockResponse `json:"blocks"`
}

// BlockUsageResponse is the caller's weekly usage for the asset category
type BlockUsageResponse struct {
	Category string `json:"category"`
	usecase.CategoryUsage
}

// AvailabilityResponse is the availability calendar for one asset
type AvailabilityResponse struct {
	AssetID        uint64              `json:"assetId"`
	AssetTag       string              `json:"assetTag"`
	ModelName      string              `json:"modelName"`
	Category       string              `json:"category"`
	Availability   []DayResponse       `json:"availability"`
	UserBlockUsage *BlockUsageResponse `json:"userBlockUsage,omitempty"`
}

// SyncResponse reports how many assets an inventory sync upserted
type SyncResponse struct {
	Synced int `json:"synced"`
}

// NewAssetResponse maps an asset
func NewAssetResponse(a *entity.Asset) AssetResponse {
	courses := a.RequiredCourses
	if courses == nil {
		courses = []string{}
	}
	return AssetResponse{
		ID:              a.ID,
		AssetTag:        a.Tag,
		ModelName:       a.Name,
		Category:        a.Category,
		RequiredCourses: courses,
		ImageURL:        a.ImageURL,
	}
}

// NewAvailabilityResponse maps an asset availability calendar
func NewAvailabilityResponse(a *usecase.AssetAvailability) AvailabilityResponse {
	resp := AvailabilityResponse{
		AssetID:      a.Asset.ID,
		AssetTag:     a.Asset.Tag,
		ModelName:    a.Asset.Name,
		Category:     a.Asset.Category,
		Availability: make([]DayResponse, 0, len(a.Days)),
	}
	for _, day := range a.Days {
		d := DayResponse{Date: day.Date, DayOfWeek: day.DayOfWeek, Blocks: make([]BlockResponse, 0, len(day.Blocks))}
		for _, b := range day.Blocks {
			d.Blocks = append(d.Blocks, BlockResponse{
				Block:     b.Block,
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
				Available: b.Available,
			})
		}
		resp.Availability = append(resp.Availability, d)
	}
	if a.Usage != nil {
		resp.UserBlockUsage = &BlockUsageResponse{Category: a.Asset.Category, CategoryUsage: *a.Usage}
	}
	return resp
}

// AssetStatusResponse is a catalog asset with its custody state
type AssetStatusResponse struct {
	AssetResponse
	IsAvailable   bool   `json:"isAvailable"`
	CurrentStatus string `json:"currentStatus"`
}

// CategoryTotalsResponse counts one category's assets by custody state
type CategoryTotalsResponse struct {
	Category        string `json:"category"`
	Total           int    `json:"total"`
	Available       int    `json:"available"`
	CheckedOut      int    `json:"checkedOut"`
	UtilizationRate int    `json:"utilizationRate"`
}

// CatalogTotalsResponse counts the whole catalog by custody state
type CatalogTotalsResponse struct {
	TotalEquipment  int `json:"totalEquipment"`
	TotalAvailable  int `json:"totalAvailable"`
	TotalCheckedOut int `json:"totalCheckedOut"`
}

// CatalogSummaryResponse is the catalog with per category custody totals
type CatalogSummaryResponse struct {
	Catalog        []AssetStatusResponse    `json:"catalog"`
	CategoryGroups []CategoryTotalsResponse `json:"categoryGroups"`
	Summary        CatalogTotalsResponse    `json:"summary"`
}

// CalendarEntryResponse is one reservation on the equipment calendar
type CalendarEntryResponse struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	UserID    string    `json:"userId,omitempty"`
}

// AssetScheduleResponse is one asset's reservations on the equipment calendar
type AssetScheduleResponse struct {
	AssetStatusResponse
	Reservations     []CalendarEntryResponse `json:"reservations"`
	ReservationCount int                     `json:"reservationCount"`
}

// CalendarStatsResponse totals the equipment calendar
type CalendarStatsResponse struct {
	Total             int `json:"total"`
	Available         int `json:"available"`
	CheckedOut        int `json:"checkedOut"`
	TotalReservations int `json:"totalReservations"`
}

// DateRangeResponse is the range an equipment calendar covers
type DateRangeResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// EquipmentCalendarResponse lists reservations of every asset over a date range
type EquipmentCalendarResponse struct {
	Equipment     []AssetScheduleResponse  `json:"equipment"`
	Stats         CalendarStatsResponse    `json:"stats"`
	CategoryStats []CategoryTotalsResponse `json:"categoryStats"`
	DateRange     DateRangeResponse        `json:"dateRange"`
}

func newAssetStatusResponse(s usecase.AssetStatus) AssetStatusResponse {
	status := "AVAILABLE"
	if s.CheckedOut {
		status = string(entity.StatusCheckedOut)
	}
	return AssetStatusResponse{
		AssetResponse: NewAssetResponse(s.Asset),
		IsAvailable:   !s.CheckedOut,
		CurrentStatus: status,
	}
}

func newCategoryTotalsResponses(totals []usecase.CategoryTotals) []CategoryTotalsResponse {
	out := make([]CategoryTotalsResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, CategoryTotalsResponse{
			Category:        t.Category,
			Total:           t.Total,
			Available:       t.Available,
			CheckedOut:      t.CheckedOut,
			UtilizationRate: t.UtilizationRate(),
		})
	}
	return out
}

// NewCatalogSummaryResponse maps a catalog summary
func NewCatalogSummaryResponse(s *usecase.CatalogSummary) CatalogSummaryResponse {
	resp := CatalogSummaryResponse{
		Catalog:        make([]AssetStatusResponse, 0, len(s.Assets)),
		CategoryGroups: newCategoryTotalsResponses(s.Categories),
		Summary:        CatalogTotalsResponse{
			TotalEquipment:  s.Total,
			TotalAvailable:  s.Available,
			TotalCheckedOut: s.CheckedOut,
		},
	}
	for _, a := range s.Assets {
		resp.Catalog = append(resp.Catalog, newAssetStatusResponse(a))
	}
	return resp
}

// NewEquipmentCalendarResponse maps an equipment calendar. Reservation owners
// are only included when withOwners is set.
func NewEquipmentCalendarResponse(c *usecase.EquipmentCalendar, withOwners bool) EquipmentCalendarResponse {
	resp := EquipmentCalendarResponse{
		Equipment:     make([]AssetScheduleResponse, 0, len(c.Assets)),
		CategoryStats: newCategoryTotalsResponses(c.Categories),
		DateRange:     DateRangeResponse{Start: c.Start, End: c.End},
	}
	for _, a := range c.Assets {
		schedule := AssetScheduleResponse{
			AssetStatusResponse: newAssetStatusResponse(a.AssetStatus),
			Reservations:        make([]CalendarEntryResponse, 0, len(a.Reservations)),
			ReservationCount:    len(a.Reservations),
		}
		for _, r := range a.Reservations {
			entry := CalendarEntryResponse{
				ID:        r.ID.String(),
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
				Status:    string(r.Status),
			}
			if withOwners {
				entry.UserID = r.UserID
			}
			schedule.Reservations = append(schedule.Reservations, entry)
		}
		resp.Equipment = append(resp.Equipment, schedule)

		resp.Stats.Total++
		if a.CheckedOut {
			resp.Stats.CheckedOut++
		} else {
			resp.Stats.Available++
		}
	}
	resp.Stats.TotalReservations = c.TotalReservations
	return resp
}
