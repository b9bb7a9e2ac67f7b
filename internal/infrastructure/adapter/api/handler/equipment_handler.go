package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/middleware"
)

// EquipmentHandler serves the equipment catalog
type EquipmentHandler struct {
	catalog usecase.CatalogUseCase
	logger  coreport.Logger
}

// NewEquipmentHandler creates a new equipment handler instance
func NewEquipmentHandler(catalog usecase.CatalogUseCase, logger coreport.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// List handles GET /equipment?category=
func (h *EquipmentHandler) List(c *gin.Context) {
	assets, err := h.catalog.ListEquipment(c.Request.Context(), c.Query("category"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		resp = append(resp, dto.NewAssetResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

// Availability handles GET /equipment/:id/availability?days=N
func (h *EquipmentHandler) Availability(c *gin.Context) {
	assetID, err := parseUint("id", c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	days, err := parseOptionalInt(c, "days")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var userID string
	if user, ok := middleware.CurrentUser(c); ok {
		userID = user.ID
	}

	availability, err := h.catalog.GetAvailability(c.Request.Context(), assetID, days, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAvailabilityResponse(availability))
}

// Summary handles GET /equipment/summary
func (h *EquipmentHandler) Summary(c *gin.Context) {
	summary, err := h.catalog.Summary(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCatalogSummaryResponse(summary))
}

// Calendar handles GET /equipment/calendar?startDate=&endDate=&category=
func (h *EquipmentHandler) Calendar(c *gin.Context) {
	start, err := parseOptionalDate(c, "startDate")
	if err != nil {
		_ = c.Error(err)
		return
	}
	end, err := parseOptionalDate(c, "endDate")
	if err != nil {
		_ = c.Error(err)
		return
	}
	category := c.Query("category")
	if category == "all" {
		category = ""
	}

	calendar, err := h.catalog.Calendar(c.Request.Context(), category, start, end)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.NewEquipmentCalendarResponse(calendar, user != nil && user.Role.IsStaff()))
}

// Sync handles POST /admin/assets/sync
func (h *EquipmentHandler) Sync(c *gin.Context) {
	synced, err := h.catalog.SyncFromInventory(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.logger.Info("Inventory sync completed", map[string]any{
		"synced": synced,
	})
	c.JSON(http.StatusOK, dto.SyncResponse{Synced: synced})
}
