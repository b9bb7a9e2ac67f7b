package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/middleware"
)

// ReservationExporter renders reservations as a downloadable document
type ReservationExporter interface {
	ContentType() string
	WriteReservations(w io.Writer, reservations []*entity.Reservation) error
}

// ReservationHandler handles reservation admission, lifecycle and listing requests
type ReservationHandler struct {
	admission usecase.AdmissionUseCase
	lifecycle usecase.LifecycleUseCase
	queries   usecase.ReservationQueryUseCase
	exporter  ReservationExporter
	logger    coreport.Logger
}

// NewReservationHandler creates a new reservation handler instance
func NewReservationHandler(
	admission usecase.AdmissionUseCase,
	lifecycle usecase.LifecycleUseCase,
	queries usecase.ReservationQueryUseCase,
	exporter ReservationExporter,
	logger coreport.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		admission: admission,
		lifecycle: lifecycle,
		queries:   queries,
		exporter:  exporter,
		logger:    logger,
	}
}

// Create handles POST /reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	reservation, err := h.admission.RequestReservation(c.Request.Context(), usecase.ReservationRequest{
		UserID:    user.ID,
		AssetID:   req.AssetID,
		Category:  req.Category,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateReservationResponse{
		ReservationID: reservation.ID.String(),
		Status:        string(reservation.Status),
	})
}

// Confirm handles POST /reservations/:id/confirm
func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, c.Param("id"), h.lifecycle.Confirm)
}

// Cancel handles POST /reservations/:id/cancel
func (h *ReservationHandler) Cancel(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	h.transition(c, c.Param("id"), func(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
		return h.lifecycle.Cancel(ctx, id, user)
	})
}

// Checkout handles POST /checkout
func (h *ReservationHandler) Checkout(c *gin.Context) {
	var req dto.ReservationIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	h.transition(c, req.ReservationID, h.lifecycle.Checkout)
}

// Checkin handles POST /checkin
func (h *ReservationHandler) Checkin(c *gin.Context) {
	var req dto.ReservationIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	h.transition(c, req.ReservationID, h.lifecycle.Checkin)
}

// transitionFunc is a lifecycle operation on one reservation
type transitionFunc func(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

func (h *ReservationHandler) transition(c *gin.Context, rawID string, op transitionFunc) {
	id, err := parseUUID("reservationId", rawID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	reservation, err := op(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReservationResponse(reservation))
}

// UserReservations handles GET /users/:id/reservations. Users may only read their own summary unless staff.
func (h *ReservationHandler) UserReservations(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	userID := c.Param("id")
	if user.ID != userID && !user.Role.IsStaff() {
		_ = c.Error(errs.NewForbiddenError(errs.RuleInsufficientRole, "Cannot view another user's reservations"))
		return
	}

	summary, err := h.queries.GetUserReservations(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserReservationsResponse(summary))
}

// List handles GET /admin/reservations
func (h *ReservationHandler) List(c *gin.Context) {
	filter, err := parseReservationFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	reservations, err := h.queries.ListReservations(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReservationResponses(reservations))
}

// Export handles GET /admin/reservations/export
func (h *ReservationHandler) Export(c *gin.Context) {
	filter, err := parseReservationFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	reservations, err := h.queries.ListReservations(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.WriteReservations(&buf, reservations); err != nil {
		h.logger.Error("Failed to render reservation export", map[string]any{
			"error": err.Error(),
			"count": len(reservations),
		})
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reservations.xlsx"`)
	c.Data(http.StatusOK, h.exporter.ContentType(), buf.Bytes())
}
