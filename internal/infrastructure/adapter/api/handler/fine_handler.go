package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/dto"
)

// FineHandler handles staff fine management
type FineHandler struct {
	fines  usecase.FineUseCase
	logger coreport.Logger
}

// NewFineHandler creates a new fine handler instance
func NewFineHandler(fines usecase.FineUseCase, logger coreport.Logger) *FineHandler {
	return &FineHandler{
		fines:  fines,
		logger: logger,
	}
}

// Issue handles POST /admin/fines
func (h *FineHandler) Issue(c *gin.Context) {
	var req dto.IssueFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	var reservationID *uuid.UUID
	if req.ReservationID != "" {
		id, err := parseUUID("reservationId", req.ReservationID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		reservationID = &id
	}

	fine, err := h.fines.IssueFine(c.Request.Context(), usecase.IssueFineRequest{
		UserID:        req.UserID,
		ReservationID: reservationID,
		Reason:        req.Reason,
		Amount:        req.Amount,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewFineResponse(fine))
}

// ListOutstanding handles GET /admin/fines?userId=
func (h *FineHandler) ListOutstanding(c *gin.Context) {
	outstanding, err := h.fines.ListOutstanding(c.Request.Context(), c.Query("userId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOutstandingFinesResponse(outstanding))
}

// Pay handles POST /admin/fines/:id/pay
func (h *FineHandler) Pay(c *gin.Context) {
	id, err := parseUUID("id", c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	fine, err := h.fines.PayFine(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFineResponse(fine))
}
