package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/dto"
	applogger "github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/logger"
)

// logFielder is implemented by domain errors that carry structured context
type logFielder interface {
	LogFields() map[string]any
}

// ErrorHandler recovers from panics and renders the last error a handler
// attached with c.Error
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": applogger.RequestIDFromContext(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    errs.ErrorCode(errs.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := NewErrorResponse(err)
		logError(logger, c, status, err)
		c.AbortWithStatusJSON(status, body)
	}
}

// StatusFor maps an error to its HTTP status by taxonomy kind
func StatusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindStateTransition:
		return http.StatusBadRequest
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the status and body for err. Internal error text is never exposed.
func NewErrorResponse(err error) (int, dto.ErrorResponse) {
	status := StatusFor(err)
	body := dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: err.Error(),
		Rule:    string(errs.RuleOf(err)),
	}

	var conflict *errs.ConflictError
	var transition *errs.StateTransitionError
	var external *errs.ExternalServiceError
	switch {
	case errors.As(err, &conflict):
		body.Message = conflict.Message
		body.Details = conflict.Details
	case errors.As(err, &transition):
		body.Details = map[string]any{
			"current":  transition.Current,
			"expected": transition.Expected,
		}
	case errors.As(err, &external):
		body.Message = "Inventory system request failed"
		if len(external.Messages) > 0 {
			body.Details = map[string]any{"messages": external.Messages}
		}
	case errs.IsTransientError(err) || errors.Is(err, errs.ErrLockHeld) || errors.Is(err, errs.ErrStaleStatus):
		body.Message = "The request conflicted with a concurrent change, please retry"
	case status == http.StatusInternalServerError:
		body.Message = "Internal server error"
	}
	return status, body
}

func logError(logger coreport.Logger, c *gin.Context, status int, err error) {
	fields := map[string]any{
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"status":     status,
		"request_id": applogger.RequestIDFromContext(c.Request.Context()),
		"error":      err.Error(),
	}
	var lf logFielder
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("Request failed", fields)
	case status == http.StatusBadGateway:
		logger.Warn("Request failed", fields)
	default:
		logger.Info("Request rejected", fields)
	}
}
