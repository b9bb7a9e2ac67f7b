package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/dto"
	applogger "github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type userLookupFunc func(ctx context.Context, id string) (*entity.User, error)

func (f userLookupFunc) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return f(ctx, id)
}

var users = userLookupFunc(func(_ context.Context, id string) (*entity.User, error) {
	switch id {
	case "student-1":
		return &entity.User{ID: id, Role: entity.RoleStudent}, nil
	case "staff-1":
		return &entity.User{ID: id, Role: entity.RoleStaff}, nil
	case "broken":
		return nil, errs.ErrDatabaseConnection
	}
	return nil, errs.ErrUserNotFound
})

type recordingObserver struct {
	route  string
	status int
}

func (o *recordingObserver) ObserveHTTPRequest(_, route string, status int, _ time.Duration) {
	o.route = route
	o.status = status
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), ErrorHandler(applogger.NewNoopLogger()), Identity(users))
	router.GET("/test", handlers...)
	return router
}

func serve(router *gin.Engine, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		rule    string
		message string
	}{
		{"Validation", errs.NewValidationError("assetId", "must be positive"), http.StatusBadRequest, "", ""},
		{"InvalidBlock", errs.NewInvalidBlockError("not a block"), http.StatusBadRequest, "INVALID_BLOCK", ""},
		{"Overlap", errs.NewConflictError(errs.RuleAssetUnavailable, "Asset is already reserved", nil),
			http.StatusConflict, "ASSET_UNAVAILABLE", "Asset is already reserved"},
		{"WeeklyLimit", errs.NewWeeklyLimitError("Camera", 3, 3), http.StatusConflict, "BLOCK_LIMIT_EXCEEDED", ""},
		{"Concurrent", fmt.Errorf("commit: %w", errs.ErrTransient), http.StatusConflict, "CONCURRENT_REQUEST",
			"The request conflicted with a concurrent change, please retry"},
		{"Forbidden", errs.NewForbiddenError(errs.RuleCourseRestriction, "enrollment required"),
			http.StatusForbidden, "COURSE_RESTRICTION", "enrollment required"},
		{"NotFound", errs.NewNotFoundError("reservation", "abc", errs.ErrReservationNotFound), http.StatusNotFound, "", ""},
		{"Transition", errs.NewStateTransitionError("abc", "checkout", "PENDING", "CONFIRMED"), http.StatusBadRequest, "", ""},
		{"External", errs.NewExternalServiceError("checkout", []string{"asset busy"}, errors.New("dial tcp: refused")),
			http.StatusBadGateway, "", "Inventory system request failed"},
		{"Internal", fmt.Errorf("query: %w", errs.ErrDatabaseConnection), http.StatusInternalServerError, "", "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := NewErrorResponse(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.rule, body.Rule)
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
			}
			assert.NotContains(t, body.Message, "dial tcp")
		})
	}
}

func TestNewErrorResponse_TransitionDetails(t *testing.T) {
	_, body := NewErrorResponse(errs.NewStateTransitionError("abc", "checkin", "CONFIRMED", "CHECKED_OUT"))
	assert.Equal(t, "CONFIRMED", body.Details["current"])
	assert.Equal(t, []string{"CHECKED_OUT"}, body.Details["expected"])
}

func TestErrorHandler_RendersAttachedError(t *testing.T) {
	router := newRouter(func(c *gin.Context) {
		_ = c.Error(errs.NewWeeklyLimitError("Camera", 3, 3))
	})

	rec := serve(router, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, errs.CodeConflict, body.Code)
	assert.Equal(t, float64(3), body.Details["limit"])
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	router := newRouter(func(c *gin.Context) {
		panic("boom")
	})

	rec := serve(router, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
}

func TestRequestID(t *testing.T) {
	var seen string
	router := newRouter(func(c *gin.Context) {
		seen = applogger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))

	rec = serve(router, "")
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestIdentity(t *testing.T) {
	var current *entity.User
	router := newRouter(func(c *gin.Context) {
		current, _ = CurrentUser(c)
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, serve(router, "").Code)
	assert.Nil(t, current)

	assert.Equal(t, http.StatusNoContent, serve(router, "student-1").Code)
	require.NotNil(t, current)
	assert.Equal(t, entity.RoleStudent, current.Role)

	rec := serve(router, "ghost")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errs.CodeUnauthorized, decodeError(t, rec).Code)

	assert.Equal(t, http.StatusInternalServerError, serve(router, "broken").Code)
}

func TestRequireStaff(t *testing.T) {
	router := newRouter(RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusUnauthorized, serve(router, "").Code)

	rec := serve(router, "student-1")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "INSUFFICIENT_ROLE", decodeError(t, rec).Rule)

	assert.Equal(t, http.StatusNoContent, serve(router, "staff-1").Code)
}

func TestRequireUser(t *testing.T) {
	router := newRouter(RequireUser(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusUnauthorized, serve(router, "").Code)
	assert.Equal(t, http.StatusNoContent, serve(router, "student-1").Code)
}

func TestLogger_ObservesRoute(t *testing.T) {
	observer := &recordingObserver{}
	router := gin.New()
	router.Use(Logger(applogger.NewNoopLogger(), observer))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7", nil))

	assert.Equal(t, "/items/:id", observer.route)
	assert.Equal(t, http.StatusAccepted, observer.status)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://cage.example.edu"}))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://cage.example.edu")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://cage.example.edu", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
