// Package admission decides whether a requested reservation may be created.
package admission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/availability"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/calendar"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/eligibility"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/lifecycle"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/usecase/quota"
)

// Decision outcomes recorded in metrics
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Config holds admission policy
type Config struct {
	// Buffer widens the requested window on both ends before the overlap check
	Buffer time.Duration
	// LockTTL bounds how long a crashed request can hold an admission lock
	LockTTL time.Duration
	// LockTimeout bounds how long a request waits for admission locks
	LockTimeout time.Duration
	// MaxAttempts bounds retries of the transactional section on serialization failures
	MaxAttempts int
	// EnforceEligibility runs the course eligibility check
	EnforceEligibility bool
	// BlockOnUnpaidFines rejects users with an outstanding balance
	BlockOnUnpaidFines bool
}

// DefaultConfig returns the production policy
func DefaultConfig() Config {
	return Config{
		Buffer:             0,
		LockTTL:            30 * time.Second,
		LockTimeout:        5 * time.Second,
		MaxAttempts:        3,
		EnforceEligibility: true,
		BlockOnUnpaidFines: true,
	}
}

// Controller is the single entry point for creating reservations
type Controller struct {
	calendar     *calendar.Calendar
	availability *availability.Checker
	quota        *quota.Enforcer
	lifecycle    *lifecycle.Manager
	uow          persistence.UnitOfWork
	assets       persistence.AssetRepository
	locks        persistence.AdmissionLockRepository
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

var _ usecase.AdmissionUseCase = (*Controller)(nil)

// NewController creates an admission controller
func NewController(
	cal *calendar.Calendar,
	availabilityChecker *availability.Checker,
	quotaEnforcer *quota.Enforcer,
	lifecycleManager *lifecycle.Manager,
	uow persistence.UnitOfWork,
	assets persistence.AssetRepository,
	locks persistence.AdmissionLockRepository,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Controller {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Controller{
		calendar:     cal,
		availability: availabilityChecker,
		quota:        quotaEnforcer,
		lifecycle:    lifecycleManager,
		uow:          uow,
		assets:       assets,
		locks:        locks,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// RequestReservation validates the block, then runs availability, weekly quota,
// eligibility and standing checks in that order and creates the reservation
// when all pass. The first failing rule is returned as a typed error.
func (c *Controller) RequestReservation(ctx context.Context, req usecase.ReservationRequest) (*entity.Reservation, error) {
	reservation, err := c.admit(ctx, req)

	fields := map[string]any{
		"user_id":  req.UserID,
		"asset_id": req.AssetID,
		"start":    req.StartTime,
		"end":      req.EndTime,
	}
	switch kind := errs.KindOf(err); kind {
	case "":
		c.metrics.AdmissionDecision(OutcomeAccepted, "NONE")
	case errs.KindInternal, errs.KindExternalService:
		c.metrics.AdmissionDecision(OutcomeError, "NONE")
		fields["error"] = err.Error()
		c.logger.Error("Reservation request failed", fields)
	default:
		rule := string(errs.RuleOf(err))
		if rule == "" {
			rule = string(kind)
		}
		c.metrics.AdmissionDecision(OutcomeRejected, rule)
		fields["rule"] = rule
		fields["reason"] = err.Error()
		c.logger.Info("Reservation request rejected", fields)
	}
	return reservation, err
}

func (c *Controller) admit(ctx context.Context, req usecase.ReservationRequest) (*entity.Reservation, error) {
	// Step 1: Validate the request shape and block alignment without I/O
	if req.UserID == "" {
		return nil, errs.NewValidationError("userId", "is required")
	}
	if req.AssetID == 0 {
		return nil, errs.NewValidationError("assetId", "is required")
	}
	if _, err := c.calendar.MatchBlock(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.StartTime.Before(c.timeProvider.Now()) {
		return nil, errs.NewValidationError("startTime", "must not be in the past")
	}
	window := calendar.Window{Start: req.StartTime, End: req.EndTime}

	// Step 2: Load the asset and user
	asset, err := c.assets.GetByID(ctx, req.AssetID)
	if err != nil {
		if errors.Is(err, errs.ErrAssetNotFound) {
			return nil, errs.NewNotFoundError("asset", fmt.Sprint(req.AssetID), errs.ErrAssetNotFound)
		}
		return nil, err
	}
	category := asset.Category
	if req.Category != "" && req.Category != asset.Category {
		return nil, errs.NewValidationError("category", fmt.Sprintf("asset %s belongs to category %s", asset.Tag, asset.Category))
	}

	user, err := c.uow.GetUserRepository(ctx).GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.NewNotFoundError("user", req.UserID, errs.ErrUserNotFound)
		}
		return nil, err
	}

	// Step 3: Serialise against requests for the same asset or the same quota
	owner := uuid.NewString()
	keys := lockKeys(asset.ID, user.ID, category)
	if err := c.acquireLocks(ctx, keys, owner); err != nil {
		return nil, err
	}
	defer c.releaseLocks(ctx, keys, owner)

	// Step 4: Check and create inside one serializable transaction
	var reservation *entity.Reservation
	for attempt := 1; ; attempt++ {
		reservation, err = c.checkAndCreate(ctx, user, asset, category, window)
		if err == nil || !errs.IsTransientError(err) || attempt >= c.cfg.MaxAttempts {
			break
		}
		c.logger.Warn("Serialization conflict during admission, retrying", map[string]any{
			"attempt":  attempt,
			"asset_id": asset.ID,
			"error":    err.Error(),
		})
	}
	if err != nil {
		return nil, err
	}

	// Step 5: Announce after commit
	c.lifecycle.Created(ctx, reservation)
	return reservation, nil
}

func (c *Controller) checkAndCreate(
	ctx context.Context,
	user *entity.User,
	asset *entity.Asset,
	category string,
	window calendar.Window,
) (reservation *entity.Reservation, err error) {
	txCtx, err := c.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := c.uow.Rollback(txCtx); rbErr != nil {
				c.logger.Error("Failed to roll back admission transaction", map[string]any{
					"error": rbErr.Error(),
				})
			}
		}
	}()

	// Availability
	available, err := c.availability.IsAvailable(txCtx, asset.ID, window, c.cfg.Buffer)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, errs.NewConflictError(errs.RuleAssetUnavailable,
			fmt.Sprintf("%s is not available for the requested time", asset.Tag),
			map[string]any{"asset_id": asset.ID, "asset_tag": asset.Tag})
	}

	// Weekly quota
	if err = c.quota.Check(txCtx, user.ID, category, window.Start); err != nil {
		return nil, err
	}

	// Eligibility
	if c.cfg.EnforceEligibility {
		if err = eligibility.Check(user, asset); err != nil {
			return nil, err
		}
	}

	// Standing
	if c.cfg.BlockOnUnpaidFines {
		if err = eligibility.CheckStanding(user); err != nil {
			return nil, err
		}
	}

	reservation, err = c.lifecycle.Create(txCtx, asset.ID, user.ID, category, window)
	if err != nil {
		return nil, err
	}

	if err = c.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return reservation, nil
}
