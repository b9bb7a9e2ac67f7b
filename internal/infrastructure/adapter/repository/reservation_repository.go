package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/model"
)

// ReservationRepository implements ReservationRepository interface using GORM
type ReservationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReservationRepository creates a new ReservationRepository instance
func NewReservationRepository(db *gorm.DB, logger coreport.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func reservationToModel(r *entity.Reservation) *model.Reservation {
	return &model.Reservation{
		ID:        r.ID,
		AssetID:   r.AssetID,
		UserID:    r.UserID,
		Category:  r.Category,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// modelToEntity converts a reservation model to an entity
func (r *ReservationRepository) modelToEntity(m *model.Reservation) (*entity.Reservation, error) {
	status, err := entity.ParseReservationStatus(m.Status)
	if err != nil {
		r.logger.Error("Stored reservation has unknown status", map[string]any{
			"reservation_id": m.ID.String(),
			"status":         m.Status,
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	return &entity.Reservation{
		ID:        m.ID,
		AssetID:   m.AssetID,
		UserID:    m.UserID,
		Category:  m.Category,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Status:    status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// handleDatabaseError standardizes database error handling
func (r *ReservationRepository) handleDatabaseError(operation string, err error, reservationID uuid.UUID) error {
	mapped := TranslateError(err, errs.ErrReservationNotFound)

	switch {
	case errors.Is(mapped, errs.ErrReservationNotFound):
		r.logger.Warn("Reservation not found", map[string]any{
			"reservation_id": reservationID.String(),
		})
	case r.errorClassifier.IsExclusionViolation(err):
		r.logger.Warn("Overlap guard rejected reservation", map[string]any{
			"reservation_id": reservationID.String(),
		})
	case r.errorClassifier.IsTransientError(err):
		r.logger.Warn(fmt.Sprintf("Transient conflict when %s", operation), map[string]any{
			"reservation_id": reservationID.String(),
			"error":          err.Error(),
		})
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"reservation_id": reservationID.String(),
			"error":          err.Error(),
		})
	}
	return mapped
}

// applyFilter narrows a query to the reservations selected by filter
func applyFilter(q *gorm.DB, f persistence.ReservationFilter) *gorm.DB {
	if f.AssetID != 0 {
		q = q.Where("asset_id = ?", f.AssetID)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if len(f.StatusIn) > 0 {
		statuses := make([]string, len(f.StatusIn))
		for i, s := range f.StatusIn {
			statuses[i] = string(s)
		}
		q = q.Where("status IN ?", statuses)
	}
	if !f.StartFrom.IsZero() {
		q = q.Where("start_time >= ?", f.StartFrom)
	}
	if !f.StartBefore.IsZero() {
		q = q.Where("start_time < ?", f.StartBefore)
	}
	if !f.OverlapStart.IsZero() && !f.OverlapEnd.IsZero() {
		q = q.Where("start_time <= ? AND end_time >= ?", f.OverlapEnd, f.OverlapStart)
	}
	return q
}

// Query returns reservations matching the filter ordered by start time
func (r *ReservationRepository) Query(ctx context.Context, filter persistence.ReservationFilter) ([]*entity.Reservation, error) {
	var rows []model.Reservation
	q := applyFilter(r.db.WithContext(ctx).Model(&model.Reservation{}), filter).
		Order("start_time ASC").
		Order("id ASC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	if err := q.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("querying reservations", err, uuid.Nil)
	}

	reservations := make([]*entity.Reservation, 0, len(rows))
	for i := range rows {
		res, err := r.modelToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// Count returns the number of reservations matching the filter
func (r *ReservationRepository) Count(ctx context.Context, filter persistence.ReservationFilter) (int, error) {
	var count int64
	err := applyFilter(r.db.WithContext(ctx).Model(&model.Reservation{}), filter).Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting reservations", err, uuid.Nil)
	}
	return int(count), nil
}

// Create stores a new reservation
func (r *ReservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	r.logger.Debug("Creating reservation", map[string]any{
		"reservation_id": reservation.ID.String(),
		"asset_id":       reservation.AssetID,
		"user_id":        reservation.UserID,
		"start_time":     reservation.StartTime,
	})

	if err := r.db.WithContext(ctx).Create(reservationToModel(reservation)).Error; err != nil {
		return r.handleDatabaseError("creating reservation", err, reservation.ID)
	}

	r.logger.Info("Reservation stored", map[string]any{
		"reservation_id": reservation.ID.String(),
		"status":         string(reservation.Status),
	})
	return nil
}

// GetByID loads one reservation
func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	var m model.Reservation
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("getting reservation", err, id)
	}
	return r.modelToEntity(&m)
}

// UpdateStatus moves a reservation from one status to another. The current status
// is part of the WHERE clause so a concurrent transition leaves no row to update.
func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to entity.ReservationStatus,
	at time.Time,
) (*entity.Reservation, error) {
	r.logger.Debug("Updating reservation status", map[string]any{
		"reservation_id": id.String(),
		"from":           string(from),
		"to":             string(to),
	})

	var m model.Reservation
	result := r.db.WithContext(ctx).Model(&m).
		Clauses(clause.Returning{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": at,
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("updating reservation status", result.Error, id)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		r.logger.Warn("Reservation status changed concurrently", map[string]any{
			"reservation_id": id.String(),
			"expected":       string(from),
		})
		return nil, errs.ErrStaleStatus
	}

	return r.modelToEntity(&m)
}
