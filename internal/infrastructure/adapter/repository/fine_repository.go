package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/model"
)

// FineRepository implements FineRepository interface using GORM
type FineRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewFineRepository creates a new FineRepository instance
func NewFineRepository(db *gorm.DB, logger coreport.Logger) *FineRepository {
	return &FineRepository{
		db:     db,
		logger: logger,
	}
}

func fineToEntity(m *model.Fine) *entity.Fine {
	return &entity.Fine{
		ID:            m.ID,
		UserID:        m.UserID,
		ReservationID: m.ReservationID,
		Reason:        m.Reason,
		AmountCents:   m.AmountCents,
		Paid:          m.Paid,
		IssuedAt:      m.IssuedAt,
		PaidAt:        m.PaidAt,
	}
}

// Create stores a new fine
func (r *FineRepository) Create(ctx context.Context, fine *entity.Fine) error {
	m := model.Fine{
		ID:            fine.ID,
		UserID:        fine.UserID,
		ReservationID: fine.ReservationID,
		Reason:        fine.Reason,
		AmountCents:   fine.AmountCents,
		Paid:          fine.Paid,
		IssuedAt:      fine.IssuedAt,
		PaidAt:        fine.PaidAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.logger.Error("Database error when creating fine", map[string]any{
			"fine_id": fine.ID.String(),
			"user_id": fine.UserID,
			"error":   err.Error(),
		})
		return TranslateError(err, nil)
	}

	r.logger.Info("Fine stored", map[string]any{
		"fine_id": fine.ID.String(),
		"user_id": fine.UserID,
		"amount":  fine.Amount(),
	})
	return nil
}

// GetByID loads a fine
func (r *FineRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Fine, error) {
	var m model.Fine
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err, errs.ErrFineNotFound)
	}
	return fineToEntity(&m), nil
}

func (r *FineRepository) unpaid(ctx context.Context, userID string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Fine{}).Where("paid = ?", false)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	return q
}

// ListUnpaid returns unpaid fines newest first, for every user when userID is empty
func (r *FineRepository) ListUnpaid(ctx context.Context, userID string) ([]*entity.Fine, error) {
	var rows []model.Fine
	if err := r.unpaid(ctx, userID).Order("issued_at DESC").Find(&rows).Error; err != nil {
		r.logger.Error("Database error when listing fines", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, TranslateError(err, nil)
	}

	fines := make([]*entity.Fine, len(rows))
	for i := range rows {
		fines[i] = fineToEntity(&rows[i])
	}
	return fines, nil
}

// CountUnpaid returns the number of unpaid fines for a user
func (r *FineRepository) CountUnpaid(ctx context.Context, userID string) (int, error) {
	var count int64
	if err := r.unpaid(ctx, userID).Count(&count).Error; err != nil {
		return 0, TranslateError(err, nil)
	}
	return int(count), nil
}

// MarkPaid records payment of an unpaid fine
func (r *FineRepository) MarkPaid(ctx context.Context, fine *entity.Fine) error {
	result := r.db.WithContext(ctx).Model(&model.Fine{}).
		Where("id = ? AND paid = ?", fine.ID, false).
		Updates(map[string]any{
			"paid":    true,
			"paid_at": fine.PaidAt,
		})
	if result.Error != nil {
		return TranslateError(result.Error, errs.ErrFineNotFound)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("No unpaid fine to settle", map[string]any{
			"fine_id": fine.ID.String(),
		})
		return errs.ErrFineNotFound
	}
	return nil
}
