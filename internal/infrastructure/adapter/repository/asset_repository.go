package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/model"
)

// AssetRepository implements AssetRepository interface using GORM
type AssetRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAssetRepository creates a new AssetRepository instance
func NewAssetRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AssetRepository {
	return &AssetRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func assetToEntity(m *model.Asset) *entity.Asset {
	asset := &entity.Asset{
		ID:        m.ID,
		Tag:       m.Tag,
		Name:      m.Name,
		Category:  m.Category,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, c := range m.Courses {
		asset.RequiredCourses = append(asset.RequiredCourses, c.Course)
	}
	return asset
}

// GetByID loads an asset together with its required courses
func (r *AssetRepository) GetByID(ctx context.Context, id uint64) (*entity.Asset, error) {
	var m model.Asset
	err := r.db.WithContext(ctx).
		Preload("Courses", func(db *gorm.DB) *gorm.DB { return db.Order("course ASC") }).
		First(&m, "id = ?", id).Error
	if err != nil {
		mapped := TranslateError(err, errs.ErrAssetNotFound)
		r.logger.Debug("Asset lookup failed", map[string]any{
			"asset_id": id,
			"error":    err.Error(),
		})
		return nil, mapped
	}
	return assetToEntity(&m), nil
}

// List returns assets ordered by tag, restricted to category when it is not empty
func (r *AssetRepository) List(ctx context.Context, category string) ([]*entity.Asset, error) {
	var rows []model.Asset
	q := r.db.WithContext(ctx).
		Preload("Courses", func(db *gorm.DB) *gorm.DB { return db.Order("course ASC") }).
		Order("tag ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&rows).Error; err != nil {
		r.logger.Error("Database error when listing assets", map[string]any{
			"category": category,
			"error":    err.Error(),
		})
		return nil, TranslateError(err, nil)
	}

	assets := make([]*entity.Asset, len(rows))
	for i := range rows {
		assets[i] = assetToEntity(&rows[i])
	}
	return assets, nil
}

// Upsert inserts or updates assets keyed by id. Course restrictions are replaced
// only for assets that carry a non-empty RequiredCourses list.
func (r *AssetRepository) Upsert(ctx context.Context, assets []*entity.Asset) error {
	if len(assets) == 0 {
		return nil
	}
	now := r.timeProvider.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, a := range assets {
			row := model.Asset{
				ID:        a.ID,
				Tag:       a.Tag,
				Name:      a.Name,
				Category:  a.Category,
				ImageURL:  a.ImageURL,
				CreatedAt: now,
				UpdatedAt: now,
			}
			err := tx.Omit("Courses").
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					DoUpdates: clause.AssignmentColumns([]string{"tag", "name", "category", "image_url", "updated_at"}),
				}).
				Create(&row).Error
			if err != nil {
				return fmt.Errorf("upserting asset %d: %w", a.ID, err)
			}

			if len(a.RequiredCourses) == 0 {
				continue
			}
			if err := tx.Where("asset_id = ?", a.ID).Delete(&model.AssetCourse{}).Error; err != nil {
				return fmt.Errorf("clearing courses of asset %d: %w", a.ID, err)
			}
			courses := make([]model.AssetCourse, len(a.RequiredCourses))
			for i, c := range a.RequiredCourses {
				courses[i] = model.AssetCourse{AssetID: a.ID, Course: c}
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&courses).Error; err != nil {
				return fmt.Errorf("storing courses of asset %d: %w", a.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Database error when upserting assets", map[string]any{
			"count": len(assets),
			"error": err.Error(),
		})
		return TranslateError(err, nil)
	}

	r.logger.Info("Assets upserted", map[string]any{
		"count": len(assets),
	})
	return nil
}
