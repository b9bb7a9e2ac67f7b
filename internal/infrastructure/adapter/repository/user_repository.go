package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(m *model.User) (*entity.User, error) {
	role, err := entity.ParseRole(m.Role)
	if err != nil {
		r.logger.Error("Stored user has unknown role", map[string]any{
			"user_id": m.ID,
			"role":    m.Role,
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	user := &entity.User{
		ID:                    m.ID,
		Email:                 m.Email,
		Name:                  m.Name,
		ExternalID:            m.ExternalID,
		Role:                  role,
		HasOutstandingBalance: m.HasOutstandingBalance,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	for _, e := range m.Enrollments {
		user.EnrolledCourses = append(user.EnrolledCourses, e.Course)
	}
	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	mapped := TranslateError(err, errs.ErrUserNotFound)
	if errors.Is(mapped, errs.ErrUserNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return mapped
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user operation", map[string]any{
			"user_id": userID,
		})
		return mapped
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return mapped
}

// GetByID retrieves a user with enrolled courses
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var m model.User
	err := r.db.WithContext(ctx).
		Preload("Enrollments", func(db *gorm.DB) *gorm.DB { return db.Order("course ASC") }).
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting user", err, id)
	}

	return r.modelToEntity(&m)
}

// Create stores a user and its enrollments. An existing user with the same id is left untouched.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id": user.ID,
		"role":    string(user.Role),
	})

	m := model.User{
		ID:                    user.ID,
		Email:                 user.Email,
		Name:                  user.Name,
		ExternalID:            user.ExternalID,
		Role:                  string(user.Role),
		HasOutstandingBalance: user.HasOutstandingBalance,
		CreatedAt:             user.CreatedAt,
		UpdatedAt:             user.UpdatedAt,
	}
	for _, c := range user.EnrolledCourses {
		m.Enrollments = append(m.Enrollments, model.Enrollment{UserID: user.ID, Course: c})
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"created": result.RowsAffected > 0,
	})
	return nil
}

// SetOutstandingBalance updates the user's outstanding-balance flag
func (r *UserRepository) SetOutstandingBalance(ctx context.Context, id string, outstanding bool) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"has_outstanding_balance": outstanding,
			"updated_at":              r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating outstanding balance", result.Error, id)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": id,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Info("Outstanding balance flag updated", map[string]any{
		"user_id":     id,
		"outstanding": outstanding,
	})
	return nil
}
