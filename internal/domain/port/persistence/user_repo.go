package persistence

import (
	"context"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
)

// UserRepository is the persistence port for users and their enrollments
type UserRepository interface {
	// GetByID loads a user with enrolled courses
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// SetOutstandingBalance updates the user's outstanding-balance flag
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	SetOutstandingBalance(ctx context.Context, id string, outstanding bool) error
}
