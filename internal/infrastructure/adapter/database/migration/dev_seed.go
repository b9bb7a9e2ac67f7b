package migration

import (
	"context"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
)

// UserCreator stores a user unless one with the same id exists
type UserCreator interface {
	Create(ctx context.Context, user *entity.User) error
}

// AssetUpserter stores assets keyed by inventory id
type AssetUpserter interface {
	Upsert(ctx context.Context, assets []*entity.Asset) error
}

// devUsers are created in development so the API can be exercised without an
// identity provider in front of it
var devUsers = []entity.User{
	{ID: "student-1", Email: "student1@example.edu", Name: "Dev Student", ExternalID: 101,
		Role: entity.RoleStudent, EnrolledCourses: []string{"FILM101"}},
	{ID: "student-2", Email: "student2@example.edu", Name: "Second Student", ExternalID: 102,
		Role: entity.RoleStudent},
	{ID: "staff-1", Email: "staff@example.edu", Name: "Cage Staff", ExternalID: 201,
		Role: entity.RoleStaff},
	{ID: "admin-1", Email: "admin@example.edu", Name: "Cage Admin", ExternalID: 301,
		Role: entity.RoleAdmin},
}

// devAssets mirror a small inventory until the first sync replaces them
var devAssets = []entity.Asset{
	{ID: 1, Tag: "CAM-0001", Name: "Canon C70", Category: "Video Camera", RequiredCourses: []string{"FILM101"}},
	{ID: 2, Tag: "CAM-0002", Name: "Sony FX3", Category: "Video Camera"},
	{ID: 3, Tag: "AUD-0001", Name: "Zoom H6", Category: "Audio Recorder"},
	{ID: 4, Tag: "LGT-0001", Name: "Aputure 300d", Category: "Lighting"},
}

// SeedDevData creates the development users and assets. Existing rows are kept.
func SeedDevData(
	ctx context.Context,
	users UserCreator,
	assets AssetUpserter,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	now := timeProvider.Now()

	for i := range devUsers {
		user := devUsers[i]
		user.CreatedAt = now
		user.UpdatedAt = now
		if err := users.Create(ctx, &user); err != nil {
			return err
		}
	}

	seeded := make([]*entity.Asset, len(devAssets))
	for i := range devAssets {
		asset := devAssets[i]
		seeded[i] = &asset
	}
	if err := assets.Upsert(ctx, seeded); err != nil {
		return err
	}

	logger.Info("Development data seeded", map[string]any{
		"users":  len(devUsers),
		"assets": len(devAssets),
	})
	return nil
}
