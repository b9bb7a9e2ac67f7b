package persistence

import (
	"context"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
)

// AssetRepository is the persistence port for the local asset mirror
type AssetRepository interface {
	// GetByID loads an asset. Returns ErrAssetNotFound if absent.
	GetByID(ctx context.Context, id uint64) (*entity.Asset, error)

	// List returns assets, optionally restricted to a category, ordered by tag
	List(ctx context.Context, category string) ([]*entity.Asset, error)

	// Upsert inserts or updates assets keyed by id
	Upsert(ctx context.Context, assets []*entity.Asset) error
}
