package inventory

import (
	"context"
	"time"
)

// Hardware is an item as reported by the inventory system
type Hardware struct {
	ID       uint64
	Tag      string
	Name     string
	Model    string
	Category string
	ImageURL string
}

// Client is the port to the external asset-tracking system.
// Implementations must inspect the logical status in the response payload and
// return an ExternalServiceError when it reports failure.
type Client interface {
	// Checkout assigns the asset to the user until expectedCheckin
	Checkout(ctx context.Context, assetID, userExternalID uint64, expectedCheckin time.Time) error

	// Checkin returns the asset to stock
	Checkin(ctx context.Context, assetID uint64) error

	// ListHardware returns all hardware known to the inventory system
	ListHardware(ctx context.Context) ([]Hardware, error)
}
