package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	inventoryport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/inventory"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/config"
)

// hardwareCacheKey holds the JSON-encoded inventory listing
const hardwareCacheKey = "cage:inventory:hardware"

// NewRedisClient creates a Redis client from configuration
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// PingRedis checks the Redis connection
func PingRedis(ctx context.Context, client redis.Cmdable) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

// CachedClient decorates an inventory client with a Redis cache for the hardware listing.
// Checkout and checkin always go to the inventory system.
type CachedClient struct {
	next   inventoryport.Client
	cache  redis.Cmdable
	ttl    time.Duration
	logger coreport.Logger
}

// NewCachedClient wraps next with a listing cache
func NewCachedClient(next inventoryport.Client, cache redis.Cmdable, ttl time.Duration, logger coreport.Logger) *CachedClient {
	return &CachedClient{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Checkout delegates to the wrapped client
func (c *CachedClient) Checkout(ctx context.Context, assetID, userExternalID uint64, expectedCheckin time.Time) error {
	return c.next.Checkout(ctx, assetID, userExternalID, expectedCheckin)
}

// Checkin delegates to the wrapped client
func (c *CachedClient) Checkin(ctx context.Context, assetID uint64) error {
	return c.next.Checkin(ctx, assetID)
}

// ListHardware serves the listing from Redis when present. Cache failures fall
// through to the wrapped client.
func (c *CachedClient) ListHardware(ctx context.Context) ([]inventoryport.Hardware, error) {
	data, err := c.cache.Get(ctx, hardwareCacheKey).Bytes()
	switch {
	case err == nil:
		var hardware []inventoryport.Hardware
		if err := json.Unmarshal(data, &hardware); err == nil {
			return hardware, nil
		}
		c.logger.Warn("Discarding undecodable hardware cache entry", map[string]any{
			"key": hardwareCacheKey,
		})
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("Hardware cache read failed", map[string]any{
			"error": err.Error(),
		})
	}

	hardware, err := c.next.ListHardware(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(hardware); err == nil {
		if err := c.cache.Set(ctx, hardwareCacheKey, data, c.ttl).Err(); err != nil {
			c.logger.Warn("Hardware cache write failed", map[string]any{
				"error": err.Error(),
			})
		}
	}
	return hardware, nil
}

// Invalidate drops the cached listing
func (c *CachedClient) Invalidate(ctx context.Context) error {
	return c.cache.Del(ctx, hardwareCacheKey).Err()
}
