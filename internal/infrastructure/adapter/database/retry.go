package database

import (
	"context"
	"math/rand"
	"time"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError runs operation up to MaxRetries times, backing off
// between attempts while errorMapper classifies the failure as retryable
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func(ctx context.Context) error,
	errorMapper *ErrorMapper,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) error {
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}

	var err error
	for attempt := 0; attempt < config.MaxRetries; attempt++ {
		err = operation(ctx)
		if err == nil {
			return nil
		}

		if !errorMapper.IsRetryable(err) {
			return err
		}
		if attempt == config.MaxRetries-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		if sleepErr := timeProvider.Sleep(ctx, backoff); sleepErr != nil {
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts":    attempt + 1,
				"max_retries": config.MaxRetries,
				"error":       sleepErr.Error(),
			})
			return sleepErr
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"max_retries": config.MaxRetries,
		"error":       err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes RetryInterval * 2^attempt capped at
// MaxInterval, plus up to JitterFactor of that as random jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if config.MaxInterval > 0 && backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}
	return backoff
}
