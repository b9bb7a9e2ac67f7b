package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
)

// ConnectionPoolMetrics is a snapshot of the database connection pool
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// Fields renders the snapshot as log or JSON fields
func (m ConnectionPoolMetrics) Fields() map[string]any {
	return map[string]any{
		"open_connections":     m.OpenConnections,
		"idle_connections":     m.IdleConnections,
		"max_open_connections": m.MaxOpenConnections,
		"in_use":               m.InUse,
		"wait_count":           m.WaitCount,
		"wait_duration_ms":     m.WaitDuration.Milliseconds(),
	}
}

// ConnectionPoolMonitor periodically samples pool statistics and warns when
// the pool is close to exhaustion
type ConnectionPoolMonitor struct {
	sqlDB        *sql.DB
	logger       coreport.Logger
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(sqlDB *sql.DB, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		sqlDB:    sqlDB,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples the pool once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.collectMetrics()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.collectMetrics()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring. It is safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// GetMetrics returns the latest connection pool snapshot
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metricsCache
}

func (m *ConnectionPoolMonitor) collectMetrics() {
	stats := m.sqlDB.Stats()

	m.mutex.Lock()
	m.metricsCache = &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}

// HealthChecker reports database reachability
type HealthChecker struct {
	sqlDB   *sql.DB
	logger  coreport.Logger
	timeout time.Duration
}

// NewHealthChecker creates a health checker that gives each ping timeout to complete
func NewHealthChecker(sqlDB *sql.DB, logger coreport.Logger, timeout time.Duration) *HealthChecker {
	return &HealthChecker{
		sqlDB:   sqlDB,
		logger:  logger,
		timeout: timeout,
	}
}

// Check pings the database
func (h *HealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.sqlDB.PingContext(ctx); err != nil {
		h.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}
