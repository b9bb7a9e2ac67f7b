package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	ddl  string
}{
	{
		// availability lookups: active reservations of one asset by time
		name: "idx_reservations_asset_active",
		ddl: `CREATE INDEX IF NOT EXISTS idx_reservations_asset_active
			ON reservations (asset_id, start_time)
			WHERE status IN ('PENDING', 'CONFIRMED', 'CHECKED_OUT')`,
	},
	{
		// weekly quota counts
		name: "idx_reservations_user_category_start",
		ddl: `CREATE INDEX IF NOT EXISTS idx_reservations_user_category_start
			ON reservations (user_id, category, start_time)`,
	},
	{
		name: "idx_reservations_status",
		ddl: `CREATE INDEX IF NOT EXISTS idx_reservations_status
			ON reservations (status)`,
	},
	{
		name: "idx_reservations_created_at_brin",
		ddl: `CREATE INDEX IF NOT EXISTS idx_reservations_created_at_brin
			ON reservations USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_admission_locks_expires_at",
		ddl: `CREATE INDEX IF NOT EXISTS idx_admission_locks_expires_at
			ON admission_locks (expires_at)`,
	},
	{
		name: "idx_fines_unpaid_user",
		ddl: `CREATE INDEX IF NOT EXISTS idx_fines_unpaid_user
			ON fines (user_id, issued_at)
			WHERE paid = false`,
	},
}

// CreateAdvancedIndexes creates the partial, composite and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.ddl).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies table settings. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []string{
		// status transitions rewrite rows in place
		`ALTER TABLE reservations SET (fillfactor = 90)`,
		`ALTER TABLE admission_locks SET (fillfactor = 70)`,
		`ALTER TABLE reservations ALTER COLUMN asset_id SET STATISTICS 500`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
