package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
)

// OverlapConstraintName names the exclusion constraint that rejects
// overlapping active reservations of the same asset
const OverlapConstraintName = "reservations_no_overlap"

// ReservationOverlapGuard installs the exclusion constraint backing the
// availability check. Windows are closed intervals, so two reservations that
// merely touch also conflict.
type ReservationOverlapGuard struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewReservationOverlapGuard creates a new migration instance
func NewReservationOverlapGuard(db *gorm.DB, logger coreport.Logger) *ReservationOverlapGuard {
	return &ReservationOverlapGuard{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *ReservationOverlapGuard) Run(ctx context.Context) error {
	m.logger.Info("Installing reservation overlap guard", nil)

	if err := m.db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		m.logger.Error("Failed to create btree_gist extension", map[string]any{"error": err.Error()})
		return err
	}

	return addConstraintIfMissing(ctx, m.db, m.logger, "reservations", OverlapConstraintName, `
		EXCLUDE USING gist (
			asset_id WITH =,
			tstzrange(start_time, end_time, '[]') WITH &&
		) WHERE (status IN ('PENDING', 'CONFIRMED', 'CHECKED_OUT'))`)
}

// addConstraintIfMissing adds a named table constraint unless pg_constraint already has it
func addConstraintIfMissing(ctx context.Context, db *gorm.DB, logger coreport.Logger, table, name, definition string) error {
	var count int64
	err := db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM pg_constraint c
		JOIN pg_class t ON t.oid = c.conrelid
		WHERE t.relname = ? AND c.conname = ?`, table, name).Scan(&count).Error
	if err != nil {
		logger.Error("Failed to check constraint existence", map[string]any{
			"constraint": name,
			"error":      err.Error(),
		})
		return err
	}
	if count > 0 {
		logger.Debug("Constraint already present", map[string]any{"constraint": name})
		return nil
	}

	stmt := fmt.Sprintf(`ALTER TABLE %s ADD CONSTRAINT %s %s`, table, name, definition)
	if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
		logger.Error("Failed to add constraint", map[string]any{
			"constraint": name,
			"error":      err.Error(),
		})
		return fmt.Errorf("adding constraint %s: %w", name, err)
	}

	logger.Info("Constraint added", map[string]any{"constraint": name, "table": table})
	return nil
}
