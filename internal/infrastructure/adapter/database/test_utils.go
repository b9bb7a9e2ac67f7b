package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for testing against a real Postgres
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// RequireTestDB skips the test unless TEST_DB_HOST points at a database
func RequireTestDB(t *testing.T) {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration test")
	}
}

// NewTestDBManager creates a test database manager from TEST_DB_* variables
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Host:            configEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:            configEnvAsInt("TEST_DB_PORT", 5432),
		Username:        configEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        configEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        configEnvOrDefault("TEST_DB_DATABASE", "cage_test"),
		SSLMode:         configEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      time.Second,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB drops every table and runs the full migration
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	if err := dropAllTables(db); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	migrator := migration.NewMigrationManager(db, m.Logger, m.TimeProvider)
	if err := migrator.MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// dropAllTables drops all tables in the current schema
func dropAllTables(db *gorm.DB) error {
	return db.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error
}

// TruncateAllTables empties every table except the migration history
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables
			          WHERE schemaname = current_schema() AND tablename <> 'migration_versions') LOOP
				EXECUTE 'TRUNCATE TABLE ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CreateTestUser inserts a student with the given enrollments
func (m *TestDBManager) CreateTestUser(t *testing.T, id string, courses ...string) {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		ID:        id,
		Email:     id + "@example.edu",
		Name:      id,
		Role:      "student",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, c := range courses {
		user.Enrollments = append(user.Enrollments, model.Enrollment{UserID: id, Course: c})
	}

	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestAsset inserts an asset
func (m *TestDBManager) CreateTestAsset(t *testing.T, id uint64, category string) {
	t.Helper()

	now := m.TimeProvider.Now()
	asset := model.Asset{
		ID:        id,
		Tag:       fmt.Sprintf("TST-%04d", id),
		Name:      "Test " + category,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.Manager.DB().Create(&asset).Error; err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}
}
