package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
database:
  host: db.local
  username: cage
  password: secret
  database: cage_test
calendar:
  timezone: UTC
  fridayBlock: false
admission:
  bufferMinutes: 15
snipeit:
  baseUrl: https://inventory.example.edu/api/v1
  apiKey: token
  retryDelayMs: 250
events:
  driver: kafka
  kafka:
    brokers: ["kafka-1:9092", "kafka-2:9092"]
`

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, Test, testYAML)

	cfg, err := Load(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)

	assert.False(t, cfg.Calendar.FridayBlock)
	assert.Equal(t, 15*time.Minute, cfg.Admission.Buffer())
	assert.Equal(t, 3, cfg.Admission.WeeklyLimit)
	assert.Equal(t, 5*time.Second, cfg.Admission.LockTimeout())
	assert.Equal(t, 30*time.Second, cfg.Admission.LockTTL)
	assert.True(t, cfg.Admission.BlockOnUnpaidFines)

	assert.Equal(t, 10*time.Second, cfg.SnipeIT.Timeout)
	assert.Equal(t, 3, cfg.SnipeIT.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.SnipeIT.RetryDelay())
	assert.Equal(t, 60*time.Second, cfg.Redis.TTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.Kafka.Brokers)
	assert.Equal(t, "cage.reservations", cfg.Events.Kafka.Topic)
	assert.Equal(t, time.Minute, cfg.Worker.LockCleanupInterval)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Test, testYAML)
	t.Setenv("CAGE_DB_HOST", "db.override")
	t.Setenv("CAGE_ADMISSION_WEEKLY_LIMIT", "5")
	t.Setenv("CAGE_RESERVATION_REQUIRE_APPROVAL", "true")
	t.Setenv("CAGE_KAFKA_BROKERS", "a:9092,b:9092,c:9092")

	cfg, err := Load(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Admission.WeeklyLimit)
	assert.True(t, cfg.Reservation.RequireApproval)
	assert.Equal(t, []string{"a:9092", "b:9092", "c:9092"}, cfg.Events.Kafka.Brokers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(Test, t.TempDir())
	assert.Error(t, err)
}

func TestValidate_ListsEveryMissingKey(t *testing.T) {
	dir := writeConfig(t, Test, "events:\n  driver: rabbitmq\n")

	cfg, err := Load(Test, dir)
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{
		"database.host",
		"database.username",
		"database.password",
		"database.database",
		"snipeit.baseUrl",
		"snipeit.apiKey",
		"events.rabbitmq.url",
	} {
		assert.Contains(t, err.Error(), key)
	}
	assert.NotContains(t, err.Error(), "events.kafka.brokers")
}

func TestValidate_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"environment", func(c *Config) { c.Environment = "staging" }, "invalid environment"},
		{"log level", func(c *Config) { c.Logger.Level = "verbose" }, "invalid log level"},
		{"events driver", func(c *Config) { c.Events.Driver = "nats" }, "invalid events driver"},
		{"negative buffer", func(c *Config) { c.Admission.BufferMinutes = -5 }, "bufferMinutes"},
		{"timezone", func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" }, "invalid calendar timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(Test, writeConfig(t, Test, testYAML))
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProductionWarnings(t *testing.T) {
	cfg, err := Load(Test, writeConfig(t, Test, testYAML))
	require.NoError(t, err)
	assert.Empty(t, cfg.ProductionWarnings())

	cfg.Environment = Production
	cfg.SnipeIT.BaseURL = "http://inventory.local"
	warnings := cfg.ProductionWarnings()
	assert.Len(t, warnings, 2)
}
