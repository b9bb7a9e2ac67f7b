package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CAGE"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables to configuration keys. Values set
// here win over the YAML file.
var envOverrides = map[string]string{
	"CAGE_SERVER_HOST":                  "server.host",
	"CAGE_SERVER_PORT":                  "server.port",
	"CAGE_DB_HOST":                      "database.host",
	"CAGE_DB_PORT":                      "database.port",
	"CAGE_DB_USERNAME":                  "database.username",
	"CAGE_DB_PASSWORD":                  "database.password",
	"CAGE_DB_NAME":                      "database.database",
	"CAGE_DB_SSL_MODE":                  "database.sslMode",
	"CAGE_DB_MAX_OPEN_CONNS":            "database.maxOpenConns",
	"CAGE_DB_MAX_IDLE_CONNS":            "database.maxIdleConns",
	"CAGE_DB_QUERY_TIMEOUT_SECONDS":     "database.queryTimeout",
	"CAGE_DB_RETRY_ATTEMPTS":            "database.retryAttempts",
	"CAGE_LOGGER_LEVEL":                 "logger.level",
	"CAGE_CALENDAR_TIMEZONE":            "calendar.timezone",
	"CAGE_CALENDAR_FRIDAY_BLOCK":        "calendar.fridayBlock",
	"CAGE_ADMISSION_BUFFER_MINUTES":     "admission.bufferMinutes",
	"CAGE_ADMISSION_WEEKLY_LIMIT":       "admission.weeklyLimit",
	"CAGE_ADMISSION_LOCK_TIMEOUT_MS":    "admission.lockTimeoutMs",
	"CAGE_ADMISSION_BLOCK_UNPAID":       "admission.blockOnUnpaidFines",
	"CAGE_ADMISSION_ELIGIBILITY":        "admission.enforceEligibility",
	"CAGE_RESERVATION_REQUIRE_APPROVAL": "reservation.requireApproval",
	"CAGE_SNIPEIT_BASE_URL":             "snipeit.baseUrl",
	"CAGE_SNIPEIT_API_KEY":              "snipeit.apiKey",
	"CAGE_REDIS_ENABLED":                "redis.enabled",
	"CAGE_REDIS_ADDR":                   "redis.addr",
	"CAGE_REDIS_PASSWORD":               "redis.password",
	"CAGE_EVENTS_DRIVER":                "events.driver",
	"CAGE_KAFKA_TOPIC":                  "events.kafka.topic",
	"CAGE_RABBITMQ_URL":                 "events.rabbitmq.url",
	"CAGE_RABBITMQ_QUEUE":               "events.rabbitmq.queue",
	"CAGE_METRICS_ENABLED":              "metrics.enabled",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first of paths that has it and applies
// defaults and environment overrides
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")

	v.SetDefault("calendar.timezone", "America/Los_Angeles")
	v.SetDefault("calendar.fridayBlock", true)

	v.SetDefault("admission.bufferMinutes", 0)
	v.SetDefault("admission.weeklyLimit", 3)
	v.SetDefault("admission.lockTtl", 30) // seconds
	v.SetDefault("admission.lockTimeoutMs", 5000)
	v.SetDefault("admission.maxAttempts", 3)
	v.SetDefault("admission.enforceEligibility", true)
	v.SetDefault("admission.blockOnUnpaidFines", true)

	v.SetDefault("reservation.requireApproval", false)

	v.SetDefault("snipeit.timeout", 10) // seconds
	v.SetDefault("snipeit.maxRetries", 3)
	v.SetDefault("snipeit.retryDelayMs", 1000)
	v.SetDefault("snipeit.pageSize", 100)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.ttl", 60) // seconds

	v.SetDefault("events.driver", EventsDriverNone)
	v.SetDefault("events.kafka.topic", "cage.reservations")
	v.SetDefault("events.rabbitmq.queue", "cage.reservations")

	v.SetDefault("worker.lockCleanupInterval", 60) // seconds

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment reads CAGE_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv("CAGE_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for env, key := range envOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if brokers := os.Getenv("CAGE_KAFKA_BROKERS"); brokers != "" {
		v.Set("events.kafka.brokers", strings.Split(brokers, ","))
	}
}

// processDurations converts duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Admission.LockTTL = time.Duration(config.Admission.LockTTL) * time.Second
	config.SnipeIT.Timeout = time.Duration(config.SnipeIT.Timeout) * time.Second
	config.Redis.TTL = time.Duration(config.Redis.TTL) * time.Second
	config.Worker.LockCleanupInterval = time.Duration(config.Worker.LockCleanupInterval) * time.Second
}
