package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Calendar    CalendarConfig    `mapstructure:"calendar"`
	Admission   AdmissionConfig   `mapstructure:"admission"`
	Reservation ReservationConfig `mapstructure:"reservation"`
	SnipeIT     SnipeITConfig     `mapstructure:"snipeit"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Events      EventsConfig      `mapstructure:"events"`
	Worker      WorkerConfig      `mapstructure:"worker"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	SeedDevData     bool          `mapstructure:"seedDevData"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// CalendarConfig describes the reservable blocks
type CalendarConfig struct {
	Timezone    string `mapstructure:"timezone"`
	FridayBlock bool   `mapstructure:"fridayBlock"`
}

// Location loads the configured time zone
func (c CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// AdmissionConfig contains admission policy settings
type AdmissionConfig struct {
	BufferMinutes      int           `mapstructure:"bufferMinutes"`
	WeeklyLimit        int           `mapstructure:"weeklyLimit"`
	LockTTL            time.Duration `mapstructure:"lockTtl"`       // seconds
	LockTimeoutMs      int64         `mapstructure:"lockTimeoutMs"` // milliseconds
	MaxAttempts        int           `mapstructure:"maxAttempts"`
	EnforceEligibility bool          `mapstructure:"enforceEligibility"`
	BlockOnUnpaidFines bool          `mapstructure:"blockOnUnpaidFines"`
}

// Buffer returns the buffer applied around requested windows
func (c AdmissionConfig) Buffer() time.Duration {
	return time.Duration(c.BufferMinutes) * time.Minute
}

// LockTimeout returns how long a request waits for admission locks
func (c AdmissionConfig) LockTimeout() time.Duration {
	return time.Duration(c.LockTimeoutMs) * time.Millisecond
}

// ReservationConfig contains reservation lifecycle settings
type ReservationConfig struct {
	RequireApproval bool `mapstructure:"requireApproval"`
}

// SnipeITConfig contains inventory system client settings
type SnipeITConfig struct {
	BaseURL      string        `mapstructure:"baseUrl"`
	APIKey       string        `mapstructure:"apiKey"`
	Timeout      time.Duration `mapstructure:"timeout"` // seconds
	MaxRetries   int           `mapstructure:"maxRetries"`
	RetryDelayMs int64         `mapstructure:"retryDelayMs"` // milliseconds
	PageSize     int           `mapstructure:"pageSize"`
}

// RetryDelay is the first backoff after a 429, doubled per attempt
func (c SnipeITConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// RedisConfig contains catalog cache settings
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"` // seconds
}

// Event publisher drivers
const (
	EventsDriverNone     = "none"
	EventsDriverKafka    = "kafka"
	EventsDriverRabbitMQ = "rabbitmq"
)

// EventsConfig selects and configures the lifecycle event publisher
type EventsConfig struct {
	Driver   string         `mapstructure:"driver"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
}

// KafkaConfig contains Kafka producer settings
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// RabbitMQConfig contains RabbitMQ publisher settings
type RabbitMQConfig struct {
	URL   string `mapstructure:"url"`
	Queue string `mapstructure:"queue"`
}

// WorkerConfig contains background worker settings
type WorkerConfig struct {
	LockCleanupInterval time.Duration `mapstructure:"lockCleanupInterval"` // seconds
}

// MetricsConfig contains Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
