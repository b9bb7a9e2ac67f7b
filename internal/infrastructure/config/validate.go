package config

import (
	"fmt"
	"strings"
	"time"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate ensures all required configuration values are present. The
// returned error names every missing key, not just the first.
func (c *Config) Validate() error {
	var missing []string
	require := func(ok bool, key string) {
		if !ok {
			missing = append(missing, key)
		}
	}

	require(c.Server.Port != 0, "server.port")
	require(c.Server.ReadTimeout != 0, "server.readTimeout")
	require(c.Server.WriteTimeout != 0, "server.writeTimeout")
	require(c.Server.ShutdownTimeout != 0, "server.shutdownTimeout")

	require(c.Database.Host != "", "database.host (or CAGE_DB_HOST)")
	require(c.Database.Port != "", "database.port (or CAGE_DB_PORT)")
	require(c.Database.Username != "", "database.username (or CAGE_DB_USERNAME)")
	require(c.Database.Password != "", "database.password (or CAGE_DB_PASSWORD)")
	require(c.Database.Database != "", "database.database (or CAGE_DB_NAME)")
	require(c.Database.QueryTimeout != 0, "database.queryTimeout")

	require(c.Logger.Level != "", "logger.level")
	require(c.Calendar.Timezone != "", "calendar.timezone")
	require(c.Admission.WeeklyLimit > 0, "admission.weeklyLimit")
	require(c.Admission.LockTimeoutMs > 0, "admission.lockTimeoutMs")
	require(c.Admission.LockTTL > 0, "admission.lockTtl")

	require(c.SnipeIT.BaseURL != "", "snipeit.baseUrl (or CAGE_SNIPEIT_BASE_URL)")
	require(c.SnipeIT.APIKey != "", "snipeit.apiKey (or CAGE_SNIPEIT_API_KEY)")

	if c.Redis.Enabled {
		require(c.Redis.Addr != "", "redis.addr")
	}
	switch c.Events.Driver {
	case EventsDriverKafka:
		require(len(c.Events.Kafka.Brokers) > 0, "events.kafka.brokers (or CAGE_KAFKA_BROKERS)")
		require(c.Events.Kafka.Topic != "", "events.kafka.topic")
	case EventsDriverRabbitMQ:
		require(c.Events.RabbitMQ.URL != "", "events.rabbitmq.url (or CAGE_RABBITMQ_URL)")
		require(c.Events.RabbitMQ.Queue != "", "events.rabbitmq.queue")
	}
	require(c.Worker.LockCleanupInterval > 0, "worker.lockCleanupInterval")

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	switch c.Environment {
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}
	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logger.Level)
	}
	switch c.Events.Driver {
	case EventsDriverNone, EventsDriverKafka, EventsDriverRabbitMQ:
	default:
		return fmt.Errorf("invalid events driver: %s", c.Events.Driver)
	}
	if c.Admission.BufferMinutes < 0 {
		return fmt.Errorf("admission.bufferMinutes must be non-negative, got: %d", c.Admission.BufferMinutes)
	}
	if _, err := c.Calendar.Location(); err != nil {
		return err
	}

	return nil
}

// ProductionWarnings reports settings that are legal but unsafe in production
func (c *Config) ProductionWarnings() []string {
	if c.Environment != Production {
		return nil
	}

	var warnings []string
	switch strings.ToLower(c.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
	}
	if c.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if c.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	if !strings.HasPrefix(c.SnipeIT.BaseURL, "https://") {
		warnings = append(warnings, "snipeit.baseUrl should use https in production")
	}
	return warnings
}
