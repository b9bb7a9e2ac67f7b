package events

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	eventsport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/events"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/config"
)

// NoopPublisher drops every event
type NoopPublisher struct{}

// Publish implements events.Publisher
func (NoopPublisher) Publish(context.Context, eventsport.ReservationEvent) error { return nil }

// Close implements events.Publisher
func (NoopPublisher) Close() error { return nil }

// NewPublisher builds the publisher selected by cfg.Driver
func NewPublisher(cfg config.EventsConfig, timeProvider coreport.TimeProvider, logger coreport.Logger) (eventsport.Publisher, error) {
	switch cfg.Driver {
	case config.EventsDriverNone, "":
		return NoopPublisher{}, nil
	case config.EventsDriverKafka:
		if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" {
			return nil, fmt.Errorf("events.kafka.brokers and events.kafka.topic are required")
		}
		return NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, timeProvider, logger), nil
	case config.EventsDriverRabbitMQ:
		if cfg.RabbitMQ.URL == "" || cfg.RabbitMQ.Queue == "" {
			return nil, fmt.Errorf("events.rabbitmq.url and events.rabbitmq.queue are required")
		}
		return NewRabbitMQPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, timeProvider, logger)
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
	}
}
