package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	eventsport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/events"
)

// messageWriter is the subset of *kafka.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes reservation events to a Kafka topic keyed by reservation id
type KafkaPublisher struct {
	writer       messageWriter
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on brokers
func NewKafkaPublisher(brokers []string, topic string, timeProvider coreport.TimeProvider, logger coreport.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	logger.Info("Kafka event publisher configured", map[string]any{
		"brokers": brokers,
		"topic":   topic,
	})
	return newKafkaPublisher(writer, timeProvider, logger)
}

func newKafkaPublisher(writer messageWriter, timeProvider coreport.TimeProvider, logger coreport.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:       writer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Publish writes one event. Events for the same reservation land on the same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event eventsport.ReservationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ReservationID),
		Value: value,
		Time:  p.timeProvider.Now(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write event to Kafka: %w", err)
	}

	p.logger.Debug("Published reservation event", map[string]any{
		"event_type":     string(event.Type),
		"reservation_id": event.ReservationID,
		"driver":         "kafka",
	})
	return nil
}

// Close flushes and closes the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
