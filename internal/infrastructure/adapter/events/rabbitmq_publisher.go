package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	coreport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/core"
	eventsport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/events"
)

// amqpChannel is the subset of *amqp.Channel the publisher needs
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes reservation events to a durable queue
type RabbitMQPublisher struct {
	conn         *amqp.Connection
	channel      amqpChannel
	queue        string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRabbitMQPublisher dials url and declares the queue
func NewRabbitMQPublisher(url, queue string, timeProvider coreport.TimeProvider, logger coreport.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	q, err := channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logger.Info("RabbitMQ event publisher connected", map[string]any{
		"queue": q.Name,
	})

	p := newRabbitMQPublisher(channel, q.Name, timeProvider, logger)
	p.conn = conn
	return p, nil
}

func newRabbitMQPublisher(channel amqpChannel, queue string, timeProvider coreport.TimeProvider, logger coreport.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		channel:      channel,
		queue:        queue,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Publish sends one persistent message to the queue
func (p *RabbitMQPublisher) Publish(ctx context.Context, event eventsport.ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         string(event.Type),
			MessageId:    event.ReservationID + ":" + string(event.Type),
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    p.timeProvider.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("Published reservation event", map[string]any{
		"event_type":     string(event.Type),
		"reservation_id": event.ReservationID,
		"driver":         "rabbitmq",
	})
	return nil
}

// Close closes the channel and the connection
func (p *RabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
