package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventsport "github.com/amirhossein-jamali/cage-reservations/internal/domain/port/events"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/config"
	"github.com/amirhossein-jamali/cage-reservations/internal/testutil/memory"
)

var now = time.Date(2030, 3, 4, 16, 0, 0, 0, time.UTC)

func sampleEvent() eventsport.ReservationEvent {
	return eventsport.ReservationEvent{
		Type:          eventsport.EventReservationCheckedOut,
		ReservationID: "7d0c4b1e-8a55-4c3e-9f44-0c6f3f0e2a11",
		AssetID:       42,
		UserID:        "student-1",
		Category:      "Camera",
		Status:        "CHECKED_OUT",
		OccurredAt:    now,
	}
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, memory.NewClock(now), logger.NewNoopLogger())

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "7d0c4b1e-8a55-4c3e-9f44-0c6f3f0e2a11", string(msg.Key))
	assert.Equal(t, now, msg.Time)
	assert.Equal(t, "reservation.checked_out", string(msg.Headers[0].Value))

	var decoded eventsport.ReservationEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, uint64(42), decoded.AssetID)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("leader not available")}
	publisher := newKafkaPublisher(writer, memory.NewClock(now), logger.NewNoopLogger())

	err := publisher.Publish(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "leader not available")
}

type fakeChannel struct {
	key        string
	publishing amqp.Publishing
	closed     bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	c.key = key
	c.publishing = msg
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	channel := &fakeChannel{}
	publisher := newRabbitMQPublisher(channel, "cage.reservations", memory.NewClock(now), logger.NewNoopLogger())

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	assert.Equal(t, "cage.reservations", channel.key)
	assert.Equal(t, "reservation.checked_out", channel.publishing.Type)
	assert.Equal(t, uint8(amqp.Persistent), channel.publishing.DeliveryMode)
	assert.Equal(t, "application/json", channel.publishing.ContentType)
	assert.Contains(t, string(channel.publishing.Body), `"reservationId":"7d0c4b1e-8a55-4c3e-9f44-0c6f3f0e2a11"`)

	require.NoError(t, publisher.Close())
	assert.True(t, channel.closed)
}

func TestNewPublisher(t *testing.T) {
	clock := memory.NewClock(now)
	log := logger.NewNoopLogger()

	publisher, err := NewPublisher(config.EventsConfig{Driver: config.EventsDriverNone}, clock, log)
	require.NoError(t, err)
	assert.IsType(t, NoopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), sampleEvent()))

	publisher, err = NewPublisher(config.EventsConfig{
		Driver: config.EventsDriverKafka,
		Kafka:  config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "cage.reservations"},
	}, clock, log)
	require.NoError(t, err)
	assert.IsType(t, &KafkaPublisher{}, publisher)

	_, err = NewPublisher(config.EventsConfig{Driver: config.EventsDriverKafka}, clock, log)
	assert.Error(t, err)

	_, err = NewPublisher(config.EventsConfig{Driver: config.EventsDriverRabbitMQ}, clock, log)
	assert.Error(t, err)

	_, err = NewPublisher(config.EventsConfig{Driver: "carrier-pigeon"}, clock, log)
	assert.ErrorContains(t, err, "unknown events driver")
}
