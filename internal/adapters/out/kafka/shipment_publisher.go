// Package kafka publishes shipment notifications to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"sales/internal/core/ports"

	"github.com/IBM/sarama"
)

// EventTypeOrderShipped is the event type of every message sent by ShipmentPublisher.
const EventTypeOrderShipped = "order.shipped"

// ShipmentEnvelope is the JSON value of a published message. Payload is the order
// snapshot recorded when the order was shipped.
type ShipmentEnvelope struct {
	ID          string          `json:"id"`
	OrderID     int64           `json:"orderId"`
	EventType   string          `json:"eventType"`
	Payload     json.RawMessage `json:"payload"`
	PublishedAt time.Time       `json:"publishedAt"`
}

// ShipmentPublisher implements ports.NotificationPublisher on top of a sarama
// SyncProducer. Messages are keyed by order id so every notification about one order
// lands on the same partition.
type ShipmentPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewShipmentPublisher connects an idempotent producer to brokers.
func NewShipmentPublisher(brokers []string, topic string, logger *slog.Logger) (*ShipmentPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return NewShipmentPublisherWithProducer(producer, topic, logger), nil
}

// NewShipmentPublisherWithProducer uses an existing producer.
func NewShipmentPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *ShipmentPublisher {
	return &ShipmentPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka-shipment-publisher"),
	}
}

// Publish sends one notification and waits for the broker acknowledgement.
func (p *ShipmentPublisher) Publish(ctx context.Context, notification ports.ShipmentNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := time.Now().UTC()
	value, err := json.Marshal(ShipmentEnvelope{
		ID:          notification.ID.String(),
		OrderID:     notification.OrderID,
		EventType:   EventTypeOrderShipped,
		Payload:     json.RawMessage(notification.Payload),
		PublishedAt: now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal shipment notification: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(notification.OrderID, 10)),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(EventTypeOrderShipped)},
		},
		Timestamp: now,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to send shipment notification",
			"topic", p.topic,
			"orderId", notification.OrderID,
			"error", err,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.DebugContext(ctx, "shipment notification sent",
		"topic", p.topic,
		"orderId", notification.OrderID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

// Close flushes and closes the producer.
func (p *ShipmentPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
