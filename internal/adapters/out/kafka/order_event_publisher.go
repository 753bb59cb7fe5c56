// Package kafka publishes domain integration events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"marketplace/internal/core/ports"

	"github.com/Shopify/sarama"
)

var ErrTopicIsRequired = errors.New("kafka topic is required")

// OrderEventPublisher writes OrderChanged events as JSON, keyed by order id so one
// order's events stay ordered within a partition.
type OrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewOrderEventPublisher(producer sarama.SyncProducer, topic string) (*OrderEventPublisher, error) {
	if producer == nil {
		return nil, errors.New("kafka producer is required")
	}
	if topic == "" {
		return nil, ErrTopicIsRequired
	}
	return &OrderEventPublisher{
		producer: producer,
		topic:    topic,
	}, nil
}

// NewSyncProducer connects a producer that waits for every message to be acknowledged.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return producer, nil
}

func (p *OrderEventPublisher) Publish(ctx context.Context, events ...ports.OrderChangedEvent) error {
	if len(events) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encode order event %s: %w", event.OrderID, err)
		}
		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(event.OrderID),
			Value: sarama.ByteEncoder(value),
			Headers: []sarama.RecordHeader{
				{Key: []byte("event-type"), Value: []byte("OrderChanged")},
			},
		})
	}

	if len(messages) == 1 {
		_, _, err := p.producer.SendMessage(messages[0])
		return err
	}
	return p.producer.SendMessages(messages)
}

func (p *OrderEventPublisher) Close() error {
	return p.producer.Close()
}
