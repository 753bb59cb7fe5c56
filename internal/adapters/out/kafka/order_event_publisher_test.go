package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/core/ports"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const topic = "orders.changed"

func newEvent(orderID, status string) ports.OrderChangedEvent {
	return ports.OrderChangedEvent{
		OrderID:    orderID,
		Number:     "ORD-20261016-ABC123",
		Status:     status,
		OccurredAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewOrderEventPublisher_RequiresTopic(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	_, err := kafka.NewOrderEventPublisher(producer, "")

	require.ErrorIs(t, err, kafka.ErrTopicIsRequired)
}

func TestOrderEventPublisher_PublishOne(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	event := newEvent("7f1c4b1e-0000-4000-8000-000000000001", "Assigned")
	event.DriverID = "7f1c4b1e-0000-4000-8000-0000000000d1"

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != topic {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != event.OrderID {
			return errors.New("message is not keyed by order id")
		}
		return nil
	})
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var got ports.OrderChangedEvent
		if err := json.Unmarshal(value, &got); err != nil {
			return err
		}
		if got.OrderID != event.OrderID || got.Status != event.Status ||
			got.DriverID != event.DriverID || !got.OccurredAt.Equal(event.OccurredAt) {
			return errors.New("payload does not match event")
		}
		return nil
	})

	publisher, err := kafka.NewOrderEventPublisher(producer, topic)
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(t.Context(), event))
	require.NoError(t, publisher.Publish(t.Context(), event))
	require.NoError(t, publisher.Close())
}

func TestOrderEventPublisher_PublishBatch(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndSucceed()
	producer.ExpectSendMessageAndSucceed()

	publisher, err := kafka.NewOrderEventPublisher(producer, topic)
	require.NoError(t, err)

	err = publisher.Publish(t.Context(),
		newEvent("7f1c4b1e-0000-4000-8000-000000000001", "Created"),
		newEvent("7f1c4b1e-0000-4000-8000-000000000002", "PickedUp"),
	)

	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestOrderEventPublisher_PublishFails(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher, err := kafka.NewOrderEventPublisher(producer, topic)
	require.NoError(t, err)

	err = publisher.Publish(t.Context(), newEvent("7f1c4b1e-0000-4000-8000-000000000001", "Completed"))

	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestOrderEventPublisher_NothingToPublish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	publisher, err := kafka.NewOrderEventPublisher(producer, topic)
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(t.Context()))
	require.NoError(t, publisher.Close())
}

func TestOrderEventPublisher_CanceledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	publisher, err := kafka.NewOrderEventPublisher(producer, topic)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err = publisher.Publish(ctx, newEvent("7f1c4b1e-0000-4000-8000-000000000001", "Created"))

	assert.ErrorIs(t, err, context.Canceled)
	require.NoError(t, publisher.Close())
}
