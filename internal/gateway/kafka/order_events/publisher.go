package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orders/internal/entities"
	"orders/internal/gateway/metrics"

	"github.com/IBM/sarama"
)

const serviceName = "kafka"

// Publisher hands new orders to the notifier worker through Kafka. The
// message key is the order id so redeliveries land on one partition.
type Publisher struct {
	producer producer
	topic    string
	now      func() time.Time
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		now:      time.Now,
	}
}

func (p *Publisher) SendOrderCreated(ctx context.Context, order entities.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gateway events, order %s: %w", order.ID, err)
	}

	value, err := json.Marshal(NewOrderCreatedEvent(order, p.now()))
	if err != nil {
		return fmt.Errorf("gateway events, encode order %s: %w", order.ID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(order.ID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(OrderCreatedType)},
		},
	}

	start := time.Now()
	_, _, err = p.producer.SendMessage(msg)
	metrics.ObserveRequest(serviceName, "SendOrderCreated", start, err)
	if err != nil {
		return fmt.Errorf("gateway events, publish order %s: %w", order.ID, err)
	}

	return nil
}
