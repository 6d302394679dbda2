// Package kafka relays outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"strings"

	"marketplace/internal/core/ports"

	"github.com/ecodeclub/ekit/slice"
	"github.com/segmentio/kafka-go"
)

// EventNameHeader carries the domain event name of every published message.
const EventNameHeader = "event-name"

// Brokers splits a comma separated broker list, dropping blanks.
func Brokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewWriter builds a writer that hashes keys to partitions and waits for the
// leader's acknowledgement.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher implements ports.EventPublisher. Messages are keyed by aggregate id,
// so the events of one order keep their order within a partition.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	return p.writer.WriteMessages(ctx, slice.Map(messages, func(_ int, m ports.OutboxMessage) kafka.Message {
		return kafka.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.CreatedAt.UTC(),
			Headers: []kafka.Header{
				{Key: EventNameHeader, Value: []byte(m.EventName)},
				{Key: "message-id", Value: []byte(m.ID.String())},
			},
		}
	})...)
}
