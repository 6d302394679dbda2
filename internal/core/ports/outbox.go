package ports

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OutboxMessage is a serialized domain event waiting to be relayed.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	AggregateID kernel.UUID
	Payload     []byte
	CreatedAt   time.Time
	SentAt      *time.Time
}

// OutboxRepository stores domain events in the same transaction as the aggregate
// that produced them.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// FetchPending returns at most limit unsent messages, oldest first.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkSent(ctx context.Context, ids []kernel.UUID, sentAt time.Time) error
}

// EventPublisher delivers relayed messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}

// NewOutboxMessage serializes a domain event into a pending outbox message.
func NewOutboxMessage(event order.DomainEvent) (OutboxMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessage{}, err
	}
	return OutboxMessage{
		ID:          kernel.NewUUID(),
		EventName:   event.EventName(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		CreatedAt:   event.OccurredAt(),
	}, nil
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []order.DomainEvent
	ClearDomainEvents()
}
