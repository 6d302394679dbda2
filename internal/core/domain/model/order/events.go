package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

const (
	EventCreated       = "order.created"
	EventStatusChanged = "order.status_changed"
	EventRemoved       = "order.removed"
)

// DomainEvent is a fact recorded by the Order aggregate. Events are serialized
// with encoding/json and written to the outbox in the transaction that produced them.
type DomainEvent interface {
	EventName() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
}

// CreatedEventItem is the line item shape carried by CreatedEvent.
type CreatedEventItem struct {
	ProductID string `json:"product_id"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// CreatedEvent is recorded by NewOrder.
type CreatedEvent struct {
	OrderID string             `json:"order_id"`
	UserID  string             `json:"user_id"`
	Total   string             `json:"total"`
	Items   []CreatedEventItem `json:"items"`
	At      time.Time          `json:"occurred_at"`

	id kernel.UUID
}

func (e CreatedEvent) EventName() string        { return EventCreated }
func (e CreatedEvent) AggregateID() kernel.UUID { return e.id }
func (e CreatedEvent) OccurredAt() time.Time    { return e.At }

// StatusChangedEvent is recorded by Order.ChangeStatus.
type StatusChangedEvent struct {
	OrderID string    `json:"order_id"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	At      time.Time `json:"occurred_at"`

	id kernel.UUID
}

func (e StatusChangedEvent) EventName() string        { return EventStatusChanged }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.id }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }

// RemovedEvent is recorded by Order.MarkRemoved.
type RemovedEvent struct {
	OrderID string    `json:"order_id"`
	Status  string    `json:"status"`
	At      time.Time `json:"occurred_at"`

	id kernel.UUID
}

func (e RemovedEvent) EventName() string        { return EventRemoved }
func (e RemovedEvent) AggregateID() kernel.UUID { return e.id }
func (e RemovedEvent) OccurredAt() time.Time    { return e.At }
