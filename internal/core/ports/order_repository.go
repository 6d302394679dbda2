package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Line items are stored and loaded together with their order.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order (its status).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the enclosing
	// transaction finishes. Concurrent status updates on one order serialize on it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByUser returns the user's orders by creation time ascending, id as
	// tie-breaker. An empty slice is returned when the user has none.
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// Delete removes the order and its line items.
	Delete(ctx context.Context, aggregate *order.Order) error
}
