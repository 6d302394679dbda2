// Package queries contains read-only operations over orders.
// Handlers read outside any unit of work and never lock rows.
package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderReader is the read side of the order repository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
}
