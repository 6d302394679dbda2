package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// ListUserOrdersQueryHandler lists a user's orders by creation time ascending,
// id as tie-breaker.
type ListUserOrdersQueryHandler struct {
	orders OrderReader
}

func NewListUserOrdersQueryHandler(orders OrderReader) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{orders: orders}
}

// Handle never returns a nil slice on success; a user without orders (or an
// unknown user) yields an empty list.
func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListByUser(ctx, query.UserID())
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
