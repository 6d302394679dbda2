package commands

import (
	"context"
)

// CancelOrderCommandHandler deletes an order with its line items in any status.
// Reserved stock is not returned to the products.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	target, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	target.MarkRemoved()
	if err = orders.Delete(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
