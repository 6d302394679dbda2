package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders. Stock reservation for every line, order
// persistence and cart clearing run in one unit of work and commit or roll back
// together.
type CreateOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory PlacementUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the order, stores it and clears the buyer's cart.
// A buyer without a cart fails with errs.ErrDataIntegrity and nothing is kept.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	builder := services.NewOrderBuilder(uow.UserRepository(), uow.ShippingAddressRepository(), uow.InventoryLedger())
	created, err := builder.Build(ctx, cmd.Requester(), cmd.Request())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	carts := uow.CartRepository()
	cart, err := carts.GetByUserID(ctx, created.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewDataIntegrityErrorWithCause("cart", created.UserID(), err)
		}
		return nil, err
	}

	if err = carts.DeleteAllItems(ctx, cart.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
