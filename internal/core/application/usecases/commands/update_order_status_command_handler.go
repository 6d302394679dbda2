package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler runs the status machine for a seller.
//
// The order row stays locked from read to write, so concurrent updates of one
// order are validated against the state the previous update committed.
type UpdateOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory StatusUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the seller, locks the order, checks ownership, parses the target
// status and applies the transition.
//
// Failures in that order: errs.ErrObjectNotFound (seller or order),
// errs.ErrNotAuthorized, order.ErrInvalidStatusValue, order.ErrIllegalTransition.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	user, err := uow.UserRepository().GetByIdentity(ctx, cmd.SellerIdentity())
	if err != nil {
		return nil, err
	}

	seller, err := uow.SellerRepository().GetByUserID(ctx, user.ID())
	if err != nil {
		return nil, err
	}

	orders := uow.OrderRepository()
	target, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = services.NewSellerPolicy(uow.ProductRepository()).Authorize(ctx, seller, target); err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(cmd.TargetStatus())
	if err != nil {
		return nil, err
	}

	if err = target.ChangeStatus(status); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
