package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand asks to move an order to a new status on behalf of a
// seller. The target is kept as the raw string; it is parsed by the handler after
// the seller has been authorized.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	sellerIdentity kernel.Identity
	orderID        kernel.UUID
	targetStatus   string

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	sellerIdentity kernel.Identity,
	orderID kernel.UUID,
	targetStatus string,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(sellerIdentity.Validate(), orderID.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		sellerIdentity: sellerIdentity,
		orderID:        orderID,
		targetStatus:   targetStatus,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) SellerIdentity() kernel.Identity {
	return c.sellerIdentity
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) TargetStatus() string {
	return c.targetStatus
}
