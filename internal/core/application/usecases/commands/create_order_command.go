package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a buyer placing an order.
//
// Example:
//
//	requester, _ := kernel.NewIdentity("buyer@example.com")
//	cmd, err := NewCreateOrderCommand(requester, userID, nil, []services.LineRequest{
//	    {ProductID: productID, Quantity: 3},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requester         kernel.Identity
	userID            kernel.UUID
	shippingAddressID *kernel.UUID
	lines             []services.LineRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the requester, the target user and the lines.
// Quantities must be positive and at least one line is required.
func NewCreateOrderCommand(
	requester kernel.Identity,
	userID kernel.UUID,
	shippingAddressID *kernel.UUID,
	lines []services.LineRequest,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		shippingAddressID: shippingAddressID,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requester),
		cmd.setUserID(userID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Requester() kernel.Identity {
	return c.requester
}

func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateOrderCommand) ShippingAddressID() *kernel.UUID {
	return c.shippingAddressID
}

// Request converts the command into the builder's input.
func (c CreateOrderCommand) Request() services.OrderRequest {
	lines := make([]services.LineRequest, len(c.lines))
	copy(lines, c.lines)
	return services.OrderRequest{
		UserID:            c.userID,
		ShippingAddressID: c.shippingAddressID,
		Lines:             lines,
	}
}

func (c *CreateOrderCommand) setRequester(requester kernel.Identity) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.requester = requester
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.LineRequest) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, "unbounded")
		}
	}
	c.lines = make([]services.LineRequest, len(lines))
	copy(c.lines, lines)
	return nil
}
