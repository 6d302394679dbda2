package services

import (
	"context"
	"slices"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// LineRequest asks for quantity units of one product.
type LineRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// OrderRequest is the buyer's order as submitted.
type OrderRequest struct {
	UserID            kernel.UUID
	ShippingAddressID *kernel.UUID
	Lines             []LineRequest
}

// OrderBuilder turns an OrderRequest into a PENDING order with its stock reserved.
//
// Business rules:
//   - A user may only order for themself; there is no on-behalf-of ordering
//   - The shipping address is optional but must exist when given
//   - Every line reserves stock through the ledger and snapshots the unit price
//   - Any failure leaves the caller to roll back reservations already made
type OrderBuilder struct {
	users     ports.UserRepository
	addresses ports.ShippingAddressRepository
	inventory ports.InventoryLedger
	now       func() time.Time
}

// NewOrderBuilder creates a builder over transaction-bound collaborators.
func NewOrderBuilder(
	users ports.UserRepository,
	addresses ports.ShippingAddressRepository,
	inventory ports.InventoryLedger,
) OrderBuilder {
	return OrderBuilder{
		users:     users,
		addresses: addresses,
		inventory: inventory,
		now:       time.Now,
	}
}

// Build authorizes requester against req.UserID and reserves every line.
//
// Reservations are issued in ascending product id order, so two multi-line orders
// over the same products take row locks in the same order. Line items keep the
// request order.
//
// Returns errs.ErrObjectNotFound, errs.ErrNotAuthorized, product.ErrInsufficientStock
// or a validation error; errors from collaborators are returned unwrapped.
func (b OrderBuilder) Build(ctx context.Context, requester kernel.Identity, req OrderRequest) (*order.Order, error) {
	caller, err := b.users.GetByIdentity(ctx, requester)
	if err != nil {
		return nil, err
	}
	if !caller.ID().IsEqual(req.UserID) {
		return nil, errs.NewNotAuthorizedError(requester.String(), "cannot place orders for user "+req.UserID.String())
	}

	if len(req.Lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	buyer, err := b.users.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.ShippingAddressID != nil {
		if _, err = b.addresses.Get(ctx, *req.ShippingAddressID); err != nil {
			return nil, err
		}
	}

	items, err := b.reserve(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(kernel.NewUUID(), buyer.ID(), req.ShippingAddressID, items, b.now())
}

func (b OrderBuilder) reserve(ctx context.Context, lines []LineRequest) ([]order.LineItem, error) {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, "unbounded")
		}
		if err := line.ProductID.Validate(); err != nil {
			return nil, err
		}
	}

	lockOrder := make([]int, len(lines))
	for i := range lockOrder {
		lockOrder[i] = i
	}
	slices.SortStableFunc(lockOrder, func(a, c int) int {
		return lines[a].ProductID.Compare(lines[c].ProductID)
	})

	items := make([]order.LineItem, len(lines))
	for _, idx := range lockOrder {
		line := lines[idx]
		reserved, err := b.inventory.Reserve(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(reserved.ID(), reserved.Price(), line.Quantity)
		if err != nil {
			return nil, err
		}
		items[idx] = item
	}

	return items, nil
}
