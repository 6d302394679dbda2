package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/ecodeclub/ekit/slice"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a purchase. It owns its line items, remembers the
// total computed at creation and moves through the status machine.
//
// Order follows these invariants:
//   - Identifier and user identifier are valid UUIDs
//   - There is at least one line item
//   - Total equals the sum of line subtotals at creation and is never recomputed
//   - Status changes only along the transition table
type Order struct {
	id                kernel.UUID
	userID            kernel.UUID
	shippingAddressID *kernel.UUID
	items             []LineItem
	total             kernel.Money
	status            Status
	createdAt         time.Time

	events []DomainEvent
	guard  guard.ConstructorGuard
}

// NewOrder creates a PENDING order from already reserved line items.
//
// Parameters:
//   - id: unique identifier for the order
//   - userID: the buyer
//   - shippingAddressID: optional, nil when the buyer did not pick one
//   - items: at least one line item
//   - createdAt: creation timestamp, stored in UTC
//
// The order records a CreatedEvent.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	shippingAddressID *kernel.UUID,
	items []LineItem,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIdentity(id, userID, shippingAddressID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total
	o.createdAt = createdAt.UTC()

	o.record(CreatedEvent{
		OrderID: o.id.String(),
		UserID:  o.userID.String(),
		Total:   o.total.String(),
		Items: slice.Map(o.items, func(_ int, li LineItem) CreatedEventItem {
			return CreatedEventItem{
				ProductID: li.productID.String(),
				UnitPrice: li.unitPrice.String(),
				Quantity:  li.quantity,
			}
		}),
		At: o.createdAt,
		id: o.id,
	})

	return o, nil
}

// RestoreOrder rebuilds an order from storage. The stored total is kept as is and
// no events are recorded.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	shippingAddressID *kernel.UUID,
	items []LineItem,
	total kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setIdentity(id, userID, shippingAddressID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.total = total
	o.status = status
	o.createdAt = createdAt.UTC()
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ShippingAddressID returns nil when no address was chosen.
func (o *Order) ShippingAddressID() *kernel.UUID {
	return o.shippingAddressID
}

// Items returns a copy of the line items in request order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ProductIDs returns the distinct product ids referenced by the line items, in
// first-seen order.
func (o *Order) ProductIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.items))
	ids := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		if _, ok := seen[item.productID]; ok {
			continue
		}
		seen[item.productID] = struct{}{}
		ids = append(ids, item.productID)
	}
	return ids
}

// ChangeStatus moves the order to target if the transition table allows it.
// On failure the status is left untouched and *IllegalTransitionError is returned.
func (o *Order) ChangeStatus(target Status) error {
	from := o.status
	next, err := from.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	o.record(StatusChangedEvent{
		OrderID: o.id.String(),
		From:    from.String(),
		To:      next.String(),
		At:      time.Now().UTC(),
		id:      o.id,
	})
	return nil
}

// MarkRemoved records that the order is about to be deleted. Removal is not a
// status and bypasses the transition table.
func (o *Order) MarkRemoved() {
	o.record(RemovedEvent{
		OrderID: o.id.String(),
		Status:  o.status.String(),
		At:      time.Now().UTC(),
		id:      o.id,
	})
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []DomainEvent {
	return o.events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(event DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) setIdentity(id, userID kernel.UUID, shippingAddressID *kernel.UUID) error {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return err
	}
	if shippingAddressID != nil {
		if err := shippingAddressID.Validate(); err != nil {
			return err
		}
		addr := *shippingAddressID
		o.shippingAddressID = &addr
	}
	o.id = id
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.quantity <= 0 || item.productID.Validate() != nil {
			return errs.NewValueIsInvalidError("items")
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
