package order

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// LineItem is one product line of an order. The unit price is a snapshot of the
// product price taken when stock was reserved; later catalog price changes do not
// affect it.
type LineItem struct {
	productID kernel.UUID
	unitPrice kernel.Money
	quantity  int
}

// NewLineItem validates the product id and requires a positive quantity.
func NewLineItem(productID kernel.UUID, unitPrice kernel.Money, quantity int) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return LineItem{productID: productID, unitPrice: unitPrice, quantity: quantity}, nil
}

func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns unit price × quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.unitPrice.Times(li.quantity)
}
