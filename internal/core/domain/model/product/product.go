package product

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product bypassed NewProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is the sentinel for reservations larger than the available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a reservation that the product cannot satisfy.
type InsufficientStockError struct {
	ProductID   kernel.UUID
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %q (%s) has %d, requested %d",
		ErrInsufficientStock, e.ProductName, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is a catalog entry with a non-negative stock counter.
type Product struct {
	id       kernel.UUID
	sellerID kernel.UUID
	name     string
	price    kernel.Money
	stock    int

	guard guard.ConstructorGuard
}

// NewProduct validates identifiers, requires a name and a non-negative stock.
func NewProduct(id, sellerID kernel.UUID, name string, price kernel.Money, stock int) (*Product, error) {
	name = strings.TrimSpace(name)

	var nameErr, stockErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if stock < 0 {
		stockErr = errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	if err := errors.Join(id.Validate(), sellerID.Validate(), nameErr, stockErr); err != nil {
		return nil, err
	}

	return &Product{
		id:       id,
		sellerID: sellerID,
		name:     name,
		price:    price,
		stock:    stock,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(id, sellerID kernel.UUID, name string, price kernel.Money, stock int) (*Product, error) {
	return NewProduct(id, sellerID, name, price, stock)
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID       { return p.id }
func (p *Product) SellerID() kernel.UUID { return p.sellerID }
func (p *Product) Name() string          { return p.name }
func (p *Product) Price() kernel.Money   { return p.price }
func (p *Product) Stock() int            { return p.stock }

// Reserve decrements stock by exactly quantity.
//
// Returns:
//   - errs.ValueIsOutOfRangeError if quantity is not positive
//   - *InsufficientStockError if stock < quantity; stock is left unchanged
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if p.stock < quantity {
		return &InsufficientStockError{
			ProductID:   p.id,
			ProductName: p.name,
			Requested:   quantity,
			Available:   p.stock,
		}
	}
	p.stock -= quantity
	return nil
}

// IsOwnedBy reports whether sellerID listed this product.
func (p *Product) IsOwnedBy(sellerID kernel.UUID) bool {
	return p.sellerID.IsEqual(sellerID)
}
