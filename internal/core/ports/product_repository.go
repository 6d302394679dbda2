package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository reads and writes catalog products.
type ProductRepository interface {
	// Get returns errs.ErrObjectNotFound when the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	Update(ctx context.Context, aggregate *product.Product) error
}

// InventoryLedger owns per-product stock.
type InventoryLedger interface {
	// Reserve checks stock >= quantity and decrements it as one step relative to
	// other reservations of the same product. It must run inside the caller's
	// transaction so that the decrement commits or rolls back with the order.
	//
	// Fails with errs.ErrObjectNotFound or product.ErrInsufficientStock; on failure
	// stock is not changed.
	Reserve(ctx context.Context, productID kernel.UUID, quantity int) (*product.Product, error)
}
