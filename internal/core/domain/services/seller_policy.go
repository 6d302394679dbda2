package services

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// SellerPolicy grants a seller control over an order when at least one of the
// order's line items is a product the seller owns.
type SellerPolicy struct {
	products ports.ProductRepository
}

func NewSellerPolicy(products ports.ProductRepository) SellerPolicy {
	return SellerPolicy{products: products}
}

// Authorize returns errs.ErrNotAuthorized when the seller owns none of the order's
// products. Products that no longer exist in the catalog count as not owned.
func (p SellerPolicy) Authorize(ctx context.Context, seller *account.Seller, o *order.Order) error {
	for _, productID := range o.ProductIDs() {
		prod, err := p.products.Get(ctx, productID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if prod.IsOwnedBy(seller.ID()) {
			return nil
		}
	}

	return errs.NewNotAuthorizedError("seller "+seller.ID().String(), "owns no product of order "+o.ID().String())
}
