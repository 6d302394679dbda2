package ports

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
)

// All lookups return errs.ErrObjectNotFound when the entity does not exist.
type (
	UserRepository interface {
		Get(ctx context.Context, id kernel.UUID) (*account.User, error)
		GetByIdentity(ctx context.Context, identity kernel.Identity) (*account.User, error)
	}

	SellerRepository interface {
		GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Seller, error)
	}

	ShippingAddressRepository interface {
		Get(ctx context.Context, id kernel.UUID) (*account.ShippingAddress, error)
	}

	CartRepository interface {
		GetByUserID(ctx context.Context, userID kernel.UUID) (*account.Cart, error)

		// DeleteAllItems purges the cart's items. The cart itself is kept.
		DeleteAllItems(ctx context.Context, cartID kernel.UUID) error
	}
)
