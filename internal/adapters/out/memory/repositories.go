package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/ecodeclub/ekit/slice"
)

type userRepository struct{ uow *UnitOfWork }

func (r userRepository) Get(_ context.Context, id kernel.UUID) (*account.User, error) {
	var u *account.User
	err := r.uow.read(func(s *state) error {
		found, ok := s.users[id]
		if !ok {
			return errs.NewObjectNotFoundError("user", id.String())
		}
		u = found
		return nil
	})
	return u, err
}

func (r userRepository) GetByIdentity(_ context.Context, identity kernel.Identity) (*account.User, error) {
	var u *account.User
	err := r.uow.read(func(s *state) error {
		id, ok := s.identities[identity.String()]
		if !ok {
			return errs.NewObjectNotFoundError("identity", identity.String())
		}
		u = s.users[id]
		return nil
	})
	return u, err
}

type sellerRepository struct{ uow *UnitOfWork }

func (r sellerRepository) GetByUserID(_ context.Context, userID kernel.UUID) (*account.Seller, error) {
	var seller *account.Seller
	err := r.uow.read(func(s *state) error {
		found, ok := s.sellers[userID]
		if !ok {
			return errs.NewObjectNotFoundError("seller", userID.String())
		}
		seller = found
		return nil
	})
	return seller, err
}

type shippingAddressRepository struct{ uow *UnitOfWork }

func (r shippingAddressRepository) Get(_ context.Context, id kernel.UUID) (*account.ShippingAddress, error) {
	var address *account.ShippingAddress
	err := r.uow.read(func(s *state) error {
		found, ok := s.addresses[id]
		if !ok {
			return errs.NewObjectNotFoundError("shipping address", id.String())
		}
		address = found
		return nil
	})
	return address, err
}

type cartRepository struct{ uow *UnitOfWork }

func (r cartRepository) GetByUserID(_ context.Context, userID kernel.UUID) (*account.Cart, error) {
	var cart *account.Cart
	err := r.uow.read(func(s *state) error {
		found, ok := s.carts[userID]
		if !ok {
			return errs.NewObjectNotFoundError("cart", userID.String())
		}
		cart = found.cart
		return nil
	})
	return cart, err
}

func (r cartRepository) DeleteAllItems(_ context.Context, cartID kernel.UUID) error {
	return r.uow.write(func(s *state) error {
		for userID, c := range s.carts {
			if c.cart.ID().IsEqual(cartID) {
				c.items = 0
				s.carts[userID] = c
			}
		}
		return nil
	})
}

// productRepository serves both ProductRepository and InventoryLedger.
type productRepository struct{ uow *UnitOfWork }

func (r productRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	var p *product.Product
	err := r.uow.read(func(s *state) error {
		record, ok := s.products[id]
		if !ok {
			return errs.NewObjectNotFoundError("product", id.String())
		}
		restored, err := record.toDomain(id)
		p = restored
		return err
	})
	return p, err
}

func (r productRepository) Update(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.uow.write(func(s *state) error {
		if _, ok := s.products[p.ID()]; !ok {
			return errs.NewObjectNotFoundError("product", p.ID().String())
		}
		s.products[p.ID()] = fromProduct(p)
		return nil
	})
}

func (r productRepository) Reserve(_ context.Context, productID kernel.UUID, quantity int) (*product.Product, error) {
	var p *product.Product
	err := r.uow.write(func(s *state) error {
		record, ok := s.products[productID]
		if !ok {
			return errs.NewObjectNotFoundError("product", productID.String())
		}
		restored, err := record.toDomain(productID)
		if err != nil {
			return err
		}
		if err = restored.Reserve(quantity); err != nil {
			return err
		}
		s.products[productID] = fromProduct(restored)
		p = restored
		return nil
	})
	return p, err
}

type orderRepository struct{ uow *UnitOfWork }

func (r orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	err := r.uow.write(func(s *state) error {
		if _, ok := s.orders[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidError("order id")
		}
		s.orders[aggregate.ID()] = fromOrder(aggregate)
		return nil
	})
	if err != nil {
		return err
	}
	r.uow.track(aggregate)
	return nil
}

func (r orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	err := r.uow.write(func(s *state) error {
		record, ok := s.orders[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		record.status = aggregate.Status()
		s.orders[aggregate.ID()] = record
		return nil
	})
	if err != nil {
		return err
	}
	r.uow.track(aggregate)
	return nil
}

func (r orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	var o *order.Order
	err := r.uow.read(func(s *state) error {
		record, ok := s.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		restored, err := record.toDomain(id)
		o = restored
		return err
	})
	return o, err
}

// GetForUpdate is Get; the transaction already holds the store-wide lock.
func (r orderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r orderRepository) ListByUser(_ context.Context, userID kernel.UUID) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	err := r.uow.read(func(s *state) error {
		for id, record := range s.orders {
			if !record.userID.IsEqual(userID) {
				continue
			}
			restored, err := record.toDomain(id)
			if err != nil {
				return err
			}
			orders = append(orders, restored)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(orders, func(a, b *order.Order) int {
		return cmp.Or(a.CreatedAt().Compare(b.CreatedAt()), a.ID().Compare(b.ID()))
	})
	return orders, nil
}

func (r orderRepository) Delete(_ context.Context, aggregate *order.Order) error {
	err := r.uow.write(func(s *state) error {
		if _, ok := s.orders[aggregate.ID()]; !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		delete(s.orders, aggregate.ID())
		return nil
	})
	if err != nil {
		return err
	}
	r.uow.track(aggregate)
	return nil
}

type outboxRepository struct{ uow *UnitOfWork }

func (r outboxRepository) Add(_ context.Context, messages ...ports.OutboxMessage) error {
	return r.uow.write(func(s *state) error {
		s.outbox = append(s.outbox, messages...)
		return nil
	})
}

// FetchPending returns unsent messages in insertion order.
func (r outboxRepository) FetchPending(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	var pending []ports.OutboxMessage
	err := r.uow.read(func(s *state) error {
		pending = slice.FindAll(s.outbox, func(m ports.OutboxMessage) bool {
			return m.SentAt == nil
		})
		return nil
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending, err
}

func (r outboxRepository) MarkSent(_ context.Context, ids []kernel.UUID, sentAt time.Time) error {
	sent := slice.ToMap(ids, func(id kernel.UUID) kernel.UUID { return id })
	return r.uow.write(func(s *state) error {
		at := sentAt.UTC()
		for i := range s.outbox {
			if _, ok := sent[s.outbox[i].ID]; ok {
				s.outbox[i].SentAt = &at
			}
		}
		return nil
	})
}
