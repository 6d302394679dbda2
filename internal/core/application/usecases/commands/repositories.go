// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	SellerRepoFactory interface {
		SellerRepository() ports.SellerRepository
	}

	ShippingAddressRepoFactory interface {
		ShippingAddressRepository() ports.ShippingAddressRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	InventoryLedgerFactory interface {
		InventoryLedger() ports.InventoryLedger
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW spans everything order placement touches: the buyer, the
	// address, product stock, the new order and the buyer's cart.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   builder := services.NewOrderBuilder(uow.UserRepository(),
	//       uow.ShippingAddressRepository(), uow.InventoryLedger())
	//   // ... build, add, clear cart
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		UserRepoFactory
		ShippingAddressRepoFactory
		InventoryLedgerFactory
		OrderRepoFactory
		CartRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// StatusUoW spans a status update: seller resolution, the locked order and
	// the catalog lookups of the ownership check.
	StatusUoW interface {
		TxManager
		UserRepoFactory
		SellerRepoFactory
		OrderRepoFactory
		ProductRepoFactory
	}

	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// OutboxUoW locks a batch of pending outbox messages until they are marked sent.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
