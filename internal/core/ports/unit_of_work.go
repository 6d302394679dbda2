package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories returned by it are bound to the transaction started by Begin; before
// Begin they operate without a transaction, which queries rely on.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit writes the domain events of tracked aggregates to the outbox and
	// commits the transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	SellerRepository() SellerRepository
	ShippingAddressRepository() ShippingAddressRepository
	CartRepository() CartRepository
	ProductRepository() ProductRepository
	InventoryLedger() InventoryLedger
	OrderRepository() OrderRepository
	OutboxRepository() OutboxRepository
}
