package memory

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a preceding Begin.
var ErrNoTransaction = errors.New("memory: no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes with every other unit of work of the same Store.
// It must not be shared between goroutines.
type UnitOfWork struct {
	store    *Store
	active   bool
	snapshot state
	tracked  []ports.EventSource
}

// Begin acquires the store write lock and snapshots the state. A second Begin on
// an active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.snapshot = uow.store.data.clone()
	uow.active = true
	return nil
}

// Commit appends the domain events of tracked aggregates to the outbox and
// releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}

	messages := make([]ports.OutboxMessage, 0)
	for _, source := range uow.tracked {
		for _, event := range source.DomainEvents() {
			msg, err := ports.NewOutboxMessage(event)
			if err != nil {
				return err
			}
			messages = append(messages, msg)
		}
	}
	uow.store.data.outbox = append(uow.store.data.outbox, messages...)

	uow.finish()
	for _, source := range uow.tracked {
		source.ClearDomainEvents()
	}
	uow.tracked = nil
	return nil
}

// Rollback restores the snapshot taken at Begin and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}

	uow.store.data = uow.snapshot
	uow.finish()
	uow.tracked = nil
	return nil
}

func (uow *UnitOfWork) finish() {
	uow.snapshot = state{}
	uow.active = false
	uow.store.mu.Unlock()
}

// read runs fn against the state, taking the read lock when no transaction is open.
func (uow *UnitOfWork) read(fn func(s *state) error) error {
	if uow.active {
		return fn(&uow.store.data)
	}
	uow.store.mu.RLock()
	defer uow.store.mu.RUnlock()
	return fn(&uow.store.data)
}

// write runs fn against the state, taking the write lock when no transaction is open.
func (uow *UnitOfWork) write(fn func(s *state) error) error {
	if uow.active {
		return fn(&uow.store.data)
	}
	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()
	return fn(&uow.store.data)
}

func (uow *UnitOfWork) track(source ports.EventSource) {
	for _, tracked := range uow.tracked {
		if tracked == source {
			return
		}
	}
	uow.tracked = append(uow.tracked, source)
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return userRepository{uow: uow}
}

func (uow *UnitOfWork) SellerRepository() ports.SellerRepository {
	return sellerRepository{uow: uow}
}

func (uow *UnitOfWork) ShippingAddressRepository() ports.ShippingAddressRepository {
	return shippingAddressRepository{uow: uow}
}

func (uow *UnitOfWork) CartRepository() ports.CartRepository {
	return cartRepository{uow: uow}
}

func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return productRepository{uow: uow}
}

func (uow *UnitOfWork) InventoryLedger() ports.InventoryLedger {
	return productRepository{uow: uow}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderRepository{uow: uow}
}

func (uow *UnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxRepository{uow: uow}
}
