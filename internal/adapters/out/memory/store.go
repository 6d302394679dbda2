// Package memory keeps the ordering core's state in process memory.
//
// A Store is shared by every unit of work created from it. A unit of work holds
// the store-wide write lock from Begin until Commit or Rollback, so transactions
// are fully serialized; Rollback restores the snapshot taken at Begin. Repositories
// used without Begin take the lock per call.
//
// The adapter backs end-to-end tests and local runs without PostgreSQL.
package memory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

type productRecord struct {
	sellerID kernel.UUID
	name     string
	price    kernel.Money
	stock    int
}

// orderRecord is immutable apart from status; items are never modified in place.
type orderRecord struct {
	userID            kernel.UUID
	shippingAddressID *kernel.UUID
	items             []order.LineItem
	total             kernel.Money
	status            order.Status
	createdAt         time.Time
}

type cartRecord struct {
	cart  *account.Cart
	items int
}

type state struct {
	users      map[kernel.UUID]*account.User
	identities map[string]kernel.UUID
	sellers    map[kernel.UUID]*account.Seller // by user id
	addresses  map[kernel.UUID]*account.ShippingAddress
	carts      map[kernel.UUID]cartRecord // by user id
	products   map[kernel.UUID]productRecord
	orders     map[kernel.UUID]orderRecord
	outbox     []ports.OutboxMessage
}

func newState() state {
	return state{
		users:      make(map[kernel.UUID]*account.User),
		identities: make(map[string]kernel.UUID),
		sellers:    make(map[kernel.UUID]*account.Seller),
		addresses:  make(map[kernel.UUID]*account.ShippingAddress),
		carts:      make(map[kernel.UUID]cartRecord),
		products:   make(map[kernel.UUID]productRecord),
		orders:     make(map[kernel.UUID]orderRecord),
	}
}

func (s state) clone() state {
	return state{
		users:      maps.Clone(s.users),
		identities: maps.Clone(s.identities),
		sellers:    maps.Clone(s.sellers),
		addresses:  maps.Clone(s.addresses),
		carts:      maps.Clone(s.carts),
		products:   maps.Clone(s.products),
		orders:     maps.Clone(s.orders),
		outbox:     slices.Clone(s.outbox),
	}
}

// Store is the shared in-memory database.
type Store struct {
	mu   sync.RWMutex
	data state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

// AddUser registers a user. The identity must be unique.
func (s *Store) AddUser(u *account.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := u.Identity().String()
	if _, ok := s.data.identities[key]; ok {
		return errs.NewValueIsInvalidError("identity")
	}
	s.data.users[u.ID()] = u
	s.data.identities[key] = u.ID()
	return nil
}

func (s *Store) AddSeller(seller *account.Seller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.sellers[seller.UserID()] = seller
}

func (s *Store) AddShippingAddress(a *account.ShippingAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.addresses[a.ID()] = a
}

// AddCart registers the user's cart holding the given number of items.
func (s *Store) AddCart(c *account.Cart, items int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.carts[c.UserID()] = cartRecord{cart: c, items: items}
}

func (s *Store) AddProduct(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.products[p.ID()] = fromProduct(p)
}

// CartItems returns the item count of the user's cart and whether the cart exists.
func (s *Store) CartItems(userID kernel.UUID) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.data.carts[userID]
	return c.items, ok
}

// Stock returns the product's stock and whether the product exists.
func (s *Store) Stock(productID kernel.UUID) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data.products[productID]
	return p.stock, ok
}

// Outbox returns a copy of every stored outbox message.
func (s *Store) Outbox() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data.outbox)
}

func fromProduct(p *product.Product) productRecord {
	return productRecord{
		sellerID: p.SellerID(),
		name:     p.Name(),
		price:    p.Price(),
		stock:    p.Stock(),
	}
}

func (r productRecord) toDomain(id kernel.UUID) (*product.Product, error) {
	return product.RestoreProduct(id, r.sellerID, r.name, r.price, r.stock)
}

func fromOrder(o *order.Order) orderRecord {
	return orderRecord{
		userID:            o.UserID(),
		shippingAddressID: o.ShippingAddressID(),
		items:             o.Items(),
		total:             o.Total(),
		status:            o.Status(),
		createdAt:         o.CreatedAt(),
	}
}

func (r orderRecord) toDomain(id kernel.UUID) (*order.Order, error) {
	return order.RestoreOrder(id, r.userID, r.shippingAddressID, r.items, r.total, r.status, r.createdAt)
}
