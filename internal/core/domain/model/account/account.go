package account

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// User is a buyer account resolved from an authenticated identity.
type User struct {
	id       kernel.UUID
	identity kernel.Identity
}

func NewUser(id kernel.UUID, identity kernel.Identity) (*User, error) {
	if err := errors.Join(id.Validate(), identity.Validate()); err != nil {
		return nil, err
	}
	return &User{id: id, identity: identity}, nil
}

func (u *User) ID() kernel.UUID           { return u.id }
func (u *User) Identity() kernel.Identity { return u.identity }

// Seller is the seller profile attached to a user.
type Seller struct {
	id     kernel.UUID
	userID kernel.UUID
}

func NewSeller(id, userID kernel.UUID) (*Seller, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	return &Seller{id: id, userID: userID}, nil
}

func (s *Seller) ID() kernel.UUID     { return s.id }
func (s *Seller) UserID() kernel.UUID { return s.userID }

// ShippingAddress is referenced by orders; the address body lives elsewhere.
type ShippingAddress struct {
	id     kernel.UUID
	userID kernel.UUID
}

func NewShippingAddress(id, userID kernel.UUID) (*ShippingAddress, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	return &ShippingAddress{id: id, userID: userID}, nil
}

func (a *ShippingAddress) ID() kernel.UUID     { return a.id }
func (a *ShippingAddress) UserID() kernel.UUID { return a.userID }

// Cart is the buyer's single cart. Every user is expected to own exactly one.
type Cart struct {
	id     kernel.UUID
	userID kernel.UUID
}

func NewCart(id, userID kernel.UUID) (*Cart, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	return &Cart{id: id, userID: userID}, nil
}

func (c *Cart) ID() kernel.UUID     { return c.id }
func (c *Cart) UserID() kernel.UUID { return c.userID }
