// Package accountrepo reads the account entities ordering depends on: users,
// sellers, shipping addresses and carts with their items.
package accountrepo

import (
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Identity string    `gorm:"type:varchar(320);not null;uniqueIndex"`
}

func (UserDTO) TableName() string { return "users" }

type SellerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
}

func (SellerDTO) TableName() string { return "sellers" }

type ShippingAddressDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (ShippingAddressDTO) TableName() string { return "shipping_addresses" }

type CartDTO struct {
	ID     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex"`
	Items  []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (CartDTO) TableName() string { return "carts" }

type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	AddedAt   time.Time `gorm:"not null"`
}

func (CartItemDTO) TableName() string { return "cart_items" }

func userToDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	identity, err := kernel.NewIdentity(dto.Identity)
	if err != nil {
		return nil, err
	}
	return account.NewUser(id, identity)
}

// ownedToDomain decodes the id pair shared by sellers, addresses and carts.
func ownedToDomain[T any](id, userID uuid.UUID, build func(id, userID kernel.UUID) (T, error)) (T, error) {
	var zero T
	entityID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return zero, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return zero, err
	}
	return build(entityID, ownerID)
}
