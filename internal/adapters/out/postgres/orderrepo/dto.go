// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders are stored in "orders" with their line items in "order_items", one row per line
// keyed by the line position.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_user_created,priority:1"`
	ShippingAddressID *uuid.UUID      `gorm:"type:uuid"`
	Total             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status            int             `gorm:"type:smallint;not null"`
	CreatedAt         time.Time       `gorm:"not null;index:idx_orders_user_created,priority:2"`
	Items             []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item. UnitPrice is the price snapshot taken at reservation.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var shippingAddressID *uuid.UUID
	if id := aggregate.ShippingAddressID(); id != nil {
		raw := id.Bytes()
		shippingAddressID = &raw
	}

	orderID := aggregate.ID().Bytes()
	return OrderDTO{
		ID:                orderID,
		UserID:            aggregate.UserID().Bytes(),
		ShippingAddressID: shippingAddressID,
		Total:             aggregate.Total().Amount(),
		Status:            int(aggregate.Status()),
		CreatedAt:         aggregate.CreatedAt(),
		Items: slice.Map(aggregate.Items(), func(idx int, item order.LineItem) OrderItemDTO {
			return OrderItemDTO{
				OrderID:   orderID,
				Position:  idx,
				ProductID: item.ProductID().Bytes(),
				UnitPrice: item.UnitPrice().Amount(),
				Quantity:  item.Quantity(),
			}
		}),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Items must be ordered by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var shippingAddressID *kernel.UUID
	if dto.ShippingAddressID != nil {
		addrID, addrErr := kernel.UUIDFromBytes((*dto.ShippingAddressID)[:])
		if addrErr != nil {
			return nil, addrErr
		}
		shippingAddressID = &addrID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, shippingAddressID, items, total, order.Status(dto.Status), dto.CreatedAt)
}

func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, unitPrice, dto.Quantity)
}
