package http

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/generated/servers"

	"github.com/ecodeclub/ekit/slice"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toAPIUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	converted := id.Bytes()
	return &converted
}

// orderRequestOf converts the placement body into core values.
func orderRequestOf(body servers.NewOrder) (kernel.UUID, *kernel.UUID, []services.LineRequest, error) {
	userID, err := toKernelUUID(body.UserId)
	if err != nil {
		return kernel.UUID{}, nil, nil, err
	}

	var shippingAddressID *kernel.UUID
	if body.ShippingAddressId != nil {
		addressID, err := toKernelUUID(*body.ShippingAddressId)
		if err != nil {
			return kernel.UUID{}, nil, nil, err
		}
		shippingAddressID = &addressID
	}

	lines := make([]services.LineRequest, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := toKernelUUID(item.ProductId)
		if err != nil {
			return kernel.UUID{}, nil, nil, err
		}
		lines = append(lines, services.LineRequest{ProductID: productID, Quantity: item.Quantity})
	}

	return userID, shippingAddressID, lines, nil
}

func toOrder(o *order.Order) servers.Order {
	return servers.Order{
		Id:                o.ID().Bytes(),
		UserId:            o.UserID().Bytes(),
		ShippingAddressId: toAPIUUID(o.ShippingAddressID()),
		Status:            o.Status().String(),
		Total:             o.Total().String(),
		CreatedAt:         o.CreatedAt(),
		Items: slice.Map(o.Items(), func(_ int, li order.LineItem) servers.OrderLine {
			return servers.OrderLine{
				ProductId: li.ProductID().Bytes(),
				UnitPrice: li.UnitPrice().String(),
				Quantity:  li.Quantity(),
				Subtotal:  li.Subtotal().String(),
			}
		}),
	}
}
