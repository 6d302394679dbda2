package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func orderWithProducts(t *testing.T, productIDs ...kernel.UUID) *order.Order {
	t.Helper()
	items := make([]order.LineItem, 0, len(productIDs))
	for _, id := range productIDs {
		item, err := order.NewLineItem(id, kernel.MustMoney("1.00"), 1)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, items, time.Now())
	require.NoError(t, err)
	return o
}

func TestSellerPolicy_Authorize(t *testing.T) {
	ctx := t.Context()
	seller, err := account.NewSeller(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	ownedID, foreignID, goneID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	owned, err := product.NewProduct(ownedID, seller.ID(), "Owned", kernel.MustMoney("1.00"), 1)
	require.NoError(t, err)
	foreign, err := product.NewProduct(foreignID, kernel.NewUUID(), "Foreign", kernel.MustMoney("1.00"), 1)
	require.NoError(t, err)

	t.Run("should allow when one product is owned", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("Get", ctx, foreignID).Return(foreign, nil).Once()
		products.On("Get", ctx, ownedID).Return(owned, nil).Once()

		err := services.NewSellerPolicy(products).Authorize(ctx, seller, orderWithProducts(t, foreignID, ownedID))

		require.NoError(t, err)
		products.AssertExpectations(t)
	})

	t.Run("should deny when no product is owned", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("Get", ctx, foreignID).Return(foreign, nil).Once()

		err := services.NewSellerPolicy(products).Authorize(ctx, seller, orderWithProducts(t, foreignID))

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		products.AssertExpectations(t)
	})

	t.Run("should treat missing products as not owned", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("Get", ctx, goneID).Return(nil, errs.NewObjectNotFoundError("product", goneID)).Once()
		products.On("Get", ctx, ownedID).Return(owned, nil).Once()

		err := services.NewSellerPolicy(products).Authorize(ctx, seller, orderWithProducts(t, goneID, ownedID))
		require.NoError(t, err)

		products.On("Get", ctx, goneID).Return(nil, errs.NewObjectNotFoundError("product", goneID)).Once()
		err = services.NewSellerPolicy(products).Authorize(ctx, seller, orderWithProducts(t, goneID))
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		products.AssertExpectations(t)
	})

	t.Run("should propagate lookup failures", func(t *testing.T) {
		products := new(MockProductRepository)
		boom := errors.New("db down")
		products.On("Get", ctx, ownedID).Return(nil, boom).Once()

		err := services.NewSellerPolicy(products).Authorize(ctx, seller, orderWithProducts(t, ownedID))

		assert.Same(t, boom, err)
	})
}
