package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
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

type placementFixture struct {
	users     *MockUserRepository
	addresses *MockAddressRepository
	ledger    *MockInventoryLedger
	orders    *MockOrderRepository
	carts     *MockCartRepository
	uow       *MockUoW
	factory   *MockPlacementUoWFactory

	buyer   *account.User
	cart    *account.Cart
	product *product.Product
	cmd     commands.CreateOrderCommand
}

func newPlacementFixture(t *testing.T) placementFixture {
	t.Helper()
	identity := mustIdentity(t, "buyer@example.com")
	buyer, err := account.NewUser(kernel.NewUUID(), identity)
	require.NoError(t, err)
	cart, err := account.NewCart(kernel.NewUUID(), buyer.ID())
	require.NoError(t, err)
	reserved, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Lamp", kernel.MustMoney("10.00"), 2)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(identity, buyer.ID(), nil,
		[]services.LineRequest{{ProductID: reserved.ID(), Quantity: 3}})
	require.NoError(t, err)

	f := placementFixture{
		users:     new(MockUserRepository),
		addresses: new(MockAddressRepository),
		ledger:    new(MockInventoryLedger),
		orders:    new(MockOrderRepository),
		carts:     new(MockCartRepository),
		uow:       new(MockUoW),
		factory:   new(MockPlacementUoWFactory),
		buyer:     buyer,
		cart:      cart,
		product:   reserved,
		cmd:       cmd,
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("UserRepository").Return(f.users).Maybe()
	f.uow.On("ShippingAddressRepository").Return(f.addresses).Maybe()
	f.uow.On("InventoryLedger").Return(f.ledger).Maybe()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("CartRepository").Return(f.carts).Maybe()
	return f
}

func (f placementFixture) expectBuild(t *testing.T) {
	t.Helper()
	f.users.On("GetByIdentity", mock.Anything, f.buyer.Identity()).Return(f.buyer, nil).Once()
	f.users.On("Get", mock.Anything, f.buyer.ID()).Return(f.buyer, nil).Once()
	f.ledger.On("Reserve", mock.Anything, f.product.ID(), 3).Return(f.product, nil).Once()
}

func (f placementFixture) assertExpectations(t *testing.T) {
	f.users.AssertExpectations(t)
	f.ledger.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.carts.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newPlacementFixture(t)
	f.expectBuild(t)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.carts.On("GetByUserID", ctx, f.buyer.ID()).Return(f.cart, nil).Once(),
		f.carts.On("DeleteAllItems", ctx, f.cart.ID()).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory)
	created, err := h.Handle(ctx, f.cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, "30.00", created.Total().String())
	assert.True(t, created.UserID().IsEqual(f.buyer.ID()))
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockPlacementUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newPlacementFixture(t)
	f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	_, err := commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

	require.EqualError(t, err, "begin error")
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStockRollsBack(t *testing.T) {
	ctx := t.Context()
	f := newPlacementFixture(t)
	shortErr := &product.InsufficientStockError{ProductID: f.product.ID(), ProductName: "Lamp", Requested: 3, Available: 2}
	f.users.On("GetByIdentity", ctx, f.buyer.Identity()).Return(f.buyer, nil).Once()
	f.users.On("Get", ctx, f.buyer.ID()).Return(f.buyer, nil).Once()
	f.ledger.On("Reserve", ctx, f.product.ID(), 3).Return(nil, shortErr).Once()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

	require.ErrorIs(t, err, product.ErrInsufficientStock)
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	f := newPlacementFixture(t)
	f.expectBuild(t)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

	require.EqualError(t, err, "add error")
	f.carts.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MissingCartIsDataIntegrityError(t *testing.T) {
	ctx := t.Context()
	f := newPlacementFixture(t)
	f.expectBuild(t)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.carts.On("GetByUserID", ctx, f.buyer.ID()).
		Return(nil, errs.NewObjectNotFoundError("cart", f.buyer.ID())).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

	require.ErrorIs(t, err, errs.ErrDataIntegrity)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newPlacementFixture(t)
	f.expectBuild(t)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.carts.On("GetByUserID", ctx, f.buyer.ID()).Return(f.cart, nil).Once()
	f.carts.On("DeleteAllItems", ctx, f.cart.ID()).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	created, err := commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

	require.EqualError(t, err, "commit error")
	assert.Nil(t, created)
	f.assertExpectations(t)
}
