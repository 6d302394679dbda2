package orderrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderAndItems() {
	ctx := context.Background()
	addressID := kernel.NewUUID()
	o := suite.newOrder(kernel.NewUUID(), &addressID, time.Now())

	suite.Require().NoError(suite.repository.Add(ctx, o))

	found, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(o.ID()))
	suite.True(found.UserID().IsEqual(o.UserID()))
	suite.Require().NotNil(found.ShippingAddressID())
	suite.True(found.ShippingAddressID().IsEqual(addressID))
	suite.Equal(order.Pending, found.Status())
	suite.Equal("25.50", found.Total().String())
	suite.WithinDuration(o.CreatedAt(), found.CreatedAt(), time.Millisecond)

	items := found.Items()
	suite.Require().Len(items, 2)
	for i, expected := range o.Items() {
		suite.True(items[i].ProductID().IsEqual(expected.ProductID()))
		suite.True(items[i].UnitPrice().IsEqual(expected.UnitPrice()))
		suite.Equal(expected.Quantity(), items[i].Quantity())
	}

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_InvalidOrder() {
	err := suite.repository.Add(context.Background(), &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusOnly() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), nil, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.ChangeStatus(order.Processing))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	found, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, found.Status())
	suite.Equal("25.50", found.Total().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	o := suite.newOrder(kernel.NewUUID(), nil, time.Now())

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListByUser_OrderedByCreation() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	late := suite.newOrder(userID, nil, base.Add(time.Hour))
	early := suite.newOrder(userID, nil, base)
	other := suite.newOrder(kernel.NewUUID(), nil, base)
	for _, o := range []*order.Order{late, early, other} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	found, err := suite.repository.ListByUser(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
	suite.True(found[0].ID().IsEqual(early.ID()))
	suite.True(found[1].ID().IsEqual(late.ID()))
	suite.Len(found[0].Items(), 2)

	none, err := suite.repository.ListByUser(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesItems() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), nil, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o))

	_, err := suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	var items int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Where("order_id = ?", o.ID().Bytes()).Count(&items).Error)
	suite.Zero(items)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, o), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesConcurrentTransitions() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), nil, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	// Both transactions try PENDING -> PROCESSING; only the first may succeed.
	var wg sync.WaitGroup
	results := make(chan error, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.db.Transaction(func(tx *gorm.DB) error {
				repo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
				locked, err := repo.GetForUpdate(ctx, o.ID())
				if err != nil {
					return err
				}
				if err = locked.ChangeStatus(order.Processing); err != nil {
					return err
				}
				time.Sleep(50 * time.Millisecond)
				return repo.Update(ctx, locked)
			})
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, illegal int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, order.ErrIllegalTransition):
			illegal++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, illegal)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(userID kernel.UUID, addressID *kernel.UUID, createdAt time.Time) *order.Order {
	first, err := order.NewLineItem(kernel.NewUUID(), kernel.MustMoney("10.00"), 2)
	suite.Require().NoError(err)
	second, err := order.NewLineItem(kernel.NewUUID(), kernel.MustMoney("5.50"), 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), userID, addressID, []order.LineItem{first, second}, createdAt)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
