package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.OutboxMessageDTO{}))
	suite.repository = outboxrepo.NewGormOutboxRepository(db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox_messages").Error)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func message(name string, createdAt time.Time) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		EventName:   name,
		AggregateID: kernel.NewUUID(),
		Payload:     []byte(`{"orderId":"x"}`),
		CreatedAt:   createdAt,
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestFetchPending_OldestFirstWithLimit() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	third := message("order.removed", base.Add(2*time.Second))
	first := message("order.created", base)
	second := message("order.status_changed", base.Add(time.Second))
	suite.Require().NoError(suite.repository.Add(ctx, third, first, second))

	pending, err := suite.repository.FetchPending(ctx, 2)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(pending[0].ID.IsEqual(first.ID))
	suite.True(pending[1].ID.IsEqual(second.ID))
	suite.JSONEq(`{"orderId":"x"}`, string(pending[0].Payload))
	suite.Equal("order.created", pending[0].EventName)
	suite.True(pending[0].AggregateID.IsEqual(first.AggregateID))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkSent_HidesMessages() {
	ctx := context.Background()
	base := time.Now().UTC()
	sent := message("order.created", base)
	kept := message("order.created", base.Add(time.Second))
	suite.Require().NoError(suite.repository.Add(ctx, sent, kept))

	suite.Require().NoError(suite.repository.MarkSent(ctx, []kernel.UUID{sent.ID}, time.Now()))
	suite.Require().NoError(suite.repository.MarkSent(ctx, nil, time.Now()))

	pending, err := suite.repository.FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID.IsEqual(kept.ID))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestFetchPending_SkipsRowsLockedByAnotherRelay() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, message("order.created", time.Now())))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	locked, err := outboxrepo.NewGormOutboxRepository(tx).FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Len(locked, 1)

	other := suite.db.Begin()
	suite.Require().NoError(other.Error)
	defer other.Rollback()

	skipped, err := outboxrepo.NewGormOutboxRepository(other).FetchPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(skipped)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAdd_Empty() {
	suite.Require().NoError(suite.repository.Add(context.Background()))
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
