package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "kurir/internal/adapters/out/postgres"
	"kurir/internal/adapters/out/postgres/courierrepo"
	"kurir/internal/adapters/out/postgres/orderrepo"
	"kurir/internal/core/domain/model/courier"
	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/core/ports"
	"kurir/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderEventDTO{}, &courierrepo.CourierDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_events, couriers").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies each business operation gets its own
// instance with working repository access.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CourierRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.CourierRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback
// behavior including the repeated-begin no-op and closed-transaction errors.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated begin must not nest.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Deferred rollback after commit surfaces as a closed-transaction error.
	err = uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)

	err = uow.Commit(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_CommitPersistsWrites verifies writes made through the unit
// of work's repositories become visible after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.newOrder()
	testCourier := suite.newCourier("Budi")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.CourierRepository().Add(ctx, testCourier))
	suite.Require().NoError(uow.Commit(ctx))

	// Read through a fresh unit of work without a transaction.
	reader := suite.factory.Create()
	restoredOrder, err := reader.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), restoredOrder.ID())
	suite.Require().Len(restoredOrder.Events(), 1)

	restoredCourier, err := reader.CourierRepository().Get(ctx, testCourier.ID())
	suite.Require().NoError(err)
	suite.Equal("Budi", restoredCourier.Name())
}

// TestUnitOfWork_RollbackDiscardsWrites verifies nothing written inside a
// rolled back transaction is visible afterwards, audit rows included.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.newOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	restored, err := reader.OrderRepository().Get(ctx, testOrder.ID())
	suite.Nil(restored)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	var eventCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderEventDTO{}).Count(&eventCount).Error)
	suite.Zero(eventCount)
}

// TestUnitOfWork_UncommittedWritesInvisibleOutside verifies transaction
// isolation: a concurrent reader must not see writes before commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UncommittedWritesInvisibleOutside() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.newOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	reader := suite.factory.Create()
	_, err := reader.OrderRepository().Get(ctx, testOrder.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.Require().NoError(uow.Commit(ctx))

	restored, err := reader.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), restored.ID())
}

// TestUnitOfWork_ConcurrentWritersLoseOnVersion verifies the optimistic
// concurrency check holds across two units of work touching the same order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentWritersLoseOnVersion() {
	ctx := context.Background()
	actor, err := order.NewActor(order.ActorAdmin, "admin-1")
	suite.Require().NoError(err)

	seed := suite.factory.Create()
	testOrder := suite.newOrder()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(seed.Commit(ctx))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	firstCopy, err := first.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	secondCopy, err := second.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(firstCopy.Assign(kernel.NewUUID(), actor))
	suite.Require().NoError(first.OrderRepository().Update(ctx, firstCopy))
	suite.Require().NoError(first.Commit(ctx))

	suite.Require().NoError(secondCopy.Assign(kernel.NewUUID(), actor))
	err = second.OrderRepository().Update(ctx, secondCopy)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
	suite.Require().NoError(second.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	actor, err := order.NewActor(order.ActorAdmin, "admin-1")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(order.NewOrderParams{
		ID:            kernel.NewUUID(),
		Sender:        order.Sender{Name: "Warung Bu Imas", Phone: "+62811111111"},
		Pickup:        order.Stop{Address: "Jl. Merdeka 1"},
		Dropoff:       order.Stop{Address: "Jl. Pahlawan 9"},
		Kind:          order.KindGoods,
		Tier:          order.TierRegular,
		Ongkir:        6500,
		MinimumOngkir: 3000,
		OngkirPayment: order.PayNonCOD,
		Actor:         actor,
	})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) newCourier(name string) *courier.Courier {
	testCourier, err := courier.NewCourier(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	return testCourier
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
