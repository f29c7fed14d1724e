package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newActor(role kernel.Role) kernel.Actor {
	actor, err := kernel.NewActor(kernel.NewUUID(), role, role.String())
	suite.Require().NoError(err)
	return actor
}

func (suite *OrderRepositoryIntegrationTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(customer kernel.Actor) *order.Order {
	snapshot, err := order.NewCustomer(customer.ID(), customer.Name(), "555-0101", "12 Main St")
	suite.Require().NoError(err)

	burger, err := order.NewLineItem(kernel.NewUUID(), "Burger", suite.money(10000),
		"https://img.example/burger.png", 2, "no onions")
	suite.Require().NoError(err)
	cola, err := order.NewLineItem(kernel.NewUUID(), "Cola", suite.money(2500), "", 1, "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), snapshot,
		[]order.LineItem{burger, cola}, suite.money(3500), suite.money(1000),
		order.PaymentCash, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	customer := suite.newActor(kernel.RoleCustomer)
	aggregate := suite.newOrder(customer)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(aggregate.ID()))
	suite.Equal(order.StatusPending, restored.Status())
	suite.True(restored.TotalAmount().IsEqual(aggregate.TotalAmount()))
	suite.Equal(aggregate.Pin().String(), restored.Pin().String())
	suite.Equal("12 Main St", restored.Customer().DeliveryAddress())
	suite.Len(restored.Items(), 2)
	suite.Equal("no onions", restored.Items()[0].Note())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleChanges() {
	ctx := context.Background()
	customer := suite.newActor(kernel.RoleCustomer)
	driver := suite.newActor(kernel.RoleDriver)
	staff := suite.newActor(kernel.RoleAdmin)
	aggregate := suite.newOrder(customer)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(aggregate.StartCooking(staff, now))
	suite.Require().NoError(aggregate.MarkReady(staff, now))
	suite.Require().NoError(aggregate.AssignDriver(staff, driver.ID(), driver.Name()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusReady, restored.Status())
	suite.Require().NotNil(restored.DriverID())
	suite.True(restored.DriverID().IsEqual(driver.ID()))
	suite.Equal(driver.Name(), restored.DriverName())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	aggregate := suite.newOrder(suite.newActor(kernel.RoleCustomer))

	err := suite.repository.Update(context.Background(), aggregate)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DoesNotTouchLineItems() {
	ctx := context.Background()
	staff := suite.newActor(kernel.RoleAdmin)
	aggregate := suite.newOrder(suite.newActor(kernel.RoleCustomer))
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	originalTotal := aggregate.TotalAmount()

	suite.Require().NoError(aggregate.StartCooking(staff, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(restored.Items(), 2)
	suite.True(restored.TotalAmount().IsEqual(originalTotal))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_FiltersAndSorts() {
	ctx := context.Background()
	staff := suite.newActor(kernel.RoleAdmin)
	customer := suite.newActor(kernel.RoleCustomer)

	first := suite.newOrder(customer)
	second := suite.newOrder(customer)
	cancelled := suite.newOrder(customer)
	suite.Require().NoError(cancelled.Cancel(staff, "out of stock", time.Now().UTC()))

	for _, o := range []*order.Order{second, first, cancelled} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Len(active, 2)
	for _, o := range active {
		suite.False(o.ID().IsEqual(cancelled.ID()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByDriver_ReturnsOnlyAssignedWork() {
	ctx := context.Background()
	staff := suite.newActor(kernel.RoleAdmin)
	driver := suite.newActor(kernel.RoleDriver)
	customer := suite.newActor(kernel.RoleCustomer)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mine := suite.newOrder(customer)
	suite.Require().NoError(mine.StartCooking(staff, now))
	suite.Require().NoError(mine.MarkReady(staff, now))
	suite.Require().NoError(mine.AssignDriver(staff, driver.ID(), driver.Name()))

	unassigned := suite.newOrder(customer)

	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, unassigned))

	result, err := suite.repository.GetByDriver(ctx, driver.ID())
	suite.Require().NoError(err)

	suite.Len(result, 1)
	suite.True(result[0].ID().IsEqual(mine.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCustomer_NewestFirst() {
	ctx := context.Background()
	customer := suite.newActor(kernel.RoleCustomer)
	other := suite.newActor(kernel.RoleCustomer)

	older := suite.newOrder(customer)
	newer := suite.newOrder(customer)
	foreign := suite.newOrder(other)

	suite.Require().NoError(suite.repository.Add(ctx, older))
	time.Sleep(10 * time.Millisecond)
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	suite.Require().NoError(suite.repository.Add(ctx, newer))

	history, err := suite.repository.GetByCustomer(ctx, customer.ID())
	suite.Require().NoError(err)

	suite.Len(history, 2)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
