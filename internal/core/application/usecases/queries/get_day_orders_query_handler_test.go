package queries_test

import (
	"context"
	"testing"
	"time"

	"routeboard/internal/adapters/out/postgres/orderrepo"
	"routeboard/internal/core/application/usecases/queries"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetDayOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetDayOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	day       kernel.Day
}

func (suite *GetDayOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDayOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.day, err = kernel.ParseDay("2024-03-15")
	suite.Require().NoError(err)
}

func (suite *GetDayOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDayOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetDayOrdersQueryHandlerTestSuite) addOrder(name string, day kernel.Day, sequence *int) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), name, "Calle "+name, 20.5, name == "Credit", day, order.Registered, sequence)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetDayOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, _ := queries.NewGetDayOrdersQuery(suite.day)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDayOrdersQueryHandlerTestSuite) TestHandle_SortsBySequenceWithUnsequencedLast() {
	two, zero := 2, 0
	late := suite.addOrder("Bruno", suite.day, &two)
	unsequenced := suite.addOrder("Alba", suite.day, nil)
	first := suite.addOrder("Credit", suite.day, &zero)

	query, _ := queries.NewGetDayOrdersQuery(suite.day)
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(late.ID()))
	suite.True(result[2].ID.IsEqual(unsequenced.ID()))

	suite.Equal("Credit", result[0].ClientName)
	suite.Equal("Calle Credit", result[0].Address)
	suite.InDelta(20.5, result[0].Total, 0.0001)
	suite.True(result[0].HasCredit)
	suite.Equal(order.Registered, result[0].Status)
	suite.Require().NotNil(result[0].Sequence)
	suite.Equal(0, *result[0].Sequence)
	suite.Nil(result[2].Sequence)
}

func (suite *GetDayOrdersQueryHandlerTestSuite) TestHandle_OnlyReturnsTheRequestedDay() {
	suite.addOrder("Today", suite.day, nil)
	suite.addOrder("Tomorrow", suite.day.AddDays(1), nil)

	query, _ := queries.NewGetDayOrdersQuery(suite.day.AddDays(1))
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Tomorrow", result[0].ClientName)
}

func (suite *GetDayOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetDayOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetDayOrdersQueryIsNotConstructed)
}

func TestGetDayOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDayOrdersQueryHandlerTestSuite))
}
