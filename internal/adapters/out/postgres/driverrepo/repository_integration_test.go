package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/driverrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Container
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = driverrepo.NewGormDriverRepository(suite.pg.DB, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) newDriver(name string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), name, 25, kernel.MustNewLocation(-33.8688, 151.2093))
	suite.Require().NoError(err)
	return d
}

func (suite *DriverRepositoryIntegrationTestSuite) newOrder(items int) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(nil), kernel.NewUUID(),
		kernel.MustNewLocation(-33.87, 151.21), kernel.MustNewLocation(-33.88, 151.20), items, 30, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	d := suite.newDriver("Charlie")
	suite.Require().NoError(d.AddBag("Pizza box", 4))

	suite.Require().NoError(suite.repository.Add(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(d))
	suite.Equal("Charlie", got.Name())
	suite.InDelta(25.0, got.Speed(), 1e-9)
	suite.InDelta(-33.8688, got.Location().Latitude(), 1e-9)
	suite.Require().Len(got.Bags(), 2)
	suite.Equal("Pizza box", got.Bags()[0].Name())
	suite.Equal(4, got.Bags()[0].Capacity())
	suite.True(got.IsFree())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", d.ID(), d)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_StoresLocationAndBags() {
	ctx := context.Background()
	d := suite.newDriver("Dana")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	o := suite.newOrder(3)
	suite.Require().NoError(d.TakeOrder(o))
	_, err := d.Move(o.Pickup())
	suite.Require().NoError(err)
	suite.Require().NoError(d.AddBag("Drinks carrier", 6))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.False(got.IsFree())
	suite.Len(got.Bags(), 2)
	suite.InDelta(d.Location().Latitude(), got.Location().Latitude(), 1e-9)
	suite.InDelta(d.Location().Longitude(), got.Location().Longitude(), 1e-9)

	suite.Require().NoError(got.CompleteOrder(o.ID()))
	suite.Require().NoError(suite.repository.Update(ctx, got))

	again, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(again.IsFree())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_Unknown_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newDriver("Ghost"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllFree_SkipsDriversCarryingOrders() {
	ctx := context.Background()
	busy := suite.newDriver("Busy")
	zoe := suite.newDriver("Zoe")
	adam := suite.newDriver("Adam")
	suite.Require().NoError(busy.TakeOrder(suite.newOrder(1)))
	for _, d := range []*driver.Driver{busy, zoe, adam} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	free, err := suite.repository.GetAllFree(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(free, 2)
	suite.Equal("Adam", free[0].Name())
	suite.Equal("Zoe", free[1].Name())
	suite.Len(free[0].Bags(), 1)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
