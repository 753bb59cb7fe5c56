package http_test

import (
	"context"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCreateRestaurantHandler struct {
	mock.Mock
}

func (m *MockCreateRestaurantHandler) Handle(
	ctx context.Context,
	cmd commands.CreateRestaurantCommand,
) (commands.CreateRestaurantResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateRestaurantResult), args.Error(1)
}

type MockCreateDriverHandler struct {
	mock.Mock
}

func (m *MockCreateDriverHandler) Handle(ctx context.Context, cmd commands.CreateDriverCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAddDriverBagHandler struct {
	mock.Mock
}

func (m *MockAddDriverBagHandler) Handle(ctx context.Context, cmd commands.AddDriverBagCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(
	ctx context.Context,
	cmd commands.CreateOrderCommand,
) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockListRestaurantsHandler struct {
	mock.Mock
}

func (m *MockListRestaurantsHandler) Handle(
	ctx context.Context,
	query queries.ListRestaurantsQuery,
) (queries.ListRestaurantsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListRestaurantsQueryResponse), args.Error(1)
}

type MockGetDeliveryQuoteHandler struct {
	mock.Mock
}

func (m *MockGetDeliveryQuoteHandler) Handle(
	ctx context.Context,
	query queries.GetDeliveryQuoteQuery,
) (queries.GetDeliveryQuoteQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDeliveryQuoteQueryResponse), args.Error(1)
}

type MockGetActiveOrdersHandler struct {
	mock.Mock
}

func (m *MockGetActiveOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetActiveOrdersQuery,
) (queries.GetActiveOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetActiveOrdersQueryResponse), args.Error(1)
}

type MockGetAllDriversHandler struct {
	mock.Mock
}

func (m *MockGetAllDriversHandler) Handle(
	ctx context.Context,
	query queries.GetAllDriversQuery,
) ([]queries.GetAllDriversQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetAllDriversQueryResponse), args.Error(1)
}
