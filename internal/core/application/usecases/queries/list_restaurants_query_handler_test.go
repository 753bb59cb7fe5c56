package queries_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRestaurantPageCache struct {
	mock.Mock
}

func (m *MockRestaurantPageCache) Get(
	ctx context.Context,
	page, limit int,
) (queries.ListRestaurantsQueryResponse, int64, bool, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(queries.ListRestaurantsQueryResponse), args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *MockRestaurantPageCache) Set(
	ctx context.Context,
	generation int64,
	page, limit int,
	value queries.ListRestaurantsQueryResponse,
) error {
	args := m.Called(ctx, generation, page, limit, value)
	return args.Error(0)
}

func TestListRestaurantsQueryHandler_Handle_CacheHit(t *testing.T) {
	ctx := t.Context()
	cached := queries.ListRestaurantsQueryResponse{
		Data: []queries.RestaurantSummary{{
			ID:       kernel.NewUUID(),
			Name:     "Cached Cafe",
			Slug:     "cached-cafe",
			Location: kernel.MustNewLocation(1, 2),
		}},
		Page:       1,
		Limit:      10,
		TotalPages: 1,
		TotalItems: 1,
	}
	cache := new(MockRestaurantPageCache)
	cache.On("Get", ctx, 1, 10).Return(cached, int64(4), true, nil).Once()

	// no database: a hit must not query it
	handler := queries.NewListRestaurantsQueryHandler(nil, cache)
	got, err := handler.Handle(ctx, queries.NewListRestaurantsQuery(1, 10))

	require.NoError(t, err)
	assert.Equal(t, cached, got)
	cache.AssertExpectations(t)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListRestaurantsQueryHandler_Handle_NotConstructed(t *testing.T) {
	cache := new(MockRestaurantPageCache)
	handler := queries.NewListRestaurantsQueryHandler(nil, cache)

	_, err := handler.Handle(t.Context(), queries.ListRestaurantsQuery{})

	require.ErrorIs(t, err, queries.ErrListRestaurantsQueryIsNotConstructed)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
