package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListRestaurantsQuery(t *testing.T) {
	query := queries.NewListRestaurantsQuery(2, 25)
	require.NoError(t, query.Validate())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 25, query.Limit())

	assert.Equal(t, pagination.DefaultLimit, queries.NewListRestaurantsQuery(1, 0).Limit())
	assert.Equal(t, -1, queries.NewListRestaurantsQuery(-1, 5).Page())

	require.ErrorIs(t, queries.ListRestaurantsQuery{}.Validate(), queries.ErrListRestaurantsQueryIsNotConstructed)
}

func TestNewGetDeliveryQuoteQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetDeliveryQuoteQuery(id, 51.5, -0.12)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.RestaurantID())
	assert.InDelta(t, 51.5, query.Destination().Latitude(), 1e-9)

	_, err = queries.NewGetDeliveryQuoteQuery(kernel.UUID{}, 51.5, -0.12)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetDeliveryQuoteQuery(id, 95, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	require.ErrorIs(t, queries.GetDeliveryQuoteQuery{}.Validate(), queries.ErrGetDeliveryQuoteQueryIsNotConstructed)
}

func TestNewGetActiveOrdersQuery(t *testing.T) {
	query := queries.NewGetActiveOrdersQuery(1, -3, "fr-FR", "EUR")
	require.NoError(t, query.Validate())
	assert.Equal(t, pagination.DefaultLimit, query.Limit())
	assert.Equal(t, "fr-FR", query.Locale())
	assert.Equal(t, "EUR", query.CurrencyCode())

	require.ErrorIs(t, queries.GetActiveOrdersQuery{}.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetAllDriversQuery(t *testing.T) {
	require.NoError(t, queries.NewGetAllDriversQuery().Validate())
	require.ErrorIs(t, queries.GetAllDriversQuery{}.Validate(), queries.ErrGetAllDriversQueryIsNotConstructed)
}

func TestGetAllDriversQueryResponse_IsFree(t *testing.T) {
	assert.True(t, queries.GetAllDriversQueryResponse{Bags: 2}.IsFree())
	assert.False(t, queries.GetAllDriversQueryResponse{Bags: 2, BusyBags: 1}.IsFree())
}
