// Package queries contains the read side of the marketplace. Handlers read straight
// from PostgreSQL with SQL shaped for each response, bypassing the aggregates.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
	"marketplace/internal/pkg/pagination"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery asks for one page of restaurants ordered by name.
// Out-of-range pages are empty; a limit below 1 means pagination.DefaultLimit.
type ListRestaurantsQuery struct {
	page  int
	limit int
	guard guard.ConstructorGuard
}

func NewListRestaurantsQuery(page, limit int) ListRestaurantsQuery {
	if limit < 1 {
		limit = pagination.DefaultLimit
	}
	return ListRestaurantsQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

func (q ListRestaurantsQuery) Page() int {
	return q.page
}

func (q ListRestaurantsQuery) Limit() int {
	return q.limit
}

// RestaurantSummary is one row of the restaurant listing.
type RestaurantSummary struct {
	ID          kernel.UUID
	Name        string
	Slug        string
	Location    kernel.Location
	PrepMinutes int
	Email       string
	Phone       string
}

type ListRestaurantsQueryResponse = pagination.Page[RestaurantSummary]
