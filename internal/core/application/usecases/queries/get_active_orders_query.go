package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
	"marketplace/internal/pkg/pagination"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery pages through orders that are not Completed, newest first,
// rendering money, dates and ages for locale.
//
// Example:
//
//	query := NewGetActiveOrdersQuery(1, 20, "de-DE", "EUR")
//	page, err := handler.Handle(ctx, query)
//	// page.Data[0].TotalText == "42,50 €"
type GetActiveOrdersQuery struct {
	page         int
	limit        int
	locale       string
	currencyCode string
	guard        guard.ConstructorGuard
}

func NewGetActiveOrdersQuery(page, limit int, locale, currencyCode string) GetActiveOrdersQuery {
	if limit < 1 {
		limit = pagination.DefaultLimit
	}
	return GetActiveOrdersQuery{
		page:         page,
		limit:        limit,
		locale:       locale,
		currencyCode: currencyCode,
		guard:        guard.NewConstructorGuard(),
	}
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) Page() int {
	return q.page
}

func (q GetActiveOrdersQuery) Limit() int {
	return q.limit
}

func (q GetActiveOrdersQuery) Locale() string {
	return q.locale
}

func (q GetActiveOrdersQuery) CurrencyCode() string {
	return q.currencyCode
}

// ActiveOrder is one order in the operations view.
type ActiveOrder struct {
	ID               kernel.UUID
	Number           string
	RestaurantID     kernel.UUID
	RestaurantName   string
	Status           order.Status
	DriverID         *kernel.UUID
	Delivery         kernel.Location
	Volume           int
	Total            float64
	TotalText        string
	CreatedAt        time.Time
	CreatedText      string
	Age              string
	DistanceMeters   float64
	DistanceText     string
	EstimatedMinutes int
}

type GetActiveOrdersQueryResponse = pagination.Page[ActiveOrder]
