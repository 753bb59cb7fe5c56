package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetDeliveryQuoteQueryIsNotConstructed = errors.New(
	"GetDeliveryQuoteQuery must be created via NewGetDeliveryQuoteQuery constructor",
)

// GetDeliveryQuoteQuery estimates delivery from a restaurant to a customer location.
type GetDeliveryQuoteQuery struct {
	restaurantID kernel.UUID
	destination  kernel.Location
	guard        guard.ConstructorGuard
}

func NewGetDeliveryQuoteQuery(
	restaurantID kernel.UUID,
	latitude, longitude float64,
) (GetDeliveryQuoteQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetDeliveryQuoteQuery{}, err
	}

	destination, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return GetDeliveryQuoteQuery{}, err
	}

	return GetDeliveryQuoteQuery{
		restaurantID: restaurantID,
		destination:  destination,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQuoteQueryIsNotConstructed)
}

func (q GetDeliveryQuoteQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q GetDeliveryQuoteQuery) Destination() kernel.Location {
	return q.destination
}

// GetDeliveryQuoteQueryResponse is the quote shown before checkout.
//
// Example for 2.4 km and 20 prep minutes:
//
//	DistanceMeters:   2400,
//	DistanceText:     "2.4 km",
//	PrepMinutes:      20,
//	EstimatedMinutes: 25,
//	EstimatedText:    "25 min",
type GetDeliveryQuoteQueryResponse struct {
	RestaurantID     kernel.UUID
	RestaurantName   string
	DistanceMeters   float64
	DistanceText     string
	PrepMinutes      int
	EstimatedMinutes int
	EstimatedText    string
}
