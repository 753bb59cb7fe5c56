package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/format"
	"marketplace/internal/pkg/geo"

	"gorm.io/gorm"
)

type GetDeliveryQuoteQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQuoteQueryHandler(db *gorm.DB) GetDeliveryQuoteQueryHandler {
	return GetDeliveryQuoteQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown restaurant.
func (h GetDeliveryQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuoteQuery,
) (GetDeliveryQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQuoteQueryResponse{}, err
	}

	var row struct {
		Name              string
		LocationLatitude  float64
		LocationLongitude float64
		PrepMinutes       int
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			location_latitude,
			location_longitude,
			prep_minutes
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetDeliveryQuoteQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetDeliveryQuoteQueryResponse{}, errs.NewObjectNotFoundError("restaurant", query.RestaurantID().String())
	}

	origin, err := kernel.NewLocation(row.LocationLatitude, row.LocationLongitude)
	if err != nil {
		return GetDeliveryQuoteQueryResponse{}, err
	}

	meters, err := origin.DistanceTo(query.Destination())
	if err != nil {
		return GetDeliveryQuoteQueryResponse{}, err
	}

	minutes := geo.DeliveryEstimateMinutes(meters, row.PrepMinutes)

	return GetDeliveryQuoteQueryResponse{
		RestaurantID:     query.RestaurantID(),
		RestaurantName:   row.Name,
		DistanceMeters:   meters,
		DistanceText:     format.Distance(meters),
		PrepMinutes:      row.PrepMinutes,
		EstimatedMinutes: minutes,
		EstimatedText:    format.Minutes(minutes),
	}, nil
}
