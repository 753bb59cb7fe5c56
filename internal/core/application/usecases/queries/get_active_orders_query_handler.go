package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/format"
	"marketplace/internal/pkg/geo"
	"marketplace/internal/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{
		db:  db,
		now: time.Now,
	}
}

func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) (GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.restaurant_id,
			r.name,
			r.prep_minutes,
			o.status,
			o.driver_id,
			o.pickup_latitude,
			o.pickup_longitude,
			o.delivery_latitude,
			o.delivery_longitude,
			o.volume,
			o.total,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.status <> ?
		ORDER BY o.created_at DESC, o.id
	`, int(order.Completed)).Rows()
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	defer rows.Close()

	now := h.now()
	orders := make([]ActiveOrder, 0)

	for rows.Next() {
		var (
			o                        ActiveOrder
			id, restaurantID         uuid.UUID
			driverID                 *uuid.UUID
			status, prepMinutes      int
			pickupLat, pickupLon     float64
			deliveryLat, deliveryLon float64
		)

		if err = rows.Scan(
			&id,
			&o.Number,
			&restaurantID,
			&o.RestaurantName,
			&prepMinutes,
			&status,
			&driverID,
			&pickupLat,
			&pickupLon,
			&deliveryLat,
			&deliveryLon,
			&o.Volume,
			&o.Total,
			&o.CreatedAt,
		); err != nil {
			return GetActiveOrdersQueryResponse{}, err
		}

		o.ID = kernel.UUIDFromGoogle(id)
		o.RestaurantID = kernel.UUIDFromGoogle(restaurantID)
		o.Status = order.Status(status)
		if driverID != nil {
			d := kernel.UUIDFromGoogle(*driverID)
			o.DriverID = &d
		}

		if o.Delivery, err = kernel.NewLocation(deliveryLat, deliveryLon); err != nil {
			return GetActiveOrdersQueryResponse{}, err
		}

		o.CreatedAt = o.CreatedAt.UTC()
		o.DistanceMeters = geo.Distance(pickupLat, pickupLon, deliveryLat, deliveryLon)
		o.EstimatedMinutes = geo.DeliveryEstimateMinutes(o.DistanceMeters, prepMinutes)
		o.DistanceText = format.Distance(o.DistanceMeters)
		o.TotalText = format.Currency(o.Total, query.CurrencyCode(), query.Locale())
		o.CreatedText = format.Date(o.CreatedAt, query.Locale())
		o.Age = format.TimeAgo(o.CreatedAt, now)

		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	return pagination.Paginate(orders, query.Page(), query.Limit()), nil
}
