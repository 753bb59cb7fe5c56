package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.speed,
			d.location_latitude,
			d.location_longitude,
			count(b.id),
			count(b.order_id)
		FROM drivers d
		LEFT JOIN bags b ON b.driver_id = d.id
		GROUP BY d.id
		ORDER BY d.name, d.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]GetAllDriversQueryResponse, 0)
	for rows.Next() {
		var (
			d         GetAllDriversQueryResponse
			id        uuid.UUID
			latitude  float64
			longitude float64
		)

		if err = rows.Scan(
			&id,
			&d.Name,
			&d.SpeedKmh,
			&latitude,
			&longitude,
			&d.Bags,
			&d.BusyBags,
		); err != nil {
			return nil, err
		}

		d.ID = kernel.UUIDFromGoogle(id)
		if d.Location, err = kernel.NewLocation(latitude, longitude); err != nil {
			return nil, err
		}

		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
