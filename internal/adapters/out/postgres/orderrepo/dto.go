// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is an order row. The number is unique; status and created_at drive the
// dispatch queue.
type OrderDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Number       string      `gorm:"type:varchar(32);not null;uniqueIndex:idx_orders_number"`
	RestaurantID uuid.UUID   `gorm:"type:uuid;not null"`
	Pickup       LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery     LocationDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Volume       int         `gorm:"type:integer;not null"`
	Total        float64     `gorm:"type:double precision;not null"`
	CreatedAt    time.Time   `gorm:"type:timestamptz;not null;index:idx_orders_status_created_at,priority:2"`
	Status       int         `gorm:"type:smallint;not null;index:idx_orders_status_created_at,priority:1"`
	DriverID     *uuid.UUID  `gorm:"type:uuid;index:idx_orders_driver_id"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func newLocationDTO(l kernel.Location) LocationDTO {
	return LocationDTO{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		Number:       o.Number().String(),
		RestaurantID: o.RestaurantID().Bytes(),
		Pickup:       newLocationDTO(o.Pickup()),
		Delivery:     newLocationDTO(o.Delivery()),
		Volume:       o.Volume(),
		Total:        o.Total(),
		CreatedAt:    o.CreatedAt(),
		Status:       int(o.Status()),
		DriverID:     driverID,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	number, err := order.NewNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewLocation(dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewLocation(dto.Delivery.Latitude, dto.Delivery.Longitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		restaurantID,
		pickup,
		delivery,
		dto.Volume,
		dto.Total,
		dto.CreatedAt,
		order.Status(dto.Status),
		driverID,
	)
}
