// Package restaurantrepo maps restaurant aggregates to the restaurants table.
package restaurantrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

type RestaurantDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(255);not null;index:idx_restaurants_name"`
	Slug        string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_restaurants_slug"`
	Location    LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	PrepMinutes int         `gorm:"type:integer;not null"`
	Email       string      `gorm:"type:varchar(255);not null;default:''"`
	Phone       string      `gorm:"type:varchar(32);not null;default:''"`
	CreatedAt   time.Time   `gorm:"type:timestamptz;not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:   r.ID().Bytes(),
		Name: r.Name(),
		Slug: r.Slug(),
		Location: LocationDTO{
			Latitude:  r.Location().Latitude(),
			Longitude: r.Location().Longitude(),
		},
		PrepMinutes: r.PrepMinutes(),
		Email:       r.Email(),
		Phone:       r.Phone(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Slug, loc, dto.PrepMinutes, dto.Email, dto.Phone)
}
