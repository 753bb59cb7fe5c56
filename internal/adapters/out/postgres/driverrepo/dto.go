// Package driverrepo maps driver aggregates to the drivers and bags tables.
package driverrepo

import (
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is a driver row with its bags loaded through the driver_id foreign key.
type DriverDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"type:varchar(255);not null"`
	Speed    float64     `gorm:"type:double precision;not null"`
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Bags     []BagDTO    `gorm:"foreignKey:DriverID;constraint:OnDelete:CASCADE"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

// BagDTO stores one bag; OrderID is set while the bag carries an order.
type BagDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID uuid.UUID  `gorm:"type:uuid;not null;index:idx_bags_driver_id"`
	Name     string     `gorm:"type:varchar(255);not null"`
	Capacity int        `gorm:"type:integer;not null"`
	OrderID  *uuid.UUID `gorm:"type:uuid;index:idx_bags_order_id"`
}

func (BagDTO) TableName() string {
	return "bags"
}

func fromDomain(d *driver.Driver) DriverDTO {
	driverID := d.ID().Bytes()
	bags := make([]BagDTO, 0, len(d.Bags()))

	for _, bag := range d.Bags() {
		var orderID *uuid.UUID
		if bag.OrderID() != nil {
			raw := bag.OrderID().Bytes()
			orderID = &raw
		}

		bags = append(bags, BagDTO{
			ID:       bag.ID().Bytes(),
			DriverID: driverID,
			Name:     bag.Name(),
			Capacity: bag.Capacity(),
			OrderID:  orderID,
		})
	}

	return DriverDTO{
		ID:    driverID,
		Name:  d.Name(),
		Speed: d.Speed(),
		Location: LocationDTO{
			Latitude:  d.Location().Latitude(),
			Longitude: d.Location().Longitude(),
		},
		Bags: bags,
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	bags := make([]*driver.Bag, 0, len(dto.Bags))
	for _, bagDTO := range dto.Bags {
		bag, bagErr := bagToDomain(bagDTO)
		if bagErr != nil {
			return nil, bagErr
		}
		bags = append(bags, bag)
	}

	return driver.RestoreDriver(id, dto.Name, dto.Speed, loc, bags)
}

func bagToDomain(dto BagDTO) (*driver.Bag, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return driver.RestoreBag(id, dto.Name, dto.Capacity, orderID)
}
