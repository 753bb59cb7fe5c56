package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Orders it writes are handed to the tracker so the unit of work can publish them after commit.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{db: db, tracker: tracker}
}

// Add inserts the order. A taken order number is reported as errs.ErrObjectAlreadyExists.
func (r *GormOrderRepository) Add(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	row := fromDomain(o)
	err := r.db.WithContext(ctx).Create(&row).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewObjectAlreadyExistsErrorWithCause("number", row.Number, err)
	case err != nil:
		return err
	}

	r.tracker.TrackAggregate(o.ID(), o)
	return nil
}

// Update writes the mutable part of an order: its status and driver.
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	row := fromDomain(o)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", row.ID).
		Select("status", "driver_id").
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}

	r.tracker.TrackAggregate(o.ID(), o)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var row OrderDTO
	err := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return nil, err
	}

	return toDomain(row)
}

// GetFirstInCreatedStatus returns the oldest order still waiting for a driver.
func (r *GormOrderRepository) GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error) {
	var row OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(inStatus(order.Created), oldestFirst).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("order", "first in created status")
	}
	if err != nil {
		return nil, err
	}

	return toDomain(row)
}

// GetAllInDelivery returns Assigned and PickedUp orders, oldest first.
func (r *GormOrderRepository) GetAllInDelivery(ctx context.Context) ([]*order.Order, error) {
	var rows []OrderDTO
	if err := r.db.WithContext(ctx).
		Scopes(inStatus(order.Assigned, order.PickedUp), oldestFirst).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return toDomainList(rows)
}

func inStatus(statuses ...order.Status) func(*gorm.DB) *gorm.DB {
	codes := make([]int, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, int(s))
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status IN ?", codes)
	}
}

func oldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, id")
}

func toDomainList(rows []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
