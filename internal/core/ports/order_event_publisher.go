package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// OrderChangedEvent is the integration event emitted after an order change is committed.
type OrderChangedEvent struct {
	OrderID    string    `json:"orderId"`
	Number     string    `json:"number"`
	Status     string    `json:"status"`
	DriverID   string    `json:"driverId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewOrderChangedEvent snapshots the order's current state.
func NewOrderChangedEvent(o *order.Order, occurredAt time.Time) OrderChangedEvent {
	event := OrderChangedEvent{
		OrderID:    o.ID().String(),
		Number:     o.Number().String(),
		Status:     o.Status().String(),
		OccurredAt: occurredAt.UTC(),
	}
	if driverID := o.Driver(); driverID != nil {
		event.DriverID = driverID.String()
	}
	return event
}

// OrderEventPublisher delivers order events to other services.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...OrderChangedEvent) error
}
