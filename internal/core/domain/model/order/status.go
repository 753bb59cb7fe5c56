package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Created ──> Assigned ──> PickedUp ──> Completed
//	              │  ▲
//	              └──┘ (reassignment)
//
// Status values are persisted as integers, so the constants must keep their order.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	// Created orders wait for a driver.
	Created
	// Assigned orders have a driver heading to the restaurant.
	Assigned
	// PickedUp orders are in the driver's bag on the way to the customer.
	PickedUp
	// Completed orders were handed to the customer. Final.
	Completed
)

var statusStrings = map[Status]string{
	Created:   "Created",
	Assigned:  "Assigned",
	PickedUp:  "PickedUp",
	Completed: "Completed",
}

// Validate rejects Unknown and values outside the declared constants.
func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the order still needs work from the marketplace.
func (s Status) IsActive() bool {
	return s == Created || s == Assigned || s == PickedUp
}

// HasDriver reports whether an order in this status must reference a driver.
func (s Status) HasDriver() bool {
	return s == Assigned || s == PickedUp || s == Completed
}

// ValidateCanHaveDriver checks the driver reference against the status: Created orders
// have none, every later status has one.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && !s.HasDriver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	}

	if !hasDriver && s.HasDriver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s),
		)
	}

	return nil
}

// Assign returns Assigned for Created and Assigned orders.
func (s Status) Assign() (Status, error) {
	if s != Created && s != Assigned {
		return Unknown, transitionError(s, "assign")
	}
	return Assigned, nil
}

// PickUp returns PickedUp for Assigned orders.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return Unknown, transitionError(s, "pick up")
	}
	return PickedUp, nil
}

// Complete returns Completed for PickedUp orders.
func (s Status) Complete() (Status, error) {
	if s != PickedUp {
		return Unknown, transitionError(s, "complete")
	}
	return Completed, nil
}

func transitionError(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s, action),
	)
}
