package order

import (
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCustomerIDIsRequired is returned when an order is constructed
	// without a customer identifier.
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// Details carries the descriptive attributes of an order as recorded by the
// upstream order management system. The tracker displays these values but
// never interprets them; in particular Status is the order-level free-text
// status, independent of per-stop delivery status.
type Details struct {
	OrderDate             time.Time
	CustomerID            string
	OriginLocationID      string
	DestinationLocationID string
	ServiceLevel          string
	OrderValue            float64
	WeightKg              float64
	Status                string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Order represents one order whose shipment is being tracked. It is a
// read-only aggregate: the tracker reconstructs it from the order store per
// query and never mutates or persists it.
//
// Order maintains these invariants:
//   - Must have a valid order identifier
//   - Must have a customer identifier
//   - Order value and weight must not be negative
//   - Can only be created through the NewOrder constructor
type Order struct {
	id      kernel.OrderID
	details Details

	isConstructed bool
}

// NewOrder creates an Order with validation. This is the only way to obtain
// a valid Order, ensuring the invariants above hold.
func NewOrder(id kernel.OrderID, details Details) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage. Unlike
// NewOrder, which is the entry point for freshly supplied data, this
// constructor rehydrates an order row the upstream system already owns. The
// same invariants are enforced on both paths; a row that fails them is a
// corrupt record, not a validation request to the caller.
func RestoreOrder(id kernel.OrderID, details Details) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. Call it when handling orders of unknown origin.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.details.OrderDate
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() string {
	return o.details.CustomerID
}

// OriginLocationID returns the identifier of the shipment origin.
func (o *Order) OriginLocationID() string {
	return o.details.OriginLocationID
}

// DestinationLocationID returns the identifier of the shipment destination.
func (o *Order) DestinationLocationID() string {
	return o.details.DestinationLocationID
}

// ServiceLevel returns the purchased service level (e.g. express, standard).
func (o *Order) ServiceLevel() string {
	return o.details.ServiceLevel
}

// OrderValue returns the monetary value of the order as recorded upstream.
func (o *Order) OrderValue() float64 {
	return o.details.OrderValue
}

// WeightKg returns the shipment weight in kilograms.
func (o *Order) WeightKg() float64 {
	return o.details.WeightKg
}

// Status returns the order-level free-text status. It is unrelated to the
// per-stop delivery status derived by the stop package.
func (o *Order) Status() string {
	return o.details.Status
}

// CreatedAt returns the creation timestamp of the order record.
func (o *Order) CreatedAt() time.Time {
	return o.details.CreatedAt
}

// UpdatedAt returns the last-update timestamp of the order record.
func (o *Order) UpdatedAt() time.Time {
	return o.details.UpdatedAt
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	if details.CustomerID == "" {
		return ErrCustomerIDIsRequired
	}
	if details.OrderValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("order value is invalid",
			fmt.Errorf("%f is negative", details.OrderValue))
	}
	if details.WeightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%f is negative", details.WeightKg))
	}
	o.details = details
	return nil
}
