package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetShipmentProgressQueryIsNotConstructed = errors.New(
		"GetShipmentProgressQuery must be created via NewGetShipmentProgressQuery constructor",
	)
	ErrObservationInstantIsRequired = errors.New("observation instant is required")
)

// GetShipmentProgressQuery requests the shipment status report of one order:
// the status of every stop along the route plus the aggregate completion
// progress.
//
// The observation instant travels inside the query rather than being read
// from a clock during handling, so the same query always yields the same
// report. Callers at the system edge pass time.Now(); tests pass a fixed
// instant.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID("20250115-001")
//	query, _ := NewGetShipmentProgressQuery(orderID, time.Now().UTC())
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("progress: %s\n", report.Progress())
type GetShipmentProgressQuery struct {
	orderID kernel.OrderID
	now     time.Time

	guard guard.ConstructorGuard
}

// NewGetShipmentProgressQuery creates a query for the given order as
// observed at the given instant.
func NewGetShipmentProgressQuery(orderID kernel.OrderID, now time.Time) (GetShipmentProgressQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetShipmentProgressQuery{}, err
	}
	if now.IsZero() {
		return GetShipmentProgressQuery{}, ErrObservationInstantIsRequired
	}

	return GetShipmentProgressQuery{
		orderID: orderID,
		now:     now,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentProgressQueryIsNotConstructed if validation fails.
func (q GetShipmentProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentProgressQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to report on.
func (q GetShipmentProgressQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// Now returns the observation instant the report is derived against.
func (q GetShipmentProgressQuery) Now() time.Time {
	return q.now
}
