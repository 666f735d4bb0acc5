package queries

import (
	"errors"
	"time"

	"tracking/internal/pkg/guard"
)

var (
	ErrGetDelayedStopsQueryIsNotConstructed = errors.New(
		"GetDelayedStopsQuery must be created via NewGetDelayedStopsQuery constructor",
	)
)

// GetDelayedStopsQuery lists the stops, across all orders, whose planned
// arrival has passed without an actual arrival being recorded. It feeds the
// delay monitoring job.
//
// Example:
//
//	query, _ := NewGetDelayedStopsQuery(time.Now().UTC())
//	delayed, err := handler.Handle(ctx, query)
//	for _, d := range delayed {
//	    log.Printf("order %s stop %d overdue at %s", d.OrderID, d.Sequence, d.FacilityName)
//	}
type GetDelayedStopsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetDelayedStopsQuery creates a query for stops that are overdue as of
// the given instant.
func NewGetDelayedStopsQuery(asOf time.Time) (GetDelayedStopsQuery, error) {
	if asOf.IsZero() {
		return GetDelayedStopsQuery{}, ErrObservationInstantIsRequired
	}

	return GetDelayedStopsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDelayedStopsQueryIsNotConstructed if validation fails.
func (q GetDelayedStopsQuery) Validate() error {
	return q.guard.Validate(ErrGetDelayedStopsQueryIsNotConstructed)
}

// AsOf returns the instant the delay comparison is made against.
func (q GetDelayedStopsQuery) AsOf() time.Time {
	return q.asOf
}

// GetDelayedStopsQueryResponse describes one overdue stop for monitoring.
// DelayReasonCode is empty when no reason has been recorded upstream.
type GetDelayedStopsQueryResponse struct {
	OrderID          string
	Sequence         int
	FacilityName     string
	City             string
	PlannedArrivalAt time.Time
	DelayReasonCode  string
}
