package stop

import (
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrStopIsNotConstructed is returned when a Stop instance was not
	// created through the NewStop factory method.
	ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

	// ErrFacilityIDIsRequired is returned when a Facility is constructed
	// without an identifier.
	ErrFacilityIDIsRequired = errors.New("facility id is required")
)

// Facility describes the facility visited at a stop. All attributes are
// opaque to the tracker and surfaced for display only.
type Facility struct {
	ID   string
	Name string
	Type string

	City   string
	Region string
}

// Validate checks that the facility carries an identifier. The remaining
// attributes are free text owned by the upstream facility registry.
func (f Facility) Validate() error {
	if f.ID == "" {
		return ErrFacilityIDIsRequired
	}
	return nil
}

// Timeline carries the planned and actual arrival/departure timestamps of a
// stop, plus the optional delay reason code.
//
// A nil actual timestamp means the event has not happened yet. A nil planned
// timestamp means no schedule exists for the event, which classifies as
// Unknown rather than as "on time". The upstream data source guarantees that
// an actual departure is never recorded without an actual arrival; the
// tracker does not enforce that invariant and classifies such records by
// their arrival and plan state (see StatusAt).
type Timeline struct {
	PlannedArrivalAt *time.Time
	ActualArrivalAt  *time.Time
	PlannedDepartAt  *time.Time
	ActualDepartAt   *time.Time

	DelayReasonCode string
}

// Stop represents one facility visit within a shipment's route. It is a
// read-only entity reconstructed from the stop store per query.
//
// Stop maintains these invariants:
//   - Must have a valid unique identifier and a valid order identifier
//   - Sequence must be positive; ascending sequence defines route order
//     (values need not be contiguous)
//   - The facility must carry an identifier
//   - Can only be created through the NewStop constructor
type Stop struct {
	id       kernel.UUID
	orderID  kernel.OrderID
	sequence int
	facility Facility
	timeline Timeline

	isConstructed bool
}

// NewStop creates a Stop with validation. This is the only way to obtain a
// valid Stop.
func NewStop(
	id kernel.UUID,
	orderID kernel.OrderID,
	sequence int,
	facility Facility,
	timeline Timeline,
) (*Stop, error) {
	s := &Stop{
		timeline:      timeline,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setSequence(sequence),
		s.setFacility(facility),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStop reconstructs a Stop from persistent storage. Unlike NewStop,
// which is the entry point for freshly supplied data, this constructor
// rehydrates a stop row recorded by the upstream tracking feed. The same
// invariants are enforced on both paths.
func RestoreStop(
	id kernel.UUID,
	orderID kernel.OrderID,
	sequence int,
	facility Facility,
	timeline Timeline,
) (*Stop, error) {
	s := &Stop{
		timeline:      timeline,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setSequence(sequence),
		s.setFacility(facility),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Stop instance was properly constructed through
// NewStop or RestoreStop. Call it when handling stops of unknown origin.
func (s *Stop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStopIsNotConstructed
	}

	return nil
}

// ID returns the stop's unique identifier.
func (s *Stop) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the order this stop belongs to.
func (s *Stop) OrderID() kernel.OrderID {
	return s.orderID
}

// Sequence returns the position of the stop within the route. Stops are
// traversed in ascending sequence order.
func (s *Stop) Sequence() int {
	return s.sequence
}

// Facility returns the facility visited at this stop.
func (s *Stop) Facility() Facility {
	return s.facility
}

// PlannedArrivalAt returns the scheduled arrival instant, or nil when no
// schedule exists.
func (s *Stop) PlannedArrivalAt() *time.Time {
	return s.timeline.PlannedArrivalAt
}

// ActualArrivalAt returns the recorded arrival instant, or nil when the
// shipment has not arrived yet.
func (s *Stop) ActualArrivalAt() *time.Time {
	return s.timeline.ActualArrivalAt
}

// PlannedDepartAt returns the scheduled departure instant, or nil when no
// schedule exists.
func (s *Stop) PlannedDepartAt() *time.Time {
	return s.timeline.PlannedDepartAt
}

// ActualDepartAt returns the recorded departure instant, or nil when the
// shipment has not departed yet.
func (s *Stop) ActualDepartAt() *time.Time {
	return s.timeline.ActualDepartAt
}

// DelayReasonCode returns the opaque delay reason recorded for this stop, or
// the empty string. The tracker surfaces the code but never interprets it.
func (s *Stop) DelayReasonCode() string {
	return s.timeline.DelayReasonCode
}

// IsCompleted reports whether both the actual arrival and the actual
// departure have been recorded. This is the completion predicate counted by
// shipment.Aggregate, and it agrees with StatusAt returning Completed.
func (s *Stop) IsCompleted() bool {
	return s.timeline.ActualArrivalAt != nil && s.timeline.ActualDepartAt != nil
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Stop) setSequence(sequence int) error {
	if sequence <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequence is invalid",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	s.sequence = sequence
	return nil
}

func (s *Stop) setFacility(facility Facility) error {
	if err := facility.Validate(); err != nil {
		return err
	}
	s.facility = facility
	return nil
}
