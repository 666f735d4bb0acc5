package shipment

import (
	"errors"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/stop"
)

// ErrReportIsNotConstructed is returned when a Report instance was not
// created through the NewReport factory method.
var ErrReportIsNotConstructed = errors.New("Report must be created via NewReport constructor")

// StopStatus pairs a stop with the status derived for it at the report's
// observation instant.
type StopStatus struct {
	Stop   *stop.Stop
	Status stop.Status
}

// Report is the single artifact the display layer consumes for one order: the
// order itself, a per-stop status list in route order, and the aggregate
// progress.
//
// A Report is ephemeral. It is recomputed on every query, owns no resources,
// and has no mutation API once built.
type Report struct {
	order        *order.Order
	stopStatuses []StopStatus
	progress     Progress

	isConstructed bool
}

// NewReport packages the parts of a shipment status report. The stop status
// entries must already be in route order; an empty slice is valid and
// describes an order with no registered stops.
func NewReport(o *order.Order, stopStatuses []StopStatus, progress Progress) (*Report, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Report{
		order:         o,
		stopStatuses:  stopStatuses,
		progress:      progress,
		isConstructed: true,
	}, nil
}

// Validate ensures the Report instance was properly constructed through
// NewReport.
func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}

	return nil
}

// Order returns the order the report describes.
func (r *Report) Order() *order.Order {
	return r.order
}

// StopStatuses returns the per-stop status entries in route order.
func (r *Report) StopStatuses() []StopStatus {
	return r.stopStatuses
}

// Progress returns the aggregate completion progress.
func (r *Report) Progress() Progress {
	return r.progress
}
