package services

import (
	"time"

	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/domain/model/stop"
)

// ShipmentReporter is a domain service that assembles the shipment status
// report for one order: the per-stop status list and the aggregate progress,
// packaged as the single artifact the display layer consumes.
//
// The service performs no decision logic of its own beyond sequencing the
// status derivation and the aggregation; the rules live on stop.Stop and in
// shipment.Aggregate. Build is pure given (order, stops, now): it reads
// nothing outside its arguments, mutates nothing, and returns a freshly
// constructed report, so concurrent invocations for different orders need no
// coordination.
//
// Example usage:
//
//	reporter := services.NewShipmentReporter()
//	report, err := reporter.Build(order, stops, time.Now().UTC())
//	if err != nil {
//	    // a stop or the order was not properly constructed
//	    return
//	}
//	fmt.Println(report.Progress()) // e.g. "2/5"
type ShipmentReporter struct{}

// NewShipmentReporter creates a new ShipmentReporter instance.
func NewShipmentReporter() ShipmentReporter {
	return ShipmentReporter{}
}

// Build derives the status of every stop as observed at now, preserving the
// input order of stops, aggregates the completion progress over the same
// stops, and packages both with the order.
//
// The caller injects now, so report generation is reproducible. An empty
// stop slice yields a report with no entries and zero progress, not an
// error.
func (r ShipmentReporter) Build(o *order.Order, stops []*stop.Stop, now time.Time) (*shipment.Report, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	stopStatuses := make([]shipment.StopStatus, 0, len(stops))
	for _, s := range stops {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		stopStatuses = append(stopStatuses, shipment.StopStatus{
			Stop:   s,
			Status: s.StatusAt(now),
		})
	}

	return shipment.NewReport(o, stopStatuses, shipment.Aggregate(stops))
}
