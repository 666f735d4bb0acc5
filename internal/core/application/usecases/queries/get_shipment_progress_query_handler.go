package queries

import (
	"context"

	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
)

// GetShipmentProgressQueryHandler resolves GetShipmentProgressQuery: it
// fetches the order and its stops from the stores and lets the
// ShipmentReporter derive the report.
//
// Example:
//
//	handler := NewGetShipmentProgressQueryHandler(orderRepo, stopRepo, services.NewShipmentReporter())
//	report, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order: no report is produced and the stop store is
//	    // never consulted
//	}
type GetShipmentProgressQueryHandler struct {
	orders   ports.OrderRepository
	stops    ports.StopRepository
	reporter services.ShipmentReporter
}

// NewGetShipmentProgressQueryHandler creates a handler over the two stores
// and the reporting domain service.
func NewGetShipmentProgressQueryHandler(
	orders ports.OrderRepository,
	stops ports.StopRepository,
	reporter services.ShipmentReporter,
) GetShipmentProgressQueryHandler {
	return GetShipmentProgressQueryHandler{
		orders:   orders,
		stops:    stops,
		reporter: reporter,
	}
}

// Handle executes the query. The order is resolved first: when it is absent
// the store's ObjectNotFoundError is returned as-is and the stop store is
// not queried. An order without stops yields an empty report.
func (h GetShipmentProgressQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentProgressQuery,
) (*shipment.Report, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	stops, err := h.stops.GetByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return h.reporter.Build(o, stops, query.Now())
}
