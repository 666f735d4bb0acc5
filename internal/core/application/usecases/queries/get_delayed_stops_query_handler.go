package queries

import (
	"context"
	"database/sql"
	"time"

	"tracking/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDelayedStopsQueryHandler lists overdue stops straight from the
// database. This is a pure read model: it bypasses the domain aggregates and
// mirrors the delay rule (planned arrival passed, no actual arrival) in SQL
// so the monitoring job can scan all orders in one query.
type GetDelayedStopsQueryHandler struct {
	db *gorm.DB
}

// NewGetDelayedStopsQueryHandler creates a handler for delayed-stop scans.
// Requires a GORM database connection for query execution.
func NewGetDelayedStopsQueryHandler(db *gorm.DB) GetDelayedStopsQueryHandler {
	return GetDelayedStopsQueryHandler{db: db}
}

// Handle executes the scan. Results are ordered by order id and sequence for
// stable log output.
func (h GetDelayedStopsQueryHandler) Handle(
	ctx context.Context,
	query GetDelayedStopsQuery,
) ([]GetDelayedStopsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	delayed := make([]GetDelayedStopsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.order_id,
			s.stop_sequence,
			f.facility_name,
			f.city,
			s.planned_arrival_at,
			s.delay_reason_code
		FROM shipment_stops s
		JOIN facilities f ON s.facility_id = f.facility_id
		WHERE s.actual_arrival_at IS NULL
		  AND s.planned_arrival_at IS NOT NULL
		  AND s.planned_arrival_at < ?
		ORDER BY s.order_id, s.stop_sequence
	`, kernel.NormalizeInstant(query.AsOf())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDelayedStopsQueryResponse
		var plannedArrival time.Time
		var delayReason sql.NullString

		err = rows.Scan(
			&resp.OrderID,
			&resp.Sequence,
			&resp.FacilityName,
			&resp.City,
			&plannedArrival,
			&delayReason,
		)
		if err != nil {
			return nil, err
		}

		resp.PlannedArrivalAt = kernel.NormalizeInstant(plannedArrival)
		resp.DelayReasonCode = delayReason.String
		delayed = append(delayed, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return delayed, nil
}
