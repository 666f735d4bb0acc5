package stoprepo

import (
	"context"
	"database/sql"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/stop"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStopRepository implements ports.StopRepository using GORM.
type GormStopRepository struct {
	db *gorm.DB
}

// NewGormStopRepository creates a new GORM stop repository.
func NewGormStopRepository(db *gorm.DB) *GormStopRepository {
	return &GormStopRepository{db: db}
}

// GetByOrder retrieves the stops of one order joined with their facility
// attributes, ordered by sequence ascending. An order without stops yields
// an empty slice.
func (r *GormStopRepository) GetByOrder(ctx context.Context, orderID kernel.OrderID) ([]*stop.Stop, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	stops := make([]*stop.Stop, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.stop_id,
			s.stop_sequence,
			s.facility_id,
			f.facility_name,
			f.facility_type,
			f.city,
			f.region,
			s.planned_arrival_at,
			s.actual_arrival_at,
			s.planned_depart_at,
			s.actual_depart_at,
			s.delay_reason_code
		FROM shipment_stops s
		JOIN facilities f ON s.facility_id = f.facility_id
		WHERE s.order_id = ?
		ORDER BY s.stop_sequence
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			stopID          uuid.UUID
			sequence        int
			facility        stop.Facility
			plannedArrival  sql.NullTime
			actualArrival   sql.NullTime
			plannedDepart   sql.NullTime
			actualDepart    sql.NullTime
			delayReasonCode sql.NullString
		)

		err = rows.Scan(
			&stopID,
			&sequence,
			&facility.ID,
			&facility.Name,
			&facility.Type,
			&facility.City,
			&facility.Region,
			&plannedArrival,
			&actualArrival,
			&plannedDepart,
			&actualDepart,
			&delayReasonCode,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(stopID[:])
		if idErr != nil {
			return nil, idErr
		}

		s, stopErr := stop.RestoreStop(id, orderID, sequence, facility, stop.Timeline{
			PlannedArrivalAt: instantOrNil(plannedArrival),
			ActualArrivalAt:  instantOrNil(actualArrival),
			PlannedDepartAt:  instantOrNil(plannedDepart),
			ActualDepartAt:   instantOrNil(actualDepart),
			DelayReasonCode:  delayReasonCode.String,
		})
		if stopErr != nil {
			return nil, stopErr
		}

		stops = append(stops, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}

// instantOrNil maps a nullable column to an optional normalized instant.
func instantOrNil(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	instant := kernel.NormalizeInstant(t.Time)
	return &instant
}
