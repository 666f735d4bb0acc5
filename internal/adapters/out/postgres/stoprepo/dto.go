// Package stoprepo provides the GORM-backed adapter for the stop store.
// Stop rows are recorded by upstream tracking feeds and joined with the
// facility registry on the way out; this package only reads them.
package stoprepo

import (
	"time"

	"github.com/google/uuid"
)

// StopDTO mirrors one row of the shipment_stops table. The four event
// timestamps and the delay reason are nullable: a missing actual timestamp
// means the event has not happened, a missing planned timestamp means no
// schedule exists.
type StopDTO struct {
	StopID           uuid.UUID  `gorm:"column:stop_id;type:uuid;primaryKey"`
	OrderID          string     `gorm:"column:order_id;index"`
	StopSequence     int        `gorm:"column:stop_sequence"`
	FacilityID       string     `gorm:"column:facility_id;index"`
	PlannedArrivalAt *time.Time `gorm:"column:planned_arrival_at"`
	ActualArrivalAt  *time.Time `gorm:"column:actual_arrival_at"`
	PlannedDepartAt  *time.Time `gorm:"column:planned_depart_at"`
	ActualDepartAt   *time.Time `gorm:"column:actual_depart_at"`
	DelayReasonCode  *string    `gorm:"column:delay_reason_code"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

// TableName specifies the database table name for stop rows.
func (StopDTO) TableName() string {
	return "shipment_stops"
}

// FacilityDTO mirrors one row of the facilities registry table.
type FacilityDTO struct {
	FacilityID   string `gorm:"column:facility_id;primaryKey"`
	FacilityName string `gorm:"column:facility_name"`
	FacilityType string `gorm:"column:facility_type"`
	City         string `gorm:"column:city"`
	Region       string `gorm:"column:region"`
}

// TableName specifies the database table name for facility rows.
func (FacilityDTO) TableName() string {
	return "facilities"
}
