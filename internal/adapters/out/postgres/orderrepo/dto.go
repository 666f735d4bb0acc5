// Package orderrepo provides the GORM-backed adapter for the order store.
// The orders table is populated by the upstream order management system;
// this package only reads it, mapping rows to the order domain aggregate.
package orderrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// OrderDTO mirrors one row of the orders table.
type OrderDTO struct {
	OrderID               string    `gorm:"column:order_id;primaryKey"`
	OrderDate             time.Time `gorm:"column:order_date"`
	CustomerID            string    `gorm:"column:customer_id;index"`
	OriginLocationID      string    `gorm:"column:origin_location_id"`
	DestinationLocationID string    `gorm:"column:destination_location_id"`
	ServiceLevel          string    `gorm:"column:service_level"`
	OrderValue            float64   `gorm:"column:order_value"`
	WeightKg              float64   `gorm:"column:weight_kg"`
	Status                string    `gorm:"column:status"`
	CreatedAt             time.Time `gorm:"column:created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// toDomain converts a database row to the order aggregate using
// RestoreOrder. Timestamps are normalized to absolute instants on the way
// in, so the rest of the system never sees a session-zoned value.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Details{
		OrderDate:             kernel.NormalizeInstant(dto.OrderDate),
		CustomerID:            dto.CustomerID,
		OriginLocationID:      dto.OriginLocationID,
		DestinationLocationID: dto.DestinationLocationID,
		ServiceLevel:          dto.ServiceLevel,
		OrderValue:            dto.OrderValue,
		WeightKg:              dto.WeightKg,
		Status:                dto.Status,
		CreatedAt:             kernel.NormalizeInstant(dto.CreatedAt),
		UpdatedAt:             kernel.NormalizeInstant(dto.UpdatedAt),
	})
}
