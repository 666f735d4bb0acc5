package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/stop"
)

// StopRepository is the read-only contract of the stop store. Stops are
// recorded by upstream tracking feeds; the tracker only queries them.
type StopRepository interface {
	// GetByOrder retrieves all stops of the given order, ordered by
	// sequence ascending. Returns an empty slice when the order has no
	// registered stops.
	GetByOrder(ctx context.Context, orderID kernel.OrderID) ([]*stop.Stop, error)
}
