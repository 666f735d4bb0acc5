package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// OrderRepository is the read-only contract of the order store. Orders are
// populated by an upstream system; the tracker only queries them.
type OrderRepository interface {
	// Get retrieves the order with the given identifier. Returns
	// errs.ObjectNotFoundError when no such order is registered; a missing
	// order is a valid outcome for the tracker, not a fault.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
