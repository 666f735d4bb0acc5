// Package order provides the read-only order aggregate for the shipment
// tracking system.
//
// Orders are created upstream by an order management system; the tracker
// reconstructs them from the order store per query, surfaces their
// descriptive attributes to the display layer, and never writes them back.
// The order-level free-text status carried here is independent of the
// per-stop delivery status derived by the stop package.
package order
