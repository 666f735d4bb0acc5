// Package services provides domain services for the shipment tracking
// system. Domain services host logic that spans more than one aggregate and
// therefore does not belong to a single entity.
//
// The package includes:
//   - ShipmentReporter: composes the per-stop status derivation and the
//     progress aggregation into the report consumed by the display layer
//
// Services here are stateless and pure: every input is supplied by value and
// every output is freshly constructed, so they are safe for concurrent use.
package services
