// Package shipment provides the derived, ephemeral artifacts of shipment
// tracking: the per-order completion Progress and the Report handed to the
// display layer.
//
// Nothing in this package is persisted. A Report is rebuilt from raw stop
// timestamps on every query and discarded once consumed.
package shipment
