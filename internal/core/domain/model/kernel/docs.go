// Package kernel provides core domain primitives for the shipment tracking
// system. It implements the fundamental building blocks shared across the
// domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - OrderID: A value object for the externally assigned order identifier
//   - Instant helpers: parsing and normalization of timestamps so that
//     comparisons always happen between absolute (UTC) instants
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
