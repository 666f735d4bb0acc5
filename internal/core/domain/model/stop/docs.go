// Package stop provides the stop entity and the delivery status derivation
// for the shipment tracking system.
//
// A Stop is one facility visit within a shipment's route, carrying planned
// and actual arrival/departure timestamps. The package derives a
// five-valued Status (Unknown, Scheduled, Delayed, Arrived, Completed) from
// those timestamps and an explicitly supplied observation instant; nothing
// is ever persisted or transitioned in place.
//
// Key rules:
//   - Actual events outrank plans: recorded timestamps decide Completed and
//     Arrived before any schedule is consulted
//   - Delay is a strict time comparison: a stop is Delayed only when the
//     observation instant is strictly after the planned arrival
//   - All time comparisons happen between normalized absolute instants
//   - Missing schedules classify as Unknown, never as "on time"
package stop
