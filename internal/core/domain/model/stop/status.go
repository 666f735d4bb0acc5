package stop

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// Status is the derived delivery state of a single stop.
//
// Unlike a persisted state machine, a Status is never stored or transitioned:
// it is recomputed from the stop's raw timestamps on every query. The logical
// progression is time-driven on one track (Scheduled becomes Delayed once the
// planned arrival passes) and event-driven on the other (the appearance of
// actual timestamps moves a stop to Arrived and then Completed). The tracks
// race: a Delayed stop can still reach Arrived and Completed, so Delayed is a
// snapshot valid only at the query instant.
type Status int

const (
	// Unknown means the stop has neither actual timestamps nor a planned
	// arrival; nothing can be said about it. This value (0) also catches
	// uninitialized Status values.
	Unknown Status = iota

	// Scheduled means no actual arrival is recorded yet and the planned
	// arrival is still in the future (or exactly now).
	Scheduled

	// Delayed means no actual arrival is recorded and the planned arrival
	// instant has passed.
	Delayed

	// Arrived means the shipment has arrived at the stop but not yet
	// departed.
	Arrived

	// Completed means both the actual arrival and the actual departure are
	// recorded.
	Completed
)

// getStatusStrings returns the display label for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Scheduled: "Scheduled",
		Delayed:   "Delayed",
		Arrived:   "Arrived",
		Completed: "Completed",
	}
}

// getStatusIcons returns the display marker for every Status value. The
// markers are passed through to the display layer untranslated.
func getStatusIcons() map[Status]string {
	return map[Status]string{
		Unknown:   "⚫",
		Scheduled: "⚪",
		Delayed:   "🔴",
		Arrived:   "🟡",
		Completed: "🟢",
	}
}

// String returns the human-readable label of the status. It implements
// fmt.Stringer and is safe on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Icon returns the symbolic display marker for the status. Invalid values
// map to the Unknown marker.
func (s Status) Icon() string {
	if icon, ok := getStatusIcons()[s]; ok {
		return icon
	}
	return getStatusIcons()[Unknown]
}

// StatusAt derives the delivery status of the stop as observed at the given
// instant. The caller supplies now, so the computation is pure and
// reproducible.
//
// The rules are priority-ordered; the first match wins:
//  1. Both actual timestamps recorded: Completed.
//  2. Actual arrival recorded, departure not: Arrived.
//  3. No actual arrival but a planned arrival exists: Delayed when now is
//     strictly after the planned arrival, otherwise Scheduled. Both operands
//     are normalized to absolute instants before the comparison.
//  4. Otherwise: Unknown.
//
// Actual events outrank plans, which is why the time comparison is confined
// to the one rule where no actual arrival exists. A record carrying a
// departure without an arrival violates an upstream invariant; it falls
// through rule 1 and rule 2 and is classified by its plan state instead of
// faulting.
func (s *Stop) StatusAt(now time.Time) Status {
	switch {
	case s.timeline.ActualArrivalAt != nil && s.timeline.ActualDepartAt != nil:
		return Completed
	case s.timeline.ActualArrivalAt != nil:
		return Arrived
	case s.timeline.PlannedArrivalAt != nil:
		planned := kernel.NormalizeInstant(*s.timeline.PlannedArrivalAt)
		if kernel.NormalizeInstant(now).After(planned) {
			return Delayed
		}
		return Scheduled
	default:
		return Unknown
	}
}
