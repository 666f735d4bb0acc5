package shipment

import (
	"fmt"

	"tracking/internal/core/domain/model/stop"
	"tracking/internal/pkg/errs"
)

// Progress summarizes how far a shipment has advanced along its route. It is
// a derived value: completedCount counts the stops with both actual
// timestamps recorded, totalCount is the number of stops, and ratio is their
// quotient (0 for a shipment with no stops).
type Progress struct {
	completedCount int
	totalCount     int
}

// NewProgress creates a Progress value, enforcing
// 0 <= completedCount <= totalCount.
func NewProgress(completedCount int, totalCount int) (Progress, error) {
	if completedCount < 0 || totalCount < 0 || completedCount > totalCount {
		return Progress{}, errs.NewValueIsInvalidErrorWithCause("progress counts are invalid",
			fmt.Errorf("%d of %d stops completed", completedCount, totalCount))
	}

	return Progress{completedCount: completedCount, totalCount: totalCount}, nil
}

// Aggregate computes the completion progress over the stops of one order.
//
// The completion predicate (both actual timestamps recorded) matches rule 1
// of the status derivation, so a stop counts as completed here exactly when
// StatusAt classifies it as Completed. The input order is irrelevant to the
// counts.
func Aggregate(stops []*stop.Stop) Progress {
	completed := 0
	for _, s := range stops {
		if s.IsCompleted() {
			completed++
		}
	}

	return Progress{completedCount: completed, totalCount: len(stops)}
}

// CompletedCount returns the number of stops with both actual timestamps
// recorded.
func (p Progress) CompletedCount() int {
	return p.completedCount
}

// TotalCount returns the number of stops on the route.
func (p Progress) TotalCount() int {
	return p.totalCount
}

// Ratio returns completedCount/totalCount, and 0 by convention for an empty
// route so the display layer never sees a division fault.
func (p Progress) Ratio() float64 {
	if p.totalCount == 0 {
		return 0
	}
	return float64(p.completedCount) / float64(p.totalCount)
}

// String renders the progress as "completed/total" for logs.
func (p Progress) String() string {
	return fmt.Sprintf("%d/%d", p.completedCount, p.totalCount)
}
