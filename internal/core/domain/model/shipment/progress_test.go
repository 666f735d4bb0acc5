package shipment_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/domain/model/stop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStop(t *testing.T, sequence int, timeline stop.Timeline) *stop.Stop {
	t.Helper()
	orderID, err := kernel.NewOrderID("20250115-001")
	require.NoError(t, err)

	s, err := stop.NewStop(kernel.NewUUID(), orderID, sequence, stop.Facility{ID: "FAC-001"}, timeline)
	require.NoError(t, err)
	return s
}

func completedStop(t *testing.T, sequence int) *stop.Stop {
	t.Helper()
	arrived := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	departed := arrived.Add(time.Hour)
	return buildStop(t, sequence, stop.Timeline{ActualArrivalAt: &arrived, ActualDepartAt: &departed})
}

func TestAggregate(t *testing.T) {
	t.Run("empty route yields zero counts and zero ratio", func(t *testing.T) {
		p := shipment.Aggregate(nil)

		assert.Equal(t, 0, p.CompletedCount())
		assert.Equal(t, 0, p.TotalCount())
		assert.Zero(t, p.Ratio())
	})

	t.Run("counts only stops with both actuals", func(t *testing.T) {
		arrived := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
		planned := arrived.Add(6 * time.Hour)

		stops := []*stop.Stop{
			completedStop(t, 1),
			buildStop(t, 2, stop.Timeline{ActualArrivalAt: &arrived}),
			buildStop(t, 3, stop.Timeline{PlannedArrivalAt: &planned}),
			buildStop(t, 4, stop.Timeline{}),
		}

		p := shipment.Aggregate(stops)

		assert.Equal(t, 1, p.CompletedCount())
		assert.Equal(t, 4, p.TotalCount())
		assert.InEpsilon(t, 0.25, p.Ratio(), 1e-9)
	})

	t.Run("ratio is exactly K/N", func(t *testing.T) {
		stops := []*stop.Stop{
			completedStop(t, 1),
			completedStop(t, 2),
			buildStop(t, 3, stop.Timeline{}),
		}

		p := shipment.Aggregate(stops)

		assert.Equal(t, "2/3", p.String())
		assert.InEpsilon(t, 2.0/3.0, p.Ratio(), 1e-12)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		forward := []*stop.Stop{completedStop(t, 1), buildStop(t, 2, stop.Timeline{})}
		backward := []*stop.Stop{forward[1], forward[0]}

		assert.Equal(t, shipment.Aggregate(forward), shipment.Aggregate(backward))
	})

	t.Run("agrees with the status derivation for every stop", func(t *testing.T) {
		now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
		past := now.Add(-time.Hour)

		stops := []*stop.Stop{
			completedStop(t, 1),
			buildStop(t, 2, stop.Timeline{ActualArrivalAt: &past}),
			buildStop(t, 3, stop.Timeline{PlannedArrivalAt: &past}),
			buildStop(t, 4, stop.Timeline{}),
			buildStop(t, 5, stop.Timeline{ActualDepartAt: &past}),
		}

		wantCompleted := 0
		for _, s := range stops {
			if s.StatusAt(now) == stop.Completed {
				wantCompleted++
			}
		}

		assert.Equal(t, wantCompleted, shipment.Aggregate(stops).CompletedCount())
	})
}

func TestNewProgress(t *testing.T) {
	t.Run("valid counts", func(t *testing.T) {
		p, err := shipment.NewProgress(2, 5)

		require.NoError(t, err)
		assert.Equal(t, 2, p.CompletedCount())
		assert.Equal(t, 5, p.TotalCount())
		assert.InEpsilon(t, 0.4, p.Ratio(), 1e-9)
	})

	t.Run("completed may equal total", func(t *testing.T) {
		p, err := shipment.NewProgress(3, 3)

		require.NoError(t, err)
		assert.InEpsilon(t, 1.0, p.Ratio(), 1e-9)
	})

	t.Run("completed above total is rejected", func(t *testing.T) {
		_, err := shipment.NewProgress(4, 3)

		require.Error(t, err)
	})

	t.Run("negative counts are rejected", func(t *testing.T) {
		_, err := shipment.NewProgress(-1, 3)
		require.Error(t, err)

		_, err = shipment.NewProgress(0, -3)
		require.Error(t, err)
	})
}
