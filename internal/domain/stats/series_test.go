//go:build unit

package stats_test

import (
	"testing"
	"time"

	"parking-app/internal/domain/stats"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeries(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 2025-06-10 is a Tuesday; 20:00 UTC is already the 11th in Kolkata.
	now := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)

	t.Run("zero-filled, oldest first", func(t *testing.T) {
		totals := map[string]float64{
			"2025-06-05": 300,
			"2025-06-11": 150,
			"2025-06-01": 999, // outside the window
		}

		got := stats.BuildSeries(now, loc, stats.SeriesDays, totals)

		want := []stats.Point{
			{Date: "2025-06-05", Label: "Thu", Value: 300},
			{Date: "2025-06-06", Label: "Fri", Value: 0},
			{Date: "2025-06-07", Label: "Sat", Value: 0},
			{Date: "2025-06-08", Label: "Sun", Value: 0},
			{Date: "2025-06-09", Label: "Mon", Value: 0},
			{Date: "2025-06-10", Label: "Tue", Value: 0},
			{Date: "2025-06-11", Label: "Wed", Value: 150},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("series mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty totals still yields seven points", func(t *testing.T) {
		got := stats.BuildSeries(now, loc, stats.SeriesDays, nil)
		require.Len(t, got, stats.SeriesDays)
		for _, p := range got {
			assert.Zero(t, p.Value)
		}
	})

	t.Run("non-positive window", func(t *testing.T) {
		assert.Empty(t, stats.BuildSeries(now, loc, 0, nil))
	})
}

func TestWindowStart(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	now := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)

	got := stats.WindowStart(now, loc, stats.SeriesDays)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, loc), got)
}

func TestOccupancyRate(t *testing.T) {
	tests := []struct {
		name     string
		occupied int64
		total    int64
		want     float64
	}{
		{name: "no spots", occupied: 0, total: 0, want: 0},
		{name: "empty", occupied: 0, total: 10, want: 0},
		{name: "quarter", occupied: 1, total: 4, want: 25},
		{name: "full", occupied: 8, total: 8, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, stats.OccupancyRate(tt.occupied, tt.total), 1e-9)
		})
	}
}
