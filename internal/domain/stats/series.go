// Package stats holds the pure parts of dashboard statistics: the 7-day
// series and the occupancy rate.
package stats

import (
	"time"
)

const (
	SeriesDays  = 7
	DateLayout  = "2006-01-02"
	RecentLimit = 5
	labelLayout = "Mon"
)

type Point struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// WindowStart is local midnight of the oldest day in a window of `days`
// calendar days ending today.
func WindowStart(now time.Time, loc *time.Location, days int) time.Time {
	local := now.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d-(days-1), 0, 0, 0, 0, loc)
}

// BuildSeries returns exactly `days` points ordered oldest to newest.
// totals is keyed by DateLayout; missing days are zero.
func BuildSeries(now time.Time, loc *time.Location, days int, totals map[string]float64) []Point {
	if days <= 0 {
		return []Point{}
	}
	start := WindowStart(now, loc, days)

	points := make([]Point, 0, days)
	for i := range days {
		// AddDate keeps wall-clock midnight across DST shifts.
		day := start.AddDate(0, 0, i)
		key := day.Format(DateLayout)
		points = append(points, Point{
			Date:  key,
			Label: day.Format(labelLayout),
			Value: totals[key],
		})
	}
	return points
}

// OccupancyRate is occupied/total as a percentage; zero when there are no
// spots.
func OccupancyRate(occupied, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(occupied) / float64(total) * 100
}
