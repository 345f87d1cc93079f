package reservation

import (
	"math"
	"time"
)

type BillingCalculator interface {
	Calculate(start, end time.Time, pricePerHour Money) Bill
}

type Bill struct {
	Start         time.Time
	End           time.Time
	DurationHours float64
	Amount        Money
}

// HourlyCeilingCalculator bills every started hour in full. The duration is
// rounded to two decimals before the ceiling is taken, so 1.001h bills one
// hour while 1.01h bills two.
type HourlyCeilingCalculator struct{}

func NewHourlyCeilingCalculator() *HourlyCeilingCalculator {
	return &HourlyCeilingCalculator{}
}

func (HourlyCeilingCalculator) Calculate(start, end time.Time, pricePerHour Money) Bill {
	hours := RoundHours(end.Sub(start))
	billable := int64(math.Ceil(hours))

	return Bill{
		Start:         start,
		End:           end,
		DurationHours: hours,
		Amount:        pricePerHour.Times(billable),
	}
}

// RoundHours converts d to hours with two decimals. Negative durations,
// which only appear with clock skew, count as zero.
func RoundHours(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return math.Round(d.Hours()*100) / 100
}
