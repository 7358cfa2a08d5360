package benefit

import (
	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/leave"
)

// =============================================================================
// DOUBLE DAYS - Both parents drawing benefit on the same day
// =============================================================================

// takesDay applies the simplified weekday rule: a 7-day cadence takes
// every day, any other cadence takes Monday-Friday only.
func takesDay(p leave.Period, d calendar.Date) bool {
	if p.DaysPerWeek == 7 {
		return true
	}
	return d.IsWeekday()
}

// CalculateDoubleDays estimates how many double days two parents' plans
// use. For every pair of periods (one from each parent) the days both
// parents take inside the overlap are counted, scaled by
// min(daysPerWeekA, daysPerWeekB)/7 and rounded; the pair results are
// summed.
//
// The value is advisory. It is compared against MaxDoubleDays for a
// warning but never clamped.
func CalculateDoubleDays(a, b leave.Parent) int {
	total := 0
	for _, pa := range a.Periods {
		for _, pb := range b.Periods {
			total += pairDoubleDays(pa, pb)
		}
	}
	return total
}

func pairDoubleDays(pa, pb leave.Period) int {
	overlap, ok := pa.Span().Intersect(pb.Span())
	if !ok {
		return 0
	}
	count := 0
	for _, d := range overlap.Days() {
		if takesDay(pa, d) && takesDay(pb, d) {
			count++
		}
	}
	if count == 0 {
		return 0
	}
	cadence := decimal.NewFromInt(int64(min(pa.DaysPerWeek, pb.DaysPerWeek)))
	scaled := decimal.NewFromInt(int64(count)).Mul(cadence).Div(daysPerWeek).Round(0)
	return int(scaled.IntPart())
}
