package leave

import (
	"fmt"

	"github.com/foraldrapengen/benefit-engine/calendar"
)

// =============================================================================
// AGGREGATION
// =============================================================================

// TotalDays sums DaysToTake across periods. There is no clamping here;
// checking the shared 480-day pool is the caller's job.
func TotalDays(periods []Period) int {
	total := 0
	for _, p := range periods {
		total += p.DaysToTake
	}
	return total
}

// EarliestStart returns the minimum start date, or clock.Today() when
// there are no periods.
func EarliestStart(periods []Period, clock calendar.Clock) calendar.Date {
	if len(periods) == 0 {
		return clock.Today()
	}
	earliest := periods[0].Start
	for _, p := range periods[1:] {
		earliest = calendar.Min(earliest, p.Start)
	}
	return earliest
}

// LatestEnd returns the maximum end date, or clock.Today() when there are
// no periods.
func LatestEnd(periods []Period, clock calendar.Clock) calendar.Date {
	if len(periods) == 0 {
		return clock.Today()
	}
	latest := periods[0].End
	for _, p := range periods[1:] {
		latest = calendar.Max(latest, p.End)
	}
	return latest
}

// =============================================================================
// OVERLAP VALIDATION
// =============================================================================

// OverlapResult is the outcome of ValidateNoOverlap. When Valid is false,
// First and Second are the indices of the first colliding pair in index
// order (First < Second).
type OverlapResult struct {
	Valid   bool
	Message string
	First   int
	Second  int
}

// Pair returns the colliding indices.
func (r OverlapResult) Pair() (int, int) { return r.First, r.Second }

// Err converts a conflict into an *OverlapError, or nil when valid.
func (r OverlapResult) Err() error {
	if r.Valid {
		return nil
	}
	return &OverlapError{First: r.First, Second: r.Second}
}

// ValidateNoOverlap checks every unordered pair of periods with the
// inclusive test start1 <= end2 && start2 <= end1 and reports the first
// pair that collides. The result is advisory; nothing is corrected.
func ValidateNoOverlap(periods []Period) OverlapResult {
	for i := 0; i < len(periods); i++ {
		for j := i + 1; j < len(periods); j++ {
			if periods[i].Span().Overlaps(periods[j].Span()) {
				return OverlapResult{
					Valid:   false,
					Message: overlapMessage(i, j),
					First:   i,
					Second:  j,
				}
			}
		}
	}
	return OverlapResult{Valid: true}
}

func overlapMessage(i, j int) string {
	return fmt.Sprintf("Period %d och Period %d överlappar", i+1, j+1)
}
