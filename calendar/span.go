package calendar

// =============================================================================
// SPAN - Inclusive range of days
// =============================================================================

// Span is an inclusive [Start, End] range of calendar days.
type Span struct {
	Start Date
	End   Date
}

// Contains returns true if the day is within [Start, End].
func (s Span) Contains(d Date) bool {
	return d.AfterOrEqual(s.Start) && d.BeforeOrEqual(s.End)
}

// Overlaps uses the inclusive interval test start1 <= end2 && start2 <= end1.
// Spans that only touch on a single shared day overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start.BeforeOrEqual(other.End) && other.Start.BeforeOrEqual(s.End)
}

// Intersect returns the common part of two spans and whether there is one.
func (s Span) Intersect(other Span) (Span, bool) {
	if !s.Overlaps(other) {
		return Span{}, false
	}
	return Span{Start: Max(s.Start, other.Start), End: Min(s.End, other.End)}, true
}

// Len returns the number of days in the span, counting both boundaries.
// A reversed span has length zero.
func (s Span) Len() int {
	n := DaysBetween(s.Start, s.End) + 1
	if n < 0 {
		return 0
	}
	return n
}

// Days returns every day in the span in order.
func (s Span) Days() []Date {
	var days []Date
	for current := s.Start; current.BeforeOrEqual(s.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// Months returns each month the span touches, from Start's month to End's.
// limit caps the number of months returned; limit <= 0 means no cap.
func (s Span) Months(limit int) []YearMonth {
	var months []YearMonth
	last := s.End.YearMonth()
	for ym := s.Start.YearMonth(); !ym.After(last); ym = ym.Next() {
		if limit > 0 && len(months) >= limit {
			break
		}
		months = append(months, ym)
	}
	return months
}

func (s Span) String() string {
	return "[" + s.Start.String() + ", " + s.End.String() + "]"
}
