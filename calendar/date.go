/*
Package calendar provides the date-only arithmetic used by the benefit engine.

PURPOSE:
  Leave periods, month windows and overlap tests all work on whole calendar
  days. Date wraps time.Time pinned to UTC midnight so comparisons and day
  differences never drift with time zones or daylight saving.

KEY CONCEPTS:
  - Date: a calendar day (no time component)
  - Span: an inclusive [Start, End] range of days
  - YearMonth: a month key used by the monthly income table
  - Clock: source of "today", injected wherever a fallback date is needed

USAGE:
  start := calendar.NewDate(2025, time.March, 1)
  end := start.AddDays(30)
  span := calendar.Span{Start: start, End: end}
  span.Overlaps(other)

SEE ALSO:
  - span.go: inclusive ranges and overlap
  - parse.go: parsing with explicit fallback
*/
package calendar

import (
	"time"
)

// =============================================================================
// DATE - A calendar day
// =============================================================================

// Layout is the wire format for dates in plan files and exports.
const Layout = "2006-01-02"

// Date is a calendar day. The zero value is the zero time and reports IsZero.
type Date struct {
	t time.Time
}

// NewDate builds a date from its parts. Out-of-range parts are normalised
// the way time.Date does (January 32 becomes February 1).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar day in t's own location.
func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.t.After(other.t) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.t.Before(other.t) }

// Arithmetic
func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Time() time.Time       { return d.t }

// IsWeekend reports Saturday and Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekday reports Monday through Friday.
func (d Date) IsWeekday() bool { return !d.IsWeekend() }

func (d Date) String() string { return d.t.Format(Layout) }

// YearMonth returns the month this date falls in.
func (d Date) YearMonth() YearMonth { return YearMonth{Year: d.Year(), Month: d.Month()} }

// Min returns the earlier of two dates.
func Min(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

// Max returns the later of two dates.
func Max(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

// DaysBetween returns the signed number of days from one date to another.
// Both values are midnight UTC so the difference is always whole days.
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}

// AbsDaysBetween returns |DaysBetween(a, b)|.
func AbsDaysBetween(a, b Date) int {
	n := DaysBetween(a, b)
	if n < 0 {
		return -n
	}
	return n
}

// =============================================================================
// YEAR-MONTH - Key for monthly rows
// =============================================================================

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// First returns the first day of the month.
func (ym YearMonth) First() Date { return NewDate(ym.Year, ym.Month, 1) }

// Last returns the last day of the month.
func (ym YearMonth) Last() Date { return NewDate(ym.Year, ym.Month+1, 0) }

// Span returns the inclusive window covering the whole month.
func (ym YearMonth) Span() Span { return Span{Start: ym.First(), End: ym.Last()} }

// Days returns the number of days in the month.
func (ym YearMonth) Days() int { return ym.Last().Day() }

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	if ym.Month == time.December {
		return YearMonth{Year: ym.Year + 1, Month: time.January}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// After reports whether ym is a later month than other.
func (ym YearMonth) After(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year > other.Year
	}
	return ym.Month > other.Month
}

// String formats the month as YYYY-MM.
func (ym YearMonth) String() string { return ym.First().t.Format("2006-01") }

// =============================================================================
// CLOCK - Source of "today"
// =============================================================================

// Clock supplies the current date. Fallbacks for empty period lists and
// unparseable dates go through a Clock so tests can pin the date.
type Clock interface {
	Today() Date
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Today() Date { return FromTime(time.Now()) }

// FixedClock always returns the same date.
type FixedClock struct {
	Date Date
}

func (c FixedClock) Today() Date { return c.Date }
