package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foraldrapengen/benefit-engine/calendar"
)

func date(s string) calendar.Date { return calendar.MustParseDate(s) }

func TestDaysBetween_AcrossDaylightSaving(t *testing.T) {
	// Swedish DST starts 2025-03-30; date-only math must not lose an hour.
	assert.Equal(t, 1, calendar.DaysBetween(date("2025-03-29"), date("2025-03-30")))
	assert.Equal(t, 31, calendar.DaysBetween(date("2025-03-01"), date("2025-04-01")))
	assert.Equal(t, -31, calendar.DaysBetween(date("2025-04-01"), date("2025-03-01")))
	assert.Equal(t, 31, calendar.AbsDaysBetween(date("2025-04-01"), date("2025-03-01")))
}

func TestSpan_Overlaps_InclusiveBounds(t *testing.T) {
	a := calendar.Span{Start: date("2025-01-01"), End: date("2025-01-31")}
	touching := calendar.Span{Start: date("2025-01-31"), End: date("2025-02-10")}
	after := calendar.Span{Start: date("2025-02-01"), End: date("2025-02-10")}

	assert.True(t, a.Overlaps(touching), "shared boundary day counts as overlap")
	assert.True(t, touching.Overlaps(a))
	assert.False(t, a.Overlaps(after))
	assert.False(t, after.Overlaps(a))
}

func TestSpan_Intersect(t *testing.T) {
	a := calendar.Span{Start: date("2025-01-10"), End: date("2025-03-05")}
	feb := calendar.YearMonth{Year: 2025, Month: time.February}.Span()

	got, ok := a.Intersect(feb)
	require.True(t, ok)
	assert.Equal(t, "2025-02-01", got.Start.String())
	assert.Equal(t, "2025-02-28", got.End.String())
	assert.Equal(t, 28, got.Len())

	_, ok = a.Intersect(calendar.Span{Start: date("2025-04-01"), End: date("2025-04-02")})
	assert.False(t, ok)
}

func TestSpan_Months_RespectsLimit(t *testing.T) {
	s := calendar.Span{Start: date("2025-11-15"), End: date("2026-02-01")}

	months := s.Months(0)
	require.Len(t, months, 4)
	assert.Equal(t, "2025-11", months[0].String())
	assert.Equal(t, "2026-02", months[3].String())

	assert.Len(t, s.Months(2), 2)
}

func TestYearMonth_Days(t *testing.T) {
	assert.Equal(t, 29, calendar.YearMonth{Year: 2024, Month: time.February}.Days())
	assert.Equal(t, 28, calendar.YearMonth{Year: 2025, Month: time.February}.Days())
	assert.Equal(t, 31, calendar.YearMonth{Year: 2025, Month: time.December}.Days())
	assert.Equal(t, calendar.YearMonth{Year: 2026, Month: time.January}, calendar.YearMonth{Year: 2025, Month: time.December}.Next())
}

func TestParseDateOr_SubstitutesAndReports(t *testing.T) {
	fallback := date("2026-01-06")

	got, err := calendar.ParseDateOr("not-a-date", fallback)

	assert.Equal(t, fallback, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, calendar.ErrInvalidDate))
	var perr *calendar.DateParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "not-a-date", perr.Input)
	assert.Equal(t, fallback, perr.Substitute)
}

func TestParseDate_AcceptsTimestamps(t *testing.T) {
	got, err := calendar.ParseDate("2025-03-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", got.String())
}

func TestDate_TextRoundTrip(t *testing.T) {
	var d calendar.Date
	require.NoError(t, d.UnmarshalText([]byte("2025-06-15")))
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", string(b))

	assert.Error(t, d.UnmarshalText([]byte("15/06/2025")))
}

func TestFixedClock(t *testing.T) {
	c := calendar.FixedClock{Date: date("2025-05-05")}
	assert.Equal(t, "2025-05-05", c.Today().String())
	assert.True(t, date("2025-05-05").IsWeekday())
	assert.True(t, date("2025-05-04").IsWeekend())
}
