/*
Package leave holds the parent and leave-period records the benefit engine
consumes, plus the period helpers that validate and aggregate them.

PURPOSE:
  A household plan is one or two parents, each with a list of leave
  periods. Every period says when the parent is away (Start..End), how many
  benefit days it draws from the shared 480-day pool and at what weekly
  cadence.

KEY CONCEPTS IN THIS FILE (types.go):
  - Period: one contiguous span of leave
  - Parent: salary, employment type, employer top-up and periods
  - EmploymentType: only employed parents get the employer top-up

INVARIANTS:
  - DaysToTake in [0, 480], DaysPerWeek in [1, 7] once set through the
    setters or Sanitize
  - Periods of one parent must not overlap; this is validated by
    ValidateNoOverlap and reported, never auto-corrected

SEE ALSO:
  - periods.go: TotalDays, EarliestStart, LatestEnd, ValidateNoOverlap
  - mutate.go: clamping setters and end-date derivation
  - ids.go: injected period ID generation
*/
package leave

import (
	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/calendar"
)

// =============================================================================
// LIMITS
// =============================================================================

const (
	MaxDaysToTake  = 480
	MinDaysPerWeek = 1
	MaxDaysPerWeek = 7
	MaxTopUp       = 100
)

// =============================================================================
// EMPLOYMENT TYPE
// =============================================================================

type EmploymentType string

const (
	Employed     EmploymentType = "employed"
	SelfEmployed EmploymentType = "self_employed"
	Unemployed   EmploymentType = "unemployed"
)

// Valid reports whether t is one of the known employment types.
func (t EmploymentType) Valid() bool {
	switch t {
	case Employed, SelfEmployed, Unemployed:
		return true
	}
	return false
}

// Label returns the Swedish display label.
func (t EmploymentType) Label() string {
	switch t {
	case Employed:
		return "Anställd"
	case SelfEmployed:
		return "Egenföretagare"
	case Unemployed:
		return "Arbetssökande"
	default:
		return string(t)
	}
}

// =============================================================================
// PERIOD
// =============================================================================

// Period is one contiguous span of leave for a parent.
type Period struct {
	ID          string        `json:"id"`
	Start       calendar.Date `json:"startDate"`
	End         calendar.Date `json:"endDate"`
	DaysToTake  int           `json:"daysToTake"`
	DaysPerWeek int           `json:"daysPerWeek"`
}

// Span returns the inclusive calendar range of the period.
func (p Period) Span() calendar.Span {
	return calendar.Span{Start: p.Start, End: p.End}
}

// =============================================================================
// PARENT
// =============================================================================

// Parent is one leave-taking individual.
type Parent struct {
	ID            int
	Name          string
	Type          EmploymentType
	MonthlySalary decimal.Decimal // SEK, gross
	EmployerTopUp decimal.Decimal // percent of the statutory daily rate
	Periods       []Period
}

// TotalDays is shorthand for TotalDays(p.Periods).
func (p Parent) TotalDays() int { return TotalDays(p.Periods) }

// Period returns the period with the given ID.
func (p Parent) Period(id string) (Period, bool) {
	for _, period := range p.Periods {
		if period.ID == id {
			return period, true
		}
	}
	return Period{}, false
}

// Clone returns a copy that shares no period storage with p.
func (p Parent) Clone() Parent {
	c := p
	c.Periods = append([]Period(nil), p.Periods...)
	return c
}
