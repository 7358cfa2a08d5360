package leave

import (
	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/calendar"
)

// =============================================================================
// CLAMPING - Out-of-range input is clamped at mutation, never rejected
// =============================================================================

// ClampDaysToTake limits n to [0, MaxDaysToTake].
func ClampDaysToTake(n int) int {
	return clampInt(n, 0, MaxDaysToTake)
}

// ClampDaysPerWeek limits n to [MinDaysPerWeek, MaxDaysPerWeek].
func ClampDaysPerWeek(n int) int {
	return clampInt(n, MinDaysPerWeek, MaxDaysPerWeek)
}

// ClampTopUp limits a top-up percentage to [0, 100].
func ClampTopUp(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(decimal.NewFromInt(MaxTopUp)) {
		return decimal.NewFromInt(MaxTopUp)
	}
	return pct
}

// ClampSalary floors a monthly salary at zero.
func ClampSalary(s decimal.Decimal) decimal.Decimal {
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// =============================================================================
// END DATE DERIVATION
// =============================================================================

// DeriveEndDate returns the end date implied by taking days benefit days
// at daysPerWeek per week from start: ceil(days/daysPerWeek) whole weeks.
func DeriveEndDate(start calendar.Date, days, daysPerWeek int) calendar.Date {
	daysPerWeek = ClampDaysPerWeek(daysPerWeek)
	days = ClampDaysToTake(days)
	weeks := (days + daysPerWeek - 1) / daysPerWeek
	return start.AddDays(weeks * 7)
}

// NewPeriod builds a period with clamped values and a derived end date.
func NewPeriod(ids IDGenerator, start calendar.Date, days, daysPerWeek int) Period {
	p := Period{
		ID:          ids.NewID(),
		Start:       start,
		DaysToTake:  ClampDaysToTake(days),
		DaysPerWeek: ClampDaysPerWeek(daysPerWeek),
	}
	p.End = DeriveEndDate(p.Start, p.DaysToTake, p.DaysPerWeek)
	return p
}

// SetStart moves the period and re-derives its end date.
func (p *Period) SetStart(start calendar.Date) {
	p.Start = start
	p.End = DeriveEndDate(p.Start, p.DaysToTake, p.DaysPerWeek)
}

// SetEnd overrides the derived end date.
func (p *Period) SetEnd(end calendar.Date) {
	p.End = end
}

// SetDaysToTake clamps n and re-derives the end date.
func (p *Period) SetDaysToTake(n int) {
	p.DaysToTake = ClampDaysToTake(n)
	p.End = DeriveEndDate(p.Start, p.DaysToTake, p.DaysPerWeek)
}

// SetDaysPerWeek clamps n and re-derives the end date.
func (p *Period) SetDaysPerWeek(n int) {
	p.DaysPerWeek = ClampDaysPerWeek(n)
	p.End = DeriveEndDate(p.Start, p.DaysToTake, p.DaysPerWeek)
}

// =============================================================================
// PARENT MUTATION
// =============================================================================

// NewParent creates a parent with one default period starting on start.
func NewParent(id int, name string, ids IDGenerator, start calendar.Date) Parent {
	return Parent{
		ID:            id,
		Name:          name,
		Type:          Employed,
		MonthlySalary: decimal.Zero,
		EmployerTopUp: decimal.Zero,
		Periods:       []Period{NewPeriod(ids, start, 0, 5)},
	}
}

// SetMonthlySalary stores a salary floored at zero.
func (p *Parent) SetMonthlySalary(s decimal.Decimal) { p.MonthlySalary = ClampSalary(s) }

// SetEmployerTopUp stores a top-up percentage clamped to [0, 100].
func (p *Parent) SetEmployerTopUp(pct decimal.Decimal) { p.EmployerTopUp = ClampTopUp(pct) }

// AddPeriod appends a new period and returns it.
func (p *Parent) AddPeriod(ids IDGenerator, start calendar.Date, days, daysPerWeek int) Period {
	period := NewPeriod(ids, start, days, daysPerWeek)
	p.Periods = append(p.Periods, period)
	return period
}

// UpdatePeriod applies fn to the period with the given ID.
func (p *Parent) UpdatePeriod(id string, fn func(*Period)) error {
	for i := range p.Periods {
		if p.Periods[i].ID == id {
			fn(&p.Periods[i])
			return nil
		}
	}
	return ErrPeriodNotFound
}

// RemovePeriod deletes the period with the given ID.
func (p *Parent) RemovePeriod(id string) error {
	for i := range p.Periods {
		if p.Periods[i].ID == id {
			p.Periods = append(p.Periods[:i:i], p.Periods[i+1:]...)
			return nil
		}
	}
	return ErrPeriodNotFound
}

// Sanitize returns a copy of p with every numeric field brought into range
// and unknown employment types treated as employed. The benefit engine
// assumes sanitized input.
func Sanitize(p Parent) Parent {
	out := p.Clone()
	if !out.Type.Valid() {
		out.Type = Employed
	}
	out.MonthlySalary = ClampSalary(out.MonthlySalary)
	out.EmployerTopUp = ClampTopUp(out.EmployerTopUp)
	for i := range out.Periods {
		out.Periods[i].DaysToTake = ClampDaysToTake(out.Periods[i].DaysToTake)
		out.Periods[i].DaysPerWeek = ClampDaysPerWeek(out.Periods[i].DaysPerWeek)
	}
	return out
}
