package benefit_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foraldrapengen/benefit-engine/benefit"
	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/leave"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func sek(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func date(s string) calendar.Date { return calendar.MustParseDate(s) }

func period(id, start, end string, days, perWeek int) leave.Period {
	return leave.Period{ID: id, Start: date(start), End: date(end), DaysToTake: days, DaysPerWeek: perWeek}
}

func employed(salary, topUp float64, periods ...leave.Period) leave.Parent {
	return leave.Parent{
		ID:            1,
		Name:          "Förälder 1",
		Type:          leave.Employed,
		MonthlySalary: sek(salary),
		EmployerTopUp: sek(topUp),
		Periods:       periods,
	}
}

func f(d decimal.Decimal) float64 { return d.InexactFloat64() }

var defaultTax = benefit.DefaultTaxRate

// =============================================================================
// SGI
// =============================================================================

func TestCalculateSGI(t *testing.T) {
	cases := []struct {
		name   string
		salary float64
		want   float64
	}{
		{"typical salary", 35000, 407400},
		{"zero salary", 0, 0},
		{"below floor falls to grundnivå", 1000, 0},
		{"just above floor", 1212, 14107.68},
		{"capped at ten price base amounts", 100000, 588000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, f(benefit.CalculateSGI(sek(tc.salary))), 0.001)
		})
	}
}

func TestCalculateSGI_MonotonicWithCeiling(t *testing.T) {
	prev := decimal.Zero
	for salary := int64(1250); salary <= 200000; salary += 750 {
		sgi := benefit.CalculateSGI(decimal.NewFromInt(salary))
		assert.True(t, sgi.GreaterThanOrEqual(prev), "SGI decreased at salary %d", salary)
		assert.True(t, sgi.LessThanOrEqual(benefit.MaxSGI), "SGI above ceiling at salary %d", salary)
		prev = sgi
	}
	assert.True(t, benefit.CalculateSGI(decimal.NewFromInt(10_000_000)).Equal(benefit.MaxSGI))
}

// =============================================================================
// DAILY BENEFIT & TAX
// =============================================================================

func TestCalculateDailyBenefit(t *testing.T) {
	assert.True(t, benefit.CalculateDailyBenefit(decimal.Zero).Equal(benefit.MinDailyBenefit), "no SGI gives grundnivå")
	assert.InDelta(t, 892.93, f(benefit.CalculateDailyBenefit(sek(407400))), 0.01)
	assert.True(t, benefit.CalculateDailyBenefit(sek(14107.68)).Equal(benefit.MinDailyBenefit), "low SGI clamps up")
	assert.True(t, benefit.CalculateDailyBenefit(benefit.MaxSGI).Equal(benefit.MaxDailyBenefit), "max SGI clamps down")
}

func TestCalculateDailyBenefit_Bounds(t *testing.T) {
	for sgi := int64(0); sgi <= 700000; sgi += 2500 {
		daily := benefit.CalculateDailyBenefit(decimal.NewFromInt(sgi))
		assert.True(t, daily.GreaterThanOrEqual(benefit.MinDailyBenefit), "sgi %d", sgi)
		assert.True(t, daily.LessThanOrEqual(benefit.MaxDailyBenefit), "sgi %d", sgi)
	}
}

func TestCalculateTax_NonNegative(t *testing.T) {
	daily := sek(892.93)
	for _, rate := range []float64{0, 0.1, 0.3, 0.3241, 0.5, 1} {
		tax := benefit.CalculateTax(daily, sek(rate))
		assert.False(t, tax.IsNegative())
		assert.True(t, daily.Sub(tax).LessThanOrEqual(daily))
	}
}

func TestSplitDays_PartitionComplete(t *testing.T) {
	for total := 0; total <= 600; total++ {
		high, low := benefit.SplitDays(total)
		assert.Equal(t, total, high+low)
		assert.LessOrEqual(t, high, benefit.HighLevelThreshold)
		assert.GreaterOrEqual(t, low, 0)
	}
}

// =============================================================================
// CALCULATE PARENT BENEFITS
// =============================================================================

func TestCalculateParentBenefits_TypicalEmployedParent(t *testing.T) {
	// GIVEN: 35 000 SEK/month, employed, 10% employer top-up, 240 days
	// WHEN: calculating with the default 30% tax
	// THEN: SGI 407 400, daily ≈ 892.9, tax ≈ 267.9, FK after tax ≈ 150 000
	parent := employed(35000, 10, period("p1", "2025-03-03", "2026-02-02", 240, 5))

	b := benefit.CalculateParentBenefits(parent, defaultTax)

	assert.InDelta(t, 407400, f(b.SGI), 0.001)
	assert.InDelta(t, 892.93, f(b.DailyBenefit), 0.01)
	assert.InDelta(t, 267.88, f(b.Tax), 0.01)
	assert.InDelta(t, 625.05, f(b.DailyBenefitAfterTax), 0.01)
	assert.Equal(t, 240, b.HighLevelDays)
	assert.Equal(t, 0, b.LowLevelDays)
	assert.Equal(t, 90, b.ReservedDays)
	assert.Equal(t, 150, b.TransferableDays)

	assert.InDelta(t, 214303.56, f(b.FKBenefitBeforeTax), 0.01)
	assert.InDelta(t, 150012.49, f(b.FKBenefitAfterTax), 0.01)
	assert.InDelta(t, 15001.25, f(b.EmployerTopUpAmount), 0.01)
	assert.InDelta(t, 214303.56+21430.36, f(b.TotalBenefitBeforeTax), 0.02)
	assert.InDelta(t, 150012.49+15001.25, f(b.TotalBenefitAfterTax), 0.02)
	assert.InDelta(t, (150012.49+15001.25)/240, f(b.AvgDailyBenefit), 0.001)
}

func TestCalculateParentBenefits_ZeroSalaryGetsGrundniva(t *testing.T) {
	for _, days := range []int{1, 90, 390, 480} {
		parent := employed(0, 10, period("p1", "2025-01-01", "2026-01-01", days, 7))

		b := benefit.CalculateParentBenefits(parent, defaultTax)

		assert.True(t, b.SGI.IsZero())
		assert.True(t, b.DailyBenefit.Equal(decimal.NewFromInt(250)), "days=%d", days)
	}
}

func TestCalculateParentBenefits_LowLevelDays(t *testing.T) {
	// GIVEN: one parent taking all 480 days
	// THEN: 390 high-level days, 90 low-level days at 180 SEK taxed at the same rate
	parent := employed(35000, 0, period("p1", "2025-01-01", "2026-12-31", 480, 5))

	b := benefit.CalculateParentBenefits(parent, defaultTax)

	require.Equal(t, 390, b.HighLevelDays)
	require.Equal(t, 90, b.LowLevelDays)
	daily := f(b.DailyBenefit)
	assert.InDelta(t, 390*daily+90*180, f(b.FKBenefitBeforeTax), 0.01)
	assert.InDelta(t, 390*daily*0.7+90*180*0.7, f(b.FKBenefitAfterTax), 0.01)
}

func TestCalculateParentBenefits_TopUpOnlyForEmployed(t *testing.T) {
	p := employed(35000, 10, period("p1", "2025-01-01", "2025-06-30", 100, 5))
	withTopUp := benefit.CalculateParentBenefits(p, defaultTax)

	for _, typ := range []leave.EmploymentType{leave.SelfEmployed, leave.Unemployed} {
		p.Type = typ
		b := benefit.CalculateParentBenefits(p, defaultTax)
		assert.True(t, b.EmployerTopUpAmount.IsZero(), string(typ))
		assert.True(t, b.TotalBenefitAfterTax.Equal(b.FKBenefitAfterTax), string(typ))
		assert.True(t, b.TotalBenefitAfterTax.LessThan(withTopUp.TotalBenefitAfterTax))
	}
}

func TestCalculateParentBenefits_ZeroDays(t *testing.T) {
	// GIVEN: a parent with no days planned
	// THEN: every total is zero and the average does not divide by zero
	cases := map[string]leave.Parent{
		"no periods":    employed(35000, 10),
		"zero-day span": employed(35000, 10, period("p1", "2025-01-01", "2025-01-01", 0, 5)),
	}
	for name, parent := range cases {
		t.Run(name, func(t *testing.T) {
			b := benefit.CalculateParentBenefits(parent, defaultTax)
			assert.True(t, b.TotalBenefitBeforeTax.IsZero())
			assert.True(t, b.TotalBenefitAfterTax.IsZero())
			assert.True(t, b.AvgDailyBenefit.IsZero())
			assert.Equal(t, 0, b.TransferableDays)
		})
	}
}

func TestCalculateParentBenefits_Duration(t *testing.T) {
	// Two periods of 30 and 14 day-differences: ceil(44/7) = 7 weeks
	parent := employed(30000, 0,
		period("p1", "2025-01-01", "2025-01-31", 20, 5),
		period("p2", "2025-03-01", "2025-03-15", 10, 5),
	)

	b := benefit.CalculateParentBenefits(parent, defaultTax)

	assert.Equal(t, 7, b.WeeksNeeded)
	assert.InDelta(t, 7/4.33, f(b.MonthsNeeded), 0.0001)
}

func TestCalculateParentBenefits_TaxRateSanitized(t *testing.T) {
	parent := employed(35000, 0, period("p1", "2025-01-01", "2025-03-01", 40, 5))

	over := benefit.CalculateParentBenefits(parent, sek(1.7))
	under := benefit.CalculateParentBenefits(parent, sek(-0.2))

	assert.True(t, over.TotalBenefitAfterTax.IsZero(), "rate clamped to one")
	assert.True(t, under.TotalBenefitAfterTax.Equal(under.TotalBenefitBeforeTax), "rate clamped to zero")
}

func TestCalculateParentBenefits_Idempotent(t *testing.T) {
	parent := employed(41000, 15, period("p1", "2025-01-01", "2025-09-01", 170, 6))
	a := benefit.CalculateParentBenefits(parent, sek(0.3241))
	b := benefit.CalculateParentBenefits(parent, sek(0.3241))
	assert.Equal(t, a, b)
}
