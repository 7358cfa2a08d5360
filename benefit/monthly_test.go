package benefit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foraldrapengen/benefit-engine/benefit"
	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/leave"
)

// fixedAvg builds benefits with a round average so expected values are
// easy to derive by hand.
func fixedAvg(avg float64) benefit.ParentBenefits {
	return benefit.ParentBenefits{AvgDailyBenefit: sek(avg)}
}

func TestMonthlyIncome_NoLeaveGivesNetSalary(t *testing.T) {
	parent := employed(30000, 0, period("p1", "2025-03-10", "2025-05-20", 50, 5))

	got := benefit.MonthlyIncomeForParent(parent, fixedAvg(700), 2025, time.February, defaultTax)

	assert.Equal(t, 0, got.Days)
	assert.InDelta(t, 21000, f(got.Total), 0.0001)
}

func TestMonthlyIncome_FullMonthIsLeaveIncomeOnly(t *testing.T) {
	// GIVEN: leave covers all 30 days of April at 5 days/week
	// THEN: 700 * 5 * 30/7 = 15 000, no salary part
	parent := employed(30000, 0, period("p1", "2025-03-10", "2025-05-20", 50, 5))

	got := benefit.MonthlyIncomeForParent(parent, fixedAvg(700), 2025, time.April, defaultTax)

	assert.Equal(t, 30, got.Days)
	assert.InDelta(t, 15000, f(got.Total), 0.0001)
}

func TestMonthlyIncome_PartialMonthBlends(t *testing.T) {
	// GIVEN: leave starts March 10, so 22 of 31 March days are leave
	// THEN: 21 000 * 9/31 work income + 700 * 5 * 22/7 leave income
	parent := employed(30000, 0, period("p1", "2025-03-10", "2025-05-20", 50, 5))

	got := benefit.MonthlyIncomeForParent(parent, fixedAvg(700), 2025, time.March, defaultTax)

	assert.Equal(t, 22, got.Days)
	assert.InDelta(t, 21000*9.0/31.0+11000, f(got.Total), 0.001)
}

func TestMonthlyIncome_SumsSeveralPeriodsInOneMonth(t *testing.T) {
	parent := employed(30000, 0,
		period("p1", "2025-06-02", "2025-06-08", 5, 5),
		period("p2", "2025-06-16", "2025-06-29", 14, 7),
	)

	got := benefit.MonthlyIncomeForParent(parent, fixedAvg(700), 2025, time.June, defaultTax)

	assert.Equal(t, 21, got.Days)
	leaveIncome := 700*5*7/7.0 + 700*7*14/7.0
	assert.InDelta(t, 21000*(1-21/30.0)+leaveIncome, f(got.Total), 0.001)
}

func TestMonthlyIncome_TaxRateAppliesToSalary(t *testing.T) {
	parent := employed(40000, 0)
	got := benefit.MonthlyIncomeForParent(parent, fixedAvg(0), 2025, time.January, sek(0.3241))
	assert.InDelta(t, 40000*(1-0.3241), f(got.Total), 0.001)
}

func TestBuildMonthlyTable_CoversSpanDays(t *testing.T) {
	// GIVEN: one uninterrupted period of 86 calendar days
	// THEN: the monthly rows' leave days add up to the span
	p := period("p1", "2025-01-15", "2025-04-10", 60, 5)
	parent := employed(30000, 0, p)
	b := benefit.CalculateParentBenefits(parent, defaultTax)

	rows := benefit.BuildMonthlyTable([]leave.Parent{parent}, []benefit.ParentBenefits{b}, defaultTax, benefit.TableOptions{})

	require.Len(t, rows, 4)
	assert.Equal(t, "2025-01", rows[0].Month.String())
	assert.Equal(t, "2025-04", rows[3].Month.String())
	total := 0
	for _, r := range rows {
		total += r.Parent(0).Days
	}
	assert.Equal(t, p.Span().Len(), total)
	assert.Equal(t, 86, total)
}

func TestBuildMonthlyTable_TwoParentsAcrossHorizon(t *testing.T) {
	p1 := employed(35000, 10, period("a", "2025-01-01", "2025-02-28", 40, 5))
	p2 := employed(32000, 10, period("b", "2025-04-01", "2025-04-30", 20, 5))
	p2.ID = 2
	parents := []leave.Parent{p1, p2}
	benefits := []benefit.ParentBenefits{
		benefit.CalculateParentBenefits(p1, defaultTax),
		benefit.CalculateParentBenefits(p2, defaultTax),
	}

	rows := benefit.BuildMonthlyTable(parents, benefits, defaultTax, benefit.TableOptions{})

	require.Len(t, rows, 4, "January through April")
	march := rows[2]
	assert.Equal(t, 0, march.Parent(0).Days)
	assert.Equal(t, 0, march.Parent(1).Days)
	assert.InDelta(t, 35000*0.7+32000*0.7, f(march.Total()), 0.001)
	assert.Equal(t, 30, rows[3].Parent(1).Days)
	assert.True(t, rows[0].Parent(5).Total.IsZero(), "missing parent index yields a zero cell")
}

func TestBuildMonthlyTable_CapsRunawayRange(t *testing.T) {
	parent := employed(30000, 0, period("p1", "2025-01-01", "2099-12-31", 480, 5))
	b := benefit.CalculateParentBenefits(parent, defaultTax)

	rows := benefit.BuildMonthlyTable([]leave.Parent{parent}, []benefit.ParentBenefits{b}, defaultTax, benefit.TableOptions{})
	assert.Len(t, rows, benefit.DefaultMaxMonths)

	rows = benefit.BuildMonthlyTable([]leave.Parent{parent}, []benefit.ParentBenefits{b}, defaultTax, benefit.TableOptions{MaxMonths: 6})
	assert.Len(t, rows, 6)
}

func TestBuildMonthlyTable_NoPeriods(t *testing.T) {
	parent := employed(30000, 0)
	clock := calendar.FixedClock{Date: date("2026-01-06")}
	rows := benefit.BuildMonthlyTable([]leave.Parent{parent}, nil, defaultTax, benefit.TableOptions{Clock: clock})
	assert.Empty(t, rows)
	assert.Empty(t, benefit.BuildMonthlyTable(nil, nil, defaultTax, benefit.TableOptions{}))
}
