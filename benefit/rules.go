/*
Package benefit is the föräldrapenning calculation engine.

PURPOSE:
  Turns a parent's salary and leave periods into a statutory daily rate,
  tax, high/low level day split, totals and a month-by-month income
  projection. Also computes how many double days two parents' plans
  imply.

KEY INSIGHT:
  Everything here is a pure function over immutable input. Nothing is
  cached, nothing logs, nothing reads the clock except through an
  injected calendar.Clock. Calling any function twice with the same
  input yields the same output.

PIPELINE (per parent):
  salary ─► SGI ─► daily benefit ─► tax ─► high/low split ─► totals
                                                   │
                                    avg daily benefit ─► monthly table

AMOUNTS:
  All SEK amounts are decimal.Decimal. Day counts are int.

SEE ALSO:
  - engine.go: SGI, daily benefit, tax, CalculateParentBenefits
  - monthly.go: MonthlyIncomeForParent, BuildMonthlyTable
  - doubledays.go: CalculateDoubleDays
  - household.go: CalculateHousehold, the composition used by callers
*/
package benefit

import "github.com/shopspring/decimal"

// =============================================================================
// 2025 RULES
// =============================================================================

const (
	TotalParentalDays     = 480 // days per child shared between parents
	ReservedDaysPerParent = 90  // non-transferable per parent
	HighLevelThreshold    = 390 // days paid at the SGI-based rate
	MaxDoubleDays         = 60  // both parents on leave the same day

	DefaultMaxMonths = 36 // monthly table iteration cap
)

var (
	MaxSGI              = decimal.NewFromInt(588000) // 10 prisbasbelopp
	MinSGI              = decimal.NewFromInt(14100)  // 24% of prisbasbelopp
	MinDailyBenefit     = decimal.NewFromInt(250)    // grundnivå
	MaxDailyBenefit     = decimal.NewFromInt(1259)
	LowLevelDailyAmount = decimal.NewFromInt(180)
	DefaultTaxRate      = decimal.RequireFromString("0.30")

	sgiFactor     = decimal.RequireFromString("0.97")
	benefitFactor = decimal.RequireFromString("0.8")
	daysPerYear   = decimal.NewFromInt(365)
	weeksPerMonth = decimal.RequireFromString("4.33")
	monthsPerYear = decimal.NewFromInt(12)
	daysPerWeek   = decimal.NewFromInt(7)
	hundred       = decimal.NewFromInt(100)
	one           = decimal.NewFromInt(1)
)

// SanitizeTaxRate clamps a tax rate fraction into [0, 1].
func SanitizeTaxRate(rate decimal.Decimal) decimal.Decimal {
	if rate.IsNegative() {
		return decimal.Zero
	}
	if rate.GreaterThan(one) {
		return one
	}
	return rate
}
