package benefit

import (
	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/leave"
)

// =============================================================================
// PARENT BENEFITS - Derived per parent, recomputed on every input change
// =============================================================================

// ParentBenefits is the full benefit breakdown for one parent.
type ParentBenefits struct {
	SGI                  decimal.Decimal // annual qualifying income
	DailyBenefit         decimal.Decimal // before tax, SEK/day
	DailyBenefitAfterTax decimal.Decimal
	Tax                  decimal.Decimal // tax on one high-level day

	HighLevelDays    int
	LowLevelDays     int
	ReservedDays     int
	TransferableDays int

	FKBenefitBeforeTax decimal.Decimal // statutory payment only
	FKBenefitAfterTax  decimal.Decimal

	EmployerTopUpAmount decimal.Decimal // after tax

	TotalBenefitBeforeTax decimal.Decimal
	TotalBenefitAfterTax  decimal.Decimal

	WeeksNeeded  int
	MonthsNeeded decimal.Decimal

	// AvgDailyBenefit is TotalBenefitAfterTax spread evenly over the days
	// taken. It is an average, not the real schedule: cadence differs
	// between periods.
	AvgDailyBenefit decimal.Decimal
}

// TotalDays returns HighLevelDays + LowLevelDays.
func (b ParentBenefits) TotalDays() int { return b.HighLevelDays + b.LowLevelDays }

// =============================================================================
// BUILDING BLOCKS
// =============================================================================

// CalculateSGI converts a gross monthly salary to SGI: salary*12*0.97.
// Below MinSGI the parent has no SGI (0, grundnivå); above MaxSGI it is
// capped.
func CalculateSGI(monthlySalary decimal.Decimal) decimal.Decimal {
	sgi := monthlySalary.Mul(monthsPerYear).Mul(sgiFactor)
	if sgi.LessThan(MinSGI) {
		return decimal.Zero
	}
	return decimal.Min(sgi, MaxSGI)
}

// CalculateDailyBenefit returns the statutory daily rate for an SGI:
// sgi*0.8/365 clamped to [MinDailyBenefit, MaxDailyBenefit], or the flat
// grundnivå when SGI is zero.
func CalculateDailyBenefit(sgi decimal.Decimal) decimal.Decimal {
	if sgi.IsZero() {
		return MinDailyBenefit
	}
	daily := sgi.Mul(benefitFactor).Div(daysPerYear)
	return decimal.Min(decimal.Max(daily, MinDailyBenefit), MaxDailyBenefit)
}

// CalculateTax returns the tax withheld from one day of benefit.
func CalculateTax(dailyBenefit, taxRate decimal.Decimal) decimal.Decimal {
	return dailyBenefit.Mul(taxRate)
}

// SplitDays partitions total days at the high-level threshold.
func SplitDays(totalDays int) (high, low int) {
	if totalDays < 0 {
		totalDays = 0
	}
	high = min(totalDays, HighLevelThreshold)
	low = max(0, totalDays-HighLevelThreshold)
	return high, low
}

// CalendarDays sums the day difference |End-Start| of each period.
func CalendarDays(periods []leave.Period) int {
	total := 0
	for _, p := range periods {
		total += calendar.AbsDaysBetween(p.Start, p.End)
	}
	return total
}

// =============================================================================
// CALCULATE PARENT BENEFITS - The central algorithm
// =============================================================================

// CalculateParentBenefits runs the full pipeline for one parent.
//
// taxRate is a fraction (0.30 for 30%) and is clamped into [0, 1].
// Low-level days are taxed at the same rate as high-level days. The
// employer top-up applies to high-level days of employed parents only and
// is taxed at the same rate.
func CalculateParentBenefits(parent leave.Parent, taxRate decimal.Decimal) ParentBenefits {
	taxRate = SanitizeTaxRate(taxRate)
	totalDays := max(0, parent.TotalDays())

	sgi := CalculateSGI(parent.MonthlySalary)
	daily := CalculateDailyBenefit(sgi)
	tax := CalculateTax(daily, taxRate)

	high, low := SplitDays(totalDays)
	highDays := decimal.NewFromInt(int64(high))
	lowDays := decimal.NewFromInt(int64(low))
	netFactor := one.Sub(taxRate)

	fkBefore := highDays.Mul(daily).Add(lowDays.Mul(LowLevelDailyAmount))
	fkAfter := highDays.Mul(daily.Sub(tax)).Add(lowDays.Mul(LowLevelDailyAmount.Mul(netFactor)))

	topUpBefore := decimal.Zero
	if parent.Type == leave.Employed {
		topUpBefore = highDays.Mul(daily).Mul(parent.EmployerTopUp).Div(hundred)
	}
	topUpAfter := topUpBefore.Mul(netFactor)

	totalBefore := fkBefore.Add(topUpBefore)
	totalAfter := fkAfter.Add(topUpAfter)

	weeks := (CalendarDays(parent.Periods) + 6) / 7

	avgDaily := decimal.Zero
	if totalDays > 0 {
		avgDaily = totalAfter.Div(decimal.NewFromInt(int64(totalDays)))
	}

	return ParentBenefits{
		SGI:                   sgi,
		DailyBenefit:          daily,
		DailyBenefitAfterTax:  daily.Sub(tax),
		Tax:                   tax,
		HighLevelDays:         high,
		LowLevelDays:          low,
		ReservedDays:          ReservedDaysPerParent,
		TransferableDays:      max(0, totalDays-ReservedDaysPerParent),
		FKBenefitBeforeTax:    fkBefore,
		FKBenefitAfterTax:     fkAfter,
		EmployerTopUpAmount:   topUpAfter,
		TotalBenefitBeforeTax: totalBefore,
		TotalBenefitAfterTax:  totalAfter,
		WeeksNeeded:           weeks,
		MonthsNeeded:          decimal.NewFromInt(int64(weeks)).Div(weeksPerMonth),
		AvgDailyBenefit:       avgDaily,
	}
}
