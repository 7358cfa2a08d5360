package benefit

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/leave"
)

// =============================================================================
// HOUSEHOLD - Composition of the four core components
// =============================================================================

// Household is the input for one planning run: one or two parents and
// the tax rate that applies to their benefit.
type Household struct {
	Parents []leave.Parent
	TaxRate decimal.Decimal
}

// Options tunes CalculateHousehold.
type Options struct {
	MaxMonths int
	Clock     calendar.Clock
}

// WarningCode classifies a household advisory.
type WarningCode string

const (
	WarnPeriodsOverlap     WarningCode = "periods_overlap"
	WarnDaysPoolExceeded   WarningCode = "days_pool_exceeded"
	WarnDoubleDaysExceeded WarningCode = "double_days_exceeded"
	WarnReservedDaysUnused WarningCode = "reserved_days_unused"
)

// Warning is advisory. Nothing in the result is corrected because of it.
type Warning struct {
	Code     WarningCode
	ParentID int // 0 when the warning concerns the household
	Message  string
}

// ParentResult pairs a parent with its computed benefits.
type ParentResult struct {
	Parent   leave.Parent
	Benefits ParentBenefits
	Overlap  leave.OverlapResult
}

// HouseholdResult is everything the presentation layer renders.
type HouseholdResult struct {
	TaxRate decimal.Decimal
	Parents []ParentResult
	Monthly []MonthlyRow

	DoubleDays    int
	UsedDays      int
	RemainingDays int // TotalParentalDays - UsedDays - DoubleDays

	TotalBenefitBeforeTax decimal.Decimal
	TotalBenefitAfterTax  decimal.Decimal

	Warnings []Warning
}

// HasWarning reports whether a warning with the given code was raised.
func (r HouseholdResult) HasWarning(code WarningCode) bool {
	for _, w := range r.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// CalculateHousehold sanitizes every parent, validates their periods,
// computes per-parent benefits, the monthly table and (for two parents)
// the double days, and collects advisories.
func CalculateHousehold(h Household, opts Options) HouseholdResult {
	taxRate := SanitizeTaxRate(h.TaxRate)
	result := HouseholdResult{
		TaxRate:               taxRate,
		TotalBenefitBeforeTax: decimal.Zero,
		TotalBenefitAfterTax:  decimal.Zero,
	}

	parents := make([]leave.Parent, len(h.Parents))
	benefits := make([]ParentBenefits, len(h.Parents))
	for i, p := range h.Parents {
		parents[i] = leave.Sanitize(p)
		benefits[i] = CalculateParentBenefits(parents[i], taxRate)

		overlap := leave.ValidateNoOverlap(parents[i].Periods)
		if !overlap.Valid {
			result.Warnings = append(result.Warnings, Warning{
				Code:     WarnPeriodsOverlap,
				ParentID: parents[i].ID,
				Message:  fmt.Sprintf("%s: %s", parents[i].Name, overlap.Message),
			})
		}

		result.Parents = append(result.Parents, ParentResult{
			Parent:   parents[i],
			Benefits: benefits[i],
			Overlap:  overlap,
		})
		result.UsedDays += parents[i].TotalDays()
		result.TotalBenefitBeforeTax = result.TotalBenefitBeforeTax.Add(benefits[i].TotalBenefitBeforeTax)
		result.TotalBenefitAfterTax = result.TotalBenefitAfterTax.Add(benefits[i].TotalBenefitAfterTax)
	}

	if len(parents) == 2 {
		result.DoubleDays = CalculateDoubleDays(parents[0], parents[1])
		for _, p := range parents {
			if days := p.TotalDays(); days < ReservedDaysPerParent {
				result.Warnings = append(result.Warnings, Warning{
					Code:     WarnReservedDaysUnused,
					ParentID: p.ID,
					Message: fmt.Sprintf("%s tar %d dagar; %d reserverade dagar kan inte överlåtas",
						p.Name, days, ReservedDaysPerParent),
				})
			}
		}
	}
	if result.DoubleDays > MaxDoubleDays {
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarnDoubleDaysExceeded,
			Message: fmt.Sprintf("%d dubbeldagar överstiger maxgränsen på %d", result.DoubleDays, MaxDoubleDays),
		})
	}

	result.RemainingDays = TotalParentalDays - result.UsedDays - result.DoubleDays
	if result.UsedDays+result.DoubleDays > TotalParentalDays {
		result.Warnings = append(result.Warnings, Warning{
			Code: WarnDaysPoolExceeded,
			Message: fmt.Sprintf("%d planerade dagar överstiger de %d dagar som finns",
				result.UsedDays+result.DoubleDays, TotalParentalDays),
		})
	}

	result.Monthly = BuildMonthlyTable(parents, benefits, taxRate, TableOptions{
		MaxMonths: opts.MaxMonths,
		Clock:     opts.Clock,
	})
	return result
}
