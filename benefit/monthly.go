package benefit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/leave"
)

// =============================================================================
// MONTHLY INCOME - One parent, one month
// =============================================================================

// MonthlyIncome is a parent's net income and leave-day count for a month.
type MonthlyIncome struct {
	Total decimal.Decimal
	Days  int
}

// MonthlyIncomeForParent projects one parent's net income for a month.
//
// Each period overlapping the month contributes its overlap length in
// calendar days and avgDaily*daysPerWeek*overlapDays/7 in leave income:
// the weekly cadence is spread evenly over the overlapping days rather
// than simulated weekday by weekday. Then:
//   - no leave days: salary*(1-taxRate)
//   - leave covers the whole month: leave income only
//   - otherwise: salary*(1-taxRate)*(1-leaveDays/daysInMonth) + leave income
func MonthlyIncomeForParent(parent leave.Parent, b ParentBenefits, year int, month time.Month, taxRate decimal.Decimal) MonthlyIncome {
	taxRate = SanitizeTaxRate(taxRate)
	ym := calendar.YearMonth{Year: year, Month: month}
	window := ym.Span()
	netSalary := parent.MonthlySalary.Mul(one.Sub(taxRate))

	leaveDays := 0
	leaveIncome := decimal.Zero
	for _, p := range parent.Periods {
		overlap, ok := p.Span().Intersect(window)
		if !ok {
			continue
		}
		days := overlap.Len()
		leaveDays += days
		leaveIncome = leaveIncome.Add(
			b.AvgDailyBenefit.
				Mul(decimal.NewFromInt(int64(p.DaysPerWeek))).
				Mul(decimal.NewFromInt(int64(days))).
				Div(daysPerWeek),
		)
	}

	daysInMonth := ym.Days()
	switch {
	case leaveDays == 0:
		return MonthlyIncome{Total: netSalary, Days: 0}
	case leaveDays >= daysInMonth:
		return MonthlyIncome{Total: leaveIncome, Days: leaveDays}
	default:
		workShare := one.Sub(decimal.NewFromInt(int64(leaveDays)).Div(decimal.NewFromInt(int64(daysInMonth))))
		return MonthlyIncome{Total: netSalary.Mul(workShare).Add(leaveIncome), Days: leaveDays}
	}
}

// =============================================================================
// MONTHLY TABLE - Every month touched by any parent's periods
// =============================================================================

// MonthlyRow is one month of the household income table. Parents holds
// one cell per parent in the order the parents were given.
type MonthlyRow struct {
	Month   calendar.YearMonth
	Parents []MonthlyIncome
}

// Parent returns the cell for parent index i, or a zero cell when the
// household has fewer parents.
func (r MonthlyRow) Parent(i int) MonthlyIncome {
	if i < 0 || i >= len(r.Parents) {
		return MonthlyIncome{Total: decimal.Zero}
	}
	return r.Parents[i]
}

// Total returns the household income for the month.
func (r MonthlyRow) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r.Parents {
		total = total.Add(c.Total)
	}
	return total
}

// TableOptions controls BuildMonthlyTable.
type TableOptions struct {
	// MaxMonths caps the number of rows; <= 0 means DefaultMaxMonths.
	MaxMonths int
	// Clock supplies the fallback date when no parent has periods.
	Clock calendar.Clock
}

// BuildMonthlyTable projects income for every month from the earliest
// period start to the latest period end across all parents. benefits[i]
// must belong to parents[i]. Iteration stops after opts.MaxMonths rows so
// a bad end date cannot produce a runaway table.
func BuildMonthlyTable(parents []leave.Parent, benefits []ParentBenefits, taxRate decimal.Decimal, opts TableOptions) []MonthlyRow {
	if len(parents) == 0 {
		return nil
	}
	limit := opts.MaxMonths
	if limit <= 0 {
		limit = DefaultMaxMonths
	}
	clock := opts.Clock
	if clock == nil {
		clock = calendar.SystemClock{}
	}

	var all []leave.Period
	for _, p := range parents {
		all = append(all, p.Periods...)
	}
	if len(all) == 0 {
		return nil
	}
	horizon := calendar.Span{
		Start: leave.EarliestStart(all, clock),
		End:   leave.LatestEnd(all, clock),
	}

	months := horizon.Months(limit)
	rows := make([]MonthlyRow, 0, len(months))
	for _, ym := range months {
		row := MonthlyRow{Month: ym, Parents: make([]MonthlyIncome, len(parents))}
		for i, p := range parents {
			var b ParentBenefits
			if i < len(benefits) {
				b = benefits[i]
			}
			row.Parents[i] = MonthlyIncomeForParent(p, b, ym.Year, ym.Month, taxRate)
		}
		rows = append(rows, row)
	}
	return rows
}
