package export

import (
	"io"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/benefit"
	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/leave"
)

// =============================================================================
// JSON VIEW TYPES
// =============================================================================

// Report is the JSON document written by JSON. Amounts are in SEK rounded
// to two decimals.
type Report struct {
	Created       calendar.Date   `json:"created"`
	BirthDate     string          `json:"birthDate,omitempty"`
	TaxRate       float64         `json:"taxRate"`
	Parents       []ParentReport  `json:"parents"`
	DoubleDays    int             `json:"doubleDays"`
	UsedDays      int             `json:"usedDays"`
	RemainingDays int             `json:"remainingDays"`
	TotalBefore   float64         `json:"totalBenefitBeforeTax"`
	TotalAfter    float64         `json:"totalBenefitAfterTax"`
	Monthly       []MonthReport   `json:"monthly"`
	Warnings      []WarningReport `json:"warnings"`
}

type ParentReport struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	MonthlySalary float64        `json:"monthlySalary"`
	EmployerTopUp float64        `json:"employerTopUp"`
	Periods       []leave.Period `json:"periods"`
	Benefits      BenefitsReport `json:"benefits"`
}

type BenefitsReport struct {
	SGI                   float64 `json:"sgi"`
	DailyBenefit          float64 `json:"dailyBenefit"`
	DailyBenefitAfterTax  float64 `json:"dailyBenefitAfterTax"`
	Tax                   float64 `json:"tax"`
	HighLevelDays         int     `json:"highLevelDays"`
	LowLevelDays          int     `json:"lowLevelDays"`
	ReservedDays          int     `json:"reservedDays"`
	TransferableDays      int     `json:"transferableDays"`
	FKBenefitBeforeTax    float64 `json:"fkBenefitBeforeTax"`
	FKBenefitAfterTax     float64 `json:"fkBenefitAfterTax"`
	EmployerTopUpAmount   float64 `json:"employerTopUpAmount"`
	TotalBenefitBeforeTax float64 `json:"totalBenefitBeforeTax"`
	TotalBenefitAfterTax  float64 `json:"totalBenefitAfterTax"`
	WeeksNeeded           int     `json:"weeksNeeded"`
	MonthsNeeded          float64 `json:"monthsNeeded"`
	AvgDailyBenefit       float64 `json:"avgDailyBenefit"`
}

type MonthReport struct {
	Month   string       `json:"month"`
	Parents []CellReport `json:"parents"`
	Total   float64      `json:"total"`
}

type CellReport struct {
	Total float64 `json:"total"`
	Days  int     `json:"days"`
}

type WarningReport struct {
	Code     string `json:"code"`
	ParentID int    `json:"parentId,omitempty"`
	Message  string `json:"message"`
}

func money(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }

// NewReport builds the JSON view of a result.
func NewReport(res benefit.HouseholdResult, opts Options) Report {
	r := Report{
		Created:       opts.created(),
		TaxRate:       res.TaxRate.InexactFloat64(),
		DoubleDays:    res.DoubleDays,
		UsedDays:      res.UsedDays,
		RemainingDays: res.RemainingDays,
		TotalBefore:   money(res.TotalBenefitBeforeTax),
		TotalAfter:    money(res.TotalBenefitAfterTax),
		Parents:       []ParentReport{},
		Monthly:       []MonthReport{},
		Warnings:      []WarningReport{},
	}
	if !opts.BirthDate.IsZero() {
		r.BirthDate = opts.BirthDate.String()
	}
	for _, pr := range res.Parents {
		p, b := pr.Parent, pr.Benefits
		r.Parents = append(r.Parents, ParentReport{
			ID:            p.ID,
			Name:          p.Name,
			Type:          string(p.Type),
			MonthlySalary: money(p.MonthlySalary),
			EmployerTopUp: money(p.EmployerTopUp),
			Periods:       p.Periods,
			Benefits: BenefitsReport{
				SGI:                   money(b.SGI),
				DailyBenefit:          money(b.DailyBenefit),
				DailyBenefitAfterTax:  money(b.DailyBenefitAfterTax),
				Tax:                   money(b.Tax),
				HighLevelDays:         b.HighLevelDays,
				LowLevelDays:          b.LowLevelDays,
				ReservedDays:          b.ReservedDays,
				TransferableDays:      b.TransferableDays,
				FKBenefitBeforeTax:    money(b.FKBenefitBeforeTax),
				FKBenefitAfterTax:     money(b.FKBenefitAfterTax),
				EmployerTopUpAmount:   money(b.EmployerTopUpAmount),
				TotalBenefitBeforeTax: money(b.TotalBenefitBeforeTax),
				TotalBenefitAfterTax:  money(b.TotalBenefitAfterTax),
				WeeksNeeded:           b.WeeksNeeded,
				MonthsNeeded:          money(b.MonthsNeeded),
				AvgDailyBenefit:       money(b.AvgDailyBenefit),
			},
		})
	}
	for _, m := range res.Monthly {
		mr := MonthReport{Month: m.Month.String(), Total: money(m.Total())}
		for _, cell := range m.Parents {
			mr.Parents = append(mr.Parents, CellReport{Total: money(cell.Total), Days: cell.Days})
		}
		r.Monthly = append(r.Monthly, mr)
	}
	for _, w := range res.Warnings {
		r.Warnings = append(r.Warnings, WarningReport{Code: string(w.Code), ParentID: w.ParentID, Message: w.Message})
	}
	return r
}

// JSON writes the full result as indented JSON.
func JSON(w io.Writer, res benefit.HouseholdResult, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewReport(res, opts))
}
