package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/foraldrapengen/benefit-engine/benefit"
)

const (
	ruleHeavy = "═══════════════════════════════════════"
	ruleLight = "───────────────────────────────────────"
)

// textWriter keeps the first write error so the renderer can write
// line after line and check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}

// Text writes the plain-text plan summary.
func Text(w io.Writer, res benefit.HouseholdResult, opts Options) error {
	t := &textWriter{w: w}

	t.line("FÖRÄLDRAPENNING - MIN PLAN")
	t.line(ruleHeavy)
	t.line("")
	t.line("Skapad: %s", opts.created())
	if !opts.BirthDate.IsZero() {
		t.line("Barnets födelsedatum: %s", opts.BirthDate)
	}
	t.line("Antal föräldrar: %d", len(res.Parents))
	t.line("Skattesats: %s%%", FormatDecimal(res.TaxRate.Shift(2), 2))
	if len(res.Parents) == 2 {
		t.line("Dubbeldagar: %d", res.DoubleDays)
	}

	for _, pr := range res.Parents {
		p, b := pr.Parent, pr.Benefits
		t.line("")
		t.line("%s", strings.ToUpper(p.Name))
		t.line(ruleLight)
		t.line("Anställningsform: %s", p.Type.Label())
		t.line("Månadslön: %s", FormatSEK(p.MonthlySalary))
		t.line("Arbetsgivartillägg (PAG): %s", percent(p.EmployerTopUp))
		t.line("")
		t.line("PLANERAD LEDIGHET:")
		t.line("• Antal dagar: %d dagar", p.TotalDays())
		t.line("• Antal perioder: %d", len(p.Periods))
		for i, period := range p.Periods {
			t.line("  Period %d: %s till %s (%d dagar, %d d/v)",
				i+1, period.Start, period.End, period.DaysToTake, period.DaysPerWeek)
		}
		t.line("• Ledighet i månader: %s mån", FormatDecimal(b.MonthsNeeded, 1))
		t.line("")
		t.line("EKONOMI:")
		t.line("• SGI (årsinkomst): %s/år", FormatSEK(b.SGI))
		t.line("• Dagersättning efter skatt: %s/dag", FormatSEK(b.DailyBenefitAfterTax))
		t.line("• Högnivådagar (80%%): %d dagar", b.HighLevelDays)
		t.line("• Lågnivådagar (180 kr): %d dagar", b.LowLevelDays)
		t.line("• Total ersättning efter skatt: %s", FormatSEK(b.TotalBenefitAfterTax))
		if b.EmployerTopUpAmount.IsPositive() {
			t.line("• Arbetsgivartillägg: %s", FormatSEK(b.EmployerTopUpAmount))
		}
	}

	t.line("")
	t.line(ruleHeavy)
	t.line("TOTALT FÖR FAMILJEN")
	t.line(ruleLight)
	t.line("• Använda dagar: %d av %d", res.UsedDays, benefit.TotalParentalDays)
	t.line("• Återstående dagar: %d", res.RemainingDays)
	t.line("• Total ersättning efter skatt: %s", FormatSEK(res.TotalBenefitAfterTax))

	if len(res.Warnings) > 0 {
		t.line("")
		t.line("VARNINGAR")
		t.line(ruleLight)
		for _, warn := range res.Warnings {
			t.line("• %s", warn.Message)
		}
	}

	t.line("")
	t.line(ruleHeavy)
	t.line("Denna beräkning är vägledande. För exakta belopp,")
	t.line("kontakta Försäkringskassan eller använd deras")
	t.line("officiella beräkningsverktyg.")
	return t.err
}
