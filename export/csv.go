package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/benefit"
)

// bom marks the file as UTF-8 for spreadsheet programs.
const bom = "\ufeff"

type csvWriter struct {
	buf *bufio.Writer
	csv *csv.Writer
	err error
}

func newCSVWriter(w io.Writer) *csvWriter {
	buf := bufio.NewWriter(w)
	return &csvWriter{buf: buf, csv: csv.NewWriter(buf)}
}

func (c *csvWriter) row(fields ...string) {
	if c.err != nil {
		return
	}
	c.err = c.csv.Write(fields)
}

func (c *csvWriter) blank() { c.row() }

func (c *csvWriter) flush() error {
	if c.err != nil {
		return c.err
	}
	c.csv.Flush()
	if err := c.csv.Error(); err != nil {
		return err
	}
	return c.buf.Flush()
}

func kr(d decimal.Decimal) string { return d.StringFixed(0) }

// CSV writes the spreadsheet export.
func CSV(w io.Writer, res benefit.HouseholdResult, opts Options) error {
	c := newCSVWriter(w)
	if _, err := c.buf.WriteString(bom); err != nil {
		return err
	}

	c.row("FÖRÄLDRAPENNING - MIN PLAN")
	c.row("Skapad:", opts.created().String())
	if !opts.BirthDate.IsZero() {
		c.row("Barnets födelsedatum:", opts.BirthDate.String())
	}
	c.row("Antal föräldrar:", strconv.Itoa(len(res.Parents)))
	c.row("Skattesats:", res.TaxRate.String())
	if len(res.Parents) == 2 {
		c.row("Dubbeldagar:", strconv.Itoa(res.DoubleDays))
	}
	c.blank()

	for _, pr := range res.Parents {
		p, b := pr.Parent, pr.Benefits
		c.row(p.Name)
		c.row("Kategori", "Värde")
		c.row("Anställningsform", p.Type.Label())
		c.row("Månadslön", kr(p.MonthlySalary))
		c.row("Arbetsgivartillägg (PAG)", percent(p.EmployerTopUp))
		c.blank()

		c.row("PLANERAD LEDIGHET")
		c.row("Antal dagar totalt", strconv.Itoa(p.TotalDays()))
		c.row("Antal perioder", strconv.Itoa(len(p.Periods)))
		for i, period := range p.Periods {
			c.row(fmt.Sprintf("Period %d", i+1),
				period.Start.String()+" till "+period.End.String(),
				fmt.Sprintf("%d dagar", period.DaysToTake),
				fmt.Sprintf("%d d/v", period.DaysPerWeek))
		}
		c.row("Ledighet i månader", b.MonthsNeeded.StringFixed(1))
		c.blank()

		c.row("EKONOMI")
		c.row("SGI (årsinkomst)", kr(b.SGI))
		c.row("Dagersättning efter skatt", kr(b.DailyBenefitAfterTax))
		c.row("Högnivådagar (80%)", strconv.Itoa(b.HighLevelDays))
		c.row("Lågnivådagar (180 kr)", strconv.Itoa(b.LowLevelDays))
		c.row("Total ersättning efter skatt", kr(b.TotalBenefitAfterTax))
		if b.EmployerTopUpAmount.IsPositive() {
			c.row("Arbetsgivartillägg", kr(b.EmployerTopUpAmount))
		}
		c.blank()
	}

	c.row("TOTALT FÖR FAMILJEN")
	c.row("Använda dagar", strconv.Itoa(res.UsedDays))
	c.row("Återstående dagar", strconv.Itoa(res.RemainingDays))
	c.row("Total ersättning efter skatt", kr(res.TotalBenefitAfterTax))
	c.blank()

	header := []string{"Månad"}
	for _, pr := range res.Parents {
		header = append(header, pr.Parent.Name)
	}
	header = append(header, "Totalt")
	c.row("MÅNADSINKOMST")
	c.row(header...)
	for _, m := range res.Monthly {
		fields := []string{m.Month.String()}
		for i := range res.Parents {
			fields = append(fields, kr(m.Parent(i).Total))
		}
		fields = append(fields, kr(m.Total()))
		c.row(fields...)
	}
	c.blank()

	c.row("VIKTIGT")
	c.row("Denna beräkning är vägledande.")
	c.row("För exakta belopp kontakta Försäkringskassan.")
	return c.flush()
}
