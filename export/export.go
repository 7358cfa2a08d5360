/*
Package export renders a computed household plan for people and programs.

PURPOSE:
  The benefit engine produces numbers; this package turns them into
  something a parent can keep or paste into their application to
  Försäkringskassan, and something a program can read back.

FORMATS:
  - text: Swedish plain-text summary with sv-SE number formatting
  - csv:  UTF-8 with BOM so spreadsheet programs pick the right encoding;
          overview, one section per parent, family totals, monthly income
  - json: the full result with amounts rounded to öre

SEE ALSO:
  - benefit/household.go: HouseholdResult, the input to every format
  - cmd/planner: the command that writes these files
*/
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/foraldrapengen/benefit-engine/benefit"
	"github.com/foraldrapengen/benefit-engine/calendar"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatCSV, FormatJSON:
		return f, nil
	case "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Options carries the context that is not part of the computed result.
type Options struct {
	BirthDate calendar.Date
	// Created stamps the export; zero means Clock's today.
	Created calendar.Date
	Clock   calendar.Clock
}

func (o Options) created() calendar.Date {
	if !o.Created.IsZero() {
		return o.Created
	}
	if o.Clock != nil {
		return o.Clock.Today()
	}
	return calendar.SystemClock{}.Today()
}

// Write renders res in the given format.
func Write(w io.Writer, format Format, res benefit.HouseholdResult, opts Options) error {
	switch format {
	case FormatText:
		return Text(w, res, opts)
	case FormatCSV:
		return CSV(w, res, opts)
	case FormatJSON:
		return JSON(w, res, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// =============================================================================
// NUMBER FORMATTING
// =============================================================================

func printer() *message.Printer {
	return message.NewPrinter(language.Swedish)
}

// FormatSEK formats a whole-krona amount the Swedish way: 407 400 kr.
func FormatSEK(d decimal.Decimal) string {
	return printer().Sprintf("%d kr", d.Round(0).IntPart())
}

// FormatDecimal formats d with the given number of decimals and a comma
// as decimal separator.
func FormatDecimal(d decimal.Decimal, places int32) string {
	return printer().Sprint(number.Decimal(d.Round(places).InexactFloat64(), number.Scale(int(places))))
}

// percent renders a percentage value such as 10 as "10%".
func percent(pct decimal.Decimal) string {
	return pct.String() + "%"
}
