/*
main.go - Planner CLI entry point

PURPOSE:
  Calculates parental benefit for a household plan and writes the
  summary, CSV export or JSON report.

COMMAND-LINE FLAGS:
  -plan          Plan file (.json, .yaml, .yml)
  -example       Built-in example instead of a file (maxTime, maxMoney,
                 balanced, singleParent)
  -format        text | csv | json (default: text)
  -municipality  Municipality for the tax rate (overrides the plan)
  -church        Church of Sweden member
  -tax-rate      Explicit tax rate, e.g. 0.32 (overrides the municipality)
  -out           Output file (default: stdout)
  -max-months    Rows in the monthly table (default: FPG_MAX_PROJECTION_MONTHS)
  -env-file      .env file to load (default: .env)

EXAMPLES:
  ./planner -plan family.yaml
  ./planner -example balanced -municipality Göteborg -format csv -out plan.csv

SEE ALSO:
  - plan/loader.go: Plan file handling
  - export/export.go: Output formats
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/benefit"
	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/config"
	"github.com/foraldrapengen/benefit-engine/export"
	"github.com/foraldrapengen/benefit-engine/plan"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, calendar.SystemClock{}); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "planner:", err)
		}
		os.Exit(1)
	}
}

type options struct {
	planPath     string
	example      string
	format       string
	municipality string
	church       bool
	taxRate      string
	out          string
	maxMonths    int
	envFile      string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.planPath, "plan", "", "plan file (.json, .yaml, .yml)")
	fs.StringVar(&o.example, "example", "", "built-in example plan")
	fs.StringVar(&o.format, "format", "text", "output format: text, csv or json")
	fs.StringVar(&o.municipality, "municipality", "", "municipality for the tax rate")
	fs.BoolVar(&o.church, "church", false, "Church of Sweden member")
	fs.StringVar(&o.taxRate, "tax-rate", "", "explicit tax rate, e.g. 0.32")
	fs.StringVar(&o.out, "out", "", "output file (default: stdout)")
	fs.IntVar(&o.maxMonths, "max-months", 0, "rows in the monthly table")
	fs.StringVar(&o.envFile, "env-file", ".env", ".env file to load")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if (o.planPath == "") == (o.example == "") {
		fmt.Fprintln(stderr, "planner: give exactly one of -plan or -example")
		fs.Usage()
		return o, errUsage
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer, clock calendar.Clock) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(o.envFile)
	if err != nil {
		return err
	}
	logger := cfg.Logger(stderr, nil).With(slog.String("component", "planner"))

	format, err := export.ParseFormat(o.format)
	if err != nil {
		return err
	}

	p, err := loadPlan(o, clock)
	if err != nil {
		return err
	}
	if err := applyOverrides(p, o, cfg); err != nil {
		return err
	}
	for _, w := range p.Warnings {
		logger.Warn(w.Message, slog.String("field", w.Field))
	}

	maxMonths := cfg.MaxProjectionMonths
	if o.maxMonths > 0 {
		maxMonths = o.maxMonths
	}
	res := benefit.CalculateHousehold(p.Household(), benefit.Options{MaxMonths: maxMonths, Clock: clock})
	for _, w := range res.Warnings {
		logger.Warn(w.Message, slog.String("code", string(w.Code)))
	}
	logger.Debug("calculated",
		slog.Int("parents", len(res.Parents)),
		slog.Int("used_days", res.UsedDays),
		slog.String("tax_rate", res.TaxRate.String()),
	)

	w := stdout
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, format, res, export.Options{BirthDate: p.BirthDate, Clock: clock}); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	if f, ok := w.(*os.File); ok && o.out != "" {
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("wrote plan", slog.String("path", o.out), slog.String("format", string(format)))
	}
	return nil
}

func loadPlan(o options, clock calendar.Clock) (*plan.Plan, error) {
	loader := plan.NewLoader(plan.WithClock(clock))
	if o.planPath != "" {
		return loader.Load(o.planPath)
	}
	ex, err := plan.ExampleByKey(o.example, clock.Today())
	if err != nil {
		return nil, err
	}
	return loader.FromFile(ex.File)
}

// applyOverrides layers the command line over the plan file. Without any
// municipality the configured default rate applies.
func applyOverrides(p *plan.Plan, o options, cfg *config.Config) error {
	if o.municipality != "" || o.church {
		name := o.municipality
		if name == "" {
			name = p.Municipality
		}
		p.SetMunicipality(name, o.church || p.ChurchMember)
	}
	if o.taxRate != "" {
		rate, err := decimal.NewFromString(o.taxRate)
		if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("invalid -tax-rate %q: want a fraction between 0 and 1", o.taxRate)
		}
		p.SetTaxRate(rate)
		return nil
	}
	if !p.TaxRateOverride && p.Municipality == "" {
		p.SetTaxRate(cfg.TaxRate())
	}
	return nil
}
