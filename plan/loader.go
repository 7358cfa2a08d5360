package plan

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/foraldrapengen/benefit-engine/benefit"
	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/leave"
	"github.com/foraldrapengen/benefit-engine/municipality"
)

// =============================================================================
// PLAN - Validated, clamped household ready for the engine
// =============================================================================

// Warning records a correction made while loading a plan.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (w Warning) String() string { return w.Field + ": " + w.Message }

// Plan is a loaded household plan.
type Plan struct {
	BirthDate    calendar.Date
	Municipality string
	ChurchMember bool

	// TaxRate is the override when TaxRateOverride is set, otherwise the
	// rate resolved from the municipality.
	TaxRate         decimal.Decimal
	TaxRateOverride bool

	Parents  []leave.Parent
	Warnings []Warning
}

// Household returns the engine input for the plan.
func (p *Plan) Household() benefit.Household {
	return benefit.Household{Parents: p.Parents, TaxRate: p.TaxRate}
}

// SetMunicipality changes the municipality and church membership and
// re-resolves the tax rate unless an explicit rate was given.
func (p *Plan) SetMunicipality(name string, churchMember bool) {
	p.Municipality = name
	p.ChurchMember = churchMember
	if !p.TaxRateOverride {
		p.TaxRate = municipality.TaxRate(name, churchMember)
	}
}

// SetTaxRate pins an explicit tax rate, clamped to [0, 1].
func (p *Plan) SetTaxRate(rate decimal.Decimal) {
	p.TaxRate = benefit.SanitizeTaxRate(rate)
	p.TaxRateOverride = true
}

// =============================================================================
// LOADER
// =============================================================================

// Loader converts plan files into Plans.
type Loader struct {
	clock    calendar.Clock
	ids      leave.IDGenerator
	validate *validator.Validate
}

type Option func(*Loader)

// WithClock sets the source of "today" used for missing dates.
func WithClock(c calendar.Clock) Option { return func(l *Loader) { l.clock = c } }

// WithIDs sets the generator for periods without an ID.
func WithIDs(g leave.IDGenerator) Option { return func(l *Loader) { l.ids = g } }

// NewLoader creates a loader using the system clock and UUID period IDs
// unless overridden.
func NewLoader(opts ...Option) *Loader {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	l := &Loader{
		clock:    calendar.SystemClock{},
		ids:      leave.UUIDGenerator{},
		validate: v,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads a plan file, choosing the format from its extension.
func (l *Loader) Load(path string) (*Plan, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return l.Parse(data, format)
}

// Parse decodes and converts a plan in the given format.
func (l *Loader) Parse(data []byte, format Format) (*Plan, error) {
	var f File
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return l.FromFile(f)
}

// FromFile migrates, validates and converts a decoded plan file.
func (l *Loader) FromFile(f File) (*Plan, error) {
	f, warnings := MigrateLegacy(f)
	if err := l.check(f); err != nil {
		return nil, err
	}

	today := l.clock.Today()
	p := &Plan{
		Municipality: strings.TrimSpace(f.Municipality),
		ChurchMember: f.ChurchMember,
		Warnings:     warnings,
	}

	p.BirthDate = today
	if f.BirthDate != "" {
		d, err := calendar.ParseDateOr(f.BirthDate, today)
		p.BirthDate = d
		p.warnDate("birthDate", err)
	}

	if f.TaxRate != nil {
		p.TaxRate = decimal.NewFromFloat(*f.TaxRate)
		p.TaxRateOverride = true
	} else {
		p.TaxRate = municipality.TaxRate(p.Municipality, p.ChurchMember)
	}

	for i, pf := range f.Parents {
		p.Parents = append(p.Parents, l.parent(p, i, pf))
	}
	return p, nil
}

func (l *Loader) check(f File) error {
	err := l.validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "File.")
		msgs = append(msgs, fmt.Sprintf("%s failed %q", field, fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidPlan, strings.Join(msgs, "; "))
}

func (l *Loader) parent(p *Plan, i int, pf ParentFile) leave.Parent {
	field := fmt.Sprintf("parents[%d]", i)

	parent := leave.Parent{
		ID:            pf.ID,
		Name:          strings.TrimSpace(pf.Name),
		Type:          leave.EmploymentType(pf.Type),
		MonthlySalary: decimal.NewFromFloat(pf.MonthlySalary),
		EmployerTopUp: decimal.NewFromFloat(pf.EmployerTopUp),
	}
	if parent.ID == 0 {
		parent.ID = i + 1
	}
	if parent.Name == "" {
		parent.Name = fmt.Sprintf("Förälder %d", i+1)
	}
	if pf.Type == "" {
		parent.Type = leave.Employed
	}
	if clamped := leave.ClampSalary(parent.MonthlySalary); !clamped.Equal(parent.MonthlySalary) {
		p.warn(field+".monthlySalary", "negative salary set to 0")
		parent.MonthlySalary = clamped
	}
	if clamped := leave.ClampTopUp(parent.EmployerTopUp); !clamped.Equal(parent.EmployerTopUp) {
		p.warn(field+".employerTopUp", fmt.Sprintf("%s%% clamped to %s%%", parent.EmployerTopUp, clamped))
		parent.EmployerTopUp = clamped
	}

	for j, pp := range pf.Periods {
		parent.Periods = append(parent.Periods, l.period(p, fmt.Sprintf("%s.periods[%d]", field, j), pp))
	}

	if res := leave.ValidateNoOverlap(parent.Periods); !res.Valid {
		p.warn(field+".periods", res.Message)
	}
	return parent
}

func (l *Loader) period(p *Plan, field string, pp PeriodFile) leave.Period {
	period := leave.Period{
		ID:          pp.ID,
		DaysToTake:  leave.ClampDaysToTake(pp.DaysToTake),
		DaysPerWeek: leave.ClampDaysPerWeek(pp.DaysPerWeek),
	}
	if period.ID == "" {
		period.ID = l.ids.NewID()
	}
	if period.DaysToTake != pp.DaysToTake {
		p.warn(field+".daysToTake", fmt.Sprintf("%d clamped to %d", pp.DaysToTake, period.DaysToTake))
	}
	if period.DaysPerWeek != pp.DaysPerWeek {
		p.warn(field+".daysPerWeek", fmt.Sprintf("%d clamped to %d", pp.DaysPerWeek, period.DaysPerWeek))
	}

	if pp.StartDate == "" {
		period.Start = p.BirthDate
		p.warn(field+".startDate", "missing, using "+p.BirthDate.String())
	} else {
		d, err := calendar.ParseDateOr(pp.StartDate, p.BirthDate)
		period.Start = d
		p.warnDate(field+".startDate", err)
	}

	derived := leave.DeriveEndDate(period.Start, period.DaysToTake, period.DaysPerWeek)
	if pp.EndDate == "" {
		period.End = derived
	} else {
		d, err := calendar.ParseDateOr(pp.EndDate, derived)
		period.End = d
		p.warnDate(field+".endDate", err)
	}
	if period.End.Before(period.Start) {
		p.warn(field+".endDate", "ends before it starts")
	}
	return period
}

func (p *Plan) warn(field, msg string) {
	p.Warnings = append(p.Warnings, Warning{Field: field, Message: msg})
}

func (p *Plan) warnDate(field string, err error) {
	if err != nil {
		p.warn(field, err.Error())
	}
}
