/*
Package plan reads and writes household leave plans.

PURPOSE:
  A plan file describes one household: where it lives (for the tax rate),
  and one or two parents with their leave periods. Plans are written by
  hand or exported from the web calculator, so input is treated as
  untrusted: structure is validated, numbers are clamped and unreadable
  dates are replaced. Every correction is reported as a Warning.

FILE SCHEMA (JSON shown, YAML uses the same keys):
  {
    "birthDate": "2025-03-01",
    "municipality": "Stockholm",
    "churchMember": false,
    "taxRate": 0.32,                  // optional, overrides municipality
    "parents": [
      {
        "name": "Förälder 1",
        "type": "employed",           // employed | self_employed | unemployed
        "monthlySalary": 35000,
        "employerTopUp": 10,          // percent
        "periods": [
          {"startDate": "2025-03-01", "endDate": "2025-10-26",
           "daysToTake": 240, "daysPerWeek": 5}
        ]
      }
    ]
  }

LEGACY FILES:
  Older exports stored a single period directly on the parent
  (startDate, endDate, daysToTake, daysPerWeek) and used the type
  "student". MigrateLegacy converts these before validation.

SEE ALSO:
  - loader.go: File -> Plan conversion with validation and clamping
  - examples.go: built-in example plans
  - leave/mutate.go: clamping rules and end-date derivation
*/
package plan

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPlan       = errors.New("invalid plan")
	ErrUnsupportedFormat = errors.New("unsupported plan format")
	ErrUnknownExample    = errors.New("unknown example")
)

// =============================================================================
// FORMAT
// =============================================================================

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// =============================================================================
// FILE SCHEMA TYPES
// =============================================================================

// File is the on-disk representation of a plan.
type File struct {
	BirthDate    string       `json:"birthDate,omitempty" yaml:"birthDate,omitempty"`
	Municipality string       `json:"municipality,omitempty" yaml:"municipality,omitempty"`
	ChurchMember bool         `json:"churchMember,omitempty" yaml:"churchMember,omitempty"`
	TaxRate      *float64     `json:"taxRate,omitempty" yaml:"taxRate,omitempty" validate:"omitempty,gte=0,lte=1"`
	Parents      []ParentFile `json:"parents" yaml:"parents" validate:"required,min=1,max=2,dive"`
}

// ParentFile is one parent in a plan file. The trailing single-period
// fields only appear in legacy files.
type ParentFile struct {
	ID            int          `json:"id,omitempty" yaml:"id,omitempty" validate:"gte=0"`
	Name          string       `json:"name,omitempty" yaml:"name,omitempty" validate:"max=100"`
	Type          string       `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=employed self_employed unemployed"`
	MonthlySalary float64      `json:"monthlySalary" yaml:"monthlySalary"`
	EmployerTopUp float64      `json:"employerTopUp" yaml:"employerTopUp"`
	Periods       []PeriodFile `json:"periods,omitempty" yaml:"periods,omitempty" validate:"dive"`

	StartDate   string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	DaysToTake  *int   `json:"daysToTake,omitempty" yaml:"daysToTake,omitempty"`
	DaysPerWeek *int   `json:"daysPerWeek,omitempty" yaml:"daysPerWeek,omitempty"`
}

// PeriodFile is one leave period. EndDate may be omitted and is then
// derived from the start date and cadence.
type PeriodFile struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	StartDate   string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	DaysToTake  int    `json:"daysToTake" yaml:"daysToTake"`
	DaysPerWeek int    `json:"daysPerWeek" yaml:"daysPerWeek"`
}

// isLegacy reports whether the parent uses the single-period layout.
func (p ParentFile) isLegacy() bool {
	return len(p.Periods) == 0 &&
		(p.StartDate != "" || p.EndDate != "" || p.DaysToTake != nil || p.DaysPerWeek != nil)
}

// =============================================================================
// LEGACY MIGRATION
// =============================================================================

const legacyDaysPerWeek = 5

// MigrateLegacy converts single-period parents into the periods layout and
// maps the retired "student" type to unemployed. It returns the migrated
// file and one warning per converted parent. The input is not modified.
func MigrateLegacy(f File) (File, []Warning) {
	var warnings []Warning
	out := f
	out.Parents = make([]ParentFile, len(f.Parents))
	for i, p := range f.Parents {
		field := fmt.Sprintf("parents[%d]", i)
		if p.Type == "student" {
			p.Type = "unemployed"
			warnings = append(warnings, Warning{Field: field + ".type", Message: `"student" is read as "unemployed"`})
		}
		if p.isLegacy() {
			period := PeriodFile{
				StartDate:   p.StartDate,
				EndDate:     p.EndDate,
				DaysPerWeek: legacyDaysPerWeek,
			}
			if p.DaysToTake != nil {
				period.DaysToTake = *p.DaysToTake
			}
			if p.DaysPerWeek != nil {
				period.DaysPerWeek = *p.DaysPerWeek
			}
			p.Periods = []PeriodFile{period}
			warnings = append(warnings, Warning{Field: field, Message: "single-period layout converted to periods"})
		} else {
			p.Periods = append([]PeriodFile(nil), p.Periods...)
		}
		p.StartDate, p.EndDate, p.DaysToTake, p.DaysPerWeek = "", "", nil, nil
		out.Parents[i] = p
	}
	return out, warnings
}
