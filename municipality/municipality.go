/*
municipality.go - Swedish municipal income tax lookup

PURPOSE:
  Parental benefit is taxed as income at the parent's municipal rate
  (municipality plus region), optionally with the church fee. This package
  holds a read-only 2025 table of the larger municipalities and resolves a
  plan's municipality name to the tax rate the benefit engine uses.

RESOLUTION RULES (TaxRate):
  - no municipality given: DefaultRate (30%)
  - unknown municipality: the national average
  - known municipality: its total rate, plus ChurchFee for members

SEE ALSO:
  - data.go: the table itself
  - benefit/rules.go: DefaultTaxRate, the engine's fallback
*/
package municipality

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrNotFound is returned when no municipality matches a name.
var ErrNotFound = errors.New("municipality not found")

// Municipality is one row of the tax table. Rates are percentages.
type Municipality struct {
	Name         string  `json:"name" yaml:"name"`
	County       string  `json:"county" yaml:"county"`
	TotalTax     float64 `json:"totalTax" yaml:"totalTax"`
	MunicipalTax float64 `json:"municipalTax" yaml:"municipalTax"`
	RegionalTax  float64 `json:"regionalTax" yaml:"regionalTax"`
}

// Rate returns the total tax as a fraction.
func (m Municipality) Rate() decimal.Decimal {
	return decimal.NewFromFloat(m.TotalTax).Div(hundred)
}

// =============================================================================
// NATIONAL STATISTICS
// =============================================================================

// Extreme names the municipality holding a national minimum or maximum.
type Extreme struct {
	Name     string  `json:"name"`
	County   string  `json:"county"`
	TotalTax float64 `json:"totalTax"`
}

// Statistics summarises the national spread of total municipal tax.
type Statistics struct {
	Year    int     `json:"year"`
	Average float64 `json:"average"`
	Lowest  Extreme `json:"lowest"`
	Highest Extreme `json:"highest"`
}

// Stats are the 2025 national figures. The extremes are national and not
// necessarily part of the table.
var Stats = Statistics{
	Year:    2025,
	Average: 32.41,
	Lowest:  Extreme{Name: "Österåker", County: "Stockholm", TotalTax: 28.98},
	Highest: Extreme{Name: "Degerfors", County: "Örebro", TotalTax: 35.3},
}

var (
	hundred = decimal.NewFromInt(100)

	// DefaultRate applies when the plan names no municipality.
	DefaultRate = decimal.RequireFromString("0.30")
	// ChurchFee is the approximate Church of Sweden fee added for members.
	ChurchFee = decimal.RequireFromString("0.01")
)

// AverageRate is the national average as a fraction.
func AverageRate() decimal.Decimal {
	return decimal.NewFromFloat(Stats.Average).Div(hundred)
}

// =============================================================================
// LOOKUP
// =============================================================================

// All returns a copy of the table in its published order.
func All() []Municipality {
	out := make([]Municipality, len(table))
	copy(out, table)
	return out
}

// Find returns the first municipality whose name matches, ignoring case
// and surrounding whitespace. Sigtuna is listed under two counties; the
// first entry wins.
func Find(name string) (Municipality, error) {
	key := fold(name)
	if key == "" {
		return Municipality{}, ErrNotFound
	}
	for _, m := range table {
		if fold(m.Name) == key {
			return m, nil
		}
	}
	return Municipality{}, ErrNotFound
}

// ByCounty returns the municipalities of a county in table order. The
// county name must match exactly.
func ByCounty(county string) []Municipality {
	var out []Municipality
	for _, m := range table {
		if m.County == county {
			out = append(out, m)
		}
	}
	return out
}

// Counties returns the distinct county names in Swedish alphabetical
// order, so Å, Ä and Ö sort after Z.
func Counties() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range table {
		if _, ok := seen[m.County]; ok {
			continue
		}
		seen[m.County] = struct{}{}
		out = append(out, m.County)
	}
	SortNames(out)
	return out
}

// SortNames sorts names in place using Swedish collation.
func SortNames(names []string) {
	c := collate.New(language.Swedish)
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
}

// TaxRate resolves the tax rate, as a fraction, for benefit paid to a
// resident of the named municipality.
func TaxRate(name string, churchMember bool) decimal.Decimal {
	if strings.TrimSpace(name) == "" {
		return DefaultRate
	}
	m, err := Find(name)
	if err != nil {
		return AverageRate()
	}
	rate := m.Rate()
	if churchMember {
		rate = rate.Add(ChurchFee)
	}
	return rate
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
