package plan

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/foraldrapengen/benefit-engine/leave"
)

// ToFile converts a plan back to its file representation. The tax rate is
// only written when it was given explicitly.
func ToFile(p *Plan) File {
	f := File{
		BirthDate:    p.BirthDate.String(),
		Municipality: p.Municipality,
		ChurchMember: p.ChurchMember,
	}
	if p.BirthDate.IsZero() {
		f.BirthDate = ""
	}
	if p.TaxRateOverride {
		rate := p.TaxRate.InexactFloat64()
		f.TaxRate = &rate
	}
	for _, parent := range p.Parents {
		f.Parents = append(f.Parents, parentFile(parent))
	}
	return f
}

func parentFile(p leave.Parent) ParentFile {
	pf := ParentFile{
		ID:            p.ID,
		Name:          p.Name,
		Type:          string(p.Type),
		MonthlySalary: p.MonthlySalary.InexactFloat64(),
		EmployerTopUp: p.EmployerTopUp.InexactFloat64(),
	}
	for _, period := range p.Periods {
		pf.Periods = append(pf.Periods, PeriodFile{
			ID:          period.ID,
			StartDate:   period.Start.String(),
			EndDate:     period.End.String(),
			DaysToTake:  period.DaysToTake,
			DaysPerWeek: period.DaysPerWeek,
		})
	}
	return pf
}

// Encode writes a plan file in the given format.
func Encode(f File, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(f, "", "  ")
	case FormatYAML:
		return yaml.Marshal(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
