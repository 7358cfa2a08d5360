/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  Defines the JSON structures the frontend reads. The server only hands
  out reference data; every benefit calculation runs in the client.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Response: Response wrappers

SEE ALSO:
  - handlers.go: Uses these types
  - municipality/municipality.go: table row and statistics types
*/
package api

import (
	"github.com/foraldrapengen/benefit-engine/municipality"
	"github.com/foraldrapengen/benefit-engine/plan"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// MunicipalityListResponse wraps the municipality table.
type MunicipalityListResponse struct {
	Municipalities []municipality.Municipality `json:"municipalities"`
	Count          int                         `json:"count"`
}

// CountyDTO is a county and the number of municipalities listed for it.
type CountyDTO struct {
	Name           string `json:"name"`
	Municipalities int    `json:"municipalities"`
}

// TaxRateSource says how a tax rate was resolved.
type TaxRateSource string

const (
	SourceDefault      TaxRateSource = "default"
	SourceAverage      TaxRateSource = "national_average"
	SourceMunicipality TaxRateSource = "municipality"
)

// TaxRateDTO is the result of a tax-rate lookup.
type TaxRateDTO struct {
	Municipality string        `json:"municipality,omitempty"`
	County       string        `json:"county,omitempty"`
	ChurchMember bool          `json:"churchMember"`
	TaxRate      float64       `json:"taxRate"`
	Source       TaxRateSource `json:"source"`
}

// ExampleSummaryDTO lists an example without its plan.
type ExampleSummaryDTO struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Parents     int    `json:"parents"`
}

func toExampleSummary(ex plan.Example) ExampleSummaryDTO {
	return ExampleSummaryDTO{
		Key:         ex.Key,
		Name:        ex.Name,
		Description: ex.Description,
		Parents:     len(ex.File.Parents),
	}
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
