/*
handlers.go - HTTP handlers for the reference data API

PURPOSE:
  Serves the data the browser calculator needs but should not hard-code:
  municipal tax rates, the county list and example plans. Plans and
  results never reach the server.

ENDPOINTS:
  Municipalities:
    GET /api/municipalities             Full table (?county= filters)
    GET /api/municipalities/{name}      One municipality, case-insensitive
    GET /api/counties                   Counties in Swedish order
    GET /api/tax-rate                   ?municipality=&church=true
    GET /api/tax-stats                  National average and extremes

  Examples:
    GET /api/examples                   Example list
    GET /api/examples/{key}             Example plan (?format=yaml)

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid query parameter
  - 404: Unknown municipality or example
  - 500: Encoding failures

SEE ALSO:
  - dto.go: Response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/foraldrapengen/benefit-engine/calendar"
	"github.com/foraldrapengen/benefit-engine/municipality"
	"github.com/foraldrapengen/benefit-engine/plan"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	clock          calendar.Clock
	defaultTaxRate decimal.Decimal
}

// NewHandler creates a handler. defaultTaxRate applies when no
// municipality is given.
func NewHandler(clock calendar.Clock, defaultTaxRate decimal.Decimal) *Handler {
	if clock == nil {
		clock = calendar.SystemClock{}
	}
	return &Handler{clock: clock, defaultTaxRate: defaultTaxRate}
}

// =============================================================================
// MUNICIPALITY ENDPOINTS
// =============================================================================

// ListMunicipalities returns the table, optionally for one county.
func (h *Handler) ListMunicipalities(w http.ResponseWriter, r *http.Request) {
	list := municipality.All()
	if county := strings.TrimSpace(r.URL.Query().Get("county")); county != "" {
		list = municipality.ByCounty(county)
	}
	if list == nil {
		list = []municipality.Municipality{}
	}
	writeJSON(w, http.StatusOK, MunicipalityListResponse{Municipalities: list, Count: len(list)})
}

// GetMunicipality returns one municipality by name.
func (h *Handler) GetMunicipality(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	m, err := municipality.Find(name)
	if errors.Is(err, municipality.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Municipality not found", err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// ListCounties returns every county with its municipality count.
func (h *Handler) ListCounties(w http.ResponseWriter, r *http.Request) {
	names := municipality.Counties()
	out := make([]CountyDTO, 0, len(names))
	for _, name := range names {
		out = append(out, CountyDTO{Name: name, Municipalities: len(municipality.ByCounty(name))})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTaxRate resolves the benefit tax rate for a municipality.
func (h *Handler) GetTaxRate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	church := false
	if raw := q.Get("church"); raw != "" {
		var err error
		church, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid church parameter", err)
			return
		}
	}

	name := strings.TrimSpace(q.Get("municipality"))
	resp := TaxRateDTO{Municipality: name, ChurchMember: church}
	switch m, err := municipality.Find(name); {
	case name == "":
		resp.TaxRate = h.defaultTaxRate.InexactFloat64()
		resp.Source = SourceDefault
	case err != nil:
		resp.TaxRate = municipality.TaxRate(name, church).InexactFloat64()
		resp.Source = SourceAverage
	default:
		resp.Municipality = m.Name
		resp.County = m.County
		resp.TaxRate = municipality.TaxRate(m.Name, church).InexactFloat64()
		resp.Source = SourceMunicipality
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetTaxStats returns the national statistics.
func (h *Handler) GetTaxStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, municipality.Stats)
}

// =============================================================================
// EXAMPLE ENDPOINTS
// =============================================================================

// ListExamples returns the available example plans.
func (h *Handler) ListExamples(w http.ResponseWriter, r *http.Request) {
	examples := plan.Examples(h.clock.Today())
	out := make([]ExampleSummaryDTO, 0, len(examples))
	for _, ex := range examples {
		out = append(out, toExampleSummary(ex))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetExample returns one example, dated from today. With ?format=yaml the
// plan file itself is returned, ready to save and pass to the planner CLI.
func (h *Handler) GetExample(w http.ResponseWriter, r *http.Request) {
	ex, err := plan.ExampleByKey(chi.URLParam(r, "key"), h.clock.Today())
	if err != nil {
		writeError(w, http.StatusNotFound, "Example not found", err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "":
		writeJSON(w, http.StatusOK, ex)
	case string(plan.FormatJSON), string(plan.FormatYAML):
		data, err := plan.Encode(ex.File, plan.Format(format))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to encode example", err)
			return
		}
		contentType := "application/json"
		if format == string(plan.FormatYAML) {
			contentType = "application/yaml"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+ex.Key+`.`+format+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "Unsupported format", plan.ErrUnsupportedFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
