package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foraldrapengen/benefit-engine/calendar"
)

var clock = calendar.FixedClock{Date: calendar.MustParseDate("2026-01-06")}

func runPlanner(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	args = append([]string{"-env-file", filepath.Join(t.TempDir(), "missing.env")}, args...)
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr, clock)
	return stdout.String(), stderr.String(), err
}

func TestRun_ExampleAsText(t *testing.T) {
	out, _, err := runPlanner(t, "-example", "maxTime")
	require.NoError(t, err)
	assert.Contains(t, out, "FÖRÄLDRAPENNING - MIN PLAN")
	assert.Contains(t, out, "Skapad: 2026-01-06")
}

func TestRun_PlanFileToJSON(t *testing.T) {
	// GIVEN: a YAML plan for Göteborg and an explicit tax rate
	// THEN: the explicit rate wins
	dir := t.TempDir()
	planPath := filepath.Join(dir, "family.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte(`birthDate: "2026-03-01"
municipality: Göteborg
parents:
  - name: Anna
    monthlySalary: 35000
    employerTopUp: 10
    periods:
      - startDate: "2026-03-01"
        daysToTake: 200
        daysPerWeek: 5
`), 0o600))
	outPath := filepath.Join(dir, "report.json")

	_, _, err := runPlanner(t, "-plan", planPath, "-format", "json", "-tax-rate", "0.31", "-out", outPath, "-max-months", "6")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var report struct {
		BirthDate string            `json:"birthDate"`
		TaxRate   float64           `json:"taxRate"`
		Monthly   []json.RawMessage `json:"monthly"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "2026-03-01", report.BirthDate)
	assert.InDelta(t, 0.31, report.TaxRate, 0.00001)
	assert.Len(t, report.Monthly, 6)
}

func TestRun_LogsPlanWarnings(t *testing.T) {
	_, stderr, err := runPlanner(t, "-example", "balanced")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"component":"planner"`)
	assert.Contains(t, stderr, `"level":"WARN"`)
}

func TestRun_Errors(t *testing.T) {
	tests := map[string][]string{
		"neither plan nor example": {},
		"both plan and example":    {"-plan", "x.yaml", "-example", "maxTime"},
		"unknown example":          {"-example", "nope"},
		"unknown format":           {"-example", "maxTime", "-format", "pdf"},
		"bad tax rate":             {"-example", "maxTime", "-tax-rate", "1.5"},
		"missing plan file":        {"-plan", "/does/not/exist.yaml"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := runPlanner(t, args...)
			assert.Error(t, err)
		})
	}
}
