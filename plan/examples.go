/*
examples.go - Built-in example plans

PURPOSE:
  Ready-made households that show typical ways of splitting the 480 days.
  Dates are laid out relative to the day the example is requested, so an
  example always starts today.

AVAILABLE EXAMPLES:
  maxTime:      two parents, 240 days each at 5 days/week, one after the other
  maxMoney:     higher salaries and top-up, 240 days each at 7 days/week
  balanced:     6 and 5 days/week, both starting today to create double days
  singleParent: one parent takes all 480 days at 5 days/week

DATES:
  A period of d days at w days/week ends ceil(d*7/w) calendar days after
  its start. The next parent starts the day after.

SEE ALSO:
  - loader.go: FromFile turns an example into a Plan
  - api/handlers.go: example templates served to the frontend
*/
package plan

import (
	"fmt"

	"github.com/foraldrapengen/benefit-engine/calendar"
)

// Example is a named plan template.
type Example struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	File        File   `json:"plan"`
}

// ExampleKeys lists the examples in display order.
var ExampleKeys = []string{"maxTime", "maxMoney", "balanced", "singleParent"}

// exampleEnd is the end date of d days taken at w days/week from start.
func exampleEnd(start calendar.Date, days, perWeek int) calendar.Date {
	return start.AddDays((days*7 + perWeek - 1) / perWeek)
}

type exampleParent struct {
	name    string
	salary  float64
	topUp   float64
	days    int
	perWeek int
}

// sequential lays the parents out back to back from today.
func sequential(today calendar.Date, parents ...exampleParent) []ParentFile {
	out := make([]ParentFile, 0, len(parents))
	start := today
	for i, ep := range parents {
		end := exampleEnd(start, ep.days, ep.perWeek)
		out = append(out, ep.file(i, start, end))
		start = end.AddDays(1)
	}
	return out
}

// concurrent starts every parent today.
func concurrent(today calendar.Date, parents ...exampleParent) []ParentFile {
	out := make([]ParentFile, 0, len(parents))
	for i, ep := range parents {
		out = append(out, ep.file(i, today, exampleEnd(today, ep.days, ep.perWeek)))
	}
	return out
}

func (ep exampleParent) file(i int, start, end calendar.Date) ParentFile {
	return ParentFile{
		ID:            i + 1,
		Name:          ep.name,
		Type:          "employed",
		MonthlySalary: ep.salary,
		EmployerTopUp: ep.topUp,
		Periods: []PeriodFile{{
			ID:          fmt.Sprintf("period-%d", i+1),
			StartDate:   start.String(),
			EndDate:     end.String(),
			DaysToTake:  ep.days,
			DaysPerWeek: ep.perWeek,
		}},
	}
}

// Examples builds every example relative to today.
func Examples(today calendar.Date) []Example {
	return []Example{
		{
			Key:         "maxTime",
			Name:        "Maximera tid med barnet",
			Description: "Dela jämnt, ta ledigt 5 dagar/vecka för längsta möjliga tid hemma",
			File: File{BirthDate: today.String(), Parents: sequential(today,
				exampleParent{"Förälder 1", 35000, 10, 240, 5},
				exampleParent{"Förälder 2", 35000, 10, 240, 5},
			)},
		},
		{
			Key:         "maxMoney",
			Name:        "Maximera inkomst",
			Description: "Högre lön, PAG-tillägg, ta ledigt 7 dagar/vecka för snabbast återgång till arbete",
			File: File{BirthDate: today.String(), Parents: sequential(today,
				exampleParent{"Förälder 1", 45000, 20, 240, 7},
				exampleParent{"Förälder 2", 45000, 20, 240, 7},
			)},
		},
		{
			Key:         "balanced",
			Name:        "Balanserat",
			Description: "Blanda 5 och 6 dagar/vecka, perioder överlappar för dubbeldagar",
			File: File{BirthDate: today.String(), Parents: concurrent(today,
				exampleParent{"Förälder 1", 38000, 10, 210, 6},
				exampleParent{"Förälder 2", 32000, 10, 210, 5},
			)},
		},
		{
			Key:         "singleParent",
			Name:        "Ensamförälder",
			Description: "En förälder tar alla 480 dagar",
			File: File{BirthDate: today.String(), Parents: sequential(today,
				exampleParent{"Förälder", 35000, 10, 480, 5},
			)},
		},
	}
}

// ExampleByKey returns one example built relative to today.
func ExampleByKey(key string, today calendar.Date) (Example, error) {
	for _, ex := range Examples(today) {
		if ex.Key == key {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %q", ErrUnknownExample, key)
}
