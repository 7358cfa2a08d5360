package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foraldrapengen/benefit-engine/benefit"
	"github.com/foraldrapengen/benefit-engine/plan"
)

func TestExamples_KeysInOrder(t *testing.T) {
	examples := plan.Examples(today)
	require.Len(t, examples, len(plan.ExampleKeys))
	for i, ex := range examples {
		assert.Equal(t, plan.ExampleKeys[i], ex.Key)
		assert.NotEmpty(t, ex.Name)
	}
}

func TestExamples_MaxTimeRunsBackToBack(t *testing.T) {
	// GIVEN: 240 days at 5 days/week from 2026-01-06
	// THEN: ceil(240*7/5) = 336 days, the second parent starts the day after
	ex, err := plan.ExampleByKey("maxTime", today)
	require.NoError(t, err)

	first := ex.File.Parents[0].Periods[0]
	second := ex.File.Parents[1].Periods[0]
	assert.Equal(t, "2026-01-06", first.StartDate)
	assert.Equal(t, "2026-12-08", first.EndDate)
	assert.Equal(t, "2026-12-09", second.StartDate)
	assert.Equal(t, "2027-11-10", second.EndDate)
}

func TestExamples_LoadCleanly(t *testing.T) {
	for _, ex := range plan.Examples(today) {
		t.Run(ex.Key, func(t *testing.T) {
			p, err := newLoader().FromFile(ex.File)
			require.NoError(t, err)
			assert.Empty(t, p.Warnings)

			res := benefit.CalculateHousehold(p.Household(), benefit.Options{})
			assert.False(t, res.HasWarning(benefit.WarnPeriodsOverlap))
		})
	}
}

func TestExamples_BalancedCreatesDoubleDays(t *testing.T) {
	ex, err := plan.ExampleByKey("balanced", today)
	require.NoError(t, err)
	p, err := newLoader().FromFile(ex.File)
	require.NoError(t, err)

	res := benefit.CalculateHousehold(p.Household(), benefit.Options{})

	assert.Positive(t, res.DoubleDays)
	assert.Equal(t, "2026-09-08", ex.File.Parents[0].Periods[0].EndDate)
	assert.Equal(t, "2026-10-27", ex.File.Parents[1].Periods[0].EndDate)
}

func TestExamples_SingleParentTakesAllDays(t *testing.T) {
	ex, err := plan.ExampleByKey("singleParent", today)
	require.NoError(t, err)
	p, err := newLoader().FromFile(ex.File)
	require.NoError(t, err)

	res := benefit.CalculateHousehold(p.Household(), benefit.Options{})

	assert.Equal(t, 480, res.UsedDays)
	assert.Equal(t, 0, res.RemainingDays)
	assert.Equal(t, 90, res.Parents[0].Benefits.LowLevelDays)
}

func TestExampleByKey_Unknown(t *testing.T) {
	_, err := plan.ExampleByKey("maxFun", today)
	assert.ErrorIs(t, err, plan.ErrUnknownExample)
}
