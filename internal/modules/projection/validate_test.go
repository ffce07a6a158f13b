package projection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsBaseline(t *testing.T) {
	assert.NoError(t, baselineAssumptions().Validate())
	assert.NoError(t, DefaultAssumptions().Validate())
}

func TestValidateRejectsOutOfRangeFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Assumptions)
		field  string
	}{
		{"negative peak sales", func(a *Assumptions) { a.PeakSales = -1 }, "peak_sales"},
		{"probability above one", func(a *Assumptions) { a.Probability = 1.5 }, "probability"},
		{"negative probability", func(a *Assumptions) { a.Probability = -0.1 }, "probability"},
		{"zero horizon", func(a *Assumptions) { a.Horizon = 0 }, "horizon"},
		{"zero ramp years", func(a *Assumptions) { a.RampYears = 0 }, "ramp_years"},
		{"ramp longer than horizon", func(a *Assumptions) { a.RampYears = 6 }, "ramp_years"},
		{"unknown ramp shape", func(a *Assumptions) { a.RampShape = "exponential" }, "ramp_shape"},
		{"cost ratio above one", func(a *Assumptions) { a.CostRatio = 1.01 }, "cost_ratio"},
		{"negative cost ratio", func(a *Assumptions) { a.CostRatio = -0.2 }, "cost_ratio"},
		{"negative investment", func(a *Assumptions) { a.Investment = -5 }, "investment"},
		{"negative launch year", func(a *Assumptions) { a.LaunchYear = -2027 }, "launch_year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := baselineAssumptions()
			tt.mutate(&a)

			err := a.Validate()
			require.Error(t, err)

			var invalid *InvalidAssumptionError
			require.True(t, errors.As(err, &invalid), "error must be an InvalidAssumptionError")
			assert.Equal(t, tt.field, invalid.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestComputeReturnsNoPartialResultOnInvalidInput(t *testing.T) {
	a := baselineAssumptions()
	a.Probability = 1.5

	p, err := Compute(a)
	require.Error(t, err)
	assert.Nil(t, p)

	var invalid *InvalidAssumptionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "probability", invalid.Field)
}
