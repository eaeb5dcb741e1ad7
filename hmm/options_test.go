package hmm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvhmm/hmm"
)

// TestOptions_Defaults pins the documented defaults.
func TestOptions_Defaults(t *testing.T) {
	o := hmm.DefaultOptions()
	assert.Equal(t, hmm.DefaultTolerance, o.Tolerance())
	assert.True(t, o.ChecksStochastic())
	assert.Zero(t, o.ConvergenceTol())
}

// TestOptions_Panics rejects nonsensical thresholds at construction.
func TestOptions_Panics(t *testing.T) {
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.PanicsWithValue(t, "hmm: WithTolerance requires a finite, non-negative tolerance",
			func() { hmm.WithTolerance(bad) })
		assert.PanicsWithValue(t, "hmm: WithConvergence requires a finite, non-negative tolerance",
			func() { hmm.WithConvergence(bad) })
	}
	assert.NotPanics(t, func() { hmm.WithTolerance(0) })
	assert.NotPanics(t, func() { hmm.WithConvergence(0) })
}

// TestOptions_ZeroConvergenceRunsFullBudget: tol = 0 never stops early.
func TestOptions_ZeroConvergenceRunsFullBudget(t *testing.T) {
	m := weatherModel(t)

	_, report, err := m.Fit([]int{0, 0, 0, 0}, 12, hmm.WithConvergence(0))
	assert.NoError(t, err)
	assert.Equal(t, 12, report.Iterations)
	assert.False(t, report.Converged)
}
