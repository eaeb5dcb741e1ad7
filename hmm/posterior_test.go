package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/hmm"
)

// TestPosterior_Weather checks γ = F ⊙ B / P cell by cell.
func TestPosterior_Weather(t *testing.T) {
	t.Parallel()
	e, a, pi := weather(t)
	const p = 0.10893

	g, err := hmm.Posterior([]int{0, 1, 0}, e, a, pi)
	require.NoError(t, err)
	requireRowsInDelta(t, [][]float64{
		{0.08829 / p, 0.02829 / p, 0.08631 / p},
		{0.02064 / p, 0.08064 / p, 0.02262 / p},
	}, g, tightTol)
}

// TestPosterior_ColumnsSumToOne holds for any model and sequence.
func TestPosterior_ColumnsSumToOne(t *testing.T) {
	t.Parallel()
	e, a, pi := urns(t)
	obs := []int{1, 0, 0, 1, 1, 0, 1}

	g, err := hmm.Posterior(obs, e, a, pi)
	require.NoError(t, err)
	for tt := range obs {
		col, err := g.Col(tt)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, floats.Sum(col), looseTol, "column %d", tt)
	}
}

// TestPosterior_ZeroLikelihood has no defined posterior.
func TestPosterior_ZeroLikelihood(t *testing.T) {
	t.Parallel()
	a := dense(t, [][]float64{{1}})
	e := dense(t, [][]float64{{1, 0}})
	pi := column(t, 1)

	g, err := hmm.Posterior([]int{1}, e, a, pi)
	require.ErrorIs(t, err, hmm.ErrZeroLikelihood)
	assert.Nil(t, g)
}

// TestPosterior_SubnormalLikelihood: for T = 1030 under a uniform model
// P = 0.5^1030 is subnormal, so 1/P overflows and no finite posterior exists.
func TestPosterior_SubnormalLikelihood(t *testing.T) {
	t.Parallel()
	e, a, pi := uniform2(t)
	obs := make([]int, 1030)

	p, _, err := hmm.Forward(obs, e, a, pi)
	require.NoError(t, err)
	require.Positive(t, p)

	g, err := hmm.Posterior(obs, e, a, pi)
	require.ErrorIs(t, err, hmm.ErrZeroLikelihood)
	assert.Nil(t, g)
}
