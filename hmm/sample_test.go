package hmm_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/hmm"
)

// TestSample_Reproducible: the same seed yields the same sequences.
func TestSample_Reproducible(t *testing.T) {
	t.Parallel()
	m := weatherModel(t)

	s1, o1, err := m.Sample(50, rand.NewPCG(1, 2))
	require.NoError(t, err)
	s2, o2, err := m.Sample(50, rand.NewPCG(1, 2))
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Equal(t, o1, o2)
	require.Len(t, s1, 50)
	require.Len(t, o1, 50)
	for i := range s1 {
		assert.True(t, s1[i] == 0 || s1[i] == 1)
		assert.True(t, o1[i] == 0 || o1[i] == 1)
	}
}

// TestSample_DeterministicModel follows the only possible path.
func TestSample_DeterministicModel(t *testing.T) {
	t.Parallel()
	m, err := hmm.NewModel(
		dense(t, [][]float64{{0, 1}, {1, 0}}),
		dense(t, [][]float64{{0, 0, 1}, {1, 0, 0}}),
		column(t, 1, 0),
	)
	require.NoError(t, err)

	states, obs, err := m.Sample(5, rand.NewPCG(9, 9))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1, 0}, states)
	assert.Equal(t, []int{2, 0, 2, 0, 2}, obs)
}

// TestSample_EmissionFrequencies checks the empirical symbol frequencies of a
// single-state model.
func TestSample_EmissionFrequencies(t *testing.T) {
	t.Parallel()
	m, err := hmm.NewModel(dense(t, [][]float64{{1}}), dense(t, [][]float64{{0.2, 0.8}}), column(t, 1))
	require.NoError(t, err)

	const n = 20000
	_, obs, err := m.Sample(n, rand.NewPCG(3, 4))
	require.NoError(t, err)
	ones := 0
	for _, o := range obs {
		ones += o
	}
	assert.InDelta(t, 0.8, float64(ones)/n, 0.02)
}

// TestSample_Errors covers the argument checks.
func TestSample_Errors(t *testing.T) {
	t.Parallel()
	m := weatherModel(t)

	_, _, err := m.Sample(0, rand.NewPCG(1, 1))
	assert.ErrorIs(t, err, hmm.ErrBadLength)
	_, _, err = m.Sample(-4, rand.NewPCG(1, 1))
	assert.ErrorIs(t, err, hmm.ErrBadLength)
	_, _, err = m.Sample(3, nil)
	assert.ErrorIs(t, err, hmm.ErrNilSource)

	massless, err := hmm.NewModel(
		dense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}}),
		dense(t, [][]float64{{0, 0}, {0.5, 0.5}}),
		column(t, 0.5, 0.5),
		hmm.WithoutStochasticCheck(),
	)
	require.NoError(t, err)
	_, _, err = massless.Sample(3, rand.NewPCG(1, 1))
	assert.ErrorIs(t, err, hmm.ErrNotStochastic)
}
