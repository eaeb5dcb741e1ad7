package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvhmm/hmm"
)

// TestBackward_WeatherLattice checks every lattice cell by hand.
func TestBackward_WeatherLattice(t *testing.T) {
	t.Parallel()
	e, a, pi := weather(t)

	p, b, err := hmm.Backward([]int{0, 1, 0}, e, a, pi)
	require.NoError(t, err)
	assert.InDelta(t, 0.10893, p, tightTol)
	requireRowsInDelta(t, [][]float64{
		{0.1635, 0.69, 1},
		{0.258, 0.48, 1},
	}, b, tightTol)
}

// TestBackward_AgreesWithForward checks P_forward ≈ P_backward for several
// models and sequences.
func TestBackward_AgreesWithForward(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		obs  []int
		urns bool
	}{
		{name: "weather/short", obs: []int{0, 1, 0}},
		{name: "weather/single", obs: []int{1}},
		{name: "weather/long", obs: []int{0, 0, 1, 1, 0, 1, 0, 0, 1, 1, 1, 0, 1, 0, 0, 0, 1, 1, 0, 1}},
		{name: "urns/short", obs: []int{0, 1, 0}, urns: true},
		{name: "urns/long", obs: []int{1, 1, 0, 1, 0, 0, 0, 1, 0, 1, 1, 1, 0}, urns: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e, a, pi := weather(t)
			if tc.urns {
				e, a, pi = urns(t)
			}
			pf, _, err := hmm.Forward(tc.obs, e, a, pi)
			require.NoError(t, err)
			pb, _, err := hmm.Backward(tc.obs, e, a, pi)
			require.NoError(t, err)
			assert.True(t, scalar.EqualWithinAbsOrRel(pf, pb, 1e-300, looseTol),
				"forward %g vs backward %g", pf, pb)
		})
	}
}

// TestBackward_LastColumnOnes verifies B[:,T−1] = 1.
func TestBackward_LastColumnOnes(t *testing.T) {
	t.Parallel()
	e, a, pi := urns(t)

	_, b, err := hmm.Backward([]int{1, 0}, e, a, pi)
	require.NoError(t, err)
	last, err := b.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, last)
}
