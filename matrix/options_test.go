package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/matrix"
)

// TestOptions_NaNInfPolicy verifies the default rejects non-finite values and
// WithNoValidateNaNInf admits them.
func TestOptions_NaNInfPolicy(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	loose, err := matrix.NewDenseFrom([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))
}
