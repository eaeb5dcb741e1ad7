package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/matrix"
)

// TestMul_FastAndFallback multiplies 2×3 by 3×2 on both code paths.
func TestMul_FastAndFallback(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustDense(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireRows(t, want, got)

	got, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	requireRows(t, want, got)

	got, err = matrix.Mul(a, hide{b})
	require.NoError(t, err)
	requireRows(t, want, got)
}

// TestMul_Errors rejects nil and incompatible operands.
func TestMul_Errors(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})

	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose flips shapes and values.
func TestTranspose(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	got, err := matrix.Transpose(m)
	require.NoError(t, err)
	requireRows(t, want, got)

	got, err = matrix.Transpose(hide{m})
	require.NoError(t, err)
	requireRows(t, want, got)
}

// TestScaleAndHadamard checks the element-wise kernels.
func TestScaleAndHadamard(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{0.5, 0}, {2, -1}})

	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	requireRows(t, [][]float64{{2, 4}, {6, 8}}, s)

	s, err = matrix.Scale(hide{a}, 0)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 0}, {0, 0}}, s)

	h, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0.5, 0}, {6, -4}}, h)

	h, err = matrix.Hadamard(hide{a}, b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0.5, 0}, {6, -4}}, h)

	_, err = matrix.Hadamard(a, mustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMatVecVecMat covers both vector products and their fallbacks.
func TestMatVecVecMat(t *testing.T) {
	A := mustDense(t, [][]float64{{0.7, 0.3}, {0.4, 0.6}})

	y, err := matrix.MatVec(A, []float64{1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.3, 1.6}, y, 1e-12)

	y, err = matrix.MatVec(hide{A}, []float64{1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.3, 1.6}, y, 1e-12)

	// row vector · A: distribution propagation
	z, err := matrix.VecMat([]float64{0.5, 0.5}, A)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.55, 0.45}, z, 1e-12)

	z, err = matrix.VecMat([]float64{0, 1}, hide{A})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.4, 0.6}, z, 1e-12)

	_, err = matrix.MatVec(A, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.VecMat(nil, A)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.VecMat([]float64{1, 2}, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNewZeros checks the zero constructor and its shape contract.
func TestNewZeros(t *testing.T) {
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	_, err = matrix.NewZeros(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
