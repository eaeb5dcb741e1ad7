// Package matrix_test contains shared test helpers.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/matrix"
)

// hide wraps any Matrix to mask its concrete type, forcing the generic
// At/Set fallback in kernels that have a *Dense fast-path.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// requireRows compares a matrix to literal rows exactly.
func requireRows(t testing.TB, want [][]float64, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want, got.Raw())
}
