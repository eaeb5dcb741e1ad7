package hmm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Tolerances shared by the numeric assertions.
const (
	tightTol = 1e-12
	looseTol = 1e-9
)

// dense builds a *matrix.Dense fixture or fails the test.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// column builds an N×1 fixture or fails the test.
func column(t testing.TB, x ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewColumn(x)
	require.NoError(t, err)

	return m
}

// weather is the two-state, two-symbol model used throughout:
// states {0: rainy, 1: sunny}, symbols {0: walk, 1: shop}.
// For obs [0,1,0]: P = 0.10893, Viterbi path [0,1,0] with P = 0.046656.
func weather(t testing.TB) (emission, transition, initial *matrix.Dense) {
	t.Helper()
	transition = dense(t, [][]float64{{0.7, 0.3}, {0.4, 0.6}})
	emission = dense(t, [][]float64{{0.9, 0.1}, {0.2, 0.8}})
	initial = column(t, 0.6, 0.4)

	return emission, transition, initial
}

// urns is a three-state, two-symbol model (balls drawn from boxes).
// For obs [0,1,0]: P = 0.130218.
func urns(t testing.TB) (emission, transition, initial *matrix.Dense) {
	t.Helper()
	transition = dense(t, [][]float64{{0.5, 0.2, 0.3}, {0.3, 0.5, 0.2}, {0.2, 0.3, 0.5}})
	emission = dense(t, [][]float64{{0.5, 0.5}, {0.4, 0.6}, {0.7, 0.3}})
	initial = column(t, 0.2, 0.4, 0.4)

	return emission, transition, initial
}

// uniform2 is a two-state, two-symbol model with every probability 0.5, so
// P(obs) = 0.5^T for any obs.
func uniform2(t testing.TB) (emission, transition, initial *matrix.Dense) {
	t.Helper()
	transition = dense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})
	emission = dense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})
	initial = column(t, 0.5, 0.5)

	return emission, transition, initial
}

// rowsOf reads m back into nested slices.
func rowsOf(m *matrix.Dense) [][]float64 { return m.Raw() }

// requireStochastic asserts every row of m sums to 1 within tol.
func requireStochastic(t testing.TB, m *matrix.Dense, tol float64) {
	t.Helper()
	require.NoError(t, matrix.ValidateRowStochastic(m, tol))
}

// requireRowsInDelta compares two matrices element-wise.
func requireRowsInDelta(t testing.TB, want [][]float64, got *matrix.Dense, delta float64) {
	t.Helper()
	rows := rowsOf(got)
	require.Len(t, rows, len(want))
	for i := range want {
		require.InDeltaSlice(t, want[i], rows[i], delta, "row %d", i)
	}
}

// plainMatrix is a minimal non-Dense matrix.Matrix used to exercise the
// generic (At/Set) ingestion path.
type plainMatrix struct {
	rows [][]float64
}

func (p *plainMatrix) Rows() int { return len(p.rows) }

func (p *plainMatrix) Cols() int {
	if len(p.rows) == 0 {
		return 0
	}

	return len(p.rows[0])
}

func (p *plainMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= p.Rows() || j < 0 || j >= p.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return p.rows[i][j], nil
}

func (p *plainMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= p.Rows() || j < 0 || j >= p.Cols() {
		return matrix.ErrOutOfRange
	}
	p.rows[i][j] = v

	return nil
}

func (p *plainMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(p.rows))
	for i := range p.rows {
		cp[i] = append([]float64(nil), p.rows[i]...)
	}

	return &plainMatrix{rows: cp}
}
