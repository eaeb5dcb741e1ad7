// SPDX-License-Identifier: MIT
// Package hmm: input validation and the private parameter representation.
//
// Purpose:
//   - Validate Transition/Emission/Initial/Observations ONCE, before any lattice
//     is allocated, so invalid input never produces a partial result.
//   - Copy the caller's matrices into a privately owned params value. Every
//     algorithm reads params only; Baum-Welch builds a fresh params per
//     iteration instead of mutating the current one.
//
// Determinism & Performance:
//   - Observation symbols are range-checked here; the per-timestep loops then
//     index emission columns directly without re-checking.

package hmm

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Operation tags used in error wrapping.
const (
	opForward    = "Forward"
	opBackward   = "Backward"
	opViterbi    = "Viterbi"
	opBaumWelch  = "BaumWelch"
	opPosterior  = "Posterior"
	opNewModel   = "NewModel"
	opSample     = "Sample"
	opLikelihood = "LogLikelihood"
)

// params is a validated, privately owned parameter set.
//   - trans/emit keep the dense form for the matrix kernels (VecMat/MatVec).
//   - a/e mirror them as nested rows for per-entry loops (Viterbi, re-estimation).
//   - emitCol[k] is the emission column of symbol k (length N).
type params struct {
	n, m    int
	trans   *matrix.Dense
	emit    *matrix.Dense
	pi      []float64
	a       [][]float64
	e       [][]float64
	emitCol [][]float64
}

// newParams validates the three parameter matrices and copies them.
//
// Implementation:
//   - Stage 1: nil checks (ErrNilMatrix).
//   - Stage 2: shapes: Transition N×N, Emission N×M, Initial N×1.
//   - Stage 3: copy into *matrix.Dense (never aliasing caller storage).
//   - Stage 4: finiteness, then (optionally) row-stochastic checks.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquareTransition, ErrEmissionShape, ErrInitialShape,
//     ErrNaNInf, ErrNotStochastic, each wrapped with op.
//
// Complexity:
//   - Time O(N² + N·M), Space O(N² + N·M).
func newParams(op string, transition, emission, initial matrix.Matrix, o Options) (*params, error) {
	// Stage 1: nil checks.
	for _, m := range []matrix.Matrix{transition, emission, initial} {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, hmmErrorf(op, ErrNilMatrix)
		}
	}

	// Stage 2: shapes.
	if err := matrix.ValidateSquare(transition); err != nil {
		return nil, hmmErrorf(op, fmt.Errorf("%w: got %d×%d", ErrNonSquareTransition, transition.Rows(), transition.Cols()))
	}
	n := transition.Rows()
	if n == 0 {
		return nil, hmmErrorf(op, fmt.Errorf("%w: got 0×0", ErrNonSquareTransition))
	}
	if emission.Rows() != n {
		return nil, hmmErrorf(op, fmt.Errorf("%w: got %d rows, want %d", ErrEmissionShape, emission.Rows(), n))
	}
	if initial.Rows() != n || initial.Cols() != 1 {
		return nil, hmmErrorf(op, fmt.Errorf("%w: got %d×%d, want %d×1", ErrInitialShape, initial.Rows(), initial.Cols(), n))
	}

	// Stage 3: private copies.
	trans, err := matrix.DenseOf(transition)
	if err != nil {
		return nil, classify(op, "transition", err)
	}
	emit, err := matrix.DenseOf(emission)
	if err != nil {
		return nil, classify(op, "emission", err)
	}
	initCol, err := matrix.DenseOf(initial)
	if err != nil {
		return nil, classify(op, "initial", err)
	}
	pi, _ := initCol.Col(0) // shape checked above

	// Stage 4: values.
	if err = checkRows(trans, o); err != nil {
		return nil, classify(op, "transition", err)
	}
	if err = checkRows(emit, o); err != nil {
		return nil, classify(op, "emission", err)
	}
	if err = checkVector(pi, o); err != nil {
		return nil, classify(op, "initial", err)
	}

	return buildParams(trans, emit, pi), nil
}

// buildParams derives the nested views from already validated dense parts.
func buildParams(trans, emit *matrix.Dense, pi []float64) *params {
	n, m := emit.Shape()
	p := &params{
		n:       n,
		m:       m,
		trans:   trans,
		emit:    emit,
		pi:      pi,
		a:       trans.Raw(),
		e:       emit.Raw(),
		emitCol: make([][]float64, m),
	}
	for k := 0; k < m; k++ {
		p.emitCol[k], _ = emit.Col(k)
	}

	return p
}

// fromRows builds params from freshly computed nested rows (Baum-Welch M-step).
// The rows come from kernels over validated input, so only finiteness can fail.
func fromRows(a, e [][]float64, pi []float64) (*params, error) {
	trans, err := matrix.NewDenseFrom(a)
	if err != nil {
		return nil, err
	}
	emit, err := matrix.NewDenseFrom(e)
	if err != nil {
		return nil, err
	}

	return buildParams(trans, emit, pi), nil
}

// validateObs range-checks every symbol once.
//
// Errors: ErrEmptyObservations (T = 0), ErrSymbolOutOfRange (first offending index).
func (p *params) validateObs(op string, obs []int) error {
	if len(obs) == 0 {
		return hmmErrorf(op, ErrEmptyObservations)
	}
	for t, k := range obs {
		if k < 0 || k >= p.m {
			return hmmErrorf(op, fmt.Errorf("%w: obs[%d]=%d not in [0,%d)", ErrSymbolOutOfRange, t, k, p.m))
		}
	}

	return nil
}

// prepare is the single validation entry of the free functions.
func prepare(op string, obs []int, transition, emission, initial matrix.Matrix, o Options) (*params, error) {
	p, err := newParams(op, transition, emission, initial, o)
	if err != nil {
		return nil, err
	}
	if err = p.validateObs(op, obs); err != nil {
		return nil, err
	}

	return p, nil
}

// checkRows enforces finiteness and, when enabled, row-stochastic rows.
func checkRows(m *matrix.Dense, o Options) error {
	if o.checkStochastic {
		return matrix.ValidateRowStochastic(m, o.tol)
	}
	for _, row := range m.Raw() {
		if err := checkFinite(row); err != nil {
			return err
		}
	}

	return nil
}

// checkVector is checkRows for the Initial distribution.
func checkVector(x []float64, o Options) error {
	if o.checkStochastic {
		return matrix.ValidateProbabilityVector(x, o.tol)
	}

	return checkFinite(x)
}

// checkFinite rejects NaN/±Inf entries.
func checkFinite(x []float64) error {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return matrix.ErrNaNInf
		}
	}

	return nil
}

// classify maps matrix-level failures onto hmm sentinels while keeping the
// original chain matchable (both hmm.ErrX and matrix.ErrY satisfy errors.Is).
func classify(op, name string, err error) error {
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%s: %s: %w: %w", op, name, ErrNaNInf, err)
	case errors.Is(err, matrix.ErrNotStochastic):
		return fmt.Errorf("%s: %s: %w: %w", op, name, ErrNotStochastic, err)
	default:
		return fmt.Errorf("%s: %s: %w: %w", op, name, ErrShape, err)
	}
}
