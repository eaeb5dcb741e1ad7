// SPDX-License-Identifier: MIT
// Package markov: transition-matrix validation and state propagation.

package markov

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvhmm/matrix"
)

const (
	opStateAfter  = "StateAfter"
	opSteadyState = "SteadyState"
	opIsAbsorbing = "IsAbsorbing"
)

// transitionOf validates P (non-nil, square, row-stochastic within tol) and
// returns a private dense copy.
func transitionOf(op string, P matrix.Matrix, tol float64) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(P); err != nil {
		return nil, markovErrorf(op, err)
	}
	d, err := matrix.DenseOf(P)
	if err != nil {
		return nil, markovErrorf(op, err)
	}
	if err = matrix.ValidateRowStochastic(d, tol); err != nil {
		return nil, stochasticErrorf(op, err)
	}

	return d, nil
}

// stochasticErrorf tags a matrix validator failure so that both the markov
// and matrix sentinels match.
func stochasticErrorf(op string, err error) error {
	if errors.Is(err, matrix.ErrNotStochastic) {
		return fmt.Errorf("%s: %w: %w", op, ErrNotStochastic, err)
	}

	return markovErrorf(op, err)
}

// StateAfter returns the state distribution after t steps, s·Pᵗ.
//
// Inputs:
//   - P: n×n row-stochastic transition matrix.
//   - s: starting distribution of length n.
//   - t ≥ 1.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare (wrapped matrix sentinels) for bad P.
//   - ErrDimensionMismatch when len(s) != n.
//   - ErrNotStochastic for a bad row of P or a bad s.
//   - ErrBadSteps for t < 1.
//
// Complexity: O(t·n²).
func StateAfter(P matrix.Matrix, s []float64, t int, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	d, err := transitionOf(opStateAfter, P, o.tol)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateVecLen(s, d.Rows()); err != nil {
		return nil, markovErrorf(opStateAfter, err)
	}
	if err = matrix.ValidateProbabilityVector(s, o.tol); err != nil {
		return nil, stochasticErrorf(opStateAfter, err)
	}
	if t < 1 {
		return nil, markovErrorf(opStateAfter, fmt.Errorf("%w: got %d", ErrBadSteps, t))
	}

	cur := append([]float64(nil), s...)
	for k := 0; k < t; k++ {
		if cur, err = matrix.VecMat(cur, d); err != nil {
			return nil, markovErrorf(opStateAfter, err)
		}
	}

	return cur, nil
}
