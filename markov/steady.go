// SPDX-License-Identifier: MIT
// Package markov: steady state of a regular chain.

package markov

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// SteadyState returns the stationary distribution π (π·P = π) of a regular
// chain.
//
// Implementation:
//   - Stage 1: validate P (square, row-stochastic).
//   - Stage 2: regularity: some power P^k, 1 ≤ k ≤ n², must be strictly
//     positive, otherwise ErrNotRegular.
//   - Stage 3: power iteration from the uniform distribution until two
//     successive distributions agree (|a−b| ≤ 1e-8 + 1e-5·|b|).
//
// Errors:
//   - shape / ErrNotStochastic as for StateAfter.
//   - ErrNotRegular, ErrNoConvergence (after WithMaxIterations steps).
//
// Complexity:
//   - Regularity check O(n⁵) worst case; iteration O(maxIter·n²).
func SteadyState(P matrix.Matrix, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	d, err := transitionOf(opSteadyState, P, o.tol)
	if err != nil {
		return nil, err
	}

	regular, err := isRegular(d)
	if err != nil {
		return nil, markovErrorf(opSteadyState, err)
	}
	if !regular {
		return nil, markovErrorf(opSteadyState, ErrNotRegular)
	}

	n := d.Rows()
	s := make([]float64, n)
	for i := range s {
		s[i] = 1 / float64(n)
	}
	var next []float64
	var same bool
	for k := 0; k < o.maxIter; k++ {
		if next, err = matrix.VecMat(s, d); err != nil {
			return nil, markovErrorf(opSteadyState, err)
		}
		if same, err = matrix.AllCloseVec(s, next, convergenceRTol, convergenceATol); err != nil {
			return nil, markovErrorf(opSteadyState, err)
		}
		if same {
			return next, nil
		}
		s = next
	}

	return nil, markovErrorf(opSteadyState, fmt.Errorf("%w: %d iterations", ErrNoConvergence, o.maxIter))
}

// isRegular reports whether some P^k (1 ≤ k ≤ n²) has only positive entries.
func isRegular(d *matrix.Dense) (bool, error) {
	n := d.Rows()
	power := d
	var err error
	for k := 0; k < n*n; k++ {
		if allPositive(power) {
			return true, nil
		}
		if power, err = matrix.Mul(power, d); err != nil {
			return false, err
		}
	}

	return false, nil
}

func allPositive(m *matrix.Dense) bool {
	for _, row := range m.Raw() {
		if floats.Min(row) <= 0 {
			return false
		}
	}

	return true
}
