// SPDX-License-Identifier: MIT
// Package markov: sentinel error set.
// Shape failures surface the matrix sentinels (ErrNilMatrix, ErrNonSquare,
// ErrDimensionMismatch) wrapped with an operation tag; the sentinels below
// cover the chain-specific conditions. Match with errors.Is.

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStochastic indicates a transition row or a state distribution that
	// is not a probability distribution within tolerance.
	ErrNotStochastic = errors.New("markov: not a probability distribution")

	// ErrBadSteps indicates a step count t < 1.
	ErrBadSteps = errors.New("markov: steps must be >= 1")

	// ErrNotRegular indicates that no power P^k, k ≤ n², is strictly positive,
	// so a unique steady state is not guaranteed.
	ErrNotRegular = errors.New("markov: chain is not regular")

	// ErrStateOutOfRange indicates a state index outside [0, n) in an
	// observed sequence.
	ErrStateOutOfRange = errors.New("markov: state index out of range")

	// ErrNoConvergence indicates that power iteration did not settle within
	// the iteration budget.
	ErrNoConvergence = errors.New("markov: steady state did not converge")
)

// markovErrorf wraps err with an operation tag.
func markovErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
