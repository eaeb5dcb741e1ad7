// SPDX-License-Identifier: MIT
// Package hmm: sentinel error set.
// Every exported algorithm validates its whole input before allocating a
// lattice and reports failures with these sentinels, wrapped with an operation
// tag ("Forward: ...", "BaumWelch: ..."). Match them with errors.Is.

package hmm

import (
	"errors"
	"fmt"
)

// ERROR TAXONOMY
// --------------
//   - shape:     ErrShape and its refinements (ErrNilMatrix, ErrNonSquareTransition,
//     ErrEmissionShape, ErrInitialShape). errors.Is(err, ErrShape) matches all of them.
//   - domain:    ErrEmptyObservations, ErrSymbolOutOfRange, ErrNotStochastic, ErrNaNInf,
//     ErrBadIterations, ErrBadLength, ErrNilSource.
//   - numerical: ErrZeroLikelihood.
//
// Validation order (enforced in tests): nil → transition shape → emission shape →
// initial shape → numeric values → stochastic rows → observations.

var (
	// ErrShape is the umbrella for every rank/dimension disagreement between
	// Transition, Emission and Initial.
	ErrShape = errors.New("hmm: invalid parameter shape")

	// ErrNilMatrix indicates a nil Transition, Emission or Initial.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrShape)

	// ErrNonSquareTransition indicates a Transition matrix that is not N×N.
	ErrNonSquareTransition = fmt.Errorf("%w: transition is not square", ErrShape)

	// ErrEmissionShape indicates an Emission whose row count differs from N.
	ErrEmissionShape = fmt.Errorf("%w: emission rows do not match the number of states", ErrShape)

	// ErrInitialShape indicates an Initial that is not an N×1 column.
	ErrInitialShape = fmt.Errorf("%w: initial is not an N×1 column", ErrShape)

	// ErrEmptyObservations indicates a zero-length observation sequence (T = 0).
	ErrEmptyObservations = errors.New("hmm: observation sequence is empty")

	// ErrSymbolOutOfRange indicates an observation symbol outside [0, M).
	ErrSymbolOutOfRange = errors.New("hmm: observation symbol out of range")

	// ErrNotStochastic indicates a Transition/Emission row or the Initial
	// vector that is not a probability distribution within tolerance.
	ErrNotStochastic = errors.New("hmm: parameters are not a probability distribution")

	// ErrNaNInf indicates a NaN or ±Inf parameter value.
	ErrNaNInf = errors.New("hmm: NaN or Inf parameter")

	// ErrBadIterations indicates a negative iteration budget.
	ErrBadIterations = errors.New("hmm: iterations must be >= 0")

	// ErrBadLength indicates a non-positive length requested from Sample.
	ErrBadLength = errors.New("hmm: sequence length must be > 0")

	// ErrNilSource indicates a nil random source passed to Sample.
	ErrNilSource = errors.New("hmm: nil random source")

	// ErrZeroLikelihood indicates that the observation sequence has probability
	// zero under the model, or underflowed so far (zero or subnormal) that it
	// cannot be inverted; posteriors are then undefined.
	ErrZeroLikelihood = errors.New("hmm: observation likelihood is zero")
)

// hmmErrorf wraps err with an operation tag, preserving it for errors.Is.
func hmmErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
