// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/stochastic checks here.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Stochastic checks run O(r*c) in fixed i→j order and stop at the first violation.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil with equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil with length exactly n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the sentinel for "nil argument"
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateProbabilityVector checks that x is a probability distribution:
// every entry finite and ≥ 0, and |Σx − 1| ≤ tol.
//
// Inputs: x (non-empty), tol ≥ 0 finite.
// Errors: ErrNilMatrix (nil/empty x), ErrNaNInf (bad entry or tol), ErrNotStochastic.
// Complexity: O(n).
func ValidateProbabilityVector(x []float64, tol float64) error {
	if len(x) == 0 {
		return validatorErrorf("ValidateProbabilityVector", ErrNilMatrix)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateProbabilityVector", ErrNaNInf)
	}
	tol = math.Abs(tol)

	sum := 0.0
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateProbabilityVector[%d]", i), ErrNaNInf)
		}
		if v < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateProbabilityVector[%d]", i), ErrNotStochastic)
		}
		sum += v
	}
	if math.Abs(sum-1) > tol {
		return validatorErrorf("ValidateProbabilityVector: sum", ErrNotStochastic)
	}

	return nil
}

// ValidateRowStochastic checks that every row of m is a probability distribution
// (entries ≥ 0, row sum within tol of 1).
//
// Implementation:
//   - Stage 1: ValidateNotNil; reject non-finite tol.
//   - Stage 2: per row, scan entries (Dense fast-path on the flat buffer) and compare the sum.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite entry or tol), ErrNotStochastic (tagged with row index).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use before Markov/HMM kernels; the row index in the message pinpoints the offending state.
func ValidateRowStochastic(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateRowStochastic", ErrNaNInf)
	}
	tol = math.Abs(tol)

	r, c := m.Rows(), m.Cols()
	d, isDense := m.(*Dense)
	var (
		i, j int
		v    float64
		sum  float64
		err  error
	)
	for i = 0; i < r; i++ {
		sum = 0
		for j = 0; j < c; j++ {
			if isDense {
				v = d.data[i*c+j]
			} else if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateRowStochastic", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateRowStochastic: row %d", i), ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateRowStochastic: row %d", i), ErrNotStochastic)
			}
			sum += v
		}
		if math.Abs(sum-1) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateRowStochastic: row %d sums to %g", i, sum), ErrNotStochastic)
		}
	}

	return nil
}
