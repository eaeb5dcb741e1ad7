// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide L1 row normalization as a deterministic composition over the
//     ew* micro-kernels.
//
// Exposed API (see api.go):
//   - NormalizeRowsL1(X)         -> (Y, norms), degenerate rows unchanged
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// normalizeRowsL1 scales each row to L1-norm 1.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row L1 norms (Dense fast-path; At fallback).
//   - Stage 3: Build scales 1/norm; degenerate rows (norm==0) get scale 1 (unchanged).
//   - Stage 4: Apply ewScaleRows to produce a normalized copy.
//
// Returns:
//   - *Dense: normalized copy; []float64: original norms.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Produces row-stochastic matrices for Markov chains from raw counts.
func normalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	var i, j int
	var s, v float64
	var err error
	d, isDense := X.(*Dense)
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if isDense {
				v = d.data[i*c+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
			}
			s += math.Abs(v)
		}
		norms[i] = s
	}

	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0 // preserves the row exactly
		}
	}

	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	return Y, norms, nil
}
