// SPDX-License-Identifier: MIT
// Package matrix: element-wise micro-kernels (ew*).
//
// Purpose:
//   - Centralize tight loops reused by statistics and facades.
//   - Keep a Dense fast-path and a generic At/Set fallback with identical order.

package matrix

import "math"

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewScaleRows(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != r {
		return nil, matrixErrorf("scaleRows", ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			sf := scale[i]
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		sf := scale[i]
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("scaleRows", e)
			}
			out.data[i*c+j] = v * sf
		}
	}

	return out, nil
}

// closeScalar is the scalar relation behind AllCloseVec:
// NaN != anything; equal infinities compare equal.
func closeScalar(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// AllCloseVec checks element-wise |a-b| ≤ atol + rtol*|b|.
// Errors: ErrNaNInf on bad tolerances, ErrDimensionMismatch on length mismatch.
func AllCloseVec(a, b []float64, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllCloseVec", ErrNaNInf)
	}
	if len(a) != len(b) {
		return false, matrixErrorf("AllCloseVec", ErrDimensionMismatch)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range a {
		if !closeScalar(a[i], b[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}
