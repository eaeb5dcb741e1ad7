// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// DenseOf returns a private *Dense copy of any Matrix.
// A *Dense input is cloned (same numeric policy); other implementations are
// read through At and written through Set under the default policy, so a
// NaN/Inf entry surfaces as ErrNaNInf.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf, errors from m.At.
// Complexity: O(r*c).
func DenseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("DenseOf", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("DenseOf", err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("DenseOf", err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf("DenseOf", err)
			}
		}
	}

	return out, nil
}

// ---------- Reductions & normalization ----------

// NormalizeRowsL1 returns Y where each row i is scaled to L1-norm = 1 (if possible).
// Degenerate rows (norm==0) are left unchanged. Also returns the norms per row.
//
// AI-Hints: produce row-stochastic matrices for Markov chains.
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) { return normalizeRowsL1(X) }
