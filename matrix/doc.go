// Package matrix offers the dense linear-algebra primitives used by the
// probabilistic models in this module.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Kernels: Mul, MatVec (m·x), VecMat (xᵀ·m), Hadamard, Transpose, Scale.
//   - Reductions: NormalizeRowsL1, AllCloseVec.
//   - Validators: ValidateSquare, ValidateSameShape, ValidateRowStochastic,
//     ValidateProbabilityVector and friends, returning sentinel errors.
//
// Every kernel allocates its result and never mutates its operands, so a
// *Dense handed to several readers stays safe to share.
//
// See the examples in this package and in hmm/markov for usage patterns.
package matrix
