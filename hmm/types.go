// SPDX-License-Identifier: MIT
package hmm

// IterationStats describes one completed Baum-Welch iteration.
//
// Fields:
//   - Iteration     : 1-based iteration index.
//   - LogLikelihood : log P(obs) under the model that entered this iteration
//     (the one the E-step ran on); -Inf never appears because a zero
//     likelihood aborts training with ErrZeroLikelihood.
//   - Delta         : LogLikelihood minus the previous iteration's value;
//     +Inf on the first iteration.
type IterationStats struct {
	Iteration     int
	LogLikelihood float64
	Delta         float64
}

// TrainingReport summarizes a Fit call.
//
// LogLikelihoods[k] is log P(obs) under the model entering iteration k+1, so
// the sequence is non-decreasing up to floating-point noise (EM monotonicity).
// Converged is true only when the WithConvergence early stop fired.
type TrainingReport struct {
	Iterations     int
	LogLikelihoods []float64
	Converged      bool
}
