// Package hmm implements inference and learning for discrete hidden Markov
// models: Forward, Backward, Viterbi and Baum-Welch.
//
// 🚀 What is an HMM?
//
//	A hidden Markov model has N hidden states that evolve as a Markov chain
//	(Transition A, N×N, initial distribution π, N×1) and emit one of M
//	symbols per step (Emission E, N×M). Only the symbols are observed.
//	Typical uses:
//	  • decoding regimes or weather from indirect evidence
//	  • part-of-speech style tagging
//	  • smoothing noisy categorical sensor streams
//
// ✨ Key features:
//   - Forward / Backward: P(obs) plus the full N×T lattices
//   - Viterbi: most probable state path, ties broken toward the lowest index
//   - Posterior: per-step state occupancy γ (N×T)
//   - BaumWelch: EM re-estimation of A and E with a fixed π, optional early
//     stop (WithConvergence) and a progress hook (WithOnIteration)
//   - Model: validate once, then decode, score, Fit and Sample
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvhmm/hmm"
//
//	a, _ := matrix.NewDenseFrom([][]float64{{0.7, 0.3}, {0.4, 0.6}})
//	e, _ := matrix.NewDenseFrom([][]float64{{0.9, 0.1}, {0.2, 0.8}})
//	pi, _ := matrix.NewColumn([]float64{0.6, 0.4})
//
//	p, f, err := hmm.Forward([]int{0, 1, 0}, e, a, pi)
//	path, vp, err := hmm.Viterbi([]int{0, 1, 0}, e, a, pi)
//	a2, e2, err := hmm.BaumWelch(obs, a, e, pi, 50, hmm.WithConvergence(1e-9))
//
// Errors:
//
//	All input is validated before any lattice is built. Shape problems match
//	ErrShape; domain problems use ErrEmptyObservations, ErrSymbolOutOfRange,
//	ErrNotStochastic and ErrNaNInf; a zero likelihood during training is
//	ErrZeroLikelihood. A never-occupied state keeps its old row.
//
// Precision:
//
//	Probabilities are plain (unscaled) float64 values, so P(obs) underflows
//	to zero for long sequences (roughly T in the hundreds for small
//	emission probabilities). Posterior and training on such a sequence,
//	including one whose P is subnormal, report ErrZeroLikelihood instead of
//	producing Inf or NaN rows.
//
// Performance:
//
//   - Forward, Backward, Viterbi, Posterior: O(T·N²) time, O(T·N) memory
//   - one Baum-Welch iteration: O(T·N·(N+M)) time
//
// See example_test.go for runnable walkthroughs.
package hmm
