// Package lvhmm is a small, dependable toolkit for discrete Hidden Markov
// Models: score a sequence, decode the hidden states behind it, and learn
// the model back from data.
//
// 🚀 What is inside?
//
//	• matrix/ : dense row-major matrices, validators and the few kernels
//	            the recursions need (Mul, MatVec, VecMat, row sums)
//	• hmm/    : Forward, Backward, Viterbi, Posterior and Baum–Welch,
//	            plus a Model type with sampling and early-stopping Fit
//	• markov/ : plain Markov chains (state after t steps, steady state,
//	            absorbing-chain detection)
//
// ✨ Why lvhmm?
//
//   - Deterministic: no hidden randomness, ties resolve to the lowest index
//   - Strict inputs: shapes, finiteness and row-stochasticity are checked
//     before any arithmetic, errors match with errors.Is
//   - Value semantics: caller matrices are never mutated
//
// Conventions:
//
//	A (transition) N×N, row i = "from state i"
//	E (emission)   N×M, row i = distribution over symbols in state i
//	π (initial)    N×1 column
//	obs            []int with every symbol in [0, M)
//
// Quick example:
//
//	A, _ := matrix.NewDenseFrom([][]float64{{0.7, 0.3}, {0.4, 0.6}})
//	E, _ := matrix.NewDenseFrom([][]float64{{0.9, 0.1}, {0.2, 0.8}})
//	pi, _ := matrix.NewColumn([]float64{0.6, 0.4})
//	path, p, err := hmm.Viterbi([]int{0, 1, 0}, E, A, pi) // [0 1 0], 0.046656
//
// Runnable programs live under examples/ (weather decoding, die-model
// training).
//
//	go get github.com/katalvlaran/lvhmm
package lvhmm
