// Package markov provides small utilities for finite, discrete-time Markov
// chains given by a row-stochastic transition matrix P.
//
// ✨ Key features:
//   - StateAfter: propagate a distribution t steps (s·Pᵗ)
//   - SteadyState: stationary distribution of a regular chain
//   - IsAbsorbing: absorbing-state reachability check
//   - Estimate: transition matrix from observed state paths
//
// ⚙️ Usage:
//
//	P, _ := matrix.NewDenseFrom([][]float64{{0.9, 0.1}, {0.5, 0.5}})
//	s2, err := markov.StateAfter(P, []float64{1, 0}, 2) // [0.86 0.14]
//	pi, err := markov.SteadyState(P)                    // ≈ [0.8333 0.1667]
//	ok, err := markov.IsAbsorbing(P)                    // false
//
// The hidden-state layer of an HMM is exactly such a chain, so a trained
// hmm.Model's Transition can be fed straight into these helpers.
package markov
