// SPDX-License-Identifier: MIT
// Package hmm: the Viterbi decoder.

package hmm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Viterbi returns the single most probable hidden-state path for obs and the
// joint probability of that path with the observations.
//
// Implementation:
//   - Stage 1: validate everything once.
//   - Stage 2: V[:,0] = π ⊙ E[:,o_0].
//   - Stage 3: for each t ≥ 1 and destination j:
//     bp[j][t] = argmax_i V[i][t−1]·A[i][j], V[j][t] = max(...)·E[j][o_t].
//   - Stage 4: path[T−1] = argmax_i V[i][T−1]; backtrack through bp.
//
// Determinism:
//   - Every argmax breaks ties toward the lowest state index (floats.MaxIdx
//     returns the first maximum).
//
// Returns:
//   - path of length T with entries in [0, N), and P ≤ Forward's P.
//
// Complexity:
//   - Time O(T·N²), Space O(T·N).
func Viterbi(obs []int, emission, transition, initial matrix.Matrix, opts ...Option) ([]int, float64, error) {
	o := gatherOptions(opts...)
	p, err := prepare(opViterbi, obs, transition, emission, initial, o)
	if err != nil {
		return nil, 0, err
	}
	path, prob := p.viterbi(obs)

	return path, prob, nil
}

// viterbi runs the max-product recursion on validated input.
func (p *params) viterbi(obs []int) ([]int, float64) {
	T, n := len(obs), p.n

	v := make([][]float64, T)
	bp := make([][]int, T)
	v[0] = floats.MulTo(make([]float64, n), p.pi, p.emitCol[obs[0]])

	cand := make([]float64, n) // cand[i] = V[i][t−1]·A[i][j]
	var i, j, best int
	for t := 1; t < T; t++ {
		v[t] = make([]float64, n)
		bp[t] = make([]int, n)
		for j = 0; j < n; j++ {
			for i = 0; i < n; i++ {
				cand[i] = v[t-1][i] * p.a[i][j]
			}
			best = floats.MaxIdx(cand)
			bp[t][j] = best
			v[t][j] = cand[best] * p.e[j][obs[t]]
		}
	}

	path := make([]int, T)
	path[T-1] = floats.MaxIdx(v[T-1])
	prob := v[T-1][path[T-1]]
	for t := T - 2; t >= 0; t-- {
		path[t] = bp[t+1][path[t+1]]
	}

	return path, prob
}
