// SPDX-License-Identifier: MIT
// Package hmm: the backward algorithm.

package hmm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Backward computes the total probability of obs and the backward lattice
// B (N×T), where B[i][t] = P(o_{t+1}..o_{T−1} | state_t = i) and B[i][T−1] = 1.
//
// Implementation:
//   - Stage 1: validate everything once.
//   - Stage 2: B[:,T−1] = 1.
//   - Stage 3: B[:,t] = A·(E[:,o_{t+1}] ⊙ B[:,t+1]) via matrix.MatVec, t = T−2..0.
//   - Stage 4: P = Σ_i π_i·E[i][o_0]·B[i][0].
//
// The returned P equals Forward's P up to floating-point rounding.
//
// Complexity:
//   - Time O(T·N²), Space O(T·N).
func Backward(obs []int, emission, transition, initial matrix.Matrix, opts ...Option) (float64, *matrix.Dense, error) {
	o := gatherOptions(opts...)
	p, err := prepare(opBackward, obs, transition, emission, initial, o)
	if err != nil {
		return 0, nil, err
	}

	cols := p.backward(obs)
	b, err := lattice(cols)
	if err != nil {
		return 0, nil, hmmErrorf(opBackward, err)
	}

	return p.backwardProb(obs, cols[0]), b, nil
}

// backward returns the lattice column by column: cols[t][i] = B[i][t].
func (p *params) backward(obs []int) [][]float64 {
	T := len(obs)
	cols := make([][]float64, T)

	last := make([]float64, p.n)
	for i := range last {
		last[i] = 1
	}
	cols[T-1] = last

	weighted := make([]float64, p.n)
	for t := T - 2; t >= 0; t-- {
		floats.MulTo(weighted, p.emitCol[obs[t+1]], cols[t+1])
		cols[t], _ = matrix.MatVec(p.trans, weighted)
	}

	return cols
}

// backwardProb closes the recursion: P = Σ_i π_i·E[i][o_0]·B[i][0].
func (p *params) backwardProb(obs []int, b0 []float64) float64 {
	head := floats.MulTo(make([]float64, p.n), p.pi, p.emitCol[obs[0]])

	return floats.Dot(head, b0)
}
