// SPDX-License-Identifier: MIT
// Package hmm: the forward algorithm.

package hmm

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Forward computes the total probability of obs under the model and the full
// forward lattice F (N×T), where F[i][t] = P(o_0..o_t, state_t = i).
//
// Inputs:
//   - obs: symbols in [0, M), len T ≥ 1.
//   - emission: N×M, transition: N×N, initial: N×1.
//
// Implementation:
//   - Stage 1: validate everything once (see params.go).
//   - Stage 2: F[:,0] = π ⊙ E[:,o_0].
//   - Stage 3: F[:,t] = (F[:,t−1]ᵀ·A) ⊙ E[:,o_t] via matrix.VecMat.
//   - Stage 4: P = Σ_i F[i][T−1].
//
// Returns:
//   - P in [0, 1] (plain probabilities, no scaling: long sequences underflow).
//   - F as a fresh N×T *matrix.Dense.
//
// Complexity:
//   - Time O(T·N²), Space O(T·N).
func Forward(obs []int, emission, transition, initial matrix.Matrix, opts ...Option) (float64, *matrix.Dense, error) {
	o := gatherOptions(opts...)
	p, err := prepare(opForward, obs, transition, emission, initial, o)
	if err != nil {
		return 0, nil, err
	}

	cols := p.forward(obs)
	f, err := lattice(cols)
	if err != nil {
		return 0, nil, hmmErrorf(opForward, err)
	}

	return floats.Sum(cols[len(cols)-1]), f, nil
}

// forward returns the lattice column by column: cols[t][i] = F[i][t].
// obs must already be validated against p.
func (p *params) forward(obs []int) [][]float64 {
	cols := make([][]float64, len(obs))
	cols[0] = floats.MulTo(make([]float64, p.n), p.pi, p.emitCol[obs[0]])
	for t := 1; t < len(obs); t++ {
		// VecMat cannot fail: shapes were fixed by validation.
		next, _ := matrix.VecMat(cols[t-1], p.trans)
		floats.Mul(next, p.emitCol[obs[t]])
		cols[t] = next
	}

	return cols
}

// lattice turns T columns of length N into an N×T matrix.
func lattice(cols [][]float64) (*matrix.Dense, error) {
	tn, err := matrix.NewDenseFrom(cols)
	if err != nil {
		return nil, err
	}

	return matrix.Transpose(tn)
}
