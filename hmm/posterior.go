// SPDX-License-Identifier: MIT
// Package hmm: posterior state occupancy (gamma).

package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Posterior returns the smoothed state-occupancy lattice G (N×T):
// G[i][t] = P(state_t = i | obs) = F[i][t]·B[i][t] / P.
//
// Every column of G sums to 1 up to rounding. This is the same statistic
// Baum-Welch uses for re-estimation.
//
// Errors:
//   - validation sentinels as for Forward.
//   - ErrZeroLikelihood when P(obs) is zero or subnormal (impossible sequence
//     or underflow).
//
// Complexity:
//   - Time O(T·N²), Space O(T·N).
func Posterior(obs []int, emission, transition, initial matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	p, err := prepare(opPosterior, obs, transition, emission, initial, o)
	if err != nil {
		return nil, err
	}

	return p.posterior(opPosterior, obs)
}

// posterior is Posterior on validated input: G = (F ⊙ B) / P.
func (p *params) posterior(op string, obs []int) (*matrix.Dense, error) {
	fc := p.forward(obs)
	prob := floats.Sum(fc[len(fc)-1])
	if !usable(prob) {
		return nil, hmmErrorf(op, ErrZeroLikelihood)
	}
	F, err := lattice(fc)
	if err != nil {
		return nil, hmmErrorf(op, err)
	}
	B, err := lattice(p.backward(obs))
	if err != nil {
		return nil, hmmErrorf(op, err)
	}
	fb, err := matrix.Hadamard(F, B)
	if err != nil {
		return nil, hmmErrorf(op, err)
	}
	g, err := matrix.Scale(fb, 1/prob)
	if err != nil {
		return nil, hmmErrorf(op, err)
	}

	return g, nil
}

// gamma is the column form of posterior used by re-estimation:
// g[t] = (f[t] ⊙ b[t]) / prob.
func (p *params) gamma(fc, bc [][]float64, prob float64) [][]float64 {
	g := make([][]float64, len(fc))
	for t := range fc {
		g[t] = floats.MulTo(make([]float64, p.n), fc[t], bc[t])
		floats.Scale(1/prob, g[t])
	}

	return g
}

// usable reports whether a likelihood can serve as a divisor: positive,
// finite, and large enough that 1/prob is finite (a subnormal P is not).
func usable(prob float64) bool {
	return prob > 0 && !math.IsInf(prob, 0) && !math.IsInf(1/prob, 0)
}
