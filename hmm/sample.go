// SPDX-License-Identifier: MIT
// Package hmm: drawing synthetic sequences from a Model.

package hmm

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample draws a hidden-state path and the matching observation sequence of
// length T from m's generative process:
//
//	s_0 ~ π, o_t ~ E[s_t,:], s_{t+1} ~ A[s_t,:].
//
// The draw is fully determined by src, so a seeded source reproduces the
// same pair of sequences.
//
// Errors: ErrBadLength (T ≤ 0), ErrNilSource, ErrNotStochastic when a row
// has a negative entry or zero total mass (possible only with
// WithoutStochasticCheck).
func (m *Model) Sample(T int, src rand.Source) (states, obs []int, err error) {
	if T <= 0 {
		return nil, nil, hmmErrorf(opSample, fmt.Errorf("%w: got %d", ErrBadLength, T))
	}
	if src == nil {
		return nil, nil, hmmErrorf(opSample, ErrNilSource)
	}

	var start distuv.Categorical
	if start, err = categorical(m.p.pi, src); err != nil {
		return nil, nil, hmmErrorf(opSample, fmt.Errorf("initial: %w", err))
	}
	next := make([]distuv.Categorical, m.p.n)
	emit := make([]distuv.Categorical, m.p.n)
	for i := 0; i < m.p.n; i++ {
		if next[i], err = categorical(m.p.a[i], src); err != nil {
			return nil, nil, hmmErrorf(opSample, fmt.Errorf("transition row %d: %w", i, err))
		}
		if emit[i], err = categorical(m.p.e[i], src); err != nil {
			return nil, nil, hmmErrorf(opSample, fmt.Errorf("emission row %d: %w", i, err))
		}
	}

	states = make([]int, T)
	obs = make([]int, T)
	states[0] = int(start.Rand())
	for t := 0; t < T; t++ {
		obs[t] = int(emit[states[t]].Rand())
		if t+1 < T {
			states[t+1] = int(next[states[t]].Rand())
		}
	}

	return states, obs, nil
}

// categorical wraps distuv.NewCategorical, rejecting rows it would panic on
// (negative weights) or that carry no mass.
func categorical(w []float64, src rand.Source) (distuv.Categorical, error) {
	if floats.Min(w) < 0 || floats.Sum(w) <= 0 {
		return distuv.Categorical{}, ErrNotStochastic
	}

	return distuv.NewCategorical(w, src), nil
}
