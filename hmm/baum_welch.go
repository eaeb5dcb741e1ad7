// SPDX-License-Identifier: MIT
// Package hmm: Baum-Welch (EM) re-estimation of Transition and Emission.
//
// Purpose:
//   - Fit A and E to one observation sequence by repeated forward/backward
//     passes. The initial distribution π is held fixed.
//
// Policy for never-occupied states:
//   - If Σ_{t<T−1} γ[i][t] = 0 the Transition row i is kept unchanged.
//   - If Σ_t γ[i][t] = 0 the Emission row i is kept unchanged.
//     Every re-estimated row therefore still sums to 1.
//
// Concurrency:
//   - Each iteration reads one params value and builds a brand-new one; the
//     previous set is never written, so a reader holding it sees no partial
//     update.

package hmm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// BaumWelch runs iterations EM steps from (transition, emission) with the
// fixed initial distribution and returns the re-estimated Transition (N×N)
// and Emission (N×M).
//
// Inputs:
//   - obs: symbols in [0, M), len T ≥ 1.
//   - iterations ≥ 0. Zero returns validated copies of the inputs.
//
// Options:
//   - WithConvergence(tol): stop once |Δ log P| < tol (disabled by default).
//   - WithOnIteration(fn): observe each iteration's log-likelihood.
//
// Errors:
//   - validation sentinels (shape/domain) before any iteration runs.
//   - ErrBadIterations for iterations < 0.
//   - ErrZeroLikelihood when P(obs) is zero under the current model.
//
// Complexity:
//   - Time O(iterations·T·N·(N+M)), Space O(T·N + N² + N·M).
func BaumWelch(obs []int, transition, emission, initial matrix.Matrix, iterations int, opts ...Option) (*matrix.Dense, *matrix.Dense, error) {
	o := gatherOptions(opts...)
	p, err := prepare(opBaumWelch, obs, transition, emission, initial, o)
	if err != nil {
		return nil, nil, err
	}
	fitted, _, err := p.train(opBaumWelch, obs, iterations, o)
	if err != nil {
		return nil, nil, err
	}

	return fitted.trans, fitted.emit, nil
}

// train is the EM loop shared by BaumWelch and (*Model).Fit.
//
// IterationStats.LogLikelihood is log P(obs) under the model that entered the
// iteration; EM guarantees the sequence is non-decreasing.
func (p *params) train(op string, obs []int, iterations int, o Options) (*params, *TrainingReport, error) {
	if iterations < 0 {
		return nil, nil, hmmErrorf(op, fmt.Errorf("%w: got %d", ErrBadIterations, iterations))
	}

	report := &TrainingReport{LogLikelihoods: make([]float64, 0, iterations)}
	cur := p
	prev := math.Inf(-1)
	for it := 1; it <= iterations; it++ {
		next, prob, err := cur.reestimate(obs)
		if err != nil {
			return nil, nil, hmmErrorf(op, fmt.Errorf("iteration %d: %w", it, err))
		}

		ll := math.Log(prob)
		delta := ll - prev // +Inf on the first iteration
		prev = ll
		report.Iterations = it
		report.LogLikelihoods = append(report.LogLikelihoods, ll)
		if o.onIteration != nil {
			o.onIteration(IterationStats{Iteration: it, LogLikelihood: ll, Delta: delta})
		}

		cur = next
		if o.convergenceTol > 0 && it > 1 && math.Abs(delta) < o.convergenceTol {
			report.Converged = true
			break
		}
	}

	return cur, report, nil
}

// reestimate performs one E-step + M-step and returns the new parameter set
// together with P(obs) under p.
//
// Implementation:
//   - Stage 1: forward/backward columns, P = Σ F[:,T−1].
//   - Stage 2: γ columns and the time-summed ξ (never materialized per t).
//   - Stage 3: normalize numerators row by row, keeping unoccupied rows.
func (p *params) reestimate(obs []int) (*params, float64, error) {
	T, n := len(obs), p.n

	// Stage 1: E-step lattices.
	fc := p.forward(obs)
	prob := floats.Sum(fc[T-1])
	if !usable(prob) {
		return nil, 0, ErrZeroLikelihood
	}
	bc := p.backward(obs)
	g := p.gamma(fc, bc, prob)

	// Stage 2: accumulate occupancy statistics.
	xi := make([][]float64, n)      // Σ_t ξ[i][j][t]
	emitNum := make([][]float64, n) // Σ_{t: o_t = k} γ[i][t]
	for i := 0; i < n; i++ {
		xi[i] = make([]float64, n)
		emitNum[i] = make([]float64, p.m)
	}
	gammaHead := make([]float64, n) // Σ_{t<T−1} γ[i][t]
	w := make([]float64, n)
	var i, j int
	var fi float64
	for t := 0; t < T-1; t++ {
		floats.MulTo(w, p.emitCol[obs[t+1]], bc[t+1])
		for i = 0; i < n; i++ {
			fi = fc[t][i] / prob
			if fi == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				xi[i][j] += fi * p.a[i][j] * w[j]
			}
		}
		floats.Add(gammaHead, g[t])
	}
	gammaAll := floats.AddTo(make([]float64, n), gammaHead, g[T-1])
	for t := 0; t < T; t++ {
		for i = 0; i < n; i++ {
			emitNum[i][obs[t]] += g[t][i]
		}
	}

	// Stage 3: M-step.
	next, err := fromRows(
		normalizeRows(xi, gammaHead, p.a),
		normalizeRows(emitNum, gammaAll, p.e),
		p.pi,
	)
	if err != nil {
		return nil, 0, err
	}

	return next, prob, nil
}

// normalizeRows divides num[i] by den[i] in place; rows with a zero
// denominator are replaced by a copy of fallback[i].
func normalizeRows(num [][]float64, den []float64, fallback [][]float64) [][]float64 {
	for i := range num {
		if den[i] == 0 {
			copy(num[i], fallback[i])
			continue
		}
		floats.Scale(1/den[i], num[i])
	}

	return num
}
