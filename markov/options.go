// SPDX-License-Identifier: MIT

// Package markov: functional configuration.
// Defaults mirror numpy's isclose/allclose conventions so results match the
// usual textbook checks.
package markov

import "math"

const (
	// DefaultTolerance is the allowed |row sum − 1| of a transition matrix.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations bounds the steady-state power iteration.
	DefaultMaxIterations = 10000

	// Convergence test of successive distributions: |a−b| ≤ atol + rtol·|b|.
	convergenceRTol = 1e-5
	convergenceATol = 1e-8
)

const (
	panicToleranceInvalid  = "markov: WithTolerance requires a finite, non-negative tolerance"
	panicMaxIterationsZero = "markov: WithMaxIterations requires a positive budget"
)

// Option mutates Options during a call.
type Option func(*Options)

// Options holds the effective configuration of one call.
type Options struct {
	tol     float64
	maxIter int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
}

// WithTolerance sets the row-sum tolerance. Panics on negative/NaN/Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the SteadyState iteration budget. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsZero)
	}

	return func(o *Options) { o.maxIter = n }
}

func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
