// SPDX-License-Identifier: MIT

// Package hmm: functional configuration for validation and training.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Defaults reproduce the plain algorithms: full iteration budget, no early stop.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package hmm

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the allowed |row sum − 1| for Transition, Emission and
	// Initial when stochastic checks are enabled.
	DefaultTolerance = 1e-6

	// DefaultCheckStochastic enables the row-stochastic precondition check.
	DefaultCheckStochastic = true

	// DefaultConvergenceTol disables the early stop: Baum-Welch runs the full budget.
	DefaultConvergenceTol = 0.0
)

// Panic messages (stable, grep-able).
const (
	panicToleranceInvalid   = "hmm: WithTolerance requires a finite, non-negative tolerance"
	panicConvergenceInvalid = "hmm: WithConvergence requires a finite, non-negative tolerance"
)

// Option mutates Options during a call.
type Option func(*Options)

// Options holds the effective configuration of one call.
// Fields are unexported; public entry points consume ...Option.
type Options struct {
	tol             float64              // stochastic row tolerance
	checkStochastic bool                 // validate probability rows on entry
	convergenceTol  float64              // early-stop threshold on |Δ log-likelihood|; 0 = off
	onIteration     func(IterationStats) // optional progress hook
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		tol:             DefaultTolerance,
		checkStochastic: DefaultCheckStochastic,
		convergenceTol:  DefaultConvergenceTol,
	}
}

// WithTolerance sets the allowed deviation of probability rows from 1.
// Panics when tol is negative, NaN or ±Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithoutStochasticCheck skips the row-sum/non-negativity precondition.
// Shape, symbol-range and finiteness checks still run.
func WithoutStochasticCheck() Option {
	return func(o *Options) { o.checkStochastic = false }
}

// WithConvergence enables the Baum-Welch early stop: training ends once
// |log P_k − log P_{k−1}| < tol. tol = 0 keeps the full iteration budget.
// Panics when tol is negative, NaN or ±Inf.
func WithConvergence(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicConvergenceInvalid)
	}

	return func(o *Options) { o.convergenceTol = tol }
}

// WithOnIteration installs a hook called once per completed Baum-Welch
// iteration, synchronously, on the calling goroutine.
func WithOnIteration(fn func(IterationStats)) Option {
	return func(o *Options) { o.onIteration = fn }
}

// Tolerance reports the effective stochastic tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// ChecksStochastic reports whether probability rows are validated on entry.
func (o Options) ChecksStochastic() bool { return o.checkStochastic }

// ConvergenceTol reports the early-stop threshold (0 = disabled).
func (o Options) ConvergenceTol() float64 { return o.convergenceTol }

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
