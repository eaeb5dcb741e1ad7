// SPDX-License-Identifier: MIT
// Package hmm: Model, a validated immutable parameter set.

package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvhmm/matrix"
)

// Model is a discrete HMM (Transition N×N, Emission N×M, Initial N×1) that
// was validated once at construction.
//
// A Model is immutable: accessors return copies and Fit returns a new Model.
// It is safe for concurrent use by multiple goroutines.
type Model struct {
	p    *params
	opts Options
}

// NewModel validates and copies the parameters.
// The options (tolerance, stochastic check) are retained for later Fit calls.
//
// Errors: ErrNilMatrix, ErrNonSquareTransition, ErrEmissionShape,
// ErrInitialShape, ErrNaNInf, ErrNotStochastic.
func NewModel(transition, emission, initial matrix.Matrix, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	p, err := newParams(opNewModel, transition, emission, initial, o)
	if err != nil {
		return nil, err
	}

	return &Model{p: p, opts: o}, nil
}

// States returns N.
func (m *Model) States() int { return m.p.n }

// Symbols returns M.
func (m *Model) Symbols() int { return m.p.m }

// Transition returns a copy of the N×N transition matrix.
func (m *Model) Transition() *matrix.Dense { return m.p.trans.Clone().(*matrix.Dense) }

// Emission returns a copy of the N×M emission matrix.
func (m *Model) Emission() *matrix.Dense { return m.p.emit.Clone().(*matrix.Dense) }

// Initial returns a copy of the N×1 initial distribution.
func (m *Model) Initial() *matrix.Dense {
	col, _ := matrix.NewColumn(m.p.pi)

	return col
}

// Forward is the package-level Forward bound to m.
func (m *Model) Forward(obs []int) (float64, *matrix.Dense, error) {
	if err := m.p.validateObs(opForward, obs); err != nil {
		return 0, nil, err
	}
	cols := m.p.forward(obs)
	f, err := lattice(cols)
	if err != nil {
		return 0, nil, hmmErrorf(opForward, err)
	}

	return floats.Sum(cols[len(cols)-1]), f, nil
}

// Backward is the package-level Backward bound to m.
func (m *Model) Backward(obs []int) (float64, *matrix.Dense, error) {
	if err := m.p.validateObs(opBackward, obs); err != nil {
		return 0, nil, err
	}
	cols := m.p.backward(obs)
	b, err := lattice(cols)
	if err != nil {
		return 0, nil, hmmErrorf(opBackward, err)
	}

	return m.p.backwardProb(obs, cols[0]), b, nil
}

// Viterbi is the package-level Viterbi bound to m.
func (m *Model) Viterbi(obs []int) ([]int, float64, error) {
	if err := m.p.validateObs(opViterbi, obs); err != nil {
		return nil, 0, err
	}
	path, prob := m.p.viterbi(obs)

	return path, prob, nil
}

// Posterior is the package-level Posterior bound to m.
func (m *Model) Posterior(obs []int) (*matrix.Dense, error) {
	if err := m.p.validateObs(opPosterior, obs); err != nil {
		return nil, err
	}

	return m.p.posterior(opPosterior, obs)
}

// LogLikelihood returns log P(obs). An impossible sequence yields -Inf
// without error.
func (m *Model) LogLikelihood(obs []int) (float64, error) {
	if err := m.p.validateObs(opLikelihood, obs); err != nil {
		return 0, err
	}
	cols := m.p.forward(obs)

	return math.Log(floats.Sum(cols[len(cols)-1])), nil
}

// Fit runs Baum-Welch from m and returns the trained model plus a report of
// per-iteration log-likelihoods. m itself is never modified.
//
// opts are applied on top of the options m was built with.
func (m *Model) Fit(obs []int, iterations int, opts ...Option) (*Model, *TrainingReport, error) {
	if err := m.p.validateObs(opBaumWelch, obs); err != nil {
		return nil, nil, err
	}
	o := m.opts
	for _, set := range opts {
		set(&o)
	}
	p, report, err := m.p.train(opBaumWelch, obs, iterations, o)
	if err != nil {
		return nil, nil, err
	}

	return &Model{p: p, opts: m.opts}, report, nil
}
