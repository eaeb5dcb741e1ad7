// SPDX-License-Identifier: MIT
// Package markov: maximum-likelihood estimation from observed state paths.

package markov

import (
	"fmt"

	"github.com/katalvlaran/lvhmm/matrix"
)

const opEstimate = "Estimate"

// Estimate fits an n-state transition matrix to fully observed state
// sequences: P[i][j] = count(i→j) / count(i→·).
//
// Implementation:
//   - Stage 1: tally transitions inside each sequence (never across two).
//   - Stage 2: NormalizeRowsL1 turns counts into probabilities.
//   - Stage 3: a state that is never left gets a self-loop, so the result
//     is always row-stochastic.
//
// Errors:
//   - matrix.ErrInvalidDimensions for n < 1.
//   - ErrStateOutOfRange when a sequence holds a state outside [0, n).
//
// Complexity: O(n² + Σ len(seq)).
//
// AI-Hints:
//   - Decoded Viterbi paths of a trained HMM are valid input; the result is
//     the "hard EM" counterpart of Baum-Welch's transition update.
func Estimate(seqs [][]int, n int) (*matrix.Dense, error) {
	counts, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, markovErrorf(opEstimate, err)
	}
	raw := counts.Raw()

	for k, seq := range seqs {
		for t, s := range seq {
			if s < 0 || s >= n {
				return nil, markovErrorf(opEstimate,
					fmt.Errorf("%w: sequence %d position %d holds %d (n=%d)", ErrStateOutOfRange, k, t, s, n))
			}
			if t > 0 {
				raw[seq[t-1]][s]++
			}
		}
	}
	if counts, err = matrix.NewDenseFrom(raw); err != nil {
		return nil, markovErrorf(opEstimate, err)
	}

	P, norms, err := matrix.NormalizeRowsL1(counts)
	if err != nil {
		return nil, markovErrorf(opEstimate, err)
	}
	for i, mass := range norms {
		if mass == 0 {
			if err = P.Set(i, i, 1); err != nil {
				return nil, markovErrorf(opEstimate, err)
			}
		}
	}

	return P, nil
}
