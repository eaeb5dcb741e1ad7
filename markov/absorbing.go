// SPDX-License-Identifier: MIT
// Package markov: absorbing-chain detection.

package markov

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvhmm/matrix"
)

// IsAbsorbing reports whether the chain is absorbing: it has at least one
// absorbing state (P[i][i] ≈ 1) and every state can reach one.
//
// Implementation:
//   - Stage 1: validate P.
//   - Stage 2: seed a queue with every absorbing state.
//   - Stage 3: breadth-first search over reversed edges (j → i whenever
//     P[i][j] > 0); every state dequeued can reach an absorbing state.
//
// Errors: shape / ErrNotStochastic as for StateAfter. An invalid matrix is an
// error, not "false".
//
// Complexity: O(n²).
func IsAbsorbing(P matrix.Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	d, err := transitionOf(opIsAbsorbing, P, o.tol)
	if err != nil {
		return false, err
	}
	rows := d.Raw()
	n := len(rows)

	seen := make([]bool, n)
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if scalar.EqualWithinAbsOrRel(rows[i][i], 1, convergenceATol, convergenceRTol) {
			seen[i] = true
			queue = append(queue, i)
		}
	}
	if len(queue) == 0 {
		return false, nil
	}

	count := len(queue)
	var j int
	for len(queue) > 0 {
		j, queue = queue[0], queue[1:]
		for i := 0; i < n; i++ {
			if !seen[i] && rows[i][j] > 0 {
				seen[i] = true
				count++
				queue = append(queue, i)
			}
		}
	}

	return count == n, nil
}
