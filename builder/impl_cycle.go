// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_cycle.go - Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices via cfg.idFn in index order 0..n-1.
//   - Edges i--(i+1)%n for i=0..n-1, weights from cfg.weightFn.
//
// Complexity: O(n).
//
// Determinism:
//   - Stable vertex order 0..n-1 and stable edge order i ascending.
//   - Weights are reproducible for a fixed cfg.rng/weightFn.
//
// Mincut note: with constant weight w the global minimum cut of C_n is 2w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	// The closure captures n; BuildGraph supplies (g, cfg).
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		// 1) Validate parameter domain early (no work on invalid input).
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		// 2) Add n vertices with IDs produced by cfg.idFn.
		ids := makeIDs(cfg.idFn, 0, n)
		if err := addVertices(MethodCycle, g, ids); err != nil {
			return err
		}

		// 3) Emit edges in ascending i; for i == n-1 connect back to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		// Cycle fully constructed.
		return nil
	}
}
