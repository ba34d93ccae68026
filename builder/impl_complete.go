// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices via cfg.idFn; each pair {i,j}, i<j, emitted once in lexicographic order.
//
// Complexity: O(n²).
//
// Determinism:
//   - Pairs are visited as (0,1), (0,2), ..., (1,2), ...; weights follow that order.
//
// Mincut note: with constant weight w the minimum cut of K_n is (n-1)w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		// 1) Validate; K_1 is a single isolated vertex and is allowed.
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		// 2) Add all vertices up front so isolated K_1 still lands in g.
		ids := makeIDs(cfg.idFn, 0, n)
		if err := addVertices(MethodComplete, g, ids); err != nil {
			return err
		}

		// 3) Link every unordered pair exactly once.
		return addCompleteEdges(MethodComplete, g, cfg, ids)
	}
}
