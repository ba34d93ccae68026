// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_path.go - Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices via cfg.idFn in index order; edges (i-1)--i for i=1..n-1.
//
// Complexity: O(n).
//
// Determinism:
//   - Stable vertex order 0..n-1 and stable edge order i ascending.
//
// Mincut note: the global minimum cut of P_n is its lightest edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		// 1) Validate the vertex count.
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		// 2) Add vertices 0..n-1 via cfg.idFn.
		ids := makeIDs(cfg.idFn, 0, n)
		if err := addVertices(MethodPath, g, ids); err != nil {
			return err
		}

		// 3) Chain consecutive vertices; no wrap-around edge.
		for i := 1; i < n; i++ {
			if err := addEdge(MethodPath, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
