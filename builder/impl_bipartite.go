// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2).
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left vertices leftPrefix+0.., then right vertices rightPrefix+0..
//   - Edges left[i]--right[j] in (i, j) lexicographic order.
//
// Complexity: O(n1·n2).
//
// Determinism:
//   - All left vertices precede all right vertices; edges follow (i, j) order.
//
// Mincut note: with constant weight w the minimum cut of K_{n1,n2} is min(n1,n2)·w.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		// 1) Validate both partition sizes.
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}

		// 2) Partition IDs come from the configured prefixes, not cfg.idFn.
		left := prefixedIDs(cfg.leftPrefix, n1)
		right := prefixedIDs(cfg.rightPrefix, n2)

		// 3) Insert the left side, then the right side.
		if err := addVertices(MethodCompleteBipartite, g, left); err != nil {
			return err
		}
		if err := addVertices(MethodCompleteBipartite, g, right); err != nil {
			return err
		}

		// 4) Cross edges only; no edges inside a partition.
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(MethodCompleteBipartite, g, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
