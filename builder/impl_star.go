// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_star.go - Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub "Center" first, then leaves cfg.idFn(1..n-1), each with one spoke.
//
// Complexity: O(n).
//
// Determinism:
//   - The hub is always inserted first; spokes follow leaf index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Star returns a Constructor that builds a star with hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		// 1) Validate: a star needs the hub plus at least one leaf.
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		// 2) Insert the hub with its fixed ID.
		if err := addVertices(MethodStar, g, []string{CenterVertexID}); err != nil {
			return err
		}

		// 3) Leaves use indices 1..n-1 so idFn(0) never collides with the hub slot.
		//    AddEdge creates each leaf on first use.
		for _, leaf := range makeIDs(cfg.idFn, 1, n-1) {
			if err := addEdge(MethodStar, g, cfg, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
