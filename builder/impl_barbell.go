// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_barbell.go - Barbell(k, bridge): two K_k cliques joined by one bridge edge.
//
// Contract:
//   - k ≥ 2 (else ErrTooFewVertices).
//   - bridge must be finite and ≥ 0 (else ErrConstructFailed).
//   - Left clique leftPrefix+0..k-1, right clique rightPrefix+0..k-1,
//     clique edges weighted by cfg.weightFn, then the bridge
//     leftPrefix+(k-1) - rightPrefix+0 with weight bridge.
//
// Complexity: O(k²).
//
// Determinism:
//   - Left clique (vertices then edges), right clique, then the bridge.
// Mincut note: with constant clique weight w and bridge < (k-1)w the bridge
// is the unique minimum cut, splitting the two cliques.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mincut/core"
)

// Barbell returns a Constructor that builds two k-cliques joined by a bridge.
func Barbell(k int, bridge float64) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		// 1) Validate the clique size and the bridge weight.
		if k < MinBarbellClique {
			return fmt.Errorf("%s: k=%d < min=%d: %w", MethodBarbell, k, MinBarbellClique, ErrTooFewVertices)
		}
		if bridge < 0 || math.IsNaN(bridge) || math.IsInf(bridge, 0) {
			return fmt.Errorf("%s: bridge weight %g: %w", MethodBarbell, bridge, ErrConstructFailed)
		}

		// 2) Each clique is fully built before the next one starts.
		left := prefixedIDs(cfg.leftPrefix, k)
		right := prefixedIDs(cfg.rightPrefix, k)
		for _, side := range [][]string{left, right} {
			if err := addVertices(MethodBarbell, g, side); err != nil {
				return err
			}
			if err := addCompleteEdges(MethodBarbell, g, cfg, side); err != nil {
				return err
			}
		}

		// 3) The bridge carries its own weight, not cfg.weightFn.
		u, v := left[k-1], right[0]
		if err := g.AddEdge(u, v, bridge); err != nil {
			return fmt.Errorf("%s: bridge %s--%s: %w: %w", MethodBarbell, u, v, ErrConstructFailed, err)
		}

		return nil
	}
}
