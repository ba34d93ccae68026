// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_wheel.go - Wheel(n) = Cycle(n-1) + "Center".
//
// Contract:
//   - n ≥ 4 (the rim must be a valid cycle), else ErrTooFewVertices.
//   - Rim built by Cycle(n-1) with the same cfg; spokes Center--rim[i] in index order.
//
// Complexity: O(n).
//
// Determinism:
//   - Rim vertices and edges first (as Cycle), then the hub, then spokes in rim order.
//
// Mincut note: with constant weight w every rim vertex has degree 3w, which is the minimum cut.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Wheel returns a Constructor that builds W_n.
func Wheel(n int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		// 1) Validate: the rim C_{n-1} needs at least 3 vertices.
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		// 2) Reuse Cycle for the rim so IDs and weights follow the same cfg.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}

		// 3) Add the hub after the rim.
		if err := addVertices(MethodWheel, g, []string{CenterVertexID}); err != nil {
			return err
		}

		// 4) One spoke per rim vertex, regenerating the rim IDs in the same order.
		for _, rim := range makeIDs(cfg.idFn, 0, n-1) {
			if err := addEdge(MethodWheel, g, cfg, CenterVertexID, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
