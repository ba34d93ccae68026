// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_grid.go - Grid(rows, cols), 4-neighborhood.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs "r,c" in row-major order (cfg.idFn is not used).
//   - For each cell in row-major order: right edge, then down edge.
//
// Complexity: O(rows·cols).
//
// Determinism:
//   - Stable vertex order: r ascending, then c ascending.
//   - Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.WeightedGraph[string], cfg builderConfig) error {
		// 1) Validate both dimensions.
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		// 2) Collect coordinate IDs in row-major order and insert them.
		ids := make([]string, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids = append(ids, gridVertexID(r, c))
			}
		}
		if err := addVertices(MethodGrid, g, ids); err != nil {
			return err
		}

		// 3) Emit edges: each cell links to its right and bottom neighbors if they exist.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c) // current cell

				// 3a) Right neighbor (r, c+1).
				if c+1 < cols {
					if err := addEdge(MethodGrid, g, cfg, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}

				// 3b) Bottom neighbor (r+1, c).
				if r+1 < rows {
					if err := addEdge(MethodGrid, g, cfg, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
