// SPDX-License-Identifier: MIT

package flow

import (
	"context"

	"github.com/katalvlaran/mincut/core"
)

// GlobalMinCut finds a global minimum cut by fixing the first vertex as the
// source and taking the lightest MinSTCut over every other vertex as sink.
// Any global cut separates the fixed source from some sink, so the minimum
// over all sinks is the global minimum. Ties keep the earliest sink.
//
// Complexity: O(V · V·E²). Intended as an independent cross-check of
// faster global algorithms, not as a production solver.
func GlobalMinCut[T comparable](ctx context.Context, g *core.WeightedGraph[T], opts *FlowOptions) (STCut[T], error) {
	if g == nil {
		return STCut[T]{}, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) < 2 {
		return STCut[T]{}, ErrTooFewVertices
	}

	var best STCut[T]
	for i, t := range vs[1:] {
		cut, err := MinSTCut(ctx, g, vs[0], t, opts)
		if err != nil {
			return STCut[T]{}, err
		}
		if i == 0 || cut.Value < best.Value {
			best = cut
		}
	}

	return best, nil
}
