// SPDX-License-Identifier: MIT

package loader

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mincut/core"
)

// SampleAdjacency is a 15-vertex, 33-edge adjacency text. Its minimum cut
// removes three edges and splits the vertices 9/6.
const SampleAdjacency = `jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr`

// weightedPair is one edge of a built-in graph.
type weightedPair struct {
	from, to int
	weight   float64
}

// articleEdges lists the textbook 8-vertex example in insertion order.
var articleEdges = []weightedPair{
	{1, 2, 2}, {1, 5, 3}, {5, 6, 3}, {5, 2, 2},
	{2, 6, 2}, {2, 3, 3}, {6, 7, 1}, {3, 7, 2},
	{3, 4, 4}, {7, 4, 2}, {7, 8, 3}, {4, 8, 2},
}

// Article returns the 8-vertex graph used in the Stoer-Wagner paper. Its minimum
// cut has weight 4 and separates {1,2,5,6} from {3,4,7,8}.
// Panics if the built-in edge table is invalid, like participle.MustBuild.
func Article() *core.WeightedGraph[int] {
	g, err := buildPairs(articleEdges)
	if err != nil {
		panic(err)
	}

	return g
}

// buildPairs inserts pairs in order into a fresh graph.
func buildPairs(pairs []weightedPair) (*core.WeightedGraph[int], error) {
	g := core.NewWeightedGraph[int]()
	for _, p := range pairs {
		if err := g.AddEdge(p.from, p.to, p.weight); err != nil {
			return nil, errors.Wrapf(err, "loader: built-in edge %d--%d", p.from, p.to)
		}
	}

	return g, nil
}
