// SPDX-License-Identifier: MIT

package converters

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/mincut/core"
)

// ErrNilGraph indicates a nil input graph.
var ErrNilGraph = errors.New("converters: graph is nil")

// absentWeight is reported by the gonum graph for vertex pairs without an edge;
// for cut computations a missing edge contributes nothing.
const absentWeight = 0

// ToGonum copies g into a gonum weighted undirected graph. Node i corresponds to
// the i-th vertex of g.Vertices(); the returned map goes from node ID back to label.
//
// Complexity: O(V log V + E log E).
func ToGonum[T comparable](g *core.WeightedGraph[T]) (*simple.WeightedUndirectedGraph, map[int64]T, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	out := simple.NewWeightedUndirectedGraph(0, absentWeight)
	vs := g.Vertices()
	labels := make(map[int64]T, len(vs))
	ids := make(map[T]int64, len(vs))
	for i, v := range vs {
		id := int64(i)
		out.AddNode(simple.Node(id))
		labels[id] = v
		ids[v] = id
	}
	for _, e := range g.Edges() {
		out.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(ids[e.From]),
			T: simple.Node(ids[e.To]),
			W: e.Weight,
		})
	}

	return out, labels, nil
}

// FromGonum copies a gonum weighted undirected graph into a core graph keyed by
// node ID. Vertices are added in ascending ID order and edges in ascending
// (lower ID, higher ID) order, so the result does not depend on gonum's map order.
//
// Errors: ErrNilGraph, or a wrapped core error for weights core rejects (NaN, ±Inf).
func FromGonum(wg graph.WeightedUndirected, opts ...core.GraphOption) (*core.WeightedGraph[int64], error) {
	if wg == nil {
		return nil, ErrNilGraph
	}

	nodes := sortedIDs(graph.NodesOf(wg.Nodes()))
	g := core.NewWeightedGraph[int64](opts...)
	for _, id := range nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, errors.Wrapf(err, "converters: node %d", id)
		}
	}
	for _, u := range nodes {
		for _, v := range sortedIDs(graph.NodesOf(wg.From(u))) {
			if v <= u {
				continue
			}
			w := wg.WeightedEdgeBetween(u, v).Weight()
			if err := g.AddEdge(u, v, w); err != nil {
				return nil, errors.Wrapf(err, "converters: edge %d--%d", u, v)
			}
		}
	}

	return g, nil
}

// Components returns the connected components of g as computed by gonum's
// topo.ConnectedComponents. Each component lists labels in insertion order and
// components are ordered by their first vertex.
func Components[T comparable](g *core.WeightedGraph[T]) ([][]T, error) {
	wg, labels, err := ToGonum(g)
	if err != nil {
		return nil, err
	}

	ccs := topo.ConnectedComponents(wg)
	byID := make([][]int64, len(ccs))
	for i, cc := range ccs {
		byID[i] = sortedIDs(cc)
	}
	// node IDs follow insertion order, so ordering by the smallest ID orders by first vertex
	sort.Slice(byID, func(i, j int) bool { return byID[i][0] < byID[j][0] })

	out := make([][]T, len(byID))
	for i, ids := range byID {
		comp := make([]T, len(ids))
		for k, id := range ids {
			comp[k] = labels[id]
		}
		out[i] = comp
	}

	return out, nil
}

// ComponentCount returns the number of connected components of g.
func ComponentCount[T comparable](g *core.WeightedGraph[T]) (int, error) {
	wg, _, err := ToGonum(g)
	if err != nil {
		return 0, err
	}

	return len(topo.ConnectedComponents(wg)), nil
}

func sortedIDs(nodes []graph.Node) []int64 {
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
