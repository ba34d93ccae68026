// SPDX-License-Identifier: MIT

package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/flow"
)

// ExampleEdmondsKarp shows max-flow on a two-route network.
//
//	s--a(3)--t(2)
//	s--b(2)--t(3)
//
// Each route is limited by its lighter edge: 2 + 2 = 4.
func ExampleEdmondsKarp() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddEdge("s", "a", 3)
	_ = g.AddEdge("a", "t", 2)
	_ = g.AddEdge("s", "b", 2)
	_ = g.AddEdge("b", "t", 3)

	maxFlow, _ := flow.EdmondsKarp(context.Background(), g, "s", "t", nil)
	fmt.Println(maxFlow)
	// Output:
	// 4
}

// ExampleMinSTCut prints the source side and cut edges of a path.
func ExampleMinSTCut() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddEdge("a", "b", 5)
	_ = g.AddEdge("b", "c", 1)
	_ = g.AddEdge("c", "d", 5)

	cut, _ := flow.MinSTCut(context.Background(), g, "a", "d", nil)
	fmt.Println(cut.Value, cut.SourceSide, cut.CutEdges)
	// Output:
	// 1 [a b] [Edge[b -- c, 1]]
}
