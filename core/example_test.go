// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// ExampleWeightedGraph builds a small graph and inspects it.
func ExampleWeightedGraph() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "C", 3)
	_ = g.AddEdge("C", "A", 1)

	fmt.Println(g.Vertices())
	for _, e := range g.Edges() {
		fmt.Println(e.ID, e)
	}
	wd, _ := g.WeightedDegree("B")
	fmt.Println("w(B) =", wd)
	// Output:
	// [A B C]
	// e1 Edge[A -- B, 2]
	// e2 Edge[B -- C, 3]
	// e3 Edge[A -- C, 1]
	// w(B) = 5
}

// ExampleWithParallelEdges shows multigraph-style summing of repeated edges.
func ExampleWithParallelEdges() {
	g := core.NewWeightedGraph[int](core.WithParallelEdges(core.ParallelSum))
	_ = g.AddEdge(1, 2, 1.5)
	_ = g.AddEdge(2, 1, 2.5)

	e, _ := g.Edge(1, 2)
	fmt.Println(g.EdgeCount(), e.Weight)
	// Output: 1 4
}

// ExampleWeightedGraph_CrossingEdges lists the edges cut by a partition.
func ExampleWeightedGraph_CrossingEdges() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddEdge("a", "b", 4)
	_ = g.AddEdge("b", "c", 1)
	_ = g.AddEdge("c", "d", 4)

	left := func(v string) bool { return v == "a" || v == "b" }
	fmt.Println(g.CrossingEdges(left))
	// Output: [Edge[b -- c, 1]]
}
