// SPDX-License-Identifier: MIT
// Package core_test verifies WeightedGraph method-level contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
)

// TestWeightedGraph_AddRemoveVertex verifies the vertex lifecycle.
func TestWeightedGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewWeightedGraph[string]()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrUndefinedVertex)

	require.NoError(t, g.AddVertex(VertexA))
	require.True(t, g.HasVertex(VertexA))

	// Duplicate AddVertex is a no-op.
	require.NoError(t, g.AddVertex(VertexA))
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(VertexX), core.ErrVertexNotFound)

	require.NoError(t, g.RemoveVertex(VertexA))
	require.False(t, g.HasVertex(VertexA))
	require.Zero(t, g.VertexCount())
}

// TestWeightedGraph_AddEdgeRejects covers every rejection class and checks
// that a failed call leaves the graph untouched.
func TestWeightedGraph_AddEdgeRejects(t *testing.T) {
	g := core.NewWeightedGraph[string]()
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))

	cases := []struct {
		name     string
		from, to string
		w        float64
		want     error
	}{
		{"self-loop", VertexC, VertexC, Weight1, core.ErrLoopNotAllowed},
		{"empty from", VertexEmpty, VertexC, Weight1, core.ErrUndefinedVertex},
		{"empty to", VertexC, VertexEmpty, Weight1, core.ErrUndefinedVertex},
		{"NaN", VertexC, VertexD, math.NaN(), core.ErrBadWeight},
		{"+Inf", VertexC, VertexD, math.Inf(1), core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.from, tc.to, tc.w)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, 2, g.VertexCount(), "failed AddEdge must not add vertices")
			require.Equal(t, 1, g.EdgeCount(), "failed AddEdge must not add edges")
		})
	}
}

// TestWeightedGraph_SelfLoopIsInvalidEdge asserts the InvalidEdge class for loops
// over several labels and weights, including label types other than string.
func TestWeightedGraph_SelfLoopIsInvalidEdge(t *testing.T) {
	gs := core.NewWeightedGraph[string]()
	gi := core.NewWeightedGraph[int]()
	for i, w := range []float64{0, 1, -3.5, 1e9} {
		require.ErrorIs(t, gs.AddEdge("v", "v", w), core.ErrInvalidEdge)
		require.ErrorIs(t, gi.AddEdge(i, i, w), core.ErrInvalidEdge)
	}
	require.Zero(t, gs.VertexCount())
	require.Zero(t, gi.VertexCount())
}

// TestWeightedGraph_Symmetry checks that AddEdge(a,b) and AddEdge(b,a) build
// indistinguishable graphs.
func TestWeightedGraph_Symmetry(t *testing.T) {
	ab := core.NewWeightedGraph[string]()
	ba := core.NewWeightedGraph[string]()
	require.NoError(t, ab.AddVertex(VertexA))
	require.NoError(t, ab.AddVertex(VertexB))
	require.NoError(t, ba.AddVertex(VertexA))
	require.NoError(t, ba.AddVertex(VertexB))
	require.NoError(t, ab.AddEdge(VertexA, VertexB, Weight3))
	require.NoError(t, ba.AddEdge(VertexB, VertexA, Weight3))

	assert.Equal(t, ab.Vertices(), ba.Vertices())
	assert.Equal(t, ab.VertexCount(), ba.VertexCount())
	assert.Equal(t, ab.EdgeCount(), ba.EdgeCount())
	assert.Equal(t, ab.TotalWeight(), ba.TotalWeight())
	assert.Equal(t, ab.Edges(), ba.Edges())
	assert.Equal(t, []core.Edge[string]{{ID: "e1", From: VertexA, To: VertexB, Weight: Weight3}}, ba.Edges())
	for _, v := range []string{VertexA, VertexB} {
		nab, err := ab.Neighbors(v)
		require.NoError(t, err)
		nba, err := ba.Neighbors(v)
		require.NoError(t, err)
		assert.Equal(t, nab, nba)

		eab, _ := ab.EdgesOf(v)
		eba, _ := ba.EdgesOf(v)
		require.Len(t, eab, 1)
		require.Len(t, eba, 1)
		assert.Equal(t, eab[0], eba[0])
	}
	for _, pair := range [][2]string{{VertexA, VertexB}, {VertexB, VertexA}} {
		assert.True(t, ab.HasEdge(pair[0], pair[1]))
		assert.True(t, ba.HasEdge(pair[0], pair[1]))
	}
}

// TestWeightedGraph_ParallelPolicies pins down the merge rule of every policy.
func TestWeightedGraph_ParallelPolicies(t *testing.T) {
	cases := []struct {
		policy core.ParallelPolicy
		want   float64
	}{
		{core.ParallelKeep, Weight2},
		{core.ParallelReplace, Weight1},
		{core.ParallelSum, Weight2 + Weight5 + Weight1},
		{core.ParallelMax, Weight5},
	}
	for _, tc := range cases {
		t.Run(tc.policy.String(), func(t *testing.T) {
			g := core.NewWeightedGraph[string](core.WithParallelEdges(tc.policy))
			require.Equal(t, tc.policy, g.Parallel())
			require.NoError(t, g.AddEdge(VertexA, VertexB, Weight2))
			require.NoError(t, g.AddEdge(VertexB, VertexA, Weight5))
			require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))

			require.Equal(t, 1, g.EdgeCount(), "one stored edge per unordered pair")
			e, ok := g.Edge(VertexB, VertexA)
			require.True(t, ok)
			require.Equal(t, tc.want, e.Weight)
			requireConsistent(t, g)
		})
	}
	require.Panics(t, func() { core.WithParallelEdges(core.ParallelPolicy(42)) })
}

// TestWeightedGraph_AddSameEdgeTwice checks the idempotence property under the default policy.
func TestWeightedGraph_AddSameEdgeTwice(t *testing.T) {
	g := newSquareWithChord(t)
	before := g.EdgeCount()
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
	require.NoError(t, g.AddEdge(VertexB, VertexA, Weight1))
	require.Equal(t, before, g.EdgeCount())
	require.Equal(t, 9.0, g.TotalWeight())
}

// TestWeightedGraph_RemoveEdge verifies cleanup of both endpoints and the no-op case.
func TestWeightedGraph_RemoveEdge(t *testing.T) {
	g := newSquareWithChord(t)

	require.True(t, g.RemoveEdge(VertexC, VertexA), "reverse orientation removes the chord")
	require.False(t, g.HasEdge(VertexA, VertexC))
	require.False(t, g.RemoveEdge(VertexA, VertexC), "second removal is a no-op")
	require.False(t, g.RemoveEdge(VertexX, VertexA), "unknown endpoint is a no-op")
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, 4, g.VertexCount(), "RemoveEdge keeps endpoints")

	nbrs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	require.Equal(t, []string{VertexB, VertexD}, nbrs)
	requireConsistent(t, g)
}

// TestWeightedGraph_RemoveVertex verifies incident edges vanish from neighbors too.
func TestWeightedGraph_RemoveVertex(t *testing.T) {
	g := newSquareWithChord(t)

	require.NoError(t, g.RemoveVertex(VertexA))
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
	for _, v := range []string{VertexB, VertexC, VertexD} {
		es, err := g.EdgesOf(v)
		require.NoError(t, err)
		for _, e := range es {
			require.False(t, e.Has(VertexA), "edge %v still references A", e)
		}
	}
	_, err := g.EdgesOf(VertexA)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	requireConsistent(t, g)
}

// TestWeightedGraph_DeterministicOrder pins insertion order for vertices and
// creation order for edges.
func TestWeightedGraph_DeterministicOrder(t *testing.T) {
	g := core.NewWeightedGraph[int]()
	for i := 12; i >= 1; i-- {
		require.NoError(t, g.AddEdge(i, i+100, float64(i)))
	}
	vs := g.Vertices()
	require.Equal(t, []int{12, 112, 11, 111}, vs[:4])

	es := g.Edges()
	require.Len(t, es, 12)
	require.Equal(t, "e1", es[0].ID)
	require.Equal(t, "e2", es[1].ID)
	require.Equal(t, "e10", es[9].ID, "numeric, not lexicographic, ordering")
	require.Equal(t, 12, es[0].From)
}

// TestWeightedGraph_ReturnedSlicesAreCopies asserts callers cannot mutate storage.
func TestWeightedGraph_ReturnedSlicesAreCopies(t *testing.T) {
	g := newSquareWithChord(t)

	es := g.Edges()
	es[0].Weight = 1000
	vs := g.Vertices()
	vs[0] = VertexX
	inc, _ := g.EdgesOf(VertexA)
	inc[0].To = VertexX

	e, ok := g.Edge(VertexA, VertexB)
	require.True(t, ok)
	require.Equal(t, Weight1, e.Weight)
	require.True(t, g.HasVertex(VertexA))
	require.False(t, g.HasVertex(VertexX))
	requireConsistent(t, g)
}

// TestWeightedGraph_Degrees covers Degree, WeightedDegree and Stats.
func TestWeightedGraph_Degrees(t *testing.T) {
	g := newSquareWithChord(t)
	require.NoError(t, g.AddVertex(VertexX))

	d, err := g.Degree(VertexA)
	require.NoError(t, err)
	require.Equal(t, 3, d)

	wd, err := g.WeightedDegree(VertexA)
	require.NoError(t, err)
	require.Equal(t, 7.0, wd)

	_, err = g.WeightedDegree("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	st := g.Stats()
	require.Equal(t, core.GraphStats{
		Parallel:    core.ParallelKeep,
		VertexCount: 5,
		EdgeCount:   5,
		TotalWeight: 9,
		MinDegree:   0,
		MaxDegree:   3,
		Isolated:    1,
	}, st)
}
