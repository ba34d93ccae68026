// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
)

// Common vertex labels used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common weights (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
)

// Concurrency sizes.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)

// labelPtr is a pointer-backed label implementing core.Nilable.
type labelPtr struct{ name string }

func (l *labelPtr) IsNil() bool { return l == nil }

// plainLabel is a pointer label without an IsNil method.
type plainLabel struct{ name string }

// newSquareWithChord builds A-B-C-D-A (weight 1 each) plus the chord A-C (weight 5).
func newSquareWithChord(t *testing.T) *core.WeightedGraph[string] {
	t.Helper()
	g := core.NewWeightedGraph[string]()
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
	require.NoError(t, g.AddEdge(VertexB, VertexC, Weight1))
	require.NoError(t, g.AddEdge(VertexC, VertexD, Weight1))
	require.NoError(t, g.AddEdge(VertexD, VertexA, Weight1))
	require.NoError(t, g.AddEdge(VertexA, VertexC, Weight5))

	return g
}

// requireConsistent checks the mirror invariant through the public API:
// every edge is reported by both endpoints and by HasEdge in both orientations.
func requireConsistent[T comparable](t *testing.T, g *core.WeightedGraph[T]) {
	t.Helper()
	for _, e := range g.Edges() {
		require.True(t, g.HasEdge(e.From, e.To), "HasEdge(%v,%v)", e.From, e.To)
		require.True(t, g.HasEdge(e.To, e.From), "HasEdge(%v,%v)", e.To, e.From)
		for _, v := range []T{e.From, e.To} {
			incident, err := g.EdgesOf(v)
			require.NoError(t, err)
			require.Contains(t, incident, e, "EdgesOf(%v) must list %v", v, e)
		}
	}
	degreeSum := 0
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		degreeSum += d
	}
	require.Equal(t, 2*g.EdgeCount(), degreeSum, "handshake lemma")
}
