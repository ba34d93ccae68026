// SPDX-License-Identifier: MIT

package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/flow"
)

// EdmondsKarpSuite groups tests for Edmonds–Karp on undirected graphs.
type EdmondsKarpSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *EdmondsKarpSuite) SetupTest() {
	s.ctx = context.Background()
}

// TestSimpleEdge: A--B (cap=5) => maxFlow = 5 in both directions.
func (s *EdmondsKarpSuite) TestSimpleEdge() {
	g := core.NewWeightedGraph[string]()
	require.NoError(s.T(), g.AddEdge("A", "B", 5))

	mf, err := flow.EdmondsKarp(s.ctx, g, "A", "B", nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, mf)

	mf, err = flow.EdmondsKarp(s.ctx, g, "B", "A", nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, mf, "undirected capacity is symmetric")
}

// TestMultiPath: two routes => flow sums their bottlenecks.
func (s *EdmondsKarpSuite) TestMultiPath() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddEdge("s", "a", 3)
	_ = g.AddEdge("a", "t", 2)
	_ = g.AddEdge("s", "b", 2)
	_ = g.AddEdge("b", "t", 3)

	var augments int
	cut, err := flow.MinSTCut(s.ctx, g, "s", "t", &flow.FlowOptions{
		OnAugment: func(float64, int) { augments++ },
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4.0, cut.Value)
	require.Equal(s.T(), 2, augments)
	require.True(s.T(), cut.InSourceSide("s"))
	require.False(s.T(), cut.InSourceSide("t"))

	var sum float64
	for _, e := range cut.CutEdges {
		sum += e.Weight
	}
	require.Equal(s.T(), cut.Value, sum, "crossing edges carry exactly the flow value")
}

// TestUndirectedReuse exercises flow that must traverse an edge "backwards".
func (s *EdmondsKarpSuite) TestUndirectedReuse() {
	g := core.NewWeightedGraph[int]()
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(3, 2, 1)
	_ = g.AddEdge(3, 4, 1)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(2, 4, 1)

	mf, err := flow.EdmondsKarp(s.ctx, g, 1, 4, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, mf)
}

// TestDisconnected yields zero flow and an empty cut.
func (s *EdmondsKarpSuite) TestDisconnected() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddEdge("a", "b", 9)
	_ = g.AddEdge("c", "d", 9)

	cut, err := flow.MinSTCut(s.ctx, g, "a", "d", nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), cut.Value)
	require.Empty(s.T(), cut.CutEdges)
	require.Equal(s.T(), []string{"a", "b"}, cut.SourceSide)
}

// TestNegativeCapacity yields EdgeError.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddEdge("X", "Y", -1)

	_, err := flow.EdmondsKarp(s.ctx, g, "X", "Y", nil)
	var ee flow.EdgeError
	require.Error(s.T(), err)
	require.True(s.T(), errors.As(err, &ee), "error must be EdgeError")
	require.Equal(s.T(), "X", ee.From)
	require.Equal(s.T(), "Y", ee.To)
	require.Equal(s.T(), -1.0, ee.Cap)
}

// TestEndpointErrors covers missing or coinciding endpoints and a nil graph.
func (s *EdmondsKarpSuite) TestEndpointErrors() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddVertex("A")

	_, err := flow.EdmondsKarp(s.ctx, g, "X", "A", nil)
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)
	_, err = flow.EdmondsKarp(s.ctx, g, "A", "Z", nil)
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)
	_, err = flow.EdmondsKarp(s.ctx, g, "A", "A", nil)
	require.ErrorIs(s.T(), err, flow.ErrSameEndpoints)
	_, err = flow.EdmondsKarp[string](s.ctx, nil, "A", "B", nil)
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)
}

// TestCancelled aborts before the first augmentation.
func (s *EdmondsKarpSuite) TestCancelled() {
	g := core.NewWeightedGraph[string]()
	_ = g.AddEdge("A", "B", 1)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := flow.EdmondsKarp(ctx, g, "A", "B", nil)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestGlobalMinCut checks known global cuts of builder topologies.
func (s *EdmondsKarpSuite) TestGlobalMinCut() {
	cases := []struct {
		name string
		ctor builder.Constructor
		want float64
	}{
		{"Cycle(6)", builder.Cycle(6), 2},
		{"Complete(5)", builder.Complete(5), 4},
		{"Wheel(6)", builder.Wheel(6), 3},
		{"Barbell(4,0.5)", builder.Barbell(4, 0.5), 0.5},
		{"CompleteBipartite(2,4)", builder.CompleteBipartite(2, 4), 2},
	}
	for _, tc := range cases {
		g, err := builder.BuildGraph(nil, nil, tc.ctor)
		require.NoError(s.T(), err, tc.name)
		cut, err := flow.GlobalMinCut(s.ctx, g, nil)
		require.NoError(s.T(), err, tc.name)
		require.Equal(s.T(), tc.want, cut.Value, tc.name)
	}

	single := core.NewWeightedGraph[string]()
	_ = single.AddVertex("only")
	_, err := flow.GlobalMinCut(s.ctx, single, nil)
	require.ErrorIs(s.T(), err, flow.ErrTooFewVertices)
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
