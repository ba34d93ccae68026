// SPDX-License-Identifier: MIT

package stoerwagner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
)

func TestCompareAttachKeys(t *testing.T) {
	require.Equal(t, -1, compareAttachKeys(attachKey{weight: 5, id: 9}, attachKey{weight: 1, id: 0}))
	require.Equal(t, 1, compareAttachKeys(attachKey{weight: 1, id: 0}, attachKey{weight: 5, id: 9}))
	require.Equal(t, -1, compareAttachKeys(attachKey{weight: 2, id: 1}, attachKey{weight: 2, id: 3}))
	require.Equal(t, 0, compareAttachKeys(attachKey{weight: 2, id: 3}, attachKey{weight: 2, id: 3}))
}

func TestFrontier(t *testing.T) {
	f := newFrontier([]int{0, 1, 2, 3})
	require.Equal(t, 0.0, f.take(2))

	f.raise(3, 4)
	f.raise(1, 4)
	f.raise(2, 100) // already taken: ignored
	f.raise(1, 0.5)

	v, w := f.popMax()
	require.Equal(t, 1, v)
	require.Equal(t, 4.5, w)
	v, w = f.popMax()
	require.Equal(t, 3, v)
	require.Equal(t, 4.0, w)
	v, w = f.popMax()
	require.Equal(t, 0, v)
	require.Zero(t, w)
	require.True(t, f.empty())
}

func TestPhaseOrder(t *testing.T) {
	g := core.NewWeightedGraph[int]()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 10))
	require.NoError(t, g.AddEdge(0, 2, 1))

	s, tt, cut := phaseOrder(g, 0)
	require.Equal(t, 1, s)
	require.Equal(t, 2, tt)
	require.Equal(t, 11.0, cut)
}

func TestRegistry(t *testing.T) {
	var r registry[string]
	ids := r.intern([]string{"x", "y", "z"})
	require.Equal(t, map[string]int{"x": 0, "y": 1, "z": 2}, ids)

	m := r.merge(0, 2)
	require.Equal(t, 3, m)
	require.Equal(t, []string{"x", "z"}, r.members(m))
	require.Equal(t, []string{"x"}, r.members(0), "merged entries stay intact")

	m2 := r.merge(m, 1)
	require.Equal(t, 4, m2)
	require.Equal(t, []string{"x", "z", "y"}, r.members(m2))
}
