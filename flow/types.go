// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)

var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)

var errSinkNotFound = errors.New("sink vertex not found")

// ErrSameEndpoints is returned when source and sink coincide.
var ErrSameEndpoints = errors.New("flow: source and sink must differ")

// ErrGraphNil is returned for a nil graph.
var ErrGraphNil = errors.New("flow: graph is nil")

// ErrTooFewVertices is returned by GlobalMinCut for graphs with fewer than two vertices.
var ErrTooFewVertices = errors.New("flow: need at least two vertices")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q--%q: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures Edmonds-Karp.
//   - Epsilon: treat residual capacities ≤ Epsilon as zero (default 1e-9).
//   - OnAugment: called after each augmentation with the bottleneck and path length.
type FlowOptions struct {
	Epsilon   float64
	OnAugment func(bottleneck float64, hops int)
}

const defaultEpsilon = 1e-9

// normalize fills defaults into a copy of opts.
func (o *FlowOptions) normalize() FlowOptions {
	out := FlowOptions{Epsilon: defaultEpsilon, OnAugment: func(float64, int) {}}
	if o == nil {
		return out
	}
	if o.Epsilon > 0 {
		out.Epsilon = o.Epsilon
	}
	if o.OnAugment != nil {
		out.OnAugment = o.OnAugment
	}

	return out
}

// STCut is a minimum s-t cut: the value of the maximum flow, the source side
// (vertices reachable from the source in the final residual network) and the
// original edges crossing the cut.
type STCut[T comparable] struct {
	Source, Sink T
	Value        float64
	SourceSide   []T
	CutEdges     []core.Edge[T]
}

// InSourceSide reports whether v lies on the source side of the cut.
func (c STCut[T]) InSourceSide(v T) bool {
	for _, u := range c.SourceSide {
		if u == v {
			return true
		}
	}

	return false
}
