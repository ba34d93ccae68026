// SPDX-License-Identifier: MIT

package loader

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mincut/core"
)

// defaultHCLWeight is used by edge blocks without a weight attribute.
const defaultHCLWeight = 1.0

// hclGraphFile is the decoding target of one HCL graph file.
type hclGraphFile struct {
	Vertices []string   `hcl:"vertices,optional"`
	Edges    []*hclEdge `hcl:"edge,block"`
}

type hclEdge struct {
	From   string   `hcl:"from,label"`
	To     string   `hcl:"to,label"`
	Weight *float64 `hcl:"weight,optional"`
}

// ParseHCL decodes an HCL graph definition. filename is used in diagnostics only.
// Explicit vertices are added first, in listed order, then edges in block order.
//
// Errors:
//   - ErrSyntax wrapping the HCL diagnostics for parse or decode failures.
//   - ErrEmptyInput when the file defines neither vertices nor edges.
//   - core errors (ErrUndefinedVertex, ErrLoopNotAllowed, ErrBadWeight) for bad entries.
func ParseHCL(src []byte, filename string, opts ...core.GraphOption) (*core.WeightedGraph[string], error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(ErrSyntax, diags.Error())
	}

	var def hclGraphFile
	if diags = gohcl.DecodeBody(file.Body, nil, &def); diags.HasErrors() {
		return nil, errors.Wrap(ErrSyntax, diags.Error())
	}
	if len(def.Vertices) == 0 && len(def.Edges) == 0 {
		return nil, ErrEmptyInput
	}

	g := core.NewWeightedGraph[string](opts...)
	for _, v := range def.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, errors.Wrapf(err, "%s: vertex %q", filename, v)
		}
	}
	for _, e := range def.Edges {
		w := defaultHCLWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		if err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, errors.Wrapf(err, "%s: edge %q %q", filename, e.From, e.To)
		}
	}

	return g, nil
}
