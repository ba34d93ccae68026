// SPDX-License-Identifier: MIT

package loader

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mincut/core"
)

// adjacencyWeight is the weight of every edge read from adjacency text.
const adjacencyWeight = 1.0

type adjacencyFile struct {
	Lines []*adjacencyLine `parser:"EOL* @@*"`
}

type adjacencyLine struct {
	Pos lexer.Position

	Vertex    string   `parser:"@Ident \":\""`
	Neighbors []string `parser:"@Ident+ EOL*"`
}

var adjacencyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_.\-]+`},
	{Name: "Punct", Pattern: `:`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var adjacencyParser = participle.MustBuild[adjacencyFile](
	participle.Lexer(adjacencyLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ParseAdjacency reads "vertex: n1 n2 ..." lines from r and returns an undirected
// graph with a unit-weight edge for every listed pair. Vertices appear in the
// order they are first mentioned.
//
// Errors:
//   - ErrSyntax (with position) for malformed lines.
//   - ErrEmptyInput when r holds no adjacency line.
//   - core.ErrLoopNotAllowed when a vertex lists itself.
func ParseAdjacency(r io.Reader, opts ...core.GraphOption) (*core.WeightedGraph[string], error) {
	return parseAdjacency("", r, opts...)
}

func parseAdjacency(filename string, r io.Reader, opts ...core.GraphOption) (*core.WeightedGraph[string], error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "loader: reading adjacency text")
	}
	ast, err := adjacencyParser.ParseBytes(filename, src)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	if len(ast.Lines) == 0 {
		return nil, ErrEmptyInput
	}

	g := core.NewWeightedGraph[string](opts...)
	for _, line := range ast.Lines {
		for _, to := range line.Neighbors {
			if err = g.AddEdge(line.Vertex, to, adjacencyWeight); err != nil {
				return nil, errors.Wrapf(err, "%s: %s -> %s", line.Pos, line.Vertex, to)
			}
		}
	}

	return g, nil
}
