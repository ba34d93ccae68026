// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mincut/core"
)

// HCLExt marks files decoded by ParseHCL; everything else is adjacency text.
const HCLExt = ".hcl"

// Load reads the graph stored at path, choosing the format by extension.
func Load(path string, opts ...core.GraphOption) (*core.WeightedGraph[string], error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader")
	}
	if strings.EqualFold(filepath.Ext(path), HCLExt) {
		return ParseHCL(src, path, opts...)
	}

	return parseAdjacency(path, bytes.NewReader(src), opts...)
}
