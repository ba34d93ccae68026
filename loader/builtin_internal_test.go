// SPDX-License-Identifier: MIT

package loader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
)

func TestArticle_DoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() { _ = Article() })
}

func TestBuildPairs_ReportsBadEntries(t *testing.T) {
	cases := []struct {
		name  string
		pairs []weightedPair
		want  error
	}{
		{"self loop", []weightedPair{{1, 2, 1}, {3, 3, 1}}, core.ErrLoopNotAllowed},
		{"nan weight", []weightedPair{{1, 2, math.NaN()}}, core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := buildPairs(tc.pairs)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
			require.Contains(t, err.Error(), "built-in edge")
		})
	}
}
