// SPDX-License-Identifier: MIT
// Package builder_test covers WeightFn behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/builder"
)

// TestWeightFnConstructors verifies constructor panics on invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"ConstantWeightFn_inf", func() builder.WeightFn { return builder.ConstantWeightFn(math.Inf(1)) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntWeightFn(3, 2) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnRanges verifies outputs stay within their documented domain.
func TestWeightFnRanges(t *testing.T) {
	t.Parallel()

	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	require.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 4)(nil), "nil rng falls back")
	require.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rand.New(rand.NewSource(1))))

	rng := rand.New(rand.NewSource(5))
	uni := builder.UniformWeightFn(2, 6)
	ints := builder.IntWeightFn(1, 3)
	exp := builder.ExponentialWeightFn(0.5)
	for i := 0; i < 200; i++ {
		u := uni(rng)
		require.GreaterOrEqual(t, u, 2.0)
		require.Less(t, u, 6.0)

		n := ints(rng)
		require.Contains(t, []float64{1, 2, 3}, n)

		e := exp(rng)
		require.GreaterOrEqual(t, e, 0.0)
		require.Equal(t, math.Round(e), e)
	}
}
