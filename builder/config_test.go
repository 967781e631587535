// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) and the canvas.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	require.Nil(t, newBuilderConfig().rng)

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	require.Equal(t, a.Int63(), b.Int63(), "same seed must yield same stream")

	r := rand.New(rand.NewSource(7))
	require.Same(t, r, newBuilderConfig(WithRand(r)).rng)

	// Last option wins.
	require.Same(t, r, newBuilderConfig(WithSeed(1), WithRand(r)).rng)

	require.Panics(t, func() { WithRand(nil) })
}

// TestCanvas_Grow verifies that growing keeps existing edges and squares the matrix.
func TestCanvas_Grow(t *testing.T) {
	t.Parallel()

	var c canvas
	require.Equal(t, 0, c.grow(2))
	c.join(0, 1)
	require.Equal(t, 2, c.grow(3))
	require.Equal(t, 5, c.order())
	for i := range c.m {
		require.Len(t, c.m[i], 5)
	}
	require.True(t, c.m[0][1])
	require.True(t, c.m[1][0])
	require.False(t, c.m[1][4])
}
