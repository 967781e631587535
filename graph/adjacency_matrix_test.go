package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arnyev/Max-Common-Subgraph/graph"
)

// c4 is the 4-cycle 0-1-2-3-0.
func c4() [][]bool {
	return [][]bool{
		{false, true, false, true},
		{true, false, true, false},
		{false, true, false, true},
		{true, false, true, false},
	}
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		m    [][]bool
		want error
	}{
		{"ragged", [][]bool{{false, true}, {true}}, graph.ErrInvalidShape},
		{"wide", [][]bool{{false, true, false}, {true, false, false}}, graph.ErrInvalidShape},
		{"asymmetric", [][]bool{{false, true}, {false, false}}, graph.ErrInvalidGraph},
		{"self-loop", [][]bool{{true, false}, {false, false}}, graph.ErrInvalidGraph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graph.New(tc.m)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

func TestNew_Empty(t *testing.T) {
	for _, m := range [][][]bool{nil, {}} {
		g, err := graph.New(m)
		require.NoError(t, err)
		require.Equal(t, 0, g.Order())
		require.Equal(t, 0, g.EdgeCount())
		require.Empty(t, g.Matrix())
	}
}

func TestGraph_Queries(t *testing.T) {
	g, err := graph.New(c4())
	require.NoError(t, err)

	require.Equal(t, 4, g.Order())
	require.Equal(t, 4, g.EdgeCount())
	for v := 0; v < 4; v++ {
		require.Equal(t, 2, g.Degree(v))
		require.False(t, g.AreAdjacent(v, v))
	}
	require.Equal(t, []int{1, 3}, g.Neighbours(0))
	require.Equal(t, []int{2}, g.NonNeighbours(0))
	require.Equal(t, []int{0}, g.NonNeighbours(2))
	require.True(t, g.AreAdjacent(2, 3))
	require.False(t, g.AreAdjacent(1, 3))
}

func TestGraph_InputIsCopied(t *testing.T) {
	m := c4()
	g := graph.MustNew(m)
	m[0][2], m[2][0] = true, true
	require.False(t, g.AreAdjacent(0, 2))

	out := g.Matrix()
	out[0][1] = false
	require.True(t, g.AreAdjacent(0, 1))
	require.Equal(t, c4(), g.Matrix())
}

func TestGraph_OutOfRangePanics(t *testing.T) {
	g := graph.MustNew(c4())
	require.Panics(t, func() { g.Degree(4) })
	require.Panics(t, func() { g.Neighbours(-1) })
	require.Panics(t, func() { g.AreAdjacent(0, 9) })
	require.Panics(t, func() { graph.MustNew([][]bool{{true}}) })
}
