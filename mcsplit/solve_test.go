package mcsplit_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arnyev/Max-Common-Subgraph/builder"
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
	"github.com/Arnyev/Max-Common-Subgraph/mcsplit"
)

// requireValid checks every returned mapping against the result contract
// and against the reported score.
func requireValid(t *testing.T, g, h *graph.Graph, obj mcsplit.Objective, res mcsplit.Result) {
	t.Helper()
	require.NotEmpty(t, res.Mappings)
	for _, m := range res.Mappings {
		require.NoError(t, mapping.Verify(g, h, m), "mapping %s", m)
		require.Equal(t, res.Score.Vertices, m.Len())
		if obj == mcsplit.EdgeObjective {
			require.Equal(t, res.Score.Edges, mapping.EdgeCount(g, m))
		}
	}
}

func TestSolve_TriangleVsPath(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, 1, builder.Complete(3))
	h := mustBuild(t, 1, builder.Path(3))

	res, err := mcsplit.Solve(g, h)
	require.NoError(t, err)
	requireValid(t, g, h, mcsplit.VertexObjective, res)
	require.Len(t, res.Mappings, 1)
	require.Equal(t, 2, res.Best().Len())
	require.Equal(t, 1, mapping.EdgeCount(g, res.Best()))

	res, err = mcsplit.Solve(g, h, mcsplit.WithObjective(mcsplit.EdgeObjective))
	require.NoError(t, err)
	requireValid(t, g, h, mcsplit.EdgeObjective, res)
	require.Equal(t, mcsplit.Score{Vertices: 2, Edges: 1}, res.Score)
}

func TestSolve_CycleVsCycle(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, 1, builder.Cycle(4))
	h := mustBuild(t, 1, builder.Cycle(4))

	for _, obj := range []mcsplit.Objective{mcsplit.VertexObjective, mcsplit.EdgeObjective} {
		res, err := mcsplit.Solve(g, h, mcsplit.WithObjective(obj))
		require.NoError(t, err)
		requireValid(t, g, h, obj, res)
		require.Equal(t, 4, res.Best().Len())
		require.Equal(t, 4, mapping.EdgeCount(g, res.Best()))
	}
}

func TestSolve_Degenerate(t *testing.T) {
	t.Parallel()

	var (
		empty = graph.MustNew(nil)
		k1    = mustBuild(t, 1, builder.Complete(1))
		p3    = mustBuild(t, 1, builder.Path(3))
	)
	modes := map[string][]mcsplit.Option{
		"exact":   nil,
		"all":     {mcsplit.WithReturnAllTies()},
		"anytime": {mcsplit.WithAnytime(2)},
	}
	for name, opts := range modes {
		opts := opts
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := mcsplit.Solve(empty, p3, opts...)
			require.NoError(t, err)
			require.Equal(t, []mapping.Mapping{{}}, res.Mappings)

			res, err = mcsplit.Solve(p3, empty, opts...)
			require.NoError(t, err)
			require.Equal(t, []mapping.Mapping{{}}, res.Mappings)

			res, err = mcsplit.Solve(k1, k1, opts...)
			require.NoError(t, err)
			require.Equal(t, mapping.Mapping{{G: 0, H: 0}}, res.Best())

			res, err = mcsplit.Solve(k1, p3, opts...)
			require.NoError(t, err)
			require.Equal(t, 1, res.Best().Len())
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, 1, builder.Path(3))

	_, err := mcsplit.Solve(nil, g)
	require.ErrorIs(t, err, mcsplit.ErrGraphNil)
	_, err = mcsplit.Solve(g, nil)
	require.ErrorIs(t, err, mcsplit.ErrGraphNil)

	for _, opt := range []mcsplit.Option{
		mcsplit.WithAnytime(0),
		mcsplit.WithAnytime(-3),
		mcsplit.WithObjective(mcsplit.Objective(7)),
		mcsplit.WithTieBound(mcsplit.TieBound(9)),
	} {
		_, err = mcsplit.Solve(g, g, opt)
		require.ErrorIs(t, err, mcsplit.ErrOptionViolation)
	}
}

func TestSolve_TieBounds(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, 1, builder.Complete(3))
	h := mustBuild(t, 1, builder.Path(3))
	_, want := oracle(g, h, mcsplit.VertexObjective)
	require.Len(t, want, 12)

	// Inclusive (the default with ReturnAllTies): every optimum, once.
	incl, err := mcsplit.Solve(g, h, mcsplit.WithReturnAllTies())
	require.NoError(t, err)
	requireValid(t, g, h, mcsplit.VertexObjective, incl)
	got := map[string]bool{}
	for _, m := range incl.Mappings {
		got[key(m)] = true
	}
	require.Len(t, incl.Mappings, len(want))
	require.Equal(t, want, got)

	// Strict: a subset of the optima, found with fewer nodes.
	strict, err := mcsplit.Solve(g, h, mcsplit.WithReturnAllTies(), mcsplit.WithTieBound(mcsplit.TieBoundStrict))
	require.NoError(t, err)
	requireValid(t, g, h, mcsplit.VertexObjective, strict)
	require.Less(t, len(strict.Mappings), len(want))
	require.Less(t, strict.Nodes, incl.Nodes)
	for _, m := range strict.Mappings {
		require.True(t, want[key(m)], "unexpected mapping %s", m)
	}

	// Inclusive without ReturnAllTies still returns one mapping.
	one, err := mcsplit.Solve(g, h, mcsplit.WithTieBound(mcsplit.TieBoundInclusive))
	require.NoError(t, err)
	require.Len(t, one.Mappings, 1)
}

// TestSolve_AgainstOracle sweeps random pairs of small graphs and compares
// the exact search with exhaustive enumeration.
func TestSolve_AgainstOracle(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 24; seed++ {
		var (
			n = 3 + int(seed%3)
			m = 3 + int((seed/3)%3)
			g = mustBuild(t, seed, builder.RandomDensity(n, 0.5))
			h = mustBuild(t, seed+100, builder.RandomDensity(m, 0.5))
		)
		for _, obj := range []mcsplit.Objective{mcsplit.VertexObjective, mcsplit.EdgeObjective} {
			obj := obj
			t.Run(fmt.Sprintf("seed=%d/%s", seed, obj), func(t *testing.T) {
				bestScore, bestSet := oracle(g, h, obj)

				res, err := mcsplit.Solve(g, h, mcsplit.WithObjective(obj))
				require.NoError(t, err)
				requireValid(t, g, h, obj, res)
				require.Equal(t, bestScore, res.Score)

				all, err := mcsplit.Solve(g, h, mcsplit.WithObjective(obj), mcsplit.WithReturnAllTies())
				require.NoError(t, err)
				requireValid(t, g, h, obj, all)
				got := map[string]bool{}
				for _, mp := range all.Mappings {
					got[key(mp)] = true
				}
				require.Len(t, all.Mappings, len(bestSet))
				require.Equal(t, bestSet, got)

				approx, err := mcsplit.Solve(g, h, mcsplit.WithObjective(obj), mcsplit.WithAnytime(2))
				require.NoError(t, err)
				requireValid(t, g, h, obj, approx)
				require.LessOrEqual(t, approx.Score.Compare(res.Score), 0)
			})
		}
	}
}

func TestSolve_Anytime(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, 5, builder.Wheel(7), builder.Shuffled())
	h := mustBuild(t, 6, builder.Wheel(7), builder.Shuffled())

	var passes []mcsplit.PassInfo
	res, err := mcsplit.Solve(g, h,
		mcsplit.WithAnytime(2),
		mcsplit.WithOnPass(func(p mcsplit.PassInfo) { passes = append(passes, p) }),
	)
	require.NoError(t, err)
	requireValid(t, g, h, mcsplit.VertexObjective, res)
	require.GreaterOrEqual(t, res.Passes, 1)
	require.Len(t, passes, res.Passes)
	for i, p := range passes {
		require.Equal(t, i+1, p.Pass)
		require.Equal(t, 2*(i+1), p.Target)
		require.LessOrEqual(t, p.SeedSize, p.Target)
		if i > 0 {
			require.GreaterOrEqual(t, p.SeedSize, passes[i-1].SeedSize)
			require.GreaterOrEqual(t, p.Nodes, passes[i-1].Nodes)
		}
	}
	require.Equal(t, res.Nodes, passes[len(passes)-1].Nodes)

	exact, err := mcsplit.Solve(g, h)
	require.NoError(t, err)
	require.Equal(t, 7, exact.Best().Len())
	require.LessOrEqual(t, res.Best().Len(), exact.Best().Len())
	require.Zero(t, exact.Passes)
}

func TestSolve_Deterministic(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, 9, builder.RandomDensity(8, 0.4))
	h := mustBuild(t, 10, builder.RandomDensity(8, 0.4))
	for _, opts := range [][]mcsplit.Option{
		nil,
		{mcsplit.WithReturnAllTies(), mcsplit.WithObjective(mcsplit.EdgeObjective)},
		{mcsplit.WithAnytime(3)},
	} {
		a, err := mcsplit.Solve(g, h, opts...)
		require.NoError(t, err)
		b, err := mcsplit.Solve(g, h, opts...)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestSolve_Canceled(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, 21, builder.RandomDensity(30, 0.5))
	h := mustBuild(t, 22, builder.RandomDensity(30, 0.5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, opts := range [][]mcsplit.Option{
		{mcsplit.WithContext(ctx)},
		{mcsplit.WithContext(ctx), mcsplit.WithAnytime(30)},
	} {
		res, err := mcsplit.Solve(g, h, opts...)
		require.ErrorIs(t, err, mcsplit.ErrCanceled)
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, int64(1024), res.Nodes)
		requireValid(t, g, h, mcsplit.VertexObjective, res)
	}
}
