package mcis_test

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	mcis "github.com/Arnyev/Max-Common-Subgraph"
	"github.com/Arnyev/Max-Common-Subgraph/builder"
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
	"github.com/Arnyev/Max-Common-Subgraph/mcsplit"
)

func mustBuild(t *testing.T, cons ...builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, cons...)
	require.NoError(t, err)

	return g
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want mcis.Algorithm
	}{
		{"1", mcis.ExactV},
		{"4", mcis.ExactVEAll},
		{" 8 ", mcis.AnytimeVE},
		{"exact-ve", mcis.ExactVE},
		{"CLIQUE-V", mcis.CliqueV},
		{"anytime-v", mcis.AnytimeV},
	}
	for _, tc := range tests {
		got, err := mcis.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"0", "9", "", "exact", "-1"} {
		_, err := mcis.ParseAlgorithm(bad)
		require.ErrorIs(t, err, mcis.ErrUnknownAlgorithm, bad)
	}
}

func TestAlgorithm_String(t *testing.T) {
	t.Parallel()

	require.Len(t, mcis.Algorithms(), 8)
	for i, a := range mcis.Algorithms() {
		require.Equal(t, mcis.Algorithm(i+1), a)
		back, err := mcis.ParseAlgorithm(a.String())
		require.NoError(t, err)
		require.Equal(t, a, back)
	}
	require.Equal(t, "Algorithm(0)", mcis.Algorithm(0).String())
	require.True(t, mcis.CliqueVE.EdgeObjective())
	require.False(t, mcis.AnytimeV.EdgeObjective())
}

func TestRun_AllAlgorithms(t *testing.T) {
	t.Parallel()

	var (
		g            = mustBuild(t, builder.Complete(3))
		h            = mustBuild(t, builder.Path(3))
		logger, hook = test.NewNullLogger()
	)
	for _, algo := range mcis.Algorithms() {
		rep, err := mcis.Run(context.Background(), algo, g, h, 0, logger)
		require.NoError(t, err, algo.String())
		require.Equal(t, algo, rep.Algorithm)
		require.NotEmpty(t, rep.Mappings)
		for _, m := range rep.Mappings {
			require.NoError(t, mapping.Verify(g, h, m))
			require.Equal(t, 2, m.Len(), algo.String())
		}
		switch algo {
		case mcis.ExactVAll, mcis.ExactVEAll:
			require.Len(t, rep.Mappings, 12)
		default:
			require.Len(t, rep.Mappings, 1)
		}

		last := hook.LastEntry()
		require.NotNil(t, last)
		require.Equal(t, log.InfoLevel, last.Level)
		require.Equal(t, "algorithm finished", last.Message)
		require.Equal(t, algo.String(), last.Data["algorithm"])
		require.Equal(t, 2, last.Data["size"])
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, builder.Path(3))
	_, err := mcis.Run(context.Background(), mcis.Algorithm(9), g, g, 0, nil)
	require.ErrorIs(t, err, mcis.ErrUnknownAlgorithm)

	_, err = mcis.Run(context.Background(), mcis.ExactV, nil, g, 0, nil)
	require.ErrorIs(t, err, mcis.ErrGraphNil)

	logger, _ := test.NewNullLogger()
	_, err = mcis.Run(context.Background(), mcis.AnytimeV, g, g, -1, logger)
	require.ErrorIs(t, err, mcsplit.ErrOptionViolation)
}

func TestExactOrApproximate(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, builder.Cycle(4))
	h := mustBuild(t, builder.Cycle(4))

	ms, err := mcis.ExactOrApproximate(context.Background(), g, h, mcis.Options{EdgeObjective: true})
	require.NoError(t, err)
	require.Len(t, ms, 1)
	require.Equal(t, 4, ms[0].Len())
	require.Equal(t, 4, mapping.EdgeCount(g, ms[0]))

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	ms, err = mcis.ExactOrApproximate(context.Background(), g, h, mcis.Options{
		Mode:     mcis.ModeAnytime,
		StepSize: 1,
		Logger:   logger,
	})
	require.NoError(t, err)
	require.NoError(t, mapping.Verify(g, h, ms[0]))

	var passes int
	for _, e := range hook.AllEntries() {
		if e.Message == "anytime pass finished" {
			passes++
		}
	}
	require.GreaterOrEqual(t, passes, 1)

	_, err = mcis.ExactOrApproximate(context.Background(), nil, h, mcis.Options{})
	require.ErrorIs(t, err, mcis.ErrGraphNil)
}

func TestExactOrApproximate_Canceled(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(21)}, builder.RandomDensity(30, 0.5))
	require.NoError(t, err)
	h, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(22)}, builder.RandomDensity(30, 0.5))
	require.NoError(t, err)
	require.NotEqual(t, g.Matrix(), h.Matrix())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger, hook := test.NewNullLogger()

	ms, err := mcis.ExactOrApproximate(ctx, g, h, mcis.Options{Logger: logger})
	require.ErrorIs(t, err, mcsplit.ErrCanceled)
	require.NotEmpty(t, ms)
	require.NoError(t, mapping.Verify(g, h, ms[0]))
	require.Equal(t, log.WarnLevel, hook.LastEntry().Level)
}

func TestCliqueApprox(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, builder.Wheel(6))
	h := mustBuild(t, builder.Wheel(6))
	m := mcis.CliqueApprox(g, h, true)
	require.NoError(t, mapping.Verify(g, h, m))
	require.NotEmpty(t, m)
}
