package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Arnyev/Max-Common-Subgraph/builder"
	"github.com/Arnyev/Max-Common-Subgraph/csvgraph"
)

// generateFlags are the knobs of the generate command.
type generateFlags struct {
	shape   string
	n       int
	density float64
	seed    int64
	shuffle bool
}

func (a *app) newGenerateCmd() *cobra.Command {
	var gf generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph as a CSV adjacency matrix",
		Long: `Write a generated graph as a CSV adjacency matrix.

Shapes: random (uses --density), path, cycle, complete, star, wheel, empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, gf)
		},
	}
	cmd.Flags().StringVar(&gf.shape, "shape", "random", "Graph shape")
	cmd.Flags().IntVarP(&gf.n, "n", "n", 10, "Number of vertices")
	cmd.Flags().Float64Var(&gf.density, "density", 0.5, "Edge probability for random graphs")
	cmd.Flags().Int64Var(&gf.seed, "seed", 1, "Random seed")
	cmd.Flags().BoolVar(&gf.shuffle, "shuffle", false, "Randomly relabel the vertices")
	cmd.Flags().String("output", "", "Write to this file instead of standard output")

	return cmd
}

// constructor maps a shape name to its builder.
func (gf generateFlags) constructor() (builder.Constructor, error) {
	switch strings.ToLower(gf.shape) {
	case "random":
		return builder.RandomDensity(gf.n, gf.density), nil
	case "path":
		return builder.Path(gf.n), nil
	case "cycle":
		return builder.Cycle(gf.n), nil
	case "complete":
		return builder.Complete(gf.n), nil
	case "star":
		return builder.Star(gf.n), nil
	case "wheel":
		return builder.Wheel(gf.n), nil
	case "empty":
		return builder.Empty(gf.n), nil
	default:
		return nil, errors.Errorf("unknown shape %q", gf.shape)
	}
}

func (a *app) runGenerate(cmd *cobra.Command, gf generateFlags) error {
	cfg, logger, err := a.setup(cmd)
	if err != nil {
		return err
	}
	con, err := gf.constructor()
	if err != nil {
		return err
	}
	cons := []builder.Constructor{con}
	if gf.shuffle {
		cons = append(cons, builder.Shuffled())
	}
	m, err := builder.BuildMatrix([]builder.BuilderOption{builder.WithSeed(gf.seed)}, cons...)
	if err != nil {
		return errors.WithMessage(err, "generating graph")
	}

	if cfg.Output == "" {
		return csvgraph.WriteMatrix(cmd.OutOrStdout(), m, cfg.DelimiterRune())
	}
	if err = csvgraph.WriteMatrixFile(a.fs, cfg.Output, m, cfg.DelimiterRune()); err != nil {
		return err
	}
	logger.WithField("path", cfg.Output).Info("graph written")

	return nil
}
