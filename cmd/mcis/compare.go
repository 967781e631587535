package main

import (
	"context"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	mcis "github.com/Arnyev/Max-Common-Subgraph"
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
	"github.com/Arnyev/Max-Common-Subgraph/mcsplit"
)

func (a *app) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare G.csv H.csv",
		Short: "Run all eight algorithms concurrently and tabulate the results",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, args[0], args[1])
		},
	}
	cmd.Flags().Int("step", 4, "Anytime step size (algorithms 7 and 8)")

	return cmd
}

// comparison is one finished algorithm run.
type comparison struct {
	rep      mcis.Report
	edges    int
	timedOut bool
}

func (a *app) runCompare(cmd *cobra.Command, gPath, hPath string) error {
	cfg, logger, err := a.setup(cmd)
	if err != nil {
		return err
	}
	g, h, err := a.readPair(cfg, gPath, hPath)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	results, err := compareAll(ctx, g, h, cfg.StepSize, logger)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("#", "Algorithm", "Size", "Edges", "Mappings", "Nodes", "Passes", "Elapsed")
	for _, c := range results {
		elapsed := c.rep.Elapsed.Round(time.Microsecond).String()
		if c.timedOut {
			elapsed += " (timeout)"
		}
		if err = table.Append([]string{
			strconv.Itoa(int(c.rep.Algorithm)),
			c.rep.Algorithm.String(),
			strconv.Itoa(c.rep.Best().Len()),
			strconv.Itoa(c.edges),
			strconv.Itoa(len(c.rep.Mappings)),
			humanize.Comma(c.rep.Nodes),
			strconv.Itoa(c.rep.Passes),
			elapsed,
		}); err != nil {
			return errors.Wrap(err, "appending row")
		}
	}

	return errors.Wrap(table.Render(), "rendering table")
}

// compareAll runs every algorithm on g and h concurrently. A run stopped by
// ctx still reports its best mapping; any other failure aborts the rest.
func compareAll(ctx context.Context, g, h *graph.Graph, step int, logger log.FieldLogger) ([]comparison, error) {
	var (
		algos   = mcis.Algorithms()
		results = make([]comparison, len(algos))
		grp, gc = errgroup.WithContext(ctx)
	)
	for i, algo := range algos {
		i, algo := i, algo
		grp.Go(func() error {
			rep, err := mcis.Run(gc, algo, g, h, step, logger)
			timedOut := errors.Is(err, mcsplit.ErrCanceled)
			if err != nil && !timedOut {
				return errors.WithMessagef(err, "algorithm %s", algo)
			}
			for _, m := range rep.Mappings {
				if verr := mapping.Verify(g, h, m); verr != nil {
					return errors.Wrapf(verr, "algorithm %s", algo)
				}
			}
			results[i] = comparison{
				rep:      rep,
				edges:    mapping.EdgeCount(g, rep.Best()),
				timedOut: timedOut,
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
