package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mcis "github.com/Arnyev/Max-Common-Subgraph"
	"github.com/Arnyev/Max-Common-Subgraph/csvgraph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
	"github.com/Arnyev/Max-Common-Subgraph/mcsplit"
)

func (a *app) newSolveCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "solve G.csv H.csv",
		Short: "Run one algorithm on two graphs",
		Long: `Run one algorithm on two graphs and print the common subgraph.

Algorithms:
  1 exact-v       2 exact-ve       3 exact-v-all    4 exact-ve-all
  5 clique-v      6 clique-ve      7 anytime-v      8 anytime-ve`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args[0], args[1], quiet)
		},
	}
	cmd.Flags().String("algo", "1", "Algorithm number (1-8) or name")
	cmd.Flags().Int("step", 4, "Anytime step size (algorithms 7 and 8)")
	cmd.Flags().String("output", "", "Write mappings to this CSV file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print mappings")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, gPath, hPath string, quiet bool) error {
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

	rep, err := mcis.Run(ctx, cfg.AlgorithmID(), g, h, cfg.StepSize, logger)
	switch {
	case errors.Is(err, mcsplit.ErrCanceled):
		logger.WithField("timeout", cfg.Timeout).Warn("time limit reached, reporting best mapping found")
	case err != nil:
		return err
	}

	for i, m := range rep.Mappings {
		if verr := mapping.Verify(g, h, m); verr != nil {
			return errors.Wrapf(verr, "mapping %d failed verification", i+1)
		}
	}
	logger.WithFields(log.Fields{
		"mappings": len(rep.Mappings),
		"size":     rep.Best().Len(),
		"edges":    mapping.EdgeCount(g, rep.Best()),
	}).Debug("mappings verified")

	if !quiet {
		if err = csvgraph.PrintMappings(cmd.OutOrStdout(), rep.Mappings); err != nil {
			return err
		}
	}
	if cfg.Output != "" {
		if err = csvgraph.WriteMappingsFile(a.fs, cfg.Output, rep.Mappings, cfg.DelimiterRune()); err != nil {
			return err
		}
		logger.WithField("path", cfg.Output).Info("mappings written")
	}

	return nil
}
