package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Arnyev/Max-Common-Subgraph/csvgraph"
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/internal/config"
)

// app carries what every command needs: the filesystem graphs and results
// live on.
type app struct {
	fs afero.Fs
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	rootCmd := &cobra.Command{
		Use:           "mcis",
		Short:         "Maximum common connected induced subgraph solver",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file path (yaml, json or toml)")
	pf.String("delimiter", ",", "CSV cell delimiter")
	pf.Duration("timeout", 0, "Stop searching after this long (0 = no limit)")
	pf.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text or json)")

	rootCmd.AddCommand(a.newSolveCmd(), a.newCompareCmd(), a.newGenerateCmd())

	return rootCmd
}

// setup loads the configuration and the logger of cmd.
func (a *app) setup(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading --config")
	}
	cfg, err := config.Load(a.fs, path, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(cmd.ErrOrStderr())

	return cfg, logger, nil
}

// readPair reads the two input graphs.
func (a *app) readPair(cfg *config.Config, gPath, hPath string) (*graph.Graph, *graph.Graph, error) {
	g, err := csvgraph.ReadFile(a.fs, gPath, cfg.DelimiterRune())
	if err != nil {
		return nil, nil, err
	}
	h, err := csvgraph.ReadFile(a.fs, hPath, cfg.DelimiterRune())
	if err != nil {
		return nil, nil, err
	}

	return g, h, nil
}

// withTimeout derives the search context; a zero timeout means none.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}
