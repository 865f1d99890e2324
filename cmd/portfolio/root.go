package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio/internal/config"
	"portfolio/internal/logger"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	cfgPath string
	envOnly bool
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Spreadsheet-backed portfolio tracker",
		Long: `Portfolio serves a single investment portfolio over JSON/HTTP.

The holdings live in one spreadsheet (or, optionally, a SQL table) that is
reloaded on every request. Running without a subcommand starts the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", envOr("PORTFOLIO_CONFIG", "config/config.yaml"), "path to config file")
	root.PersistentFlags().BoolVar(&a.envOnly, "env-only", envBool("PORTFOLIO_ENV_ONLY"), "read configuration from environment only")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newSummaryCmd(a),
	)
	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.cfgPath, a.envOnly)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = log
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	raw := os.Getenv(key)
	return strings.EqualFold(raw, "true") || raw == "1"
}
