package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mediabutler/internal/categoryregistry"
	"mediabutler/internal/config"
	"mediabutler/internal/logging"
)

// mbctlContext holds dependencies shared across subcommands, built once by
// the root command's PersistentPreRunE.
type mbctlContext struct {
	cfg      *config.Config
	registry *categoryregistry.Registry
	logger   *slog.Logger
	color    bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	ctx := &mbctlContext{}

	rootCmd := &cobra.Command{
		Use:           "mbctl",
		Short:         "Operational tooling for the media classification core",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			ctx.cfg = cfg

			logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
			if err != nil {
				return err
			}
			ctx.logger = logger
			ctx.registry = categoryregistry.New(logger)
			ctx.color = isatty.IsTerminal(os.Stdout.Fd())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(
		newPredictCommand(ctx),
		newImportCSVCommand(ctx),
		newValidateDataCommand(ctx),
		newEvaluateCommand(ctx),
		newCrossvalCommand(ctx),
		newBenchmarkCommand(ctx),
	)

	return rootCmd
}
