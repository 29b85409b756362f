package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	flags := ctx.flags

	rootCmd := &cobra.Command{
		Use:           "nearstars",
		Short:         "Plot nearby stars on a temperature–luminosity chart",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.catalog, "catalog", "", "Catalog file path (overrides catalog.path)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")

	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newSummaryCommand(ctx))
	rootCmd.AddCommand(newCurvesCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// execute runs the command tree and releases the run's resources afterwards.
func execute(args []string, configure func(*cobra.Command)) error {
	ctx := newCommandContext(&globalFlags{})
	cmd := newRootCommand(ctx)
	if args != nil {
		cmd.SetArgs(args)
	}
	if configure != nil {
		configure(cmd)
	}
	err := cmd.Execute()
	if closeErr := ctx.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
