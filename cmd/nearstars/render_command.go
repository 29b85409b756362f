package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nearstars/internal/chart"
	"nearstars/internal/config"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var (
		profile     string
		output      string
		dpi         int
		transparent bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the temperature–luminosity chart to PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ch, err := cfg.ChartFor(profile)
			if err != nil {
				return err
			}
			if strings.TrimSpace(output) != "" {
				if ch.Output, err = config.ExpandPath(output); err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
			}
			if cmd.Flags().Changed("dpi") {
				if dpi <= 0 {
					return errors.New("--dpi must be positive")
				}
				ch.DPI = dpi
			}
			if cmd.Flags().Changed("transparent") {
				ch.Transparent = &transparent
			}

			table, err := ctx.loadTable(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.commandLogger(cmd)
			if err != nil {
				return err
			}

			opts, err := chart.OptionsFromConfig(ch)
			if err != nil {
				return fmt.Errorf("render chart: %w", err)
			}
			grid, err := chart.GridFromConfig(ch)
			if err != nil {
				return fmt.Errorf("render chart: %w", err)
			}
			renderer := chart.New(opts, logger)
			if err := renderer.RenderFile(ch.Output, table, grid); err != nil {
				return fmt.Errorf("render chart: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s chart to %s (%d of %d stars plotted)\n",
				ch.Profile, ch.Output, len(renderer.Stars(table)), table.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Chart profile ("+strings.Join(config.Profiles(), ", ")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG path (overrides chart.output)")
	cmd.Flags().IntVar(&dpi, "dpi", 0, "Output resolution in dots per inch")
	cmd.Flags().BoolVar(&transparent, "transparent", false, "Use a transparent background")
	return cmd
}
