package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nearstars/internal/blackbody"
	"nearstars/internal/chart"
	"nearstars/internal/config"
)

func newCurvesCommand(ctx *commandContext) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "curves",
		Short: "Print the blackbody radius isolines used as chart overlays",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ch, err := cfg.ChartFor(profile)
			if err != nil {
				return err
			}
			opts, err := chart.OptionsFromConfig(ch)
			if err != nil {
				return err
			}
			grid, err := chart.GridFromConfig(ch)
			if err != nil {
				return fmt.Errorf("blackbody grid: %w", err)
			}
			logger, err := ctx.commandLogger(cmd)
			if err != nil {
				return err
			}

			placed := make(map[float64]chart.Label)
			for _, l := range chart.New(opts, logger).Labels(grid) {
				placed[l.Radius] = l
			}

			headers := []string{
				"Radius (R☉)",
				"T at 1 L☉ (K)",
				"L at " + formatKelvin(ch.LabelHot),
				"L at " + formatKelvin(ch.LabelCool),
				"Label",
			}
			aligns := []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft}
			rows := make([][]string, 0, len(grid.Radii))
			for _, radius := range grid.Radii {
				label := "-"
				if l, ok := placed[radius]; ok {
					label = fmt.Sprintf("%s at %s", l.Text, formatKelvin(l.Temperature))
				}
				rows = append(rows, []string{
					strconv.FormatFloat(radius, 'g', 3, 64),
					strconv.FormatFloat(blackbody.TemperatureFor(1, radius), 'f', 0, 64),
					strconv.FormatFloat(blackbody.Luminosity(ch.LabelHot, radius), 'e', 3, 64),
					strconv.FormatFloat(blackbody.Luminosity(ch.LabelCool, radius), 'e', 3, 64),
					label,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile %s: %d temperatures from %s to %s\n",
				ch.Profile, len(grid.Temperatures), formatKelvin(ch.GridTempMin), formatKelvin(ch.GridTempMax))
			fmt.Fprintln(out, renderTable(headers, rows, aligns, shouldColorize(out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Chart profile ("+strings.Join(config.Profiles(), ", ")+")")
	return cmd
}

func formatKelvin(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64) + " K"
}
