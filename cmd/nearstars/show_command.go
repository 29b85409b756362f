package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"nearstars/internal/catalog"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the normalized catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := ctx.loadTable(cmd)
			if err != nil {
				return err
			}
			return printRecords(cmd, table, limit, jsonOut)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many records (0 = all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// printRecords writes up to limit records of table as a table or JSON.
func printRecords(cmd *cobra.Command, table *catalog.Table, limit int, jsonOut bool) error {
	records := table.Records()
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	if jsonOut {
		out := make([]starJSON, 0, len(records))
		for _, rec := range records {
			out = append(out, newStarJSON(rec))
		}
		return writeJSON(cmd, out)
	}

	headers := []string{"#", "Star", "Teff (K)", "L (L☉)", "Radius", "Unit", "R (R☉)", "Dist (ly)", "Mv"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(rec.Index),
			rec.Name,
			rec.EffectiveTemperature.String(),
			rec.BolometricLuminosity.String(),
			rec.RadiusRaw.String(),
			radiusTagLabel(rec),
			rec.RadiusSolar.String(),
			rec.DistanceLy.String(),
			rec.VisualMagnitude.String(),
		})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(headers, rows, aligns, shouldColorize(out)))
	if len(records) < table.Len() {
		fmt.Fprintf(out, "Showing %d of %d records\n", len(records), table.Len())
	}
	return nil
}

func radiusTagLabel(rec catalog.StarRecord) string {
	if !rec.RadiusTagKnown {
		return rec.RadiusTag + "?"
	}
	if tag := rec.RadiusUnit.Tag(); tag != "" {
		return tag
	}
	return "R☉"
}
