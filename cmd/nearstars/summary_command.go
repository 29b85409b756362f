package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nearstars/internal/catalog"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var lang string
	var issueLimit int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize catalog columns and load issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(strings.TrimSpace(lang))
			if err != nil {
				return fmt.Errorf("parse --lang %q: %w", lang, err)
			}
			table, err := ctx.loadTable(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			p := message.NewPrinter(tag)

			lines := renderSectionHeader("Catalog", colorize)
			lines = append(lines,
				p.Sprintf("Source:   %s", table.Source()),
				p.Sprintf("Records:  %d", table.Len()),
				p.Sprintf("Issues:   %d", len(table.Issues())),
				"",
			)
			lines = append(lines, renderSectionHeader("Columns", colorize)...)
			fmt.Fprintln(out, strings.Join(lines, "\n"))

			headers := []string{"Column", "Known", "Missing", "Min", "Max"}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight}
			var rows [][]string
			for _, s := range table.Stats() {
				lo, hi := "-", "-"
				if s.Known > 0 {
					lo = formatStat(p, s.Min)
					hi = formatStat(p, s.Max)
				}
				rows = append(rows, []string{
					s.Field.String(),
					p.Sprintf("%d", s.Known),
					p.Sprintf("%d", s.Missing),
					lo,
					hi,
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns, colorize))

			issues := table.Issues()
			if len(issues) == 0 || issueLimit == 0 {
				return nil
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, strings.Join(renderSectionHeader("Issues", colorize), "\n"))
			shown := issues
			if issueLimit > 0 && issueLimit < len(shown) {
				shown = shown[:issueLimit]
			}
			for _, issue := range shown {
				fmt.Fprintf(out, "  %s\n", issueText(issue))
			}
			if len(shown) < len(issues) {
				fmt.Fprintln(out, p.Sprintf("  … %d more", len(issues)-len(shown)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "BCP 47 language tag used for number formatting")
	cmd.Flags().IntVar(&issueLimit, "issues", 10, "Maximum issues to list (-1 = all, 0 = none)")
	return cmd
}

// formatStat keeps small magnitudes readable while grouping large ones.
func formatStat(p *message.Printer, v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	if abs != 0 && (abs < 0.01 || abs >= 1e7) {
		return p.Sprintf("%.3e", v)
	}
	return p.Sprintf("%.2f", v)
}

func issueText(issue catalog.Issue) string {
	if issue.Column == "" {
		return issue.Error()
	}
	return fmt.Sprintf("line %d %s=%q: %v", issue.Line, issue.Column, strings.TrimSpace(issue.Raw), issue.Err)
}
