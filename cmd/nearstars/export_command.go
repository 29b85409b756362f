package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"nearstars/internal/archive"
	"nearstars/internal/config"
	"nearstars/internal/logging"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var dbPath string

	openStore := func() (*archive.Store, error) {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return nil, err
		}
		path := cfg.Archive.Path
		if strings.TrimSpace(dbPath) != "" {
			if path, err = config.ExpandPath(dbPath); err != nil {
				return nil, fmt.Errorf("resolve database path: %w", err)
			}
		}
		return archive.OpenPath(path)
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Store the normalized catalog as a snapshot in SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := ctx.loadTable(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.commandLogger(cmd)
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return fmt.Errorf("export snapshot: %w", err)
			}
			defer store.Close()

			snap, err := store.Write(cmd.Context(), table, ctx.runID)
			if err != nil {
				return fmt.Errorf("export snapshot: %w", err)
			}
			logging.NewComponentLogger(logger, "archive").Info("snapshot stored",
				logging.Int64("snapshot", snap.ID),
				logging.String(logging.FieldPath, store.Path()),
				logging.Int("records", snap.RecordCount),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Stored snapshot %d (%d records, %d issues) in %s\n",
				snap.ID, snap.RecordCount, snap.IssueCount, store.Path())
			return nil
		},
	}
	exportCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Snapshot database path (overrides archive.path)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			snaps, err := store.Snapshots(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(snaps) == 0 {
				fmt.Fprintln(out, "No snapshots stored")
				return nil
			}
			headers := []string{"ID", "Created", "Records", "Issues", "Source", "Run"}
			aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft}
			rows := make([][]string, 0, len(snaps))
			for _, s := range snaps {
				rows = append(rows, []string{
					strconv.FormatInt(s.ID, 10),
					s.CreatedAt.Local().Format(time.DateTime),
					strconv.Itoa(s.RecordCount),
					strconv.Itoa(s.IssueCount),
					s.Source,
					s.RunID,
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns, shouldColorize(out)))
			return nil
		},
	}
	exportCmd.AddCommand(listCmd)

	var (
		showLimit int
		showJSON  bool
	)
	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Print a stored snapshot (latest when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			var id int64
			if len(args) == 1 {
				if id, err = parseSnapshotID(args[0]); err != nil {
					return err
				}
			} else {
				latest, err := store.Latest(cmd.Context())
				if err != nil {
					return err
				}
				id = latest.ID
			}

			table, err := store.Table(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !showJSON {
				fmt.Fprintf(cmd.OutOrStdout(), "Snapshot %d of %s\n", id, table.Source())
			}
			return printRecords(cmd, table, showLimit, showJSON)
		},
	}
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 0, "Show at most this many records (0 = all)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	exportCmd.AddCommand(showCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSnapshotID(args[0])
			if err != nil {
				return err
			}
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %d\n", id)
			return nil
		},
	}
	exportCmd.AddCommand(deleteCmd)

	return exportCmd
}

func parseSnapshotID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid snapshot id %q", raw)
	}
	return id, nil
}
