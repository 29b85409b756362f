package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"nearstars/internal/catalog"
	"nearstars/internal/units"
)

// Snapshot describes one exported catalog.
type Snapshot struct {
	ID          int64
	RunID       string
	Source      string
	CreatedAt   time.Time
	RecordCount int
	IssueCount  int
}

// Write stores every record and issue of table as a new snapshot.
func (s *Store) Write(ctx context.Context, table *catalog.Table, runID string) (*Snapshot, error) {
	ctx = ensureContext(ctx)
	if table == nil {
		return nil, errors.New("write snapshot: nil table")
	}

	snap := &Snapshot{
		RunID:       runID,
		Source:      table.Source(),
		CreatedAt:   time.Now().UTC(),
		RecordCount: table.Len(),
		IssueCount:  len(table.Issues()),
	}

	err := retryOnBusy(ctx, func() error {
		id, err := s.writeTx(ctx, table, snap)
		if err != nil {
			return err
		}
		snap.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Store) writeTx(ctx context.Context, table *catalog.Table, snap *Snapshot) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (run_id, source, created_at, record_count, issue_count)
         VALUES (?, ?, ?, ?, ?)`,
		snap.RunID,
		snap.Source,
		snap.CreatedAt.Format(time.RFC3339Nano),
		snap.RecordCount,
		snap.IssueCount,
	)
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	starStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO stars (
            snapshot_id, idx, line, name, distance_ly, visual_magnitude,
            bolometric_luminosity, radius_raw, radius_tag, radius_unit,
            radius_tag_known, radius_solar, effective_temperature
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare star insert: %w", err)
	}
	defer starStmt.Close()

	for _, rec := range table.Records() {
		if _, err := starStmt.ExecContext(ctx,
			id,
			rec.Index,
			rec.Line,
			rec.Name,
			nullableFloat(rec.DistanceLy),
			nullableFloat(rec.VisualMagnitude),
			nullableFloat(rec.BolometricLuminosity),
			nullableFloat(rec.RadiusRaw),
			rec.RadiusTag,
			rec.RadiusUnit.String(),
			boolToInt(rec.RadiusTagKnown),
			nullableFloat(rec.RadiusSolar),
			nullableFloat(rec.EffectiveTemperature),
		); err != nil {
			return 0, fmt.Errorf("insert star %d: %w", rec.Index, err)
		}
	}

	for _, issue := range table.Issues() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO issues (snapshot_id, line, column_name, raw, message) VALUES (?, ?, ?, ?, ?)`,
			id, issue.Line, issue.Column, issue.Raw, issue.Error(),
		); err != nil {
			return 0, fmt.Errorf("insert issue: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit snapshot: %w", err)
	}
	return id, nil
}

// Snapshots lists stored snapshots, newest first.
func (s *Store) Snapshots(ctx context.Context) ([]Snapshot, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, source, created_at, record_count, issue_count
         FROM snapshots ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *snap)
	}
	return out, rows.Err()
}

// Latest returns the most recent snapshot or ErrSnapshotNotFound.
func (s *Store) Latest(ctx context.Context) (*Snapshot, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT id, run_id, source, created_at, record_count, issue_count
         FROM snapshots ORDER BY id DESC LIMIT 1`)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	return snap, err
}

// Records returns the stored records of a snapshot in index order.
func (s *Store) Records(ctx context.Context, snapshotID int64) ([]catalog.StarRecord, error) {
	ctx = ensureContext(ctx)

	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM snapshots WHERE id = ?", snapshotID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check snapshot: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotNotFound, snapshotID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, line, name, distance_ly, visual_magnitude, bolometric_luminosity,
                radius_raw, radius_tag, radius_unit, radius_tag_known, radius_solar,
                effective_temperature
         FROM stars WHERE snapshot_id = ? ORDER BY idx`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("query stars: %w", err)
	}
	defer rows.Close()

	var out []catalog.StarRecord
	for rows.Next() {
		var (
			rec                                  catalog.StarRecord
			dist, mag, lum, rawRadius, solar, te sql.NullFloat64
			unitName                             string
			tagKnown                             int
		)
		if err := rows.Scan(
			&rec.Index, &rec.Line, &rec.Name, &dist, &mag, &lum,
			&rawRadius, &rec.RadiusTag, &unitName, &tagKnown, &solar, &te,
		); err != nil {
			return nil, fmt.Errorf("scan star: %w", err)
		}
		unit, err := units.ParseRadiusUnit(unitName)
		if err != nil {
			return nil, fmt.Errorf("star %d: %w", rec.Index, err)
		}
		rec.RadiusUnit = unit
		rec.RadiusTagKnown = tagKnown != 0
		rec.DistanceLy = valueFromNull(dist)
		rec.VisualMagnitude = valueFromNull(mag)
		rec.BolometricLuminosity = valueFromNull(lum)
		rec.RadiusRaw = valueFromNull(rawRadius)
		rec.RadiusSolar = valueFromNull(solar)
		rec.EffectiveTemperature = valueFromNull(te)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Table rebuilds a catalog.Table from a stored snapshot.
func (s *Store) Table(ctx context.Context, snapshotID int64) (*catalog.Table, error) {
	var source string
	err := s.db.QueryRowContext(ensureContext(ctx), "SELECT source FROM snapshots WHERE id = ?", snapshotID).Scan(&source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotNotFound, snapshotID)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	records, err := s.Records(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	return catalog.NewTable(source, records, nil), nil
}

// Delete removes a snapshot and its rows.
func (s *Store) Delete(ctx context.Context, snapshotID int64) error {
	ctx = ensureContext(ctx)
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", snapshotID)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrSnapshotNotFound, snapshotID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*Snapshot, error) {
	var (
		snap    Snapshot
		created string
	)
	if err := row.Scan(&snap.ID, &snap.RunID, &snap.Source, &created, &snap.RecordCount, &snap.IssueCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot time %q: %w", created, err)
	}
	snap.CreatedAt = ts
	return &snap, nil
}

func nullableFloat(v catalog.Value) sql.NullFloat64 {
	f, ok := v.Float()
	return sql.NullFloat64{Float64: f, Valid: ok}
}

func valueFromNull(v sql.NullFloat64) catalog.Value {
	if !v.Valid {
		return catalog.Missing()
	}
	return catalog.Known(v.Float64)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
