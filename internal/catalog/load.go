package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"nearstars/internal/config"
	"nearstars/internal/fixedwidth"
	"nearstars/internal/logging"
)

// HeaderRows is the number of leading non-data lines in the catalog format.
const HeaderRows = 2

// Columns names the layout columns that feed each StarRecord field.
type Columns struct {
	Name        string
	Distance    string
	Magnitude   string
	Luminosity  string
	Radius      string
	RadiusUnit  string
	Temperature string
}

func (c Columns) numeric() []struct {
	column string
	field  Field
} {
	return []struct {
		column string
		field  Field
	}{
		{c.Temperature, FieldTemperature},
		{c.Magnitude, FieldMagnitude},
		{c.Distance, FieldDistance},
		{c.Radius, FieldRadiusRaw},
		{c.Luminosity, FieldLuminosity},
	}
}

func (c Columns) all() map[string]string {
	return map[string]string{
		"name":        c.Name,
		"distance":    c.Distance,
		"magnitude":   c.Magnitude,
		"luminosity":  c.Luminosity,
		"radius":      c.Radius,
		"radius_unit": c.RadiusUnit,
		"temperature": c.Temperature,
	}
}

// Loader reads catalog files with a fixed layout.
type Loader struct {
	layout  fixedwidth.Layout
	columns Columns
	logger  *slog.Logger
}

// NewLoader checks that every designated column exists in layout.
func NewLoader(layout fixedwidth.Layout, columns Columns, logger *slog.Logger) (*Loader, error) {
	for role, name := range columns.all() {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("catalog columns: %s column is not set", role)
		}
		if _, ok := layout.Index(name); !ok {
			return nil, fmt.Errorf("catalog columns: %s column %q is not in the layout", role, name)
		}
	}
	return &Loader{
		layout:  layout,
		columns: columns,
		logger:  logging.NewComponentLogger(logger, "catalog"),
	}, nil
}

// NewLoaderFromConfig builds a Loader from the catalog section of cfg.
func NewLoaderFromConfig(cfg *config.Config, logger *slog.Logger) (*Loader, error) {
	layout, err := fixedwidth.NewLayout(cfg.Catalog.Names, cfg.Catalog.Widths)
	if err != nil {
		return nil, fmt.Errorf("catalog layout: %w", err)
	}
	cols := cfg.Catalog.Columns
	return NewLoader(layout, Columns{
		Name:        cols.Name,
		Distance:    cols.Distance,
		Magnitude:   cols.Magnitude,
		Luminosity:  cols.Luminosity,
		Radius:      cols.Radius,
		RadiusUnit:  cols.RadiusUnit,
		Temperature: cols.Temperature,
	}, logger)
}

// Load reads and normalizes the catalog at path.
func (l *Loader) Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingInputFile, path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingInputFile, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrMissingInputFile, path)
	}
	return l.LoadReader(f, path)
}

// LoadReader normalizes a catalog stream. source labels the table and log
// lines.
func (l *Loader) LoadReader(r io.Reader, source string) (*Table, error) {
	res, err := fixedwidth.Read(r, l.layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingInputFile, source, err)
	}

	var issues []Issue
	malformed := 0
	for _, rej := range res.Rejected {
		if rej.Seq < HeaderRows {
			l.logger.Debug("header line is not valid text",
				logging.String("source", source),
				logging.Int("line", rej.Line),
			)
			continue
		}
		malformed++
		l.logger.Warn("skipping malformed catalog line",
			logging.String("source", source),
			logging.Int("line", rej.Line),
			logging.String("reason", rej.Reason),
		)
		issues = append(issues, Issue{Line: rej.Line, Err: rej})
	}

	rows := DropHeaderRows(res.Rows)
	records := make([]StarRecord, 0, len(rows))
	for i, row := range rows {
		rec, rowIssues := l.normalizeRow(row)
		rec.Index = i
		for _, issue := range rowIssues {
			l.logger.Debug("recovered catalog value",
				logging.String("source", source),
				logging.Int("line", issue.Line),
				logging.String("column", issue.Column),
				logging.String("raw", issue.Raw),
				logging.Error(issue.Err),
			)
		}
		issues = append(issues, rowIssues...)
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRecords, source)
	}

	l.logger.Info("catalog loaded",
		logging.String("source", source),
		logging.Int("records", len(records)),
		logging.Int("malformed", malformed),
		logging.Int("issues", len(issues)),
	)
	return NewTable(source, records, issues), nil
}

// DropHeaderRows removes the rows that came from the first HeaderRows
// non-blank source lines. Rank is taken from Row.Seq, so a header line that
// failed to slice still counts and never pulls a data row into its place.
// The remaining rows keep their source line numbers.
func DropHeaderRows(rows []fixedwidth.Row) []fixedwidth.Row {
	var out []fixedwidth.Row
	for _, row := range rows {
		if row.Seq >= HeaderRows {
			out = append(out, row)
		}
	}
	return out
}

func (l *Loader) normalizeRow(row fixedwidth.Row) (StarRecord, []Issue) {
	rec := StarRecord{
		Line: row.Line,
		Name: row.Get(l.columns.Name),
	}
	var issues []Issue
	for _, col := range l.columns.numeric() {
		raw := row.Get(col.column)
		v, err := ParseValue(raw)
		if err != nil && strings.TrimSpace(raw) != "" {
			issues = append(issues, Issue{Line: row.Line, Column: col.column, Raw: raw, Err: err})
		}
		switch col.field {
		case FieldTemperature:
			rec.EffectiveTemperature = v
		case FieldMagnitude:
			rec.VisualMagnitude = v
		case FieldDistance:
			rec.DistanceLy = v
		case FieldRadiusRaw:
			rec.RadiusRaw = v
		case FieldLuminosity:
			rec.BolometricLuminosity = v
		}
	}

	rec.RadiusTag = row.Get(l.columns.RadiusUnit)
	rec.RadiusSolar, rec.RadiusUnit, rec.RadiusTagKnown = ConvertRadius(rec.RadiusRaw, rec.RadiusTag)
	if !rec.RadiusTagKnown {
		issues = append(issues, Issue{
			Line:   row.Line,
			Column: l.columns.RadiusUnit,
			Raw:    rec.RadiusTag,
			Err:    fmt.Errorf("%w: treated as solar radii", ErrUnknownRadiusTag),
		})
	}
	return rec, issues
}
