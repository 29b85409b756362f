package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nearstars/internal/config"
	"nearstars/internal/fixedwidth"
)

// Row maps default layout column names to raw field text.
type Row map[string]string

// SampleRows returns a small catalog covering solar, Jupiter and Earth radius
// tags plus missing and annotated values.
func SampleRows() []Row {
	return []Row{
		{"STAR": "Proxima Centauri", "DIST": "4.24", "Mv": "15.53", "BOL-LUM": "0.0017", "RADIUS": "0.154", "Teff": "3042K"},
		{"STAR": "Alpha Centauri A", "DIST": "4.37ly", "Mv": "4.38", "BOL-LUM": "1.519", "RADIUS": "1.2234", "Teff": "5790"},
		{"STAR": "Sirius A", "DIST": "8.60", "Mv": "1.42", "BOL-LUM": "25.4", "RADIUS": "1.711", "Teff": "9940K"},
		{"STAR": "WISE 0855-0714", "DIST": "7.43", "Mv": "----", "BOL-LUM": "----", "RADIUS": "1.00Rj", "RADUNIT": "Rj", "Teff": "285K"},
		{"STAR": "Proxima d", "DIST": "4.24", "RADIUS": "0.81Re", "RADUNIT": "Re"},
	}
}

// DefaultLayout returns the fixed-width layout used by config.Default.
func DefaultLayout(t testing.TB) fixedwidth.Layout {
	t.Helper()
	layout, err := fixedwidth.NewLayout(config.DefaultNames, config.DefaultWidths)
	if err != nil {
		t.Fatalf("default layout: %v", err)
	}
	return layout
}

// CatalogText renders rows in the default layout behind the two header lines.
func CatalogText(t testing.TB, rows []Row) string {
	t.Helper()

	layout := DefaultLayout(t)
	names := layout.Names()
	widths := layout.Widths()

	rules := make([]string, len(widths))
	for i, w := range widths {
		rules[i] = strings.Repeat("-", w-1)
	}

	lines := []string{mustFormat(t, layout, names), mustFormat(t, layout, rules)}
	for _, row := range rows {
		fields := make([]string, len(names))
		for i, name := range names {
			fields[i] = row[name]
		}
		lines = append(lines, mustFormat(t, layout, fields))
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteCatalog writes rows as a fixed-width catalog file at path.
func WriteCatalog(t testing.TB, path string, rows []Row) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(CatalogText(t, rows)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustFormat(t testing.TB, layout fixedwidth.Layout, fields []string) string {
	t.Helper()
	line, err := layout.Format(fields)
	if err != nil {
		t.Fatalf("format catalog line: %v", err)
	}
	return line
}
