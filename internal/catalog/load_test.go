package catalog_test

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nearstars/internal/catalog"
	"nearstars/internal/fixedwidth"
	"nearstars/internal/logging"
	"nearstars/internal/testsupport"
	"nearstars/internal/units"
)

func newLoader(t *testing.T) *catalog.Loader {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	loader, err := catalog.NewLoaderFromConfig(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("NewLoaderFromConfig: %v", err)
	}
	return loader
}

func TestLoadSingleRecordSample(t *testing.T) {
	text := testsupport.CatalogText(t, []testsupport.Row{
		{"STAR": "Sun twin", "DIST": "4.2ly", "RADIUS": "1.00Rj", "RADUNIT": "Rj", "Teff": "5778K"},
	})
	if got := strings.Count(text, "\n"); got != 3 {
		t.Fatalf("sample should have 3 lines, got %d", got)
	}

	table, err := newLoader(t).LoadReader(strings.NewReader(text), "sample")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", table.Len())
	}
	rec := table.Record(0)
	if rec.Index != 0 || rec.Line != 3 {
		t.Fatalf("index/line = %d/%d, want 0/3", rec.Index, rec.Line)
	}
	if got := rec.EffectiveTemperature.Or(0); got != 5778 {
		t.Fatalf("temperature = %v", got)
	}
	if got := rec.DistanceLy.Or(0); got != 4.2 {
		t.Fatalf("distance = %v", got)
	}
	if got := rec.RadiusSolar.Or(0); math.Abs(got-0.1004) > 1e-4 {
		t.Fatalf("radius_solar = %v, want ~0.1004", got)
	}
	if got := rec.RadiusRaw.Or(0); got != 1 {
		t.Fatalf("radius_raw should be untouched, got %v", got)
	}
	if rec.RadiusUnit != units.Jupiter || !rec.RadiusTagKnown {
		t.Fatalf("radius unit = %v known=%v", rec.RadiusUnit, rec.RadiusTagKnown)
	}
	if !rec.VisualMagnitude.IsMissing() || !rec.BolometricLuminosity.IsMissing() {
		t.Fatal("blank columns should be missing")
	}
	if len(table.Issues()) != 0 {
		t.Fatalf("blank fields should not raise issues: %v", table.Issues())
	}
}

func TestLoadSampleCatalog(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSampleCatalog())
	loader, err := catalog.NewLoaderFromConfig(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("NewLoaderFromConfig: %v", err)
	}

	table, err := loader.Load(cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Source() != cfg.Catalog.Path {
		t.Fatalf("source = %q", table.Source())
	}

	var names []string
	for i, rec := range table.Records() {
		if rec.Index != i {
			t.Fatalf("record %d has index %d", i, rec.Index)
		}
		names = append(names, rec.Name)
	}
	want := []string{"Proxima Centauri", "Alpha Centauri A", "Sirius A", "WISE 0855-0714", "Proxima d"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	// "----" placeholders are recovered as missing with an issue each.
	issues := table.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(issues), issues)
	}
	for _, issue := range issues {
		if !errors.Is(issue, catalog.ErrUnparsableValue) || issue.Raw != "----" {
			t.Fatalf("unexpected issue %v", issue)
		}
	}

	lo, ok := catalog.MinKnown(table.Column(catalog.FieldMagnitude))
	if !ok || lo != 1.42 {
		t.Fatalf("min magnitude = %v, %v", lo, ok)
	}

	earth := table.Record(4).RadiusSolar.Or(0)
	if math.Abs(earth-0.81/109.18) > 1e-12 {
		t.Fatalf("earth-tagged radius = %v", earth)
	}
}

func TestLoadStats(t *testing.T) {
	text := testsupport.CatalogText(t, testsupport.SampleRows())
	table, err := newLoader(t).LoadReader(strings.NewReader(text), "sample")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	stats := map[catalog.Field]catalog.ColumnStats{}
	for _, s := range table.Stats() {
		stats[s.Field] = s
	}
	temp := stats[catalog.FieldTemperature]
	if temp.Known != 4 || temp.Missing != 1 || temp.Min != 285 || temp.Max != 9940 {
		t.Fatalf("temperature stats = %+v", temp)
	}
	dist := stats[catalog.FieldDistance]
	if dist.Known != 5 || dist.Min != 4.24 || dist.Max != 8.6 {
		t.Fatalf("distance stats = %+v", dist)
	}
}

func TestLoadUnknownRadiusTag(t *testing.T) {
	text := testsupport.CatalogText(t, []testsupport.Row{
		{"STAR": "Odd", "RADIUS": "2.5", "RADUNIT": "Rs", "Teff": "4000"},
	})
	table, err := newLoader(t).LoadReader(strings.NewReader(text), "sample")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	rec := table.Record(0)
	if rec.RadiusTagKnown || rec.RadiusUnit != units.Solar || rec.RadiusSolar.Or(0) != 2.5 {
		t.Fatalf("unexpected radius conversion: %+v", rec)
	}
	issues := table.Issues()
	if len(issues) != 1 || !errors.Is(issues[0], catalog.ErrUnknownRadiusTag) {
		t.Fatalf("expected one unknown tag issue, got %v", issues)
	}
}

func TestLoadRecordsMalformedLines(t *testing.T) {
	text := testsupport.CatalogText(t, []testsupport.Row{
		{"STAR": "Good", "Teff": "3000"},
	})
	text += "\xff\xfe broken\n"

	table, err := newLoader(t).LoadReader(strings.NewReader(text), "sample")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected malformed line to be skipped, got %d records", table.Len())
	}
	issues := table.Issues()
	if len(issues) != 1 || !errors.Is(issues[0], fixedwidth.ErrMalformedRecord) || issues[0].Line != 4 {
		t.Fatalf("unexpected issues %v", issues)
	}
}

func TestLoadErrors(t *testing.T) {
	loader := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, catalog.ErrMissingInputFile) {
		t.Fatalf("expected ErrMissingInputFile, got %v", err)
	}

	_, err = loader.Load(t.TempDir())
	if !errors.Is(err, catalog.ErrMissingInputFile) {
		t.Fatalf("expected ErrMissingInputFile for directory, got %v", err)
	}

	headerOnly := testsupport.CatalogText(t, nil)
	_, err = loader.LoadReader(strings.NewReader(headerOnly), "empty")
	if !errors.Is(err, catalog.ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestNewLoaderRejectsUnknownColumn(t *testing.T) {
	layout := testsupport.DefaultLayout(t)
	_, err := catalog.NewLoader(layout, catalog.Columns{
		Name: "STAR", Distance: "DIST", Magnitude: "Mv", Luminosity: "BOL-LUM",
		Radius: "RADIUS", RadiusUnit: "RADUNIT", Temperature: "TEFF",
	}, nil)
	if err == nil || !strings.Contains(err.Error(), `"TEFF"`) {
		t.Fatalf("expected unknown column error, got %v", err)
	}
}

func TestDropHeaderRows(t *testing.T) {
	layout := testsupport.DefaultLayout(t)
	res, err := fixedwidth.Read(strings.NewReader("a\nb\nc\nd\n"), layout)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	rows := catalog.DropHeaderRows(res.Rows)
	if len(rows) != 2 || rows[0].Line != 3 {
		t.Fatalf("unexpected rows after header drop: %d first line %d", len(rows), rows[0].Line)
	}
	if got := catalog.DropHeaderRows(res.Rows[:2]); got != nil {
		t.Fatalf("expected nil for header-only input, got %v", got)
	}
}

func TestLoadMalformedHeaderKeepsFirstRecord(t *testing.T) {
	text := testsupport.CatalogText(t, []testsupport.Row{
		{"STAR": "First", "Teff": "3000"},
		{"STAR": "Second", "Teff": "4000"},
	})
	lines := strings.SplitN(text, "\n", 2)
	text = "\xb0 header in latin-1\n" + lines[1]

	table, err := newLoader(t).LoadReader(strings.NewReader(text), "sample")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	var names []string
	for _, rec := range table.Records() {
		names = append(names, rec.Name)
	}
	if diff := cmp.Diff([]string{"First", "Second"}, names); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if issues := table.Issues(); len(issues) != 0 {
		t.Fatalf("header lines should not be reported, got %v", issues)
	}
}

func TestLoadMultiByteNameKeepsColumnsAligned(t *testing.T) {
	text := testsupport.CatalogText(t, []testsupport.Row{
		{"STAR": "Röss 128", "NOTES": "flare star 123", "BOL-LUM": "0.00362", "Teff": "3192K"},
	})

	table, err := newLoader(t).LoadReader(strings.NewReader(text), "sample")
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	rec := table.Record(0)
	if rec.Name != "Röss 128" {
		t.Fatalf("name = %q", rec.Name)
	}
	if got := rec.BolometricLuminosity.Or(0); got != 0.00362 {
		t.Fatalf("luminosity = %v, want 0.00362", got)
	}
	if got := rec.EffectiveTemperature.Or(0); got != 3192 {
		t.Fatalf("temperature = %v, want 3192", got)
	}
	if issues := table.Issues(); len(issues) != 0 {
		t.Fatalf("unexpected issues %v", issues)
	}
}
