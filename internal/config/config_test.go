package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pelletier/go-toml/v2"

	"nearstars/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("NEARSTARS_CATALOG", "")
	work := t.TempDir()
	chdir(t, work)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "nearstars", "config.toml"); resolved != want {
		t.Fatalf("resolved path = %q, want %q", resolved, want)
	}
	if want := filepath.Join(work, "data", "nearest-stars"); cfg.Catalog.Path != want {
		t.Fatalf("catalog path = %q, want %q", cfg.Catalog.Path, want)
	}
	if diff := cmp.Diff(config.DefaultWidths, cfg.Catalog.Widths); diff != "" {
		t.Fatalf("widths mismatch (-want +got):\n%s", diff)
	}
	if cfg.Chart.Profile != config.ProfileNearby {
		t.Fatalf("profile = %q", cfg.Chart.Profile)
	}
	if cfg.Chart.GridPoints != 1000 || cfg.Chart.DPI != 300 || !cfg.Chart.IsTransparent() {
		t.Fatalf("unexpected nearby chart defaults: %+v", cfg.Chart)
	}
	if cfg.Chart.Output != filepath.Join(work, "nearby-stars.png") {
		t.Fatalf("chart output = %q", cfg.Chart.Output)
	}
	if diff := cmp.Diff([]float64{1e-3, 1e-2, 1e-1, 1, 1e1, 1e2, 1e3}, cfg.Chart.RadiusLevels, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Fatalf("radius levels mismatch (-want +got):\n%s", diff)
	}
	if cfg.Archive.Path != filepath.Join(tempHome, ".local", "share", "nearstars", "catalog.db") {
		t.Fatalf("archive path = %q", cfg.Archive.Path)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadUsesCatalogEnvFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	target := filepath.Join(t.TempDir(), "stars.txt")
	t.Setenv("NEARSTARS_CATALOG", target)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Path != target {
		t.Fatalf("catalog path = %q, want %q", cfg.Catalog.Path, target)
	}
}

func TestLoadCustomPathAppliesOverridesOnTopOfProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nearstars.toml")

	type payload struct {
		Catalog struct {
			Path string `toml:"path"`
		} `toml:"catalog"`
		Chart struct {
			Profile     string `toml:"profile"`
			DPI         int    `toml:"dpi"`
			Transparent bool   `toml:"transparent"`
		} `toml:"chart"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Catalog.Path = filepath.Join(dir, "catalog.txt")
	custom.Chart.Profile = "Nearest"
	custom.Chart.DPI = 72
	custom.Chart.Transparent = true
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected config at %q, got %q (exists=%v)", configPath, resolved, exists)
	}
	ch := cfg.Chart
	if ch.Profile != config.ProfileNearest {
		t.Fatalf("profile = %q", ch.Profile)
	}
	if ch.DPI != 72 || !ch.IsTransparent() {
		t.Fatalf("explicit overrides lost: dpi=%d transparent=%v", ch.DPI, ch.IsTransparent())
	}
	if tMin, _ := ch.TemperatureRange(); ch.GridPoints != 50 || ch.DistanceCap() != 25 || tMin != 250 || ch.SunSize != 100 {
		t.Fatalf("nearest profile values not applied: %+v", ch)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("log format = %q", cfg.Logging.Format)
	}
}

func TestChartForSwitchesProfileKeepingOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "nearstars.toml")
	content := "[chart]\nprofile = \"nearby\"\ndpi = 120\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	same, err := cfg.ChartFor("")
	if err != nil {
		t.Fatalf("ChartFor(\"\"): %v", err)
	}
	if same.Profile != config.ProfileNearby || same.GridPoints != 1000 {
		t.Fatalf("unexpected configured chart: %+v", same)
	}

	nearest, err := cfg.ChartFor("nearest")
	if err != nil {
		t.Fatalf("ChartFor(nearest): %v", err)
	}
	if nearest.DPI != 120 {
		t.Fatalf("dpi override lost: %d", nearest.DPI)
	}
	if nearest.GridPoints != 50 || nearest.IsTransparent() || nearest.Title != "" {
		t.Fatalf("nearest profile not applied: %+v", nearest)
	}

	if _, err := cfg.ChartFor("galaxy"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown profile, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cases := map[string]string{
		"mismatched widths": "[catalog]\nwidths = [1, 2]\nnames = [\"a\"]\n",
		"unknown column":    "[catalog.columns]\nradius = \"RAD\"\n",
		"bad lum range":     "[chart]\nlum_min = 10.0\nlum_max = 1.0\n",
		"bad palette":       "[chart]\npalette = \"rainbow\"\n",
		"bad color":         "[chart]\nisoline_color = \"slategrey\"\n",
		"bad level":         "[logging]\nlevel = \"verbose\"\n",
		"bad profile":       "[chart]\nprofile = \"distant\"\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "nearstars.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}
		if _, _, _, err := config.Load(path); !errors.Is(err, config.ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nearstars.toml")
	if err := os.WriteFile(path, []byte("[chart]\ncolour = \"red\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Catalog.Columns.RadiusUnit != "RADUNIT" {
		t.Fatalf("radius unit column = %q", cfg.Catalog.Columns.RadiusUnit)
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	data, err := config.Encode(cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "roundtrip.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	again, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if diff := cmp.Diff(cfg.Chart, again.Chart); diff != "" {
		t.Fatalf("chart mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestExplicitZeroOverridesProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "nearstars.toml")
	content := "[chart]\nprofile = \"nearest\"\ncolor_max = 0\ntemp_min = 0\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Chart.DistanceCap(); got != 0 {
		t.Fatalf("color_max = 0 should remove the cap, got %v", got)
	}
	if lo, hi := cfg.Chart.TemperatureRange(); lo != 0 || hi != 1e4 {
		t.Fatalf("temperature range = [%v, %v], want [0, 10000]", lo, hi)
	}

	nearby, err := cfg.ChartFor(config.ProfileNearby)
	if err != nil {
		t.Fatalf("ChartFor: %v", err)
	}
	if nearby.DistanceCap() != 0 {
		t.Fatalf("explicit color_max lost on profile switch: %v", nearby.DistanceCap())
	}

	unset := config.Default()
	unset.Chart.Profile = config.ProfileNearest
	if err := unset.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := unset.Chart.DistanceCap(); got != 25 {
		t.Fatalf("unset color_max should take the profile cap, got %v", got)
	}
}
