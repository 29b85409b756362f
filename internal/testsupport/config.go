package testsupport

import (
	"path/filepath"
	"testing"

	"nearstars/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test. The
// catalog path points at a file that does not exist until WriteCatalog or
// WithSampleCatalog creates it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Catalog.Path = filepath.Join(base, "data", "nearest-stars")
	cfgVal.Chart.Output = filepath.Join(base, "out", "chart.png")
	cfgVal.Archive.Path = filepath.Join(base, "archive", "catalog.db")
	cfgVal.Logging.Dir = ""
	cfgVal.Chart.DPI = 40
	cfgVal.Chart.GridPoints = 40

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Normalize(); err != nil {
		t.Fatalf("normalize test config: %v", err)
	}
	return builder.cfg
}

// WithSampleCatalog writes SampleRows to the configured catalog path.
func WithSampleCatalog() ConfigOption {
	return func(b *configBuilder) {
		WriteCatalog(b.t, b.cfg.Catalog.Path, SampleRows())
	}
}

// WithProfile selects the chart profile before defaults are resolved.
func WithProfile(profile string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Chart.Profile = profile
	}
}

// WithLogDir enables the file log under the temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Catalog.Path))
}
