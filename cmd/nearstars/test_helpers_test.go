package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"nearstars/internal/config"
	"nearstars/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("NEARSTARS_CATALOG", "")

	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithSampleCatalog()}, opts...)...)

	configPath := filepath.Join(homeDir, ".config", "nearstars", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	err := execute(append(flags, args...), func(cmd *cobra.Command) {
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
	})
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[catalog]
path = %q

[chart]
output = %q
dpi = %d
grid_points = %d

[archive]
path = %q

[logging]
level = "info"
dir = %q
`,
		cfg.Catalog.Path,
		cfg.Chart.Output,
		cfg.Chart.DPI,
		cfg.Chart.GridPoints,
		cfg.Archive.Path,
		cfg.Logging.Dir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
