package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// CatalogColumns names the layout columns feeding each star field.
type CatalogColumns struct {
	Name        string `toml:"name"`
	Distance    string `toml:"distance"`
	Magnitude   string `toml:"magnitude"`
	Luminosity  string `toml:"luminosity"`
	Radius      string `toml:"radius"`
	RadiusUnit  string `toml:"radius_unit"`
	Temperature string `toml:"temperature"`
}

// Catalog describes the input file and its fixed-width layout.
type Catalog struct {
	Path    string         `toml:"path"`
	Widths  []int          `toml:"widths"`
	Names   []string       `toml:"names"`
	Columns CatalogColumns `toml:"columns"`
}

// Chart contains rendering settings. Zero values are filled from Profile.
type Chart struct {
	Profile      string    `toml:"profile"`
	Output       string    `toml:"output"`
	DPI          int       `toml:"dpi"`
	WidthInches  float64   `toml:"width_inches"`
	HeightInches float64   `toml:"height_inches"`
	Transparent  *bool     `toml:"transparent"`
	Title        string    `toml:"title"`
	Subtitle     string    `toml:"subtitle"`
	TempMin      *float64  `toml:"temp_min"`
	TempMax      *float64  `toml:"temp_max"`
	LumMin       float64   `toml:"lum_min"`
	LumMax       float64   `toml:"lum_max"`
	GridPoints   int       `toml:"grid_points"`
	GridTempMin  float64   `toml:"grid_temp_min"`
	GridTempMax  float64   `toml:"grid_temp_max"`
	RadiusLevels []float64 `toml:"radius_levels"`
	LabelHot     float64   `toml:"label_hot"`
	LabelCool    float64   `toml:"label_cool"`
	SizeScale    float64   `toml:"size_scale"`
	SunSize      float64   `toml:"sun_size"`
	ColorMax     *float64  `toml:"color_max"`
	IsolineColor string    `toml:"isoline_color"`
	Palette      string    `toml:"palette"`
}

// IsTransparent reports whether the image background is transparent.
func (c Chart) IsTransparent() bool {
	return c.Transparent != nil && *c.Transparent
}

// TemperatureRange returns the temperature axis window.
func (c Chart) TemperatureRange() (lo, hi float64) {
	return floatValue(c.TempMin), floatValue(c.TempMax)
}

// DistanceCap returns the colour scale cap in light years; 0 means no cap.
func (c Chart) DistanceCap() float64 {
	return floatValue(c.ColorMax)
}

func floatValue(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Archive contains settings for the SQLite snapshot export.
type Archive struct {
	Path string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Dir    string `toml:"dir"`
}

// Config encapsulates all configuration values for nearstars.
//
// Configuration sections:
//   - Catalog: input path, column widths/names, designated columns
//   - Chart: profile and rendering overrides
//   - Archive: snapshot database location
//   - Logging: log format, level, and optional file directory
type Config struct {
	Catalog Catalog `toml:"catalog"`
	Chart   Chart   `toml:"chart"`
	Archive Archive `toml:"archive"`
	Logging Logging `toml:"logging"`

	// chartOverrides keeps the chart values as read, before profile defaults,
	// so ChartFor can re-resolve against another profile.
	chartOverrides Chart
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and chart settings resolved against the selected profile.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.Normalize(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("nearstars.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Normalize resolves defaults, the chart profile, and paths in place, then
// validates the result. Load calls it after decoding.
func (c *Config) Normalize() error {
	if err := c.normalize(); err != nil {
		return err
	}
	return c.Validate()
}

// EnsureDirectories creates the directories outputs are written to.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Chart.Output)}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		dirs = append(dirs, c.Logging.Dir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
