package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrInvalidConfig marks configuration values that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Palettes lists the accepted chart.palette values.
var Palettes = []string{"kindlmann", "extended-kindlmann", "blackbody", "extended-blackbody", "smooth-blue-red"}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := validateChart(c.Chart); err != nil {
		return err
	}
	return c.validateLogging()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func (c *Config) validateCatalog() error {
	cat := c.Catalog
	if len(cat.Widths) != len(cat.Names) {
		return invalid("catalog.widths has %d entries but catalog.names has %d", len(cat.Widths), len(cat.Names))
	}
	seen := make(map[string]struct{}, len(cat.Names))
	for i, name := range cat.Names {
		if name == "" {
			return invalid("catalog.names[%d] is empty", i)
		}
		if _, dup := seen[name]; dup {
			return invalid("catalog.names contains %q twice", name)
		}
		seen[name] = struct{}{}
		if cat.Widths[i] <= 0 {
			return invalid("catalog.widths[%d] must be positive", i)
		}
	}
	designated := []struct {
		key, value string
	}{
		{"name", cat.Columns.Name},
		{"distance", cat.Columns.Distance},
		{"magnitude", cat.Columns.Magnitude},
		{"luminosity", cat.Columns.Luminosity},
		{"radius", cat.Columns.Radius},
		{"radius_unit", cat.Columns.RadiusUnit},
		{"temperature", cat.Columns.Temperature},
	}
	for _, d := range designated {
		if _, ok := seen[d.value]; !ok {
			return invalid("catalog.columns.%s %q is not in catalog.names", d.key, d.value)
		}
	}
	return nil
}

func validateChart(ch Chart) error {
	if strings.TrimSpace(ch.Output) == "" {
		return invalid("chart.output is required")
	}
	if ch.DPI <= 0 {
		return invalid("chart.dpi must be positive")
	}
	if !(ch.WidthInches > 0) || !(ch.HeightInches > 0) {
		return invalid("chart.width_inches and chart.height_inches must be positive")
	}
	if ch.TempMin == nil || ch.TempMax == nil {
		return invalid("chart.temp_min and chart.temp_max are required")
	}
	if tMin, tMax := ch.TemperatureRange(); !(tMin >= 0) || !(tMax > tMin) {
		return invalid("chart temperature range [%g, %g] is not increasing", tMin, tMax)
	}
	if !(ch.LumMin > 0) || !(ch.LumMax > ch.LumMin) {
		return invalid("chart luminosity range [%g, %g] must be positive and increasing", ch.LumMin, ch.LumMax)
	}
	if ch.GridPoints < 2 {
		return invalid("chart.grid_points must be at least 2")
	}
	if !(ch.GridTempMin > 0) || !(ch.GridTempMax > ch.GridTempMin) {
		return invalid("chart grid temperature range [%g, %g] must be positive and increasing", ch.GridTempMin, ch.GridTempMax)
	}
	for i, r := range ch.RadiusLevels {
		if !(r > 0) || math.IsInf(r, 0) {
			return invalid("chart.radius_levels[%d] must be positive", i)
		}
	}
	if ch.SizeScale < 0 || ch.SunSize < 0 || ch.DistanceCap() < 0 {
		return invalid("chart size_scale, sun_size and color_max must not be negative")
	}
	if !isHexColor(ch.IsolineColor) {
		return invalid("chart.isoline_color %q must be #rrggbb", ch.IsolineColor)
	}
	if !slices.Contains(Palettes, ch.Palette) {
		return invalid("chart.palette %q is not one of %s", ch.Palette, strings.Join(Palettes, ", "))
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return invalid("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
