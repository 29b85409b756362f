package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	if err := c.normalizeChart(); err != nil {
		return err
	}
	if err := c.normalizeArchive(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeCatalog() error {
	c.Catalog.Path = strings.TrimSpace(c.Catalog.Path)
	if c.Catalog.Path == "" {
		if value, ok := os.LookupEnv("NEARSTARS_CATALOG"); ok && strings.TrimSpace(value) != "" {
			c.Catalog.Path = strings.TrimSpace(value)
		} else {
			c.Catalog.Path = defaultCatalogPath
		}
	}
	var err error
	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	if len(c.Catalog.Widths) == 0 {
		c.Catalog.Widths = append([]int(nil), DefaultWidths...)
	}
	if len(c.Catalog.Names) == 0 {
		c.Catalog.Names = append([]string(nil), DefaultNames...)
	}
	for i, name := range c.Catalog.Names {
		c.Catalog.Names[i] = strings.TrimSpace(name)
	}

	defaults := defaultColumns()
	cols := &c.Catalog.Columns
	fill := func(dst *string, fallback string) {
		*dst = strings.TrimSpace(*dst)
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&cols.Name, defaults.Name)
	fill(&cols.Distance, defaults.Distance)
	fill(&cols.Magnitude, defaults.Magnitude)
	fill(&cols.Luminosity, defaults.Luminosity)
	fill(&cols.Radius, defaults.Radius)
	fill(&cols.RadiusUnit, defaults.RadiusUnit)
	fill(&cols.Temperature, defaults.Temperature)
	return nil
}

func (c *Config) normalizeChart() error {
	c.Chart.Profile = strings.ToLower(strings.TrimSpace(c.Chart.Profile))
	if c.Chart.Profile == "" {
		c.Chart.Profile = defaultChartProfile
	}
	c.chartOverrides = cloneChart(c.Chart)
	resolved, err := resolveChart(c.chartOverrides, c.Chart.Profile)
	if err != nil {
		return err
	}
	c.Chart = resolved
	return nil
}

func resolveChart(overrides Chart, profile string) (Chart, error) {
	ch := cloneChart(overrides)
	ch.Profile = strings.ToLower(strings.TrimSpace(profile))
	preset, ok := chartProfiles[ch.Profile]
	if !ok {
		return Chart{}, fmt.Errorf("%w: chart.profile %q is not one of %s", ErrInvalidConfig, ch.Profile, strings.Join(Profiles(), ", "))
	}
	ApplyProfile(&ch, preset)

	var err error
	if ch.Output, err = expandPath(strings.TrimSpace(ch.Output)); err != nil {
		return Chart{}, fmt.Errorf("chart.output: %w", err)
	}
	ch.IsolineColor = strings.TrimSpace(ch.IsolineColor)
	ch.Palette = strings.ToLower(strings.TrimSpace(ch.Palette))
	return ch, nil
}

// ChartFor returns chart settings for profile, keeping every value the
// configuration file set explicitly. An empty profile returns the configured
// chart.
func (c *Config) ChartFor(profile string) (Chart, error) {
	profile = strings.ToLower(strings.TrimSpace(profile))
	if profile == "" || profile == c.Chart.Profile {
		return cloneChart(c.Chart), nil
	}
	ch, err := resolveChart(c.chartOverrides, profile)
	if err != nil {
		return Chart{}, err
	}
	if err := validateChart(ch); err != nil {
		return Chart{}, err
	}
	return ch, nil
}

func cloneChart(ch Chart) Chart {
	out := ch
	if ch.Transparent != nil {
		out.Transparent = boolPtr(*ch.Transparent)
	}
	out.TempMin = cloneFloat(ch.TempMin)
	out.TempMax = cloneFloat(ch.TempMax)
	out.ColorMax = cloneFloat(ch.ColorMax)
	out.RadiusLevels = append([]float64(nil), ch.RadiusLevels...)
	return out
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return floatPtr(*p)
}

// ApplyProfile fills every unset field of ch from preset.
func ApplyProfile(ch *Chart, preset Chart) {
	if strings.TrimSpace(ch.Output) == "" {
		ch.Output = preset.Output
	}
	if ch.DPI <= 0 {
		ch.DPI = preset.DPI
	}
	if ch.WidthInches <= 0 {
		ch.WidthInches = preset.WidthInches
	}
	if ch.HeightInches <= 0 {
		ch.HeightInches = preset.HeightInches
	}
	if ch.Transparent == nil && preset.Transparent != nil {
		ch.Transparent = boolPtr(*preset.Transparent)
	}
	if strings.TrimSpace(ch.Title) == "" {
		ch.Title = preset.Title
	}
	if strings.TrimSpace(ch.Subtitle) == "" {
		ch.Subtitle = preset.Subtitle
	}
	if ch.TempMin == nil {
		ch.TempMin = cloneFloat(preset.TempMin)
	}
	if ch.TempMax == nil {
		ch.TempMax = cloneFloat(preset.TempMax)
	}
	if ch.LumMin == 0 && ch.LumMax == 0 {
		ch.LumMin, ch.LumMax = preset.LumMin, preset.LumMax
	}
	if ch.GridPoints <= 0 {
		ch.GridPoints = preset.GridPoints
	}
	if ch.GridTempMin == 0 && ch.GridTempMax == 0 {
		ch.GridTempMin, ch.GridTempMax = preset.GridTempMin, preset.GridTempMax
	}
	if len(ch.RadiusLevels) == 0 {
		ch.RadiusLevels = defaultRadiusLevels()
	}
	if ch.LabelHot == 0 {
		ch.LabelHot = preset.LabelHot
	}
	if ch.LabelCool == 0 {
		ch.LabelCool = preset.LabelCool
	}
	if ch.SizeScale == 0 {
		ch.SizeScale = preset.SizeScale
	}
	if ch.SunSize == 0 {
		ch.SunSize = preset.SunSize
	}
	if ch.ColorMax == nil {
		ch.ColorMax = cloneFloat(preset.ColorMax)
	}
	if strings.TrimSpace(ch.IsolineColor) == "" {
		ch.IsolineColor = preset.IsolineColor
	}
	if strings.TrimSpace(ch.Palette) == "" {
		ch.Palette = preset.Palette
	}
}

func (c *Config) normalizeArchive() error {
	c.Archive.Path = strings.TrimSpace(c.Archive.Path)
	if c.Archive.Path == "" {
		c.Archive.Path = defaultArchivePath
	}
	var err error
	if c.Archive.Path, err = expandPath(c.Archive.Path); err != nil {
		return fmt.Errorf("archive.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		var err error
		if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
	}
	return nil
}
