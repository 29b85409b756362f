package config

import "gonum.org/v1/gonum/floats"

const (
	defaultConfigPath   = "~/.config/nearstars/config.toml"
	defaultCatalogPath  = "data/nearest-stars"
	defaultArchivePath  = "~/.local/share/nearstars/catalog.db"
	defaultChartProfile = ProfileNearby
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultPalette      = "kindlmann"
)

// Chart profile names. The profiles capture the two rendering variants of the
// same pipeline.
const (
	ProfileNearby  = "nearby"
	ProfileNearest = "nearest"
)

// DefaultWidths is the catalog's fixed column layout.
var DefaultWidths = []int{28, 12, 11, 8, 8, 9, 9, 10, 10, 9, 5, 11, 6, 9, 14, 10, 7, 6, 8, 7, 8, 9, 9, 9, 6}

// DefaultNames labels DefaultWidths. RADUNIT is the untitled unit column that
// follows RADIUS.
var DefaultNames = []string{
	"STAR", "RA", "DEC", "DIST", "PLX", "PM", "PA", "RV", "SPTYPE", "V",
	"B-V", "MULT", "Mv", "SEP", "NOTES", "BOL-LUM", "MASS", "MUNIT", "RADIUS", "RADUNIT",
	"Teff", "AGE", "U", "VEL", "W",
}

func defaultColumns() CatalogColumns {
	return CatalogColumns{
		Name:        "STAR",
		Distance:    "DIST",
		Magnitude:   "Mv",
		Luminosity:  "BOL-LUM",
		Radius:      "RADIUS",
		RadiusUnit:  "RADUNIT",
		Temperature: "Teff",
	}
}

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }

// defaultRadiusLevels spans 10⁻³ to 10³ solar radii, one isoline per decade.
func defaultRadiusLevels() []float64 {
	return floats.LogSpan(make([]float64, 7), 1e-3, 1e3)
}

// chartProfiles holds the preset values applied to unset chart fields.
var chartProfiles = map[string]Chart{
	ProfileNearby: {
		Output:       "nearby-stars.png",
		DPI:          300,
		WidthInches:  10,
		HeightInches: 6,
		Transparent:  boolPtr(true),
		Title:        "Nearby Stars: To 25.1 light years",
		Subtitle:     "Data Source: http://www.johnstonsarchive.net/astro/nearstar.html",
		TempMin:      floatPtr(0),
		TempMax:      floatPtr(1e4),
		LumMin:       1e-8,
		LumMax:       1e4,
		GridPoints:   1000,
		GridTempMin:  250,
		GridTempMax:  1e4,
		LabelHot:     9e3,
		LabelCool:    2e3,
		SizeScale:    1e3,
		SunSize:      1e3,
		ColorMax:     floatPtr(0),
		IsolineColor: "#708090",
		Palette:      defaultPalette,
	},
	ProfileNearest: {
		Output:       "nearby-stars.png",
		DPI:          300,
		WidthInches:  10,
		HeightInches: 6,
		Transparent:  boolPtr(false),
		TempMin:      floatPtr(250),
		TempMax:      floatPtr(1e4),
		LumMin:       1e-8,
		LumMax:       1e4,
		GridPoints:   50,
		GridTempMin:  250,
		GridTempMax:  1e4,
		LabelHot:     9e3,
		LabelCool:    2.5e3,
		SizeScale:    1e3,
		SunSize:      100,
		ColorMax:     floatPtr(25),
		IsolineColor: "#7f7f7f",
		Palette:      defaultPalette,
	},
}

// Profiles lists the available chart profile names.
func Profiles() []string {
	return []string{ProfileNearby, ProfileNearest}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			Widths:  append([]int(nil), DefaultWidths...),
			Names:   append([]string(nil), DefaultNames...),
			Columns: defaultColumns(),
		},
		Chart: Chart{
			Profile: defaultChartProfile,
		},
		Archive: Archive{
			Path: defaultArchivePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
