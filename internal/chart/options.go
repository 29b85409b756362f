package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"

	"nearstars/internal/blackbody"
	"nearstars/internal/config"
)

// Sun reference point.
const (
	SunTemperature = 5778.0
	SunLuminosity  = 1.0
)

// DefaultLabelFormat formats isoline labels from the radius level.
const DefaultLabelFormat = "%.3g R☉"

// Options controls chart appearance.
type Options struct {
	Title    string
	Subtitle string

	Width       vg.Length
	Height      vg.Length
	DPI         int
	Transparent bool

	TempMin float64
	TempMax float64
	LumMin  float64
	LumMax  float64

	LabelHot    float64
	LabelCool   float64
	LabelFormat string

	// SizeScale multiplies the solar radius to give a marker area in points².
	SizeScale float64
	// SunSize is the Sun marker area in points².
	SunSize float64
	// ColorMax caps the distance colour scale. Zero uses the largest known
	// distance.
	ColorMax float64

	IsolineColor color.Color
	Palette      string
}

// OptionsFromConfig converts resolved chart settings.
func OptionsFromConfig(ch config.Chart) (Options, error) {
	isoline, err := ParseHexColor(ch.IsolineColor)
	if err != nil {
		return Options{}, fmt.Errorf("isoline color: %w", err)
	}
	if _, err := newColorMap(ch.Palette); err != nil {
		return Options{}, err
	}
	tMin, tMax := ch.TemperatureRange()
	return Options{
		Title:        ch.Title,
		Subtitle:     ch.Subtitle,
		Width:        vg.Length(ch.WidthInches) * vg.Inch,
		Height:       vg.Length(ch.HeightInches) * vg.Inch,
		DPI:          ch.DPI,
		Transparent:  ch.IsTransparent(),
		TempMin:      tMin,
		TempMax:      tMax,
		LumMin:       ch.LumMin,
		LumMax:       ch.LumMax,
		LabelHot:     ch.LabelHot,
		LabelCool:    ch.LabelCool,
		LabelFormat:  DefaultLabelFormat,
		SizeScale:    ch.SizeScale,
		SunSize:      ch.SunSize,
		ColorMax:     ch.DistanceCap(),
		IsolineColor: isoline,
		Palette:      ch.Palette,
	}, nil
}

// GridFromConfig evaluates the reference isolines for the chart settings.
func GridFromConfig(ch config.Chart) (*blackbody.Grid, error) {
	if ch.GridPoints < 2 {
		return nil, fmt.Errorf("isoline grid needs at least 2 points, got %d", ch.GridPoints)
	}
	temps := floats.Span(make([]float64, ch.GridPoints), ch.GridTempMin, ch.GridTempMax)
	return blackbody.NewGrid(temps, ch.RadiusLevels)
}

// ParseHexColor parses "#rrggbb".
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("%q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q is not #rrggbb", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func newColorMap(name string) (palette.ColorMap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "kindlmann":
		return moreland.Kindlmann(), nil
	case "extended-kindlmann":
		return moreland.ExtendedKindlmann(), nil
	case "blackbody":
		return moreland.BlackBody(), nil
	case "extended-blackbody":
		return moreland.ExtendedBlackBody(), nil
	case "smooth-blue-red":
		return moreland.SmoothBlueRed(), nil
	default:
		return nil, fmt.Errorf("unknown palette %q", name)
	}
}
