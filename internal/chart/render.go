package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"nearstars/internal/blackbody"
	"nearstars/internal/catalog"
	"nearstars/internal/logging"
)

// ErrNothingToPlot is returned when no record has both a temperature and a
// positive luminosity.
var ErrNothingToPlot = errors.New("nothing to plot")

var (
	missingDistanceColor = color.NRGBA{R: 0xa9, G: 0xa9, B: 0xa9, A: 0xff}
	sunColor             = color.NRGBA{R: 0xff, A: 0xff}
	gridColor            = color.NRGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff}
)

// colorBarWidth is the share of the canvas width given to the colour bar.
const colorBarWidth = 0.12

// Renderer draws catalog tables onto PNG images.
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// New returns a Renderer with the given options.
func New(opts Options, logger *slog.Logger) *Renderer {
	if opts.LabelFormat == "" {
		opts.LabelFormat = DefaultLabelFormat
	}
	return &Renderer{opts: opts, logger: logging.NewComponentLogger(logger, "chart")}
}

// Star is a plottable catalog record.
type Star struct {
	Name        string
	Temperature float64
	Luminosity  float64
	// Size is the marker area in points²; zero when the radius is missing.
	Size     float64
	Distance catalog.Value
}

// Stars selects the records that can be placed on the chart. Records without
// a temperature or with a non-positive luminosity are skipped.
func (r *Renderer) Stars(table *catalog.Table) []Star {
	var out []Star
	for _, rec := range table.Records() {
		t, okT := rec.EffectiveTemperature.Float()
		l, okL := rec.BolometricLuminosity.Float()
		if !okT || !okL || l <= 0 {
			continue
		}
		size := 0.0
		if radius, ok := rec.RadiusSolar.Float(); ok && radius > 0 {
			size = r.opts.SizeScale * radius
		}
		out = append(out, Star{
			Name:        rec.Name,
			Temperature: t,
			Luminosity:  l,
			Size:        size,
			Distance:    rec.DistanceLy,
		})
	}
	return out
}

// Label is an isoline annotation.
type Label struct {
	Radius      float64
	Temperature float64
	Luminosity  float64
	Text        string
}

// Labels places one label per radius level. The hot anchor is used while the
// isoline there stays at or below one solar luminosity; otherwise the cool
// anchor. Levels whose anchor falls outside the luminosity range get no label.
func (r *Renderer) Labels(grid *blackbody.Grid) []Label {
	var out []Label
	for _, radius := range grid.Radii {
		inRange := func(l float64) bool {
			return l >= r.opts.LumMin && l <= r.opts.LumMax
		}
		text := fmt.Sprintf(r.opts.LabelFormat, radius)
		if l := blackbody.Luminosity(r.opts.LabelHot, radius); l <= SunLuminosity && inRange(l) {
			out = append(out, Label{Radius: radius, Temperature: r.opts.LabelHot, Luminosity: l, Text: text})
			continue
		}
		if l := blackbody.Luminosity(r.opts.LabelCool, radius); inRange(l) {
			out = append(out, Label{Radius: radius, Temperature: r.opts.LabelCool, Luminosity: l, Text: text})
		}
	}
	return out
}

// DistanceRange returns the colour scale bounds: the smallest known distance
// and either ColorMax or the largest known distance.
func (r *Renderer) DistanceRange(table *catalog.Table) (lo, hi float64, ok bool) {
	lo, hi, ok = catalog.Bounds(table.Column(catalog.FieldDistance))
	if !ok {
		return 0, 0, false
	}
	if r.opts.ColorMax > lo {
		hi = r.opts.ColorMax
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi, true
}

// Render draws table and grid as PNG to w.
func (r *Renderer) Render(w io.Writer, table *catalog.Table, grid *blackbody.Grid) error {
	stars := r.Stars(table)
	if len(stars) == 0 {
		return fmt.Errorf("%w: %d records lack temperature or luminosity", ErrNothingToPlot, table.Len())
	}
	if skipped := table.Len() - len(stars); skipped > 0 {
		r.logger.Debug("records left off chart",
			logging.Int("skipped", skipped),
			logging.Int("plotted", len(stars)),
		)
	}

	cm, err := newColorMap(r.opts.Palette)
	if err != nil {
		return err
	}
	lo, hi, haveDistance := r.DistanceRange(table)
	if !haveDistance {
		lo, hi = 0, 1
	}
	cm.SetMin(lo)
	cm.SetMax(hi)

	diagram, err := r.mainPlot(stars, grid, cm)
	if err != nil {
		return err
	}
	bar := r.colorBarPlot(cm)

	bg := color.Color(color.White)
	if r.opts.Transparent {
		bg = color.Transparent
	}
	img := vgimg.NewWith(
		vgimg.UseWH(r.opts.Width, r.opts.Height),
		vgimg.UseDPI(r.opts.DPI),
		vgimg.UseBackgroundColor(bg),
	)
	dc := draw.New(img)
	barWidth := r.opts.Width * colorBarWidth
	diagram.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, r.opts.Width-barWidth, 0, 0, 0))

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	r.logger.Info("chart rendered",
		logging.Int("stars", len(stars)),
		logging.Int("isolines", grid.Levels()),
		logging.Float64("distance_min", lo),
		logging.Float64("distance_max", hi),
	)
	return nil
}

func (r *Renderer) mainPlot(stars []Star, grid *blackbody.Grid, cm palette.ColorMap) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.opts.Title
	if r.opts.Subtitle != "" {
		if p.Title.Text != "" {
			p.Title.Text += "\n"
		}
		p.Title.Text += r.opts.Subtitle
	}
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Bolometric Luminosity (L☉)"
	p.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	if r.opts.Transparent {
		p.BackgroundColor = color.Transparent
	}

	grd := plotter.NewGrid()
	grd.Vertical.Color = gridColor
	grd.Horizontal.Color = gridColor
	grd.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	grd.Horizontal.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	p.Add(grd)

	for i := 0; i < grid.Levels(); i++ {
		iso := grid.Isoline(i)
		xys := make(plotter.XYs, 0, len(iso))
		for _, pt := range iso {
			xys = append(xys, plotter.XY{X: pt.Temperature, Y: pt.Luminosity})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("isoline %g: %w", grid.Radii[i], err)
		}
		line.LineStyle.Color = r.opts.IsolineColor
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}

	if labels := r.Labels(grid); len(labels) > 0 {
		xyl := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(labels)),
			Labels: make([]string, len(labels)),
		}
		for i, l := range labels {
			xyl.XYs[i] = plotter.XY{X: l.Temperature, Y: l.Luminosity}
			xyl.Labels[i] = l.Text
		}
		lbl, err := plotter.NewLabels(xyl)
		if err != nil {
			return nil, fmt.Errorf("isoline labels: %w", err)
		}
		for i := range lbl.TextStyle {
			lbl.TextStyle[i].Color = r.opts.IsolineColor
			lbl.TextStyle[i].Font.Size = vg.Points(11)
		}
		p.Add(lbl)
	}

	xys := make(plotter.XYs, len(stars))
	for i, s := range stars {
		xys[i] = plotter.XY{X: s.Temperature, Y: s.Luminosity}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("star scatter: %w", err)
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  starColor(cm, stars[i].Distance),
			Radius: markerRadius(stars[i].Size),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(scatter)

	sun, err := plotter.NewScatter(plotter.XYs{{X: SunTemperature, Y: SunLuminosity}})
	if err != nil {
		return nil, fmt.Errorf("sun marker: %w", err)
	}
	sun.GlyphStyle = draw.GlyphStyle{
		Color:  sunColor,
		Radius: markerRadius(r.opts.SunSize),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(sun)
	p.Legend.Add("Sun", sun)
	p.Legend.Top = true

	// Add widens the axes to the data; the configured window wins.
	p.X.Min, p.X.Max = r.opts.TempMin, r.opts.TempMax
	p.Y.Min, p.Y.Max = r.opts.LumMin, r.opts.LumMax
	return p, nil
}

func (r *Renderer) colorBarPlot(cm palette.ColorMap) *plot.Plot {
	p := plot.New()
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	p.HideX()
	p.Y.Label.Text = "Distance (light years)"
	if r.opts.Transparent {
		p.BackgroundColor = color.Transparent
	}
	return p
}

// markerRadius converts a marker area in points² to a circle radius.
func markerRadius(area float64) vg.Length {
	if area <= 0 {
		return 0
	}
	return vg.Points(math.Sqrt(area / math.Pi))
}

func starColor(cm palette.ColorMap, distance catalog.Value) color.Color {
	d, ok := distance.Float()
	if !ok {
		return missingDistanceColor
	}
	d = math.Max(cm.Min(), math.Min(cm.Max(), d))
	c, err := cm.At(d)
	if err != nil {
		return missingDistanceColor
	}
	return c
}
