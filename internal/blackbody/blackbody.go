package blackbody

import (
	"errors"
	"fmt"
	"math"

	"nearstars/internal/units"
)

// coefficient is 4πσR☉²/L☉, so Luminosity reduces to coefficient·R²·T⁴ with
// R in solar radii and T in Kelvin.
var coefficient = 4 * math.Pi * units.StefanBoltzmann * units.SolarRadius * units.SolarRadius / units.SolarLuminosity

// Luminosity returns the bolometric luminosity, in solar luminosities, of a
// blackbody with the given effective temperature (K) and radius (solar radii).
func Luminosity(tempK, radiusSolar float64) float64 {
	t2 := tempK * tempK
	return coefficient * radiusSolar * radiusSolar * t2 * t2
}

// TemperatureFor inverts Luminosity for a fixed radius. It returns 0 when
// either argument is not positive.
func TemperatureFor(luminosity, radiusSolar float64) float64 {
	if luminosity <= 0 || radiusSolar <= 0 {
		return 0
	}
	return math.Pow(luminosity/(coefficient*radiusSolar*radiusSolar), 0.25)
}

// Point is one vertex of an isoline.
type Point struct {
	Temperature float64
	Luminosity  float64
}

// Grid is the meshgrid of luminosities over radius levels (rows) and
// temperatures (columns).
type Grid struct {
	Temperatures []float64
	Radii        []float64
	Luminosity   [][]float64
}

// NewGrid evaluates Luminosity for every (radius, temperature) pair.
// Temperatures must be positive and strictly ascending; radii must be positive.
func NewGrid(temps, radii []float64) (*Grid, error) {
	if len(temps) == 0 {
		return nil, errors.New("blackbody grid: no temperatures")
	}
	if len(radii) == 0 {
		return nil, errors.New("blackbody grid: no radius levels")
	}
	for i, t := range temps {
		if !(t > 0) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("blackbody grid: temperature %v at index %d must be positive", t, i)
		}
		if i > 0 && t <= temps[i-1] {
			return nil, fmt.Errorf("blackbody grid: temperatures must ascend (index %d)", i)
		}
	}
	for i, r := range radii {
		if !(r > 0) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("blackbody grid: radius %v at index %d must be positive", r, i)
		}
	}

	g := &Grid{
		Temperatures: append([]float64(nil), temps...),
		Radii:        append([]float64(nil), radii...),
		Luminosity:   make([][]float64, len(radii)),
	}
	for i, r := range g.Radii {
		row := make([]float64, len(g.Temperatures))
		for j, t := range g.Temperatures {
			row[j] = Luminosity(t, r)
		}
		g.Luminosity[i] = row
	}
	return g, nil
}

// Levels reports the number of radius isolines.
func (g *Grid) Levels() int {
	return len(g.Radii)
}

// Isoline returns the polyline for radius level i.
func (g *Grid) Isoline(i int) []Point {
	row := g.Luminosity[i]
	pts := make([]Point, len(row))
	for j, l := range row {
		pts[j] = Point{Temperature: g.Temperatures[j], Luminosity: l}
	}
	return pts
}
