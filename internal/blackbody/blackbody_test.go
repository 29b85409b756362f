package blackbody

import (
	"math"
	"testing"
)

func TestLuminosityMatchesSun(t *testing.T) {
	got := Luminosity(5778, 1)
	if math.Abs(got-1) > 0.01 {
		t.Fatalf("Luminosity(5778 K, 1 Rsun) = %v, want ~1", got)
	}
}

func TestLuminosityScaling(t *testing.T) {
	base := Luminosity(3000, 1)
	if got := Luminosity(3000, 10); math.Abs(got/base-100) > 1e-9 {
		t.Fatalf("radius x10 scaled luminosity by %v, want 100", got/base)
	}
	if got := Luminosity(6000, 1); math.Abs(got/base-16) > 1e-9 {
		t.Fatalf("temperature x2 scaled luminosity by %v, want 16", got/base)
	}
}

func TestTemperatureForInvertsLuminosity(t *testing.T) {
	for _, r := range []float64{0.001, 0.1, 1, 100} {
		l := Luminosity(4200, r)
		if got := TemperatureFor(l, r); math.Abs(got-4200) > 1e-6 {
			t.Fatalf("TemperatureFor(%v, %v) = %v, want 4200", l, r, got)
		}
	}
	if got := TemperatureFor(0, 1); got != 0 {
		t.Fatalf("expected 0 for non-positive luminosity, got %v", got)
	}
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid([]float64{3000, 5778, 9000}, []float64{0.1, 1})
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Levels() != 2 {
		t.Fatalf("levels = %d, want 2", g.Levels())
	}
	line := g.Isoline(1)
	if len(line) != 3 {
		t.Fatalf("isoline length = %d, want 3", len(line))
	}
	if math.Abs(line[1].Luminosity-1) > 0.01 {
		t.Fatalf("sun point on R=1 isoline = %v, want ~1", line[1].Luminosity)
	}
	for i := 1; i < len(line); i++ {
		if line[i].Luminosity <= line[i-1].Luminosity {
			t.Fatalf("isoline not increasing with temperature at %d", i)
		}
	}
}

func TestNewGridRejectsBadInput(t *testing.T) {
	cases := map[string]struct {
		temps, radii []float64
	}{
		"empty temps":      {nil, []float64{1}},
		"empty radii":      {[]float64{1000}, nil},
		"descending temps": {[]float64{2000, 1000}, []float64{1}},
		"zero temp":        {[]float64{0, 1000}, []float64{1}},
		"negative radius":  {[]float64{1000}, []float64{-1}},
		"nan radius":       {[]float64{1000}, []float64{math.NaN()}},
	}
	for name, tc := range cases {
		if _, err := NewGrid(tc.temps, tc.radii); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
