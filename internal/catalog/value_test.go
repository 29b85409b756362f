package catalog_test

import (
	"math"
	"testing"

	"nearstars/internal/catalog"
)

func TestKnownRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if v := catalog.Known(f); !v.IsMissing() {
			t.Fatalf("Known(%v) should be missing", f)
		}
	}
	if v := catalog.Known(0); v.IsMissing() {
		t.Fatal("zero is a real value, not missing")
	}
}

func TestValueAccessors(t *testing.T) {
	v := catalog.Known(4.2)
	if got, ok := v.Float(); !ok || got != 4.2 {
		t.Fatalf("Float() = %v, %v", got, ok)
	}
	if got := catalog.Missing().Or(-1); got != -1 {
		t.Fatalf("Or on missing = %v, want -1", got)
	}
	if got := catalog.Missing().String(); got != "-" {
		t.Fatalf("missing String() = %q", got)
	}
	doubled := v.Map(func(f float64) float64 { return f * 2 })
	if got := doubled.Or(0); got != 8.4 {
		t.Fatalf("Map = %v, want 8.4", got)
	}
	if !catalog.Missing().Map(func(float64) float64 { return 1 }).IsMissing() {
		t.Fatal("Map on missing should stay missing")
	}
}

func TestAggregatesSkipMissing(t *testing.T) {
	values := []catalog.Value{
		catalog.Missing(),
		catalog.Known(8.6),
		catalog.Known(4.24),
		catalog.Missing(),
		catalog.Known(7.43),
	}
	lo, hi, ok := catalog.Bounds(values)
	if !ok || lo != 4.24 || hi != 8.6 {
		t.Fatalf("Bounds = %v, %v, %v", lo, hi, ok)
	}
	if got := catalog.CountKnown(values); got != 3 {
		t.Fatalf("CountKnown = %d, want 3", got)
	}

	if _, ok := catalog.MinKnown([]catalog.Value{catalog.Missing()}); ok {
		t.Fatal("MinKnown of only missing values should report !ok")
	}
	if _, _, ok := catalog.Bounds(nil); ok {
		t.Fatal("Bounds(nil) should report !ok")
	}
}
