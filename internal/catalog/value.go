package catalog

import (
	"math"
	"strconv"
)

// Value is an optional finite float. The zero Value is missing.
type Value struct {
	v  float64
	ok bool
}

// Known wraps v. NaN and infinities become missing.
func Known(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{v: v, ok: true}
}

// Missing returns the missing marker.
func Missing() Value {
	return Value{}
}

// Float returns the value and whether it is present.
func (v Value) Float() (float64, bool) {
	return v.v, v.ok
}

// IsMissing reports whether v carries no number.
func (v Value) IsMissing() bool {
	return !v.ok
}

// Or returns the value, or fallback when missing.
func (v Value) Or(fallback float64) float64 {
	if !v.ok {
		return fallback
	}
	return v.v
}

// Map applies fn to a present value; missing stays missing.
func (v Value) Map(fn func(float64) float64) Value {
	if !v.ok {
		return v
	}
	return Known(fn(v.v))
}

func (v Value) String() string {
	if !v.ok {
		return "-"
	}
	return strconv.FormatFloat(v.v, 'g', 6, 64)
}

// MinKnown returns the smallest present value, skipping missing entries.
// ok is false when no value is present.
func MinKnown(values []Value) (lo float64, ok bool) {
	for _, v := range values {
		if !v.ok {
			continue
		}
		if !ok || v.v < lo {
			lo, ok = v.v, true
		}
	}
	return lo, ok
}

// MaxKnown returns the largest present value, skipping missing entries.
func MaxKnown(values []Value) (hi float64, ok bool) {
	for _, v := range values {
		if !v.ok {
			continue
		}
		if !ok || v.v > hi {
			hi, ok = v.v, true
		}
	}
	return hi, ok
}

// Bounds returns the present-value range of values.
func Bounds(values []Value) (lo, hi float64, ok bool) {
	lo, ok = MinKnown(values)
	if !ok {
		return 0, 0, false
	}
	hi, _ = MaxKnown(values)
	return lo, hi, true
}

// CountKnown returns how many entries carry a number.
func CountKnown(values []Value) int {
	n := 0
	for _, v := range values {
		if v.ok {
			n++
		}
	}
	return n
}
