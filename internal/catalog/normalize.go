package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"nearstars/internal/units"
)

// StripAlpha removes every ASCII letter from s, leaving sign, digits, decimal
// point and any other punctuation in place.
func StripAlpha(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return -1
		}
		return r
	}, s)
}

// ParseValue strips unit letters from raw and parses the remainder. Empty or
// non-numeric remainders return a missing Value and ErrUnparsableValue.
func ParseValue(raw string) (Value, error) {
	s := strings.TrimSpace(StripAlpha(raw))
	if s == "" {
		return Missing(), fmt.Errorf("%w: %q has no numeric content", ErrUnparsableValue, raw)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing(), fmt.Errorf("%w: %q: %v", ErrUnparsableValue, raw, err)
	}
	v := Known(f)
	if v.IsMissing() {
		return v, fmt.Errorf("%w: %q is not finite", ErrUnparsableValue, raw)
	}
	return v, nil
}

// NormalizeValue is ParseValue with failures recovered as missing.
func NormalizeValue(raw string) Value {
	v, _ := ParseValue(raw)
	return v
}

// ConvertRadius normalizes a raw radius to solar radii using the unit tag.
// The returned unit is Solar for blank and unrecognised tags; known is false
// only for unrecognised ones. Missing raw values stay missing.
func ConvertRadius(raw Value, tag string) (solar Value, unit units.RadiusUnit, known bool) {
	unit, known = units.LookupRadiusUnit(tag)
	solar = raw.Map(func(r float64) float64 {
		return units.ToSolar(r, unit)
	})
	return solar, unit, known
}
