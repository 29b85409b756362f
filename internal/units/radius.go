package units

import (
	"fmt"
	"strings"
)

// RadiusUnit identifies the unit a catalog radius was printed in.
type RadiusUnit int

const (
	// Solar is the implicit unit when the tag column is blank.
	Solar RadiusUnit = iota
	// Jupiter is tagged "Rj".
	Jupiter
	// Earth is tagged "Re".
	Earth
)

// Ratios of the solar radius to Jupiter's and Earth's mean radii, per the
// catalog's convention.
const (
	JupiterRadiiPerSolar = 9.9604
	EarthRadiiPerSolar   = 109.18
)

var radiusTags = map[string]RadiusUnit{
	"":   Solar,
	"Rj": Jupiter,
	"Re": Earth,
}

// LookupRadiusUnit maps a unit tag to its RadiusUnit. The boolean reports
// whether the tag is one of the recognised values; unrecognised tags resolve
// to Solar so the value passes through unchanged.
func LookupRadiusUnit(tag string) (RadiusUnit, bool) {
	unit, ok := radiusTags[strings.TrimSpace(tag)]
	if !ok {
		return Solar, false
	}
	return unit, true
}

// PerSolar returns how many of this unit make one solar radius.
func (u RadiusUnit) PerSolar() float64 {
	switch u {
	case Jupiter:
		return JupiterRadiiPerSolar
	case Earth:
		return EarthRadiiPerSolar
	default:
		return 1
	}
}

// Tag returns the catalog tag for the unit.
func (u RadiusUnit) Tag() string {
	switch u {
	case Jupiter:
		return "Rj"
	case Earth:
		return "Re"
	default:
		return ""
	}
}

func (u RadiusUnit) String() string {
	switch u {
	case Solar:
		return "solar"
	case Jupiter:
		return "jupiter"
	case Earth:
		return "earth"
	default:
		return fmt.Sprintf("RadiusUnit(%d)", int(u))
	}
}

// ToSolar converts value, expressed in unit, to solar radii.
func ToSolar(value float64, unit RadiusUnit) float64 {
	return value / unit.PerSolar()
}

// ParseRadiusUnit is the inverse of RadiusUnit.String.
func ParseRadiusUnit(name string) (RadiusUnit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "solar":
		return Solar, nil
	case "jupiter":
		return Jupiter, nil
	case "earth":
		return Earth, nil
	default:
		return Solar, fmt.Errorf("unknown radius unit %q", name)
	}
}
