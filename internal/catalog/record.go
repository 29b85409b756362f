package catalog

import (
	"nearstars/internal/units"
)

// StarRecord is one normalized catalog row.
type StarRecord struct {
	// Index is the contiguous zero-based position after the header rows.
	Index int
	// Line is the 1-based line number in the source file.
	Line int

	Name                 string
	DistanceLy           Value
	VisualMagnitude      Value
	BolometricLuminosity Value
	RadiusRaw            Value
	RadiusTag            string
	RadiusUnit           units.RadiusUnit
	RadiusTagKnown       bool
	RadiusSolar          Value
	EffectiveTemperature Value
}

// Field names a numeric StarRecord column.
type Field int

const (
	FieldDistance Field = iota
	FieldMagnitude
	FieldLuminosity
	FieldRadiusRaw
	FieldRadiusSolar
	FieldTemperature
)

// NumericFields lists every Field in display order.
var NumericFields = []Field{
	FieldTemperature,
	FieldLuminosity,
	FieldRadiusRaw,
	FieldRadiusSolar,
	FieldDistance,
	FieldMagnitude,
}

func (f Field) String() string {
	switch f {
	case FieldDistance:
		return "distance_ly"
	case FieldMagnitude:
		return "visual_magnitude"
	case FieldLuminosity:
		return "bolometric_luminosity"
	case FieldRadiusRaw:
		return "radius_raw"
	case FieldRadiusSolar:
		return "radius_solar"
	case FieldTemperature:
		return "effective_temperature"
	default:
		return "unknown"
	}
}

// Of returns the field's value in rec.
func (f Field) Of(rec StarRecord) Value {
	switch f {
	case FieldDistance:
		return rec.DistanceLy
	case FieldMagnitude:
		return rec.VisualMagnitude
	case FieldLuminosity:
		return rec.BolometricLuminosity
	case FieldRadiusRaw:
		return rec.RadiusRaw
	case FieldRadiusSolar:
		return rec.RadiusSolar
	case FieldTemperature:
		return rec.EffectiveTemperature
	default:
		return Missing()
	}
}
