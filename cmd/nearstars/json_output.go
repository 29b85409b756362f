package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"nearstars/internal/catalog"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// starJSON is the machine-readable form of a record. Missing values are null.
type starJSON struct {
	Index                int      `json:"index"`
	Line                 int      `json:"line"`
	Name                 string   `json:"name"`
	DistanceLy           *float64 `json:"distance_ly"`
	VisualMagnitude      *float64 `json:"visual_magnitude"`
	BolometricLuminosity *float64 `json:"bolometric_luminosity"`
	RadiusRaw            *float64 `json:"radius_raw"`
	RadiusTag            string   `json:"radius_tag"`
	RadiusUnit           string   `json:"radius_unit"`
	RadiusTagKnown       bool     `json:"radius_tag_known"`
	RadiusSolar          *float64 `json:"radius_solar"`
	EffectiveTemperature *float64 `json:"effective_temperature"`
}

func newStarJSON(rec catalog.StarRecord) starJSON {
	return starJSON{
		Index:                rec.Index,
		Line:                 rec.Line,
		Name:                 rec.Name,
		DistanceLy:           valuePtr(rec.DistanceLy),
		VisualMagnitude:      valuePtr(rec.VisualMagnitude),
		BolometricLuminosity: valuePtr(rec.BolometricLuminosity),
		RadiusRaw:            valuePtr(rec.RadiusRaw),
		RadiusTag:            rec.RadiusTag,
		RadiusUnit:           rec.RadiusUnit.String(),
		RadiusTagKnown:       rec.RadiusTagKnown,
		RadiusSolar:          valuePtr(rec.RadiusSolar),
		EffectiveTemperature: valuePtr(rec.EffectiveTemperature),
	}
}

func valuePtr(v catalog.Value) *float64 {
	f, ok := v.Float()
	if !ok {
		return nil
	}
	return &f
}
