// Package units holds the fixed physical constants and the radius unit lookup
// table used by the catalog normalizer and the blackbody reference curves.
//
// Radius tags follow the catalog convention: "Rj" marks Jupiter radii, "Re"
// marks Earth radii, and a blank tag means the value is already in solar radii.
package units
