// Package blackbody evaluates the Stefan-Boltzmann relation L = 4πσR²T⁴ over
// a temperature grid to produce constant-radius reference isolines for the
// temperature-luminosity chart. Results are expressed in solar units and are
// independent of the catalog data.
package blackbody
