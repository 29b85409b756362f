// Package chart renders the temperature–luminosity diagram.
//
// The chart overlays three layers: blackbody radius isolines with labels, the
// catalog stars sized by radius and coloured by distance, and the Sun as a
// reference marker. A colour bar on the right maps distance to colour. Output
// is PNG written through gonum/plot's raster canvas.
//
// RenderFile guards the output with an advisory lock next to the image and
// writes through a temp file so readers never see a partial PNG.
package chart
