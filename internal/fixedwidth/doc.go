// Package fixedwidth splits delimiter-free text records into named fields
// using a declared sequence of column widths, counted in characters.
//
// A Layout pairs column names with widths. Split slices a line at the
// cumulative character offsets and trims each field; lines shorter than the
// layout yield empty trailing fields, and characters past the last column are
// ignored. Read applies a Layout to a whole stream, collecting lines that are
// not valid UTF-8 instead of aborting so a single bad record never sinks the
// run.
package fixedwidth
