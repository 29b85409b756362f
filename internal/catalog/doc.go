// Package catalog turns a raw fixed-width star catalog into an immutable,
// validated table of StarRecords.
//
// The pipeline is: slice lines with a fixedwidth.Layout, drop the two header
// rows, strip unit letters from the designated numeric columns and parse them,
// then normalize radii to solar units from the per-row unit tag. Numeric
// fields are Values: either a finite float or explicitly missing. Aggregates
// such as MinKnown skip missing entries by name, never by accident.
//
// Only a missing or unreadable input file, or a catalog without a single data
// row, fails a Load. Malformed lines and unparsable values are recovered
// locally and surface through Table.Issues and the logger.
package catalog
