package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnparsableValue marks a numeric field whose letter-stripped content
	// is not a number. Loads recover it as a missing value.
	ErrUnparsableValue = errors.New("unparsable value")
	// ErrMissingInputFile marks a catalog path that does not exist or cannot
	// be read.
	ErrMissingInputFile = errors.New("missing input file")
	// ErrNoRecords marks a catalog with no data rows after the header.
	ErrNoRecords = errors.New("no catalog records")
	// ErrUnknownRadiusTag marks a radius unit tag other than Rj, Re, or blank.
	// The radius passes through as solar units.
	ErrUnknownRadiusTag = errors.New("unknown radius unit tag")
)

// Issue is a recovered row- or field-level problem.
type Issue struct {
	Line   int
	Column string
	Raw    string
	Err    error
}

func (i Issue) Error() string {
	if i.Column == "" {
		return i.Err.Error()
	}
	return fmt.Sprintf("line %d: column %s: %q: %v", i.Line, i.Column, i.Raw, i.Err)
}

func (i Issue) Unwrap() error {
	return i.Err
}
