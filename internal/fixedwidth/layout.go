package fixedwidth

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrMalformedRecord marks a line that cannot be sliced into the layout's
// fields.
var ErrMalformedRecord = errors.New("malformed record")

// RecordError reports a malformed line together with its position.
type RecordError struct {
	// Line is the 1-based line number in the source stream.
	Line int
	// Seq is the line's 0-based rank among non-blank source lines.
	Seq    int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrMalformedRecord, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedRecord.
func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}

// Layout is an ordered set of named fixed-width columns.
type Layout struct {
	names   []string
	widths  []int
	offsets []int
	index   map[string]int
}

// NewLayout pairs names with widths. Names must be non-empty and unique and
// widths must be positive.
func NewLayout(names []string, widths []int) (Layout, error) {
	if len(names) == 0 {
		return Layout{}, errors.New("layout: no columns")
	}
	if len(names) != len(widths) {
		return Layout{}, fmt.Errorf("layout: %d names for %d widths", len(names), len(widths))
	}
	l := Layout{
		names:   make([]string, len(names)),
		widths:  make([]int, len(widths)),
		offsets: make([]int, len(widths)+1),
		index:   make(map[string]int, len(names)),
	}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return Layout{}, fmt.Errorf("layout: column %d has no name", i)
		}
		if _, dup := l.index[name]; dup {
			return Layout{}, fmt.Errorf("layout: duplicate column %q", name)
		}
		if widths[i] <= 0 {
			return Layout{}, fmt.Errorf("layout: column %q has width %d", name, widths[i])
		}
		l.names[i] = name
		l.widths[i] = widths[i]
		l.index[name] = i
		l.offsets[i+1] = l.offsets[i] + widths[i]
	}
	return l, nil
}

// Names returns the column names in order.
func (l Layout) Names() []string {
	return append([]string(nil), l.names...)
}

// Widths returns the column widths in order.
func (l Layout) Widths() []int {
	return append([]int(nil), l.widths...)
}

// LineWidth is the total width of one record in characters.
func (l Layout) LineWidth() int {
	if len(l.offsets) == 0 {
		return 0
	}
	return l.offsets[len(l.offsets)-1]
}

// Index returns the position of the named column.
func (l Layout) Index(name string) (int, bool) {
	i, ok := l.index[name]
	return i, ok
}

// Split slices line into trimmed fields. Offsets count characters, not
// bytes, so a multi-byte name does not shift later columns. The returned Row
// has Line and Seq set to 0; Read fills in the source position.
func (l Layout) Split(line string) (Row, error) {
	if len(l.widths) == 0 {
		return Row{}, errors.New("layout: no columns")
	}
	line = strings.TrimRight(line, "\r\n")
	if !utf8.ValidString(line) {
		return Row{}, &RecordError{Reason: "invalid UTF-8"}
	}
	chars := []rune(line)
	fields := make([]string, len(l.widths))
	for i := range l.widths {
		start, end := l.offsets[i], l.offsets[i+1]
		if start >= len(chars) {
			break
		}
		if end > len(chars) {
			end = len(chars)
		}
		fields[i] = strings.TrimSpace(string(chars[start:end]))
	}
	return Row{layout: &l, fields: fields}, nil
}

// Format pads each field to its column width, producing a line that Split
// reads back to the same values. Values wider than their column are an error.
func (l Layout) Format(fields []string) (string, error) {
	if len(fields) > len(l.widths) {
		return "", fmt.Errorf("format: %d fields for %d columns", len(fields), len(l.widths))
	}
	var b strings.Builder
	b.Grow(l.LineWidth())
	for i, w := range l.widths {
		var v string
		if i < len(fields) {
			v = fields[i]
		}
		n := utf8.RuneCountInString(v)
		if n > w {
			return "", fmt.Errorf("format: column %q value %q exceeds width %d", l.names[i], v, w)
		}
		b.WriteString(v)
		b.WriteString(strings.Repeat(" ", w-n))
	}
	return strings.TrimRight(b.String(), " "), nil
}
