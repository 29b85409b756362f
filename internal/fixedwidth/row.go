package fixedwidth

// Row is one sliced record.
type Row struct {
	// Line is the 1-based line number in the source stream.
	Line int
	// Seq is the row's 0-based rank among non-blank source lines, counting
	// lines that were rejected as malformed.
	Seq    int
	layout *Layout
	fields []string
}

// Fields returns the trimmed field values in column order.
func (r Row) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Get returns the value of the named column, or "" when the column is not
// part of the layout.
func (r Row) Get(name string) string {
	if r.layout == nil {
		return ""
	}
	i, ok := r.layout.Index(name)
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

