package catalog

// Table is the normalized catalog. It is built once by a Loader and only read
// afterwards; accessors return copies.
type Table struct {
	source  string
	records []StarRecord
	issues  []Issue
}

// NewTable builds a Table from already-normalized records. Records are
// re-indexed from zero.
func NewTable(source string, records []StarRecord, issues []Issue) *Table {
	t := &Table{
		source:  source,
		records: make([]StarRecord, len(records)),
		issues:  append([]Issue(nil), issues...),
	}
	copy(t.records, records)
	for i := range t.records {
		t.records[i].Index = i
	}
	return t
}

// Source names where the table was loaded from.
func (t *Table) Source() string {
	return t.source
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns the i-th record.
func (t *Table) Record(i int) StarRecord {
	return t.records[i]
}

// Records returns a copy of all records.
func (t *Table) Records() []StarRecord {
	return append([]StarRecord(nil), t.records...)
}

// Issues returns the recovered problems seen while loading.
func (t *Table) Issues() []Issue {
	return append([]Issue(nil), t.issues...)
}

// Column returns field's value for every record, in order.
func (t *Table) Column(field Field) []Value {
	out := make([]Value, len(t.records))
	for i, rec := range t.records {
		out[i] = field.Of(rec)
	}
	return out
}

// ColumnStats summarizes one numeric column over present values.
type ColumnStats struct {
	Field   Field
	Known   int
	Missing int
	Min     float64
	Max     float64
}

// Stats summarizes every numeric column.
func (t *Table) Stats() []ColumnStats {
	out := make([]ColumnStats, 0, len(NumericFields))
	for _, f := range NumericFields {
		col := t.Column(f)
		s := ColumnStats{Field: f, Known: CountKnown(col)}
		s.Missing = len(col) - s.Known
		s.Min, s.Max, _ = Bounds(col)
		out = append(out, s)
	}
	return out
}
