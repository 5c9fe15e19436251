package report

// Table is the reconciled output handed to exporters: a fixed named-column
// projection with dense 1-based row ordinals. Ordinals are positional
// (row i carries ordinal i+1), re-derived every run, and must not be treated
// as durable keys.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates an empty table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{Headers: headers}
}

// Append adds one row. The cell count must match the header count.
func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Directory maps an entity ID to its resolved display value (username or
// description text). An ID absent from the directory means resolution failed
// for that entity; inner joins drop such rows.
type Directory map[string]string

// Resolve looks up an entity ID.
func (d Directory) Resolve(id string) (string, bool) {
	value, ok := d[id]
	return value, ok
}
