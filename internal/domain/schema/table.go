package schema

import "github.com/DabicD/Recruitment/internal/domain/data"

// Table is the engine's current view: the parsed spec plus its records.
// Sorting produces a new Table; Spec is shared and never touched.
type Table struct {
	Spec *Spec
	Rows []data.Row
}

// Columns returns the declared column names
func (t *Table) Columns() []string {
	if t == nil || t.Spec == nil {
		return nil
	}
	return t.Spec.Columns
}

// Len returns the number of records
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// WithRows returns a table sharing this table's spec with a new record set
func (t *Table) WithRows(rows []data.Row) *Table {
	return &Table{Spec: t.Spec, Rows: rows}
}

// SelectAll returns a copy of the record slice; cells are shared
func (t *Table) SelectAll() []data.Row {
	rows := make([]data.Row, len(t.Rows))
	copy(rows, t.Rows)
	return rows
}
