package data

import (
	"encoding/json"
	"strings"
)

// Row represents a single table record.
// Cells are positional and aligned with the column list the row was built from;
// position is the canonical column identifier, names are only a lookup aid.
type Row struct {
	Columns []string
	Cells   []Cell
}

// NewRow creates a row with every declared column set to missing
func NewRow(columns []string) Row {
	return Row{
		Columns: columns,
		Cells:   make([]Cell, len(columns)),
	}
}

// At returns the cell at the given column position.
// Out-of-range positions read as missing.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r.Cells) {
		return Missing()
	}
	return r.Cells[i]
}

// Set overwrites the cell at the given position; out-of-range writes are ignored
func (r Row) Set(i int, c Cell) {
	if i < 0 || i >= len(r.Cells) {
		return
	}
	r.Cells[i] = c
}

// Get resolves a column by name. Duplicate names resolve to the first match.
func (r Row) Get(name string) (Cell, bool) {
	for i, col := range r.Columns {
		if col == name {
			return r.At(i), true
		}
	}
	return Missing(), false
}

// Copy creates a deep copy of the row's cells to prevent mutation.
// The column list is shared; it is immutable for a render cycle.
func (r Row) Copy() Row {
	cells := make([]Cell, len(r.Cells))
	copy(cells, r.Cells)
	return Row{Columns: r.Columns, Cells: cells}
}

// Strings returns the display text of every cell in column order
func (r Row) Strings() []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.String()
	}
	return out
}

func (r Row) String() string {
	return "[" + strings.Join(r.Strings(), ",") + "]"
}

// MarshalJSON encodes the row as an array of display values in column order
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Strings())
}
