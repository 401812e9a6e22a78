package data

import "encoding/json"

// MissingText is how a missing cell is shown at the presentation boundary
const MissingText = "x"

// Cell holds a single table value. The zero value is a missing cell.
type Cell struct {
	value   string
	present bool
}

// Missing returns a cell that carries no usable data
func Missing() Cell {
	return Cell{}
}

// Value returns a present cell. An empty string still normalizes to missing,
// so callers cannot create a present-but-empty cell.
func Value(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{value: s, present: true}
}

// IsMissing reports whether the cell has no usable data
func (c Cell) IsMissing() bool {
	return !c.present
}

// Raw returns the stored text and whether the cell is present
func (c Cell) Raw() (string, bool) {
	return c.value, c.present
}

// String serializes the cell for display, using MissingText for missing cells
func (c Cell) String() string {
	if !c.present {
		return MissingText
	}
	return c.value
}

func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
