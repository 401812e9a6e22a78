package operations

import (
	"cmp"
	"log/slog"
	"slices"

	"golang.org/x/text/cases"

	"github.com/DabicD/Recruitment/internal/domain/data"
	"github.com/DabicD/Recruitment/internal/domain/schema"
)

// SortMode is the comparison chosen for a column
type SortMode string

const (
	SortString  SortMode = "string"
	SortNumeric SortMode = "numeric"
)

// DetectSortMode inspects only the first row: if its cell parses as a number the
// whole column sorts numerically, otherwise as text
func DetectSortMode(table *schema.Table, col int) SortMode {
	if table.Len() == 0 {
		return SortString
	}
	if _, ok := cellNumber(table.Rows[0].At(col)); ok {
		return SortNumeric
	}
	return SortString
}

// SortByColumn returns a new table ordered by the given column.
// Text sorts case-insensitively ascending; numbers sort descending.
// Missing cells, and unparsable cells in numeric mode, go last. Filled cells
// holding FailedText (a failed formula, including division by zero) are unparsable.
// An out-of-range index or empty table returns the input unchanged.
func SortByColumn(table *schema.Table, col int) (*schema.Table, SortMode) {
	if col < 0 || col >= len(table.Columns()) {
		slog.Warn("sort column out of range", "column", col, "columns", len(table.Columns()))
		return table, ""
	}
	if table.Len() == 0 {
		return table, ""
	}

	mode := DetectSortMode(table, col)
	rows := table.SelectAll()

	switch mode {
	case SortNumeric:
		slices.SortStableFunc(rows, func(a, b data.Row) int {
			return compareNumericDesc(a.At(col), b.At(col))
		})
	default:
		fold := cases.Fold()
		keys := make(map[string]string)
		key := func(c data.Cell) string {
			v, _ := c.Raw()
			k, ok := keys[v]
			if !ok {
				k = fold.String(v)
				keys[v] = k
			}
			return k
		}
		slices.SortStableFunc(rows, func(a, b data.Row) int {
			ca, cb := a.At(col), b.At(col)
			if c, decided := compareMissing(ca, cb); decided {
				return c
			}
			return cmp.Compare(key(ca), key(cb))
		})
	}

	return table.WithRows(rows), mode
}

func compareNumericDesc(a, b data.Cell) int {
	va, okA := cellNumber(a)
	vb, okB := cellNumber(b)
	switch {
	case okA && okB:
		return cmp.Compare(vb, va)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}

// compareMissing orders missing cells after present ones
func compareMissing(a, b data.Cell) (int, bool) {
	switch {
	case a.IsMissing() && b.IsMissing():
		return 0, true
	case a.IsMissing():
		return 1, true
	case b.IsMissing():
		return -1, true
	default:
		return 0, false
	}
}
