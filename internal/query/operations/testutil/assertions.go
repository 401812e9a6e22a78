package testutil

import (
	"slices"
	"testing"

	"github.com/DabicD/Recruitment/internal/domain/data"
)

// AssertRowCount checks if the table has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnCount checks if a row has the expected number of cells
func AssertColumnCount(t *testing.T, row data.Row, expected int, context string) {
	t.Helper()
	if len(row.Cells) != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, len(row.Cells))
	}
}

// AssertCell checks the display value of a cell
func AssertCell(t *testing.T, row data.Row, col int, expected, context string) {
	t.Helper()
	if got := row.At(col).String(); got != expected {
		t.Errorf("%s: expected cell %d to be %q, got %q", context, col, expected, got)
	}
}

// AssertMissing checks that a cell carries no data
func AssertMissing(t *testing.T, row data.Row, col int, context string) {
	t.Helper()
	if !row.At(col).IsMissing() {
		t.Errorf("%s: expected cell %d to be missing, got %q", context, col, row.At(col).String())
	}
}

// AssertValues compares two display value lists
func AssertValues(t *testing.T, actual, expected []string, context string) {
	t.Helper()
	if !slices.Equal(actual, expected) {
		t.Errorf("%s: expected %q, got %q", context, expected, actual)
	}
}
