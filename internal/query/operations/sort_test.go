package operations_test

import (
	"testing"

	"github.com/DabicD/Recruitment/internal/query/operations"
	"github.com/DabicD/Recruitment/internal/query/operations/testutil"
)

func TestSortNumericDescending(t *testing.T) {
	table := testutil.FilledTable(t, testutil.Attrs("v", "3;1;2", "", ""))
	sorted, mode := operations.SortByColumn(table, 0)

	if mode != operations.SortNumeric {
		t.Errorf("expected numeric mode, got %s", mode)
	}
	testutil.AssertValues(t, testutil.ColumnValues(sorted, 0), []string{"3", "2", "1"}, "numeric sort")
}

func TestSortStringCaseInsensitiveAscending(t *testing.T) {
	table := testutil.FilledTable(t, testutil.Attrs("v", "banana;Apple;cherry", "", ""))
	sorted, mode := operations.SortByColumn(table, 0)

	if mode != operations.SortString {
		t.Errorf("expected string mode, got %s", mode)
	}
	testutil.AssertValues(t, testutil.ColumnValues(sorted, 0), []string{"Apple", "banana", "cherry"}, "string sort")
}

func TestSortModeFromFirstRowOnly(t *testing.T) {
	// first row is text, so "10" and "9" compare as text
	table := testutil.FilledTable(t, testutil.Attrs("v", "b;10;9;a", "", ""))
	sorted, mode := operations.SortByColumn(table, 0)

	if mode != operations.SortString {
		t.Errorf("expected string mode, got %s", mode)
	}
	testutil.AssertValues(t, testutil.ColumnValues(sorted, 0), []string{"10", "9", "a", "b"}, "text comparison")

	// first row is numeric, text cells go last
	numeric := testutil.FilledTable(t, testutil.Attrs("v", "2;milk;10;;1", "", ""))
	sorted, mode = operations.SortByColumn(numeric, 0)
	if mode != operations.SortNumeric {
		t.Errorf("expected numeric mode, got %s", mode)
	}
	testutil.AssertValues(t, testutil.ColumnValues(sorted, 0)[:3], []string{"10", "2", "1"}, "numbers first")
}

func TestSortMissingLast(t *testing.T) {
	table := testutil.FilledTable(t, testutil.Attrs("name,qty", "b,1;,2;a,3", "", ""))
	sorted, _ := operations.SortByColumn(table, 0)

	testutil.AssertValues(t, testutil.ColumnValues(sorted, 0), []string{"a", "b", "x"}, "missing last")
}

func TestSortDivisionByZeroLastInNumericMode(t *testing.T) {
	table := testutil.FilledTable(t, testutil.Attrs("a,b,c", "4,2,;1,0,;9,3,", "", "2=0/1"))
	sorted, mode := operations.SortByColumn(table, 2)

	if mode != operations.SortNumeric {
		t.Fatalf("expected numeric mode, got %q", mode)
	}
	testutil.AssertValues(t, testutil.ColumnValues(sorted, 2), []string{"3", "2", operations.FailedText}, "failed formula last")
}

func TestSortKeepsRowsTogether(t *testing.T) {
	table := testutil.CreateGroceryTable(t)
	sorted, _ := operations.SortByColumn(table, 2)

	testutil.AssertValues(t, testutil.ColumnValues(sorted, 0), []string{"butter", "bread", "milk"}, "names follow prices")
	testutil.AssertValues(t, testutil.ColumnValues(sorted, 2), []string{"4", "3", "2"}, "prices")
}

func TestSortReturnsNewTable(t *testing.T) {
	table := testutil.CreateGroceryTable(t)
	sorted, _ := operations.SortByColumn(table, 0)

	if sorted == table {
		t.Fatal("expected a new table")
	}
	if sorted.Spec != table.Spec {
		t.Error("expected Spec to be shared with the input table")
	}
	testutil.AssertValues(t, testutil.ColumnValues(table, 0), []string{"milk", "butter", "bread"}, "input order untouched")
}

func TestSortOutOfRangeOrEmpty(t *testing.T) {
	table := testutil.CreateGroceryTable(t)
	for _, col := range []int{-1, 3, 99} {
		sorted, mode := operations.SortByColumn(table, col)
		if sorted != table || mode != "" {
			t.Errorf("column %d: expected unchanged table", col)
		}
	}

	empty := table.WithRows(nil)
	if sorted, _ := operations.SortByColumn(empty, 0); sorted != empty {
		t.Error("expected empty table unchanged")
	}
}
