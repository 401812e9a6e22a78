package operations_test

import (
	"testing"

	"github.com/DabicD/Recruitment/internal/domain/data"
	"github.com/DabicD/Recruitment/internal/query/operations"
	"github.com/DabicD/Recruitment/internal/query/operations/testutil"
)

func TestFillGapsDividesColumns(t *testing.T) {
	table := testutil.FilledTable(t, testutil.Attrs("a,b,c", "4,2,", "", "2=0/1"))
	testutil.AssertCell(t, table.Rows[0], 2, "2", "c = a/b")
}

func TestFillGapsNeverOverwrites(t *testing.T) {
	table := testutil.FilledTable(t, testutil.Attrs("a,b,c", "4,2,9;6,3,", "", "2=0*1"))
	testutil.AssertCell(t, table.Rows[0], 2, "9", "present value")
	testutil.AssertCell(t, table.Rows[1], 2, "18", "filled value")
}

func TestFillGapsFailures(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		rules string
	}{
		{name: "missing operand", data: "4,,", rules: "2=0/1"},
		{name: "text operand", data: "4,milk,", rules: "2=0*1"},
		{name: "division by zero", data: "4,0,", rules: "2=0/1"},
		{name: "malformed", data: "4,2,", rules: "2=0/*1"},
		{name: "letters in formula", data: "4,2,", rules: "2=alert(0)"},
		{name: "out of range reference", data: "4,2,", rules: "2=0+9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := testutil.FilledTable(t, testutil.Attrs("a,b,c", tt.data, "", tt.rules))
			testutil.AssertCell(t, table.Rows[0], 2, operations.FailedText, tt.name)
		})
	}
}

func TestFillGapsEmptyBodyStaysMissing(t *testing.T) {
	tests := []string{"2=", "2", "2=  ", "2=9"}

	for _, rules := range tests {
		table := testutil.FilledTable(t, testutil.Attrs("a,b,c", "4,2,", "", rules))
		testutil.AssertMissing(t, table.Rows[0], 2, rules)
	}
}

func TestFillGapsSinglePass(t *testing.T) {
	// b depends on c, which is only filled by the later rule
	table := testutil.FilledTable(t, testutil.Attrs("a,b,c", "3,,", "", "1=0*2,2=0+0"))
	testutil.AssertCell(t, table.Rows[0], 1, operations.FailedText, "dependent rule declared first")
	testutil.AssertCell(t, table.Rows[0], 2, "6", "independent rule")

	ordered := testutil.FilledTable(t, testutil.Attrs("a,b,c", "3,,", "", "2=0+0,1=0*2"))
	testutil.AssertCell(t, ordered.Rows[0], 1, "18", "dependent rule declared last")
}

func TestFillGapsIdempotent(t *testing.T) {
	table := testutil.FilledTable(t, testutil.Attrs("a,b,c", "4,2,;1,4,", "", "2=0/1"))
	before := [][]string{table.Rows[0].Strings(), table.Rows[1].Strings()}

	stats := operations.FillGaps(table)
	if stats.Filled != 0 || stats.Failed != 0 {
		t.Errorf("expected no-op second pass, got %+v", stats)
	}
	for i, row := range table.Rows {
		testutil.AssertValues(t, row.Strings(), before[i], "second pass")
	}
	testutil.AssertCell(t, table.Rows[1], 2, "0.25", "fractional result")
}

func TestFillGapsInvalidTargetIgnored(t *testing.T) {
	table := testutil.FilledTable(t, testutil.Attrs("a,b", "4,", "", "7=0,b=0"))
	testutil.AssertMissing(t, table.Rows[0], 1, "invalid targets")
	testutil.AssertColumnCount(t, table.Rows[0], 2, "row shape")
}

func TestFillGapsMultiDigitReference(t *testing.T) {
	columns := "c0,c1,c2,c3,c4,c5,c6,c7,c8,c9,c10,c11"
	table := testutil.FilledTable(t, testutil.Attrs(columns, "1,,,,,,,,,,5,", "", "11=10+0"))
	testutil.AssertCell(t, table.Rows[0], 11, "6", "two-digit reference")
}

func TestSubstitute(t *testing.T) {
	row := data.NewRow([]string{"a", "b", "c"})
	row.Set(0, data.Value("4"))
	row.Set(1, data.Value("-2"))

	tests := []struct {
		formula  string
		expected string
	}{
		{"0/1", "4/-2"},
		{"(0+1)*2", "(4+-2)*x"},
		{"0-1", "4--2"},
		{"", ""},
		{"5", ""},
	}

	for _, tt := range tests {
		if got := operations.Substitute(tt.formula, row); got != tt.expected {
			t.Errorf("Substitute(%q) = %q, expected %q", tt.formula, got, tt.expected)
		}
	}
}
