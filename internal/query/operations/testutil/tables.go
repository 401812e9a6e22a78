package testutil

import (
	"testing"

	"github.com/DabicD/Recruitment/internal/domain/schema"
	"github.com/DabicD/Recruitment/internal/parser"
	"github.com/DabicD/Recruitment/internal/query/operations"
)

// Attrs builds an attribute set from the four raw strings.
// Empty summary or rules are treated as absent.
func Attrs(columns, data, summary, rules string) schema.Attributes {
	attrs := schema.Attributes{
		schema.AttrColumns: columns,
		schema.AttrData:    data,
	}
	if summary != "" {
		attrs[schema.AttrSummary] = summary
	}
	if rules != "" {
		attrs[schema.AttrFillRules] = rules
	}
	return attrs
}

// MaterializedTable parses the attributes and materializes rows without filling gaps
func MaterializedTable(t *testing.T, attrs schema.Attributes) *schema.Table {
	t.Helper()
	spec, rows, err := parser.ParseAttributes(attrs)
	if err != nil {
		t.Fatalf("failed to parse attributes: %v", err)
	}
	return operations.Materialize(spec, rows)
}

// FilledTable parses, materializes and applies fill rules
func FilledTable(t *testing.T, attrs schema.Attributes) *schema.Table {
	t.Helper()
	table := MaterializedTable(t, attrs)
	operations.FillGaps(table)
	return table
}

// CreateGroceryTable is the name/count/price table used across tests
func CreateGroceryTable(t *testing.T) *schema.Table {
	t.Helper()
	return FilledTable(t, Attrs("name,count,price", "milk,12,2;butter,3,4;bread,7,3", "none,count,sum", ""))
}

// ColumnValues returns the display values of one column in row order
func ColumnValues(table *schema.Table, col int) []string {
	out := make([]string, 0, table.Len())
	for _, row := range table.Rows {
		out = append(out, row.At(col).String())
	}
	return out
}
