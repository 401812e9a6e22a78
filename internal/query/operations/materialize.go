package operations

import (
	"github.com/DabicD/Recruitment/internal/domain/data"
	"github.com/DabicD/Recruitment/internal/domain/schema"
)

// Materialize converts raw row tokens into positional records.
// Short rows are padded with missing cells, extra tokens are dropped,
// and empty tokens normalize to missing.
func Materialize(spec *schema.Spec, rawRows [][]string) *schema.Table {
	rows := make([]data.Row, len(rawRows))
	for i, tokens := range rawRows {
		rows[i] = materializeRow(spec.Columns, tokens)
	}
	return &schema.Table{Spec: spec, Rows: rows}
}

func materializeRow(columns []string, tokens []string) data.Row {
	// 1. Every declared column starts missing
	row := data.NewRow(columns)

	// 2. Overwrite positionally, data.Value maps "" back to missing
	n := min(len(tokens), len(columns))
	for i := 0; i < n; i++ {
		row.Set(i, data.Value(tokens[i]))
	}

	return row
}
