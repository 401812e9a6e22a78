package render

import (
	"github.com/DabicD/Recruitment/internal/domain/data"
	"github.com/DabicD/Recruitment/internal/domain/schema"
)

// Result is everything the presentation layer needs to draw the table.
// Missing cells are already serialized to data.MissingText.
type Result struct {
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
	Footer  []string   `json:"footer,omitempty"`
	Message string     `json:"message,omitempty"` // placeholder shown instead of a table
	Error   string     `json:"error,omitempty"`
}

// IsTable reports whether the result carries a table rather than a placeholder
func (r *Result) IsTable() bool {
	return r.Message == "" && r.Error == "" && len(r.Columns) > 0
}

// FromTable serializes a table and its footer
func FromTable(table *schema.Table, footer data.Row) *Result {
	res := &Result{
		Columns: append([]string(nil), table.Columns()...),
		Rows:    make([][]string, len(table.Rows)),
		Footer:  footer.Strings(),
	}
	for i, row := range table.Rows {
		res.Rows[i] = row.Strings()
	}
	return res
}

// Placeholder builds a result that replaces the table with a message
func Placeholder(message string) *Result {
	return &Result{Message: message}
}
