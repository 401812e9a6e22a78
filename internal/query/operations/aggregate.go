package operations

import (
	"log/slog"
	"math"
	"math/big"
	"strconv"

	"github.com/DabicD/Recruitment/internal/domain/data"
	"github.com/DabicD/Recruitment/internal/domain/schema"
	"github.com/DabicD/Recruitment/internal/parser/ast"
)

// Placeholder is shown for columns without an aggregation
const Placeholder = "-----"

// Footer computes one display value per declared column
func Footer(table *schema.Table) data.Row {
	columns := table.Columns()
	footer := data.NewRow(columns)
	for i := range columns {
		kind, _ := table.Spec.SummaryFor(i)
		footer.Set(i, data.Value(Aggregate(table, i, kind)))
	}
	return footer
}

// Aggregate computes the footer value of a single column.
// Unknown kinds degrade to the placeholder with a logged warning.
func Aggregate(table *schema.Table, col int, kind schema.AggregationKind) string {
	switch kind {
	case schema.AggCount:
		return strconv.Itoa(countDistinct(table, col))

	case schema.AggSum:
		sum, _ := sumColumn(table, col)
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return FailedText
		}
		return ast.FormatNumber(sum)

	case schema.AggAvg:
		sum, n := sumColumn(table, col)
		avg := sum / float64(n)
		if math.IsNaN(avg) || math.IsInf(avg, 0) {
			return FailedText
		}
		if avg == math.Trunc(avg) {
			return ast.FormatNumber(avg)
		}
		// halves round away from zero
		return new(big.Rat).SetFloat64(avg).FloatString(3)

	case schema.AggNone, "":
		return Placeholder

	default:
		slog.Warn("unknown summary kind", "kind", string(kind), "column", col)
		return Placeholder
	}
}

// countDistinct counts distinct present values in a column
func countDistinct(table *schema.Table, col int) int {
	seen := make(map[string]struct{})
	for _, row := range table.Rows {
		if v, ok := row.At(col).Raw(); ok {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// sumColumn adds every present cell of a column and reports how many were included.
// A single unparsable cell makes the sum NaN.
func sumColumn(table *schema.Table, col int) (float64, int) {
	var sum float64
	var n int
	for _, row := range table.Rows {
		cell := row.At(col)
		if cell.IsMissing() {
			continue
		}
		n++
		v, ok := cellNumber(cell)
		if !ok {
			sum = math.NaN()
			continue
		}
		sum += v
	}
	return sum, n
}
