package operations

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/DabicD/Recruitment/internal/domain/data"
	"github.com/DabicD/Recruitment/internal/domain/errors"
	"github.com/DabicD/Recruitment/internal/domain/schema"
	"github.com/DabicD/Recruitment/internal/parser"
	"github.com/DabicD/Recruitment/internal/parser/ast"
)

// FailedText is written to a cell whose fill formula could not be evaluated
const FailedText = "NaN"

// FillStats summarizes one gap-fill pass
type FillStats struct {
	Filled  int // cells that received a computed value
	Failed  int // cells set to FailedText
	Skipped int // rule applications that left the cell missing
}

// FillGaps applies every fill rule once, in declaration order, to every row.
// Present cells are never overwritten and no error escapes: a formula that cannot
// be evaluated turns its target into FailedText. Division by zero and other
// non-finite results count as evaluation failures, never "Infinity".
func FillGaps(table *schema.Table) FillStats {
	var stats FillStats
	if table == nil || table.Spec == nil {
		return stats
	}

	columnCount := len(table.Spec.Columns)
	for _, rule := range table.Spec.FillRules {
		if !rule.Valid(columnCount) {
			slog.Debug("skipping fill rule with unusable target", "rule", rule.Raw)
			continue
		}
		for _, row := range table.Rows {
			switch applyRule(rule, row) {
			case fillOK:
				stats.Filled++
			case fillFailed:
				stats.Failed++
			case fillEmpty:
				stats.Skipped++
			}
		}
	}
	return stats
}

type fillOutcome int

const (
	fillNotNeeded fillOutcome = iota
	fillOK
	fillFailed
	fillEmpty
)

func applyRule(rule schema.FillRule, row data.Row) fillOutcome {
	if !row.At(rule.Target).IsMissing() {
		return fillNotNeeded
	}
	if !rule.HasBody {
		return fillEmpty
	}

	expr := Substitute(rule.Formula, row)
	if strings.TrimSpace(expr) == "" {
		return fillEmpty
	}

	result, err := parser.Evaluate(expr)
	if err != nil {
		slog.Debug("fill formula failed", "error", &errors.FormulaError{
			Formula: rule.Formula,
			Expr:    expr,
			Reason:  "evaluation failed",
			Err:     err,
		})
		row.Set(rule.Target, data.Value(FailedText))
		return fillFailed
	}

	row.Set(rule.Target, data.Value(ast.FormatNumber(result)))
	return fillOK
}

// Substitute replaces every run of digits in the formula with the display text
// of the referenced column in the row. Other characters pass through unchanged.
// References outside the row substitute as empty text.
func Substitute(formula string, row data.Row) string {
	var b strings.Builder
	for i := 0; i < len(formula); {
		if !isDigit(formula[i]) {
			b.WriteByte(formula[i])
			i++
			continue
		}
		start := i
		for i < len(formula) && isDigit(formula[i]) {
			i++
		}
		idx, err := strconv.Atoi(formula[start:i])
		if err != nil || idx >= len(row.Cells) {
			continue
		}
		b.WriteString(row.At(idx).String())
	}
	return b.String()
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
