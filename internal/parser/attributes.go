package parser

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/DabicD/Recruitment/internal/domain/errors"
	"github.com/DabicD/Recruitment/internal/domain/schema"
)

const (
	columnSeparator = ","
	rowSeparator    = ";"
	ruleSeparator   = ","
	ruleAssign      = "="
)

// ParseAttributes turns the raw attributes into a Spec and raw row tokens.
// Columns are checked before data; a columns failure stops all further parsing.
func ParseAttributes(attrs schema.Attributes) (*schema.Spec, [][]string, error) {
	columns, err := parseColumns(attrs)
	if err != nil {
		return nil, nil, err
	}

	spec := &schema.Spec{
		Columns:   columns,
		Summary:   parseSummary(attrs),
		FillRules: ParseFillRules(attrs, len(columns)),
	}

	rows, err := parseData(attrs)
	if err != nil {
		return spec, nil, err
	}

	return spec, rows, nil
}

func parseColumns(attrs schema.Attributes) ([]string, error) {
	raw, ok := attrs.Lookup(schema.AttrColumns)
	if !ok || raw == "" {
		return nil, errors.NewNoColumns(schema.AttrColumns)
	}
	return strings.Split(raw, columnSeparator), nil
}

func parseData(attrs schema.Attributes) ([][]string, error) {
	raw, ok := attrs.Lookup(schema.AttrData)
	if !ok {
		return nil, errors.NewNoData(schema.AttrData)
	}
	groups := strings.Split(raw, rowSeparator)
	rows := make([][]string, len(groups))
	for i, group := range groups {
		rows[i] = strings.Split(group, columnSeparator)
	}
	return rows, nil
}

func parseSummary(attrs schema.Attributes) []schema.AggregationKind {
	raw, ok := attrs.Lookup(schema.AttrSummary)
	if !ok {
		return nil
	}
	parts := strings.Split(raw, columnSeparator)
	kinds := make([]schema.AggregationKind, len(parts))
	for i, part := range parts {
		kinds[i] = schema.AggregationKind(strings.TrimSpace(part))
	}
	return kinds
}

// ParseFillRules parses "target=formula" pairs separated by commas.
// Rules with an unusable target are kept with Target -1 so they can be reported.
func ParseFillRules(attrs schema.Attributes, columnCount int) []schema.FillRule {
	raw, ok := attrs.Lookup(schema.AttrFillRules)
	if !ok {
		return nil
	}

	parts := strings.Split(raw, ruleSeparator)
	rules := make([]schema.FillRule, 0, len(parts))
	for _, part := range parts {
		rule := schema.FillRule{Raw: part, Target: -1}

		target, formula, found := strings.Cut(part, ruleAssign)
		rule.Formula = formula
		rule.HasBody = found

		idx, err := strconv.Atoi(strings.TrimSpace(target))
		if err != nil {
			slog.Warn("fill rule target is not a column index", "rule", part, "error", err)
		} else if idx < 0 || idx >= columnCount {
			slog.Warn("fill rule target out of range", "rule", part, "target", idx, "columns", columnCount)
		} else {
			rule.Target = idx
		}

		rules = append(rules, rule)
	}
	return rules
}
