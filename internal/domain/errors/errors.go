package errors

import (
	"fmt"
	"strings"
)

// ConfigKind identifies which mandatory attribute was unusable
type ConfigKind string

const (
	NoColumns ConfigKind = "no_columns"
	NoData    ConfigKind = "no_data"
)

// ConfigError reports a missing or empty mandatory attribute.
// The table is not built when one is returned.
type ConfigError struct {
	Kind      ConfigKind
	Attribute string // attribute name ("columns", "data")
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error (%s): attribute %q is missing or empty", e.Kind, e.Attribute)
}

// Message returns the placeholder text shown instead of the table
func (e *ConfigError) Message() string {
	switch e.Kind {
	case NoColumns:
		return "Cannot display table without at least a single column"
	case NoData:
		return "Cannot display table without any data"
	default:
		return "Cannot display table"
	}
}

func NewNoColumns(attribute string) *ConfigError {
	return &ConfigError{Kind: NoColumns, Attribute: attribute}
}

func NewNoData(attribute string) *ConfigError {
	return &ConfigError{Kind: NoData, Attribute: attribute}
}

// FormulaError describes why a fill formula could not produce a value.
// It never leaves the gap-fill step; the target cell becomes "NaN" instead.
type FormulaError struct {
	Formula string // formula as declared in the rule
	Expr    string // expression after column substitution
	Reason  string
	Err     error
}

func (e *FormulaError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("formula %q", e.Formula))
	if e.Expr != "" {
		parts = append(parts, fmt.Sprintf("expr=%q", e.Expr))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, " - ")
}

func (e *FormulaError) Unwrap() error {
	return e.Err
}

// EvalError is returned by the arithmetic evaluator
type EvalError struct {
	Op     string
	Reason string
}

func (e *EvalError) Error() string {
	if e.Op == "" {
		return "evaluation error: " + e.Reason
	}
	return fmt.Sprintf("evaluation error in %q: %s", e.Op, e.Reason)
}
