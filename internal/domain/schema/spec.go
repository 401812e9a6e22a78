package schema

import (
	"sort"
	"strings"
)

// Attribute names accepted by the engine
const (
	AttrColumns   = "columns"
	AttrData      = "data"
	AttrSummary   = "summary"
	AttrFillRules = "fill-data-rules"
)

// ObservedAttributes lists every attribute whose change triggers a rebuild
var ObservedAttributes = []string{AttrSummary, AttrData, AttrColumns, AttrFillRules}

// Attributes holds the raw declarative inputs keyed by attribute name.
// An absent key is an absent attribute; a present empty value is an empty one.
type Attributes map[string]string

// Lookup returns the raw value and whether the attribute is present
func (a Attributes) Lookup(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a[name]
	return v, ok
}

// Clone returns a copy safe to mutate
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Canonical returns a stable encoding of the observed attributes.
// Absence and emptiness encode differently.
func (a Attributes) Canonical() string {
	names := append([]string(nil), ObservedAttributes...)
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		if v, ok := a.Lookup(name); ok {
			b.WriteByte('=')
			b.WriteString(v)
		} else {
			b.WriteByte('!')
		}
		b.WriteByte(0)
	}
	return b.String()
}

// AggregationKind selects the footer computation for a column
type AggregationKind string

const (
	AggNone  AggregationKind = "none"
	AggCount AggregationKind = "count"
	AggSum   AggregationKind = "sum"
	AggAvg   AggregationKind = "avg"
)

// FillRule fills missing cells of the target column from a formula
// referencing other columns of the same row by index
type FillRule struct {
	Raw     string // rule as declared, e.g. "2=0/1"
	Target  int    // target column index, -1 when the declared target is unusable
	Formula string // formula template with column-index references
	HasBody bool   // false when the rule had no '=' separator
}

// Valid reports whether the rule targets a declared column
func (r FillRule) Valid(columnCount int) bool {
	return r.Target >= 0 && r.Target < columnCount
}

// Spec is the parsed form of the declarative attributes for one render cycle
type Spec struct {
	Columns   []string
	Summary   []AggregationKind
	FillRules []FillRule
}

// SummaryFor returns the aggregation kind declared at the given column position.
// The second result is false when the summary is shorter than the column list.
func (s *Spec) SummaryFor(i int) (AggregationKind, bool) {
	if i < 0 || i >= len(s.Summary) {
		return "", false
	}
	return s.Summary[i], true
}
