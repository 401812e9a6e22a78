package operations

import (
	"math"
	"strconv"
	"strings"

	"github.com/DabicD/Recruitment/internal/domain/data"
)

// parseNumeric parses a cell's text as a finite decimal number.
// Surrounding whitespace is ignored; "NaN" and "Inf" spellings are rejected.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// cellNumber parses a present cell; missing cells never parse
func cellNumber(c data.Cell) (float64, bool) {
	v, ok := c.Raw()
	if !ok {
		return 0, false
	}
	return parseNumeric(v)
}
