package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Text writes the result as an aligned plain-text table: header, separator,
// rows, separator, footer. Placeholders print as a single line.
func Text(w io.Writer, res *Result) error {
	if res.Error != "" {
		_, err := fmt.Fprintf(w, "Error: %s\n", res.Error)
		return err
	}
	if !res.IsTable() {
		_, err := fmt.Fprintln(w, res.Message)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	writeLine(tw, res.Columns)
	writeSeparator(tw, len(res.Columns))
	for _, row := range res.Rows {
		writeLine(tw, row)
	}
	writeSeparator(tw, len(res.Columns))
	writeLine(tw, res.Footer)

	return tw.Flush()
}

func writeLine(w io.Writer, cells []string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

func writeSeparator(w io.Writer, n int) {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "---"
	}
	writeLine(w, parts)
}
