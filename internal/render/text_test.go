package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextTable(t *testing.T) {
	res := &Result{
		Columns: []string{"name", "price"},
		Rows:    [][]string{{"milk", "2"}, {"butter", "x"}},
		Footer:  []string{"-----", "2"},
	}

	var buf bytes.Buffer
	if err := Text(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "name") || !strings.Contains(lines[0], "price") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "butter  x") {
		t.Errorf("expected aligned row, got %q", lines[3])
	}
	if !strings.HasPrefix(lines[5], "-----") {
		t.Errorf("unexpected footer: %q", lines[5])
	}
}

func TestTextPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, Placeholder("Cannot display table without any data")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "Cannot display table without any data\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
