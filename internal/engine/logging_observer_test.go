package engine

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/DabicD/Recruitment/internal/domain/schema"
)

func TestLoggingObserverNamedFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	eng := New()
	eng.AddObserver(NewLoggingObserverTo(logger))

	_, err := eng.Rebuild(schema.Attributes{
		schema.AttrColumns:   "a,b,c",
		schema.AttrData:      "4,2,;1,0,",
		schema.AttrFillRules: "2=0/1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eng.SortByColumn(0)
	eng.Rebuild(schema.Attributes{})

	out := buf.String()
	for _, want := range []string{
		"event=fill_end",
		"fill.filled=1",
		"fill.failed=1",
		"event=rebuild_end",
		"columns=3",
		"rows=2",
		"event=sort",
		"column=0",
		"mode=numeric",
		"reason=no_columns",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output:\n%s", want, out)
		}
	}
}
