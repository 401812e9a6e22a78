package engine

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/DabicD/Recruitment/internal/domain/data"
	"github.com/DabicD/Recruitment/internal/domain/errors"
	"github.com/DabicD/Recruitment/internal/domain/schema"
	"github.com/DabicD/Recruitment/internal/parser"
	"github.com/DabicD/Recruitment/internal/query/operations"
	"github.com/DabicD/Recruitment/internal/render"
)

// Engine owns the table backing one rendered widget.
// It is not safe for concurrent use; every call runs a complete cycle.
type Engine struct {
	table     *schema.Table
	configErr *errors.ConfigError
	observers []Observer // Observers for lifecycle events

	applied     bool
	fingerprint uint64
	cycleID     string
}

// New creates an engine with no table; Render returns the no-columns placeholder
func New() *Engine {
	return &Engine{
		observers: make([]Observer, 0),
	}
}

// SortResult describes a completed sort
type SortResult struct {
	Column int
	Mode   operations.SortMode
}

// RebuildStats is the payload of EventRebuildEnd
type RebuildStats struct {
	Columns int
	Rows    int
}

// Rebuild discards the current table and derives a new one from the attributes.
// Configuration errors are returned as *errors.ConfigError; the engine then
// renders the matching placeholder.
func (e *Engine) Rebuild(attrs schema.Attributes) (*schema.Table, error) {
	e.cycleID = uuid.New().String()
	e.notify(Event{Type: EventRebuildStart, Data: attrs})

	// 1. Parse attributes
	spec, rawRows, err := parser.ParseAttributes(attrs)
	if err != nil {
		e.table = nil
		var cfgErr *errors.ConfigError
		if !stderrors.As(err, &cfgErr) {
			e.configErr = nil
			return nil, fmt.Errorf("parse attributes: %w", err)
		}
		e.configErr = cfgErr
		slog.Debug("table not rendered", "reason", cfgErr.Kind, "cycle_id", e.cycleID)
		e.notify(Event{Type: EventConfigError, Data: cfgErr.Kind})
		e.notify(Event{Type: EventRender})
		return nil, err
	}

	// 2. Materialize rows
	table := operations.Materialize(spec, rawRows)

	// 3. Fill gaps
	stats := operations.FillGaps(table)
	e.notify(Event{Type: EventFillEnd, Data: stats})

	e.table = table
	e.configErr = nil

	e.notify(Event{Type: EventRebuildEnd, Data: RebuildStats{
		Columns: len(spec.Columns),
		Rows:    table.Len(),
	}})
	e.notify(Event{Type: EventRender})

	return table, nil
}

// Apply rebuilds only when the observed attributes differ from the last applied set.
// Re-applying identical attributes keeps the current row order.
func (e *Engine) Apply(attrs schema.Attributes) (bool, error) {
	fp := xxh3.HashString(attrs.Canonical())
	if e.applied && fp == e.fingerprint {
		if e.configErr != nil {
			return false, e.configErr
		}
		return false, nil
	}

	e.applied = true
	e.fingerprint = fp

	_, err := e.Rebuild(attrs)
	return true, err
}

// SortByColumn replaces the table with a copy ordered by the given column
// and signals a re-render. Without a table it does nothing.
func (e *Engine) SortByColumn(index int) SortResult {
	if e.table == nil {
		slog.Warn("sort requested without a table", "column", index)
		return SortResult{Column: index}
	}

	sorted, mode := operations.SortByColumn(e.table, index)
	e.table = sorted

	res := SortResult{Column: index, Mode: mode}
	e.notify(Event{Type: EventSort, Data: res})
	e.notify(Event{Type: EventRender})
	return res
}

// Reset discards all state, as when the widget is torn down
func (e *Engine) Reset() {
	e.table = nil
	e.configErr = nil
	e.applied = false
	e.fingerprint = 0
	e.notify(Event{Type: EventReset})
	e.notify(Event{Type: EventRender})
	e.cycleID = ""
}

// Table returns the current table, nil when none is built
func (e *Engine) Table() *schema.Table {
	return e.table
}

// Rows returns a copy of the current records in display order
func (e *Engine) Rows() []data.Row {
	if e.table == nil {
		return nil
	}
	return e.table.SelectAll()
}

// Footer computes the aggregate row against the current table
func (e *Engine) Footer() (data.Row, bool) {
	if e.table == nil {
		return data.Row{}, false
	}
	return operations.Footer(e.table), true
}

// Render serializes the current view. Aggregates are recomputed on every call.
func (e *Engine) Render() *render.Result {
	if e.configErr != nil {
		return render.Placeholder(e.configErr.Message())
	}
	if e.table == nil {
		return render.Placeholder(errors.NewNoColumns(schema.AttrColumns).Message())
	}
	footer, _ := e.Footer()
	return render.FromTable(e.table, footer)
}

// CycleID returns the ID of the current render cycle
func (e *Engine) CycleID() string {
	return e.cycleID
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	event.CycleID = e.cycleID
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
