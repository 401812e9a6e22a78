package engine

import (
	"log/slog"

	"github.com/DabicD/Recruitment/internal/domain/errors"
	"github.com/DabicD/Recruitment/internal/domain/schema"
	"github.com/DabicD/Recruitment/internal/query/operations"
)

// LoggingObserver logs every engine event at debug level
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver logs through the default logger
func NewLoggingObserver() *LoggingObserver {
	return NewLoggingObserverTo(slog.Default())
}

// NewLoggingObserverTo logs through the given logger
func NewLoggingObserverTo(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	args := []any{
		"event", event.Type,
		"cycle_id", event.CycleID,
	}
	args = append(args, payloadAttrs(event.Data)...)
	lo.logger.Debug("table_lifecycle", args...)
}

// payloadAttrs flattens a known event payload into named attributes
func payloadAttrs(data interface{}) []any {
	switch d := data.(type) {
	case nil:
		return nil
	case schema.Attributes:
		return []any{slog.Int("attributes", len(d))}
	case operations.FillStats:
		return []any{slog.Group("fill",
			slog.Int("filled", d.Filled),
			slog.Int("failed", d.Failed),
			slog.Int("skipped", d.Skipped),
		)}
	case RebuildStats:
		return []any{slog.Int("columns", d.Columns), slog.Int("rows", d.Rows)}
	case SortResult:
		return []any{slog.Int("column", d.Column), slog.String("mode", string(d.Mode))}
	case errors.ConfigKind:
		return []any{slog.String("reason", string(d))}
	default:
		return []any{slog.Any("data", d)}
	}
}
