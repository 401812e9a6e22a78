package engine

import "time"

// EventType represents different lifecycle phases of a render cycle
type EventType string

const (
	EventRebuildStart EventType = "rebuild_start"
	EventRebuildEnd   EventType = "rebuild_end"
	EventFillEnd      EventType = "fill_end"
	EventConfigError  EventType = "config_error"
	EventSort         EventType = "sort"
	EventReset        EventType = "reset"

	// EventRender asks the presentation layer to redraw from Engine.Render
	EventRender EventType = "render"
)

// Event represents a lifecycle event of the engine
type Event struct {
	Type      EventType   // Type of event
	CycleID   string      // Render cycle ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (attributes, fill stats, sort column)
}

// Observer interface for event subscribers.
// Observers are called synchronously, in registration order.
type Observer interface {
	OnEvent(event Event)
}
