// ABOUTME: Engine lifecycle events delivered to an optional handler for logging and rendering.
// ABOUTME: Each event carries the run id, the line and slot it concerns, and free-form data.
package engine

import (
	"time"

	"github.com/2389-research/arraylab/program"
)

// EventType identifies the kind of engine event.
type EventType string

const (
	EventReconfigured      EventType = "model.reconfigured"
	EventRunStarted        EventType = "run.started"
	EventLineExecuted      EventType = "line.executed"
	EventLineFailed        EventType = "line.failed"
	EventRunPaused         EventType = "run.paused"
	EventRunResumed        EventType = "run.resumed"
	EventRunCompleted      EventType = "run.completed"
	EventRunStopped        EventType = "run.stopped"
	EventSlotEdited        EventType = "slot.edited"
	EventKeystrokeRejected EventType = "keystroke.rejected"
)

// Event is emitted by the engine on every observable transition.
type Event struct {
	Type      EventType
	RunID     string
	Line      int // line ordinal, program.NoSlot when not line-specific
	Slot      int // slot index, program.NoSlot when not slot-specific
	Data      map[string]any
	Timestamp time.Time
}

func (e *Engine) emit(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	if evt.RunID == "" {
		evt.RunID = e.state.RunID
	}
	if e.config.EventHandler != nil {
		e.config.EventHandler(evt)
	}
}

func lineEvent(t EventType, line int) Event {
	return Event{Type: t, Line: line, Slot: program.NoSlot}
}

func slotEvent(t EventType, slot int) Event {
	return Event{Type: t, Line: program.NoSlot, Slot: slot}
}
