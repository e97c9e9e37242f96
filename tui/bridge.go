// ABOUTME: Bridge connecting the execution engine to the Bubble Tea message loop.
// ABOUTME: Provides EventBridge for buffering engine events raised inside Update, and the autoplay tick command.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/arraylab/engine"
)

// EventBridge collects engine events. The engine runs inside Update, so its
// events are buffered here and drained by the AppModel before the next
// render instead of being re-sent through the program.
type EventBridge struct {
	pending []engine.Event
}

// NewEventBridge creates an empty EventBridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{}
}

// HandleEvent implements the engine.Config.EventHandler signature.
func (b *EventBridge) HandleEvent(evt engine.Event) {
	b.pending = append(b.pending, evt)
}

// Drain returns the buffered events and empties the buffer.
func (b *EventBridge) Drain() []engine.Event {
	out := b.pending
	b.pending = nil
	return out
}

// TickCmd returns a tea.Cmd that sends a TickMsg for generation after the
// given interval.
func TickCmd(interval time.Duration, generation uint64) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(interval)
		return TickMsg{Time: time.Now(), Generation: generation}
	}
}
