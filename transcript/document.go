// ABOUTME: YAML snapshot of a finished run: configuration, slot sources, final state, cells and event history.
// ABOUTME: Recorder collects engine events so the snapshot can include them.
package transcript

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/2389-research/arraylab/engine"
)

// Document is the machine-readable form of a run.
type Document struct {
	Config ConfigDoc  `yaml:"config"`
	Slots  []string   `yaml:"slots"`
	State  StateDoc   `yaml:"state"`
	Cells  []CellDoc  `yaml:"cells"`
	Events []EventDoc `yaml:"events,omitempty"`
}

// ConfigDoc mirrors program.Config with readable enum names.
type ConfigDoc struct {
	Type   string `yaml:"type"`
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
	Method string `yaml:"method"`
}

// StateDoc mirrors engine.State.
type StateDoc struct {
	Phase   string `yaml:"phase"`
	Current int    `yaml:"current"`
	RunID   string `yaml:"run_id,omitempty"`
	Failure string `yaml:"failure,omitempty"`
}

// CellDoc mirrors engine.Cell.
type CellDoc struct {
	Visible   bool   `yaml:"visible"`
	Text      string `yaml:"text"`
	Highlight string `yaml:"highlight"`
}

// EventDoc is one recorded engine event without its timestamp.
type EventDoc struct {
	Type string         `yaml:"type"`
	Line *int           `yaml:"line,omitempty"`
	Slot *int           `yaml:"slot,omitempty"`
	Data map[string]any `yaml:"data,omitempty"`
}

// Recorder accumulates engine events. Install Handle as the engine's
// EventHandler.
type Recorder struct {
	events []engine.Event
}

// Handle records evt.
func (r *Recorder) Handle(evt engine.Event) {
	r.events = append(r.events, evt)
}

// Events returns the recorded events in order.
func (r *Recorder) Events() []engine.Event {
	return append([]engine.Event(nil), r.events...)
}

// Snapshot builds a Document from the engine's current state. rec may be nil.
func Snapshot(e *engine.Engine, rec *Recorder) Document {
	cfg := e.Config()
	s := e.State()

	doc := Document{
		Config: ConfigDoc{
			Type:   cfg.Type.String(),
			Name:   cfg.Name,
			Length: cfg.Length,
			Method: cfg.Method.String(),
		},
		State: StateDoc{
			Phase:   s.Phase.String(),
			Current: s.Current,
			RunID:   s.RunID,
		},
	}
	if f := e.LastFailure(); f != nil && s.Phase == engine.AwaitingCorrection {
		doc.State.Failure = f.Error()
	}
	for _, slot := range e.Slots() {
		doc.Slots = append(doc.Slots, slot.Raw)
	}
	for _, c := range e.Cells() {
		doc.Cells = append(doc.Cells, CellDoc{Visible: c.Visible, Text: c.Text, Highlight: c.Highlight.String()})
	}
	if rec != nil {
		for _, evt := range rec.events {
			doc.Events = append(doc.Events, eventDoc(evt))
		}
	}
	return doc
}

func eventDoc(evt engine.Event) EventDoc {
	doc := EventDoc{Type: string(evt.Type), Data: evt.Data}
	if evt.Line >= 0 {
		line := evt.Line
		doc.Line = &line
	}
	if evt.Slot >= 0 {
		slot := evt.Slot
		doc.Slot = &slot
	}
	return doc
}

// WriteYAML encodes doc to w.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	return enc.Close()
}
