// ABOUTME: SequenceModel owning the array configuration, the per-slot source text, and the derived lines.
// ABOUTME: Reconfigure replaces every slot and regenerates the line program wholesale.
package program

import (
	"errors"
	"fmt"

	"github.com/2389-research/arraylab/values"
)

// ErrSlotOutOfRange is returned when a slot index is outside [0, Length).
var ErrSlotOutOfRange = errors.New("slot index out of range")

// Slot is the editable source text for one array position.
type Slot struct {
	Index int
	Raw   string
}

// Valid reports whether the slot holds a complete literal of type t.
func (s Slot) Valid(t values.Type) bool {
	return values.IsValid(s.Raw, t)
}

// Model is the current array configuration with its slot values and lines.
type Model struct {
	cfg      Config
	examples Examples
	slots    []Slot
	lines    []Line
}

// NewModel builds a model for cfg seeded from examples. A nil examples
// table uses DefaultExamples.
func NewModel(cfg Config, examples Examples) (*Model, error) {
	if examples == nil {
		examples = DefaultExamples()
	}
	m := &Model{examples: examples}
	if err := m.Reconfigure(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// Reconfigure validates cfg, then replaces all slots and regenerates the
// line program. On error the model is left untouched.
func (m *Model) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	slots := make([]Slot, cfg.Length)
	for i := range slots {
		slots[i] = Slot{Index: i, Raw: m.examples.Seed(cfg.Type, i)}
	}
	m.cfg = cfg
	m.slots = slots
	m.lines = Build(cfg)
	return nil
}

// Config returns the current configuration.
func (m *Model) Config() Config {
	return m.cfg
}

// Len returns the number of slots.
func (m *Model) Len() int {
	return len(m.slots)
}

// Slot returns the slot at index i.
func (m *Model) Slot(i int) (Slot, error) {
	if i < 0 || i >= len(m.slots) {
		return Slot{}, fmt.Errorf("slot %d of %d: %w", i, len(m.slots), ErrSlotOutOfRange)
	}
	return m.slots[i], nil
}

// Slots returns a copy of every slot in index order.
func (m *Model) Slots() []Slot {
	return append([]Slot(nil), m.slots...)
}

// SetText stores raw as the source text of slot i. No filtering is applied.
func (m *Model) SetText(i int, raw string) error {
	if i < 0 || i >= len(m.slots) {
		return fmt.Errorf("slot %d of %d: %w", i, len(m.slots), ErrSlotOutOfRange)
	}
	m.slots[i].Raw = raw
	return nil
}

// Lines returns a copy of the line program.
func (m *Model) Lines() []Line {
	return append([]Line(nil), m.lines...)
}

// Source renders the whole program as plain text, one line per entry.
func (m *Model) Source() []string {
	out := make([]string, len(m.lines))
	for i, line := range m.lines {
		out[i] = Render(m.cfg, line, m.slots)
	}
	return out
}
