// ABOUTME: Derives the ordered list of executable code lines from an array configuration.
// ABOUTME: Segments renders a line as literal code text interleaved with editable slot placeholders.
package program

import (
	"fmt"
	"strings"
)

// Kind classifies a code line.
type Kind int

const (
	Declaration  Kind = iota // T[] name = new T[n];
	Assignment               // name[i] = <slot>;
	LiteralBlock             // T[] name = {<slot>, ...};
)

// String returns a short lowercase label.
func (k Kind) String() string {
	switch k {
	case Declaration:
		return "declaration"
	case Assignment:
		return "assignment"
	case LiteralBlock:
		return "literal"
	default:
		return "unknown"
	}
}

// NoSlot marks a line that is not bound to a single slot.
const NoSlot = -1

// Line is one atomic step of the animated program.
type Line struct {
	Ordinal int
	Kind    Kind
	Slot    int
}

// Build returns the code lines for cfg: a declaration followed by one
// assignment per slot, or a single literal block.
func Build(cfg Config) []Line {
	if cfg.Method == LiteralList {
		return []Line{{Ordinal: 0, Kind: LiteralBlock, Slot: NoSlot}}
	}

	lines := make([]Line, 0, cfg.Length+1)
	lines = append(lines, Line{Ordinal: 0, Kind: Declaration, Slot: NoSlot})
	for i := 0; i < cfg.Length; i++ {
		lines = append(lines, Line{Ordinal: i + 1, Kind: Assignment, Slot: i})
	}
	return lines
}

// Segment is a run of literal code text, or a placeholder for the slot
// field at index Slot when Slot is not NoSlot.
type Segment struct {
	Text string
	Slot int
}

func text(s string) Segment { return Segment{Text: s, Slot: NoSlot} }

// Segments renders line against cfg.
func Segments(cfg Config, line Line) []Segment {
	typ := cfg.Type.String()
	switch line.Kind {
	case Declaration:
		return []Segment{text(fmt.Sprintf("%s[] %s = new %s[%d];", typ, cfg.Name, typ, cfg.Length))}
	case Assignment:
		return []Segment{
			text(fmt.Sprintf("%s[%d] = ", cfg.Name, line.Slot)),
			{Slot: line.Slot},
			text(";"),
		}
	case LiteralBlock:
		segs := []Segment{text(fmt.Sprintf("%s[] %s = {", typ, cfg.Name))}
		for i := 0; i < cfg.Length; i++ {
			if i > 0 {
				segs = append(segs, text(", "))
			}
			segs = append(segs, Segment{Slot: i})
		}
		return append(segs, text("};"))
	default:
		return nil
	}
}

// Render flattens line into plain source text, filling slot placeholders
// from slots.
func Render(cfg Config, line Line, slots []Slot) string {
	var b strings.Builder
	for _, seg := range Segments(cfg, line) {
		if seg.Slot == NoSlot {
			b.WriteString(seg.Text)
			continue
		}
		if seg.Slot < len(slots) {
			b.WriteString(slots[seg.Slot].Raw)
		}
	}
	return b.String()
}
