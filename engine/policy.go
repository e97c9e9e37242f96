// ABOUTME: Per-construction-method policy deciding which slots gate a line and what a validated line reveals.
// ABOUTME: Declared reveals one cell per assignment; LiteralList validates every slot and reveals all at once.
package engine

import (
	"github.com/2389-research/arraylab/program"
	"github.com/2389-research/arraylab/values"
)

// policy is the only part of execution that differs between methods.
type policy interface {
	// gate returns the slots whose values must be valid for line to run.
	gate(line program.Line, length int) []int
	// reveal applies a validated line to the cells.
	reveal(cells []Cell, line program.Line, slots []program.Slot, t values.Type)
}

func policyFor(m program.Method) policy {
	if m == program.LiteralList {
		return literalPolicy{}
	}
	return declaredPolicy{}
}

type declaredPolicy struct{}

func (declaredPolicy) gate(line program.Line, _ int) []int {
	if line.Kind != program.Assignment {
		return nil
	}
	return []int{line.Slot}
}

func (declaredPolicy) reveal(cells []Cell, line program.Line, slots []program.Slot, t values.Type) {
	switch line.Kind {
	case program.Declaration:
		// Allocation makes every cell exist, holding the zero value.
		for i := range cells {
			cells[i] = Cell{Visible: true, Text: values.Default(t), Highlight: Neutral}
		}
	case program.Assignment:
		cells[line.Slot] = Cell{
			Visible:   true,
			Text:      values.DisplayText(slots[line.Slot].Raw, t),
			Highlight: Success,
		}
	}
}

type literalPolicy struct{}

func (literalPolicy) gate(_ program.Line, length int) []int {
	all := make([]int, length)
	for i := range all {
		all[i] = i
	}
	return all
}

func (literalPolicy) reveal(cells []Cell, _ program.Line, slots []program.Slot, t values.Type) {
	for i := range cells {
		cells[i] = Cell{
			Visible:   true,
			Text:      values.DisplayText(slots[i].Raw, t),
			Highlight: Success,
		}
	}
}
