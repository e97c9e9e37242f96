// ABOUTME: Bubble Tea sub-model for the code listing with one inline text field per slot.
// ABOUTME: Keystrokes become splice edits routed through the engine so a run's input filters apply.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/arraylab/engine"
	"github.com/2389-research/arraylab/program"
	"github.com/2389-research/arraylab/values"
)

// noField means no slot field has focus.
const noField = -1

// CodePanelModel displays the line program and owns the slot fields.
type CodePanelModel struct {
	fields       []textinput.Model
	focus        int
	rejected     int
	spinnerIndex int
	width        int
}

// NewCodePanelModel creates a code panel with one field per slot.
func NewCodePanelModel(slots []program.Slot) CodePanelModel {
	m := CodePanelModel{focus: noField, rejected: noField}
	m.SyncFields(slots)
	return m
}

// SyncFields rebuilds every field from slots, dropping focus.
func (m *CodePanelModel) SyncFields(slots []program.Slot) {
	m.fields = make([]textinput.Model, len(slots))
	for i, s := range slots {
		ti := textinput.New()
		ti.Prompt = ""
		ti.SetValue(s.Raw)
		m.fields[i] = ti
	}
	m.focus = noField
	m.rejected = noField
}

// Len returns the number of slot fields.
func (m CodePanelModel) Len() int {
	return len(m.fields)
}

// Value returns field i's text.
func (m CodePanelModel) Value(i int) string {
	if i < 0 || i >= len(m.fields) {
		return ""
	}
	return m.fields[i].Value()
}

// FocusField gives field i keyboard focus. noField blurs every field.
func (m *CodePanelModel) FocusField(i int) {
	if m.focus >= 0 && m.focus < len(m.fields) {
		m.fields[m.focus].Blur()
	}
	m.focus = noField
	if i >= 0 && i < len(m.fields) {
		m.fields[i].Focus()
		m.focus = i
	}
}

// Focused returns the focused field index, or noField.
func (m CodePanelModel) Focused() int {
	return m.focus
}

// Rejected returns the field whose last keystroke was refused, or noField.
func (m CodePanelModel) Rejected() int {
	return m.rejected
}

// AdvanceSpinner increments the spinner frame index.
func (m *CodePanelModel) AdvanceSpinner() {
	m.spinnerIndex++
}

// SetWidth sets the available width for rendering.
func (m *CodePanelModel) SetWidth(w int) {
	m.width = w
}

// HandleKey applies msg to the focused field through e. It returns true when
// the engine refused the edit, in which case the field is left unchanged.
func (m *CodePanelModel) HandleKey(e *engine.Engine, msg tea.KeyMsg) bool {
	i := m.focus
	if i < 0 || i >= len(m.fields) {
		return false
	}

	before := m.fields[i].Value()
	next, _ := m.fields[i].Update(msg)
	after := next.Value()
	if after == before {
		m.fields[i] = next
		return false
	}

	got, err := e.EditSlot(i, diffEdit(before, after))
	if err != nil {
		if errors.Is(err, values.ErrRejected) {
			m.rejected = i
			return true
		}
		return false
	}
	if got != after {
		next.SetValue(got)
	}
	m.fields[i] = next
	m.rejected = noField
	return false
}

// diffEdit expresses the change from before to after as a single splice.
func diffEdit(before, after string) values.Edit {
	b, a := []rune(before), []rune(after)

	p := 0
	for p < len(b) && p < len(a) && b[p] == a[p] {
		p++
	}
	s := 0
	for s < len(b)-p && s < len(a)-p && b[len(b)-1-s] == a[len(a)-1-s] {
		s++
	}
	return values.Edit{Offset: p, Length: len(b) - p - s, Text: string(a[p : len(a)-s])}
}

// View renders the listing for e.
func (m CodePanelModel) View(e *engine.Engine) string {
	cfg := e.Config()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("CODE"))
	b.WriteString("\n")

	for i, line := range e.Lines() {
		status := lineStatus(e, i)
		style := StyleForLineStatus(status)

		b.WriteString(style.Render(status.Icon()))
		b.WriteString(" ")
		for _, seg := range program.Segments(cfg, line) {
			if seg.Slot == program.NoSlot {
				b.WriteString(style.Render(seg.Text))
				continue
			}
			b.WriteString(m.fieldView(e, seg.Slot))
		}
		if status == LineRunning && e.Autoplay() {
			b.WriteString(" ")
			b.WriteString(SpinnerFrames[m.spinnerIndex%len(SpinnerFrames)])
		}
		b.WriteString("\n")
	}

	content := strings.TrimSuffix(b.String(), "\n")
	if m.width > 0 {
		return BorderStyle.Width(m.width - 2).Render(content)
	}
	return BorderStyle.Render(content)
}

func (m CodePanelModel) fieldView(e *engine.Engine, i int) string {
	if i < 0 || i >= len(m.fields) {
		return ""
	}
	field := m.fields[i]

	var text string
	if i == m.focus {
		text = FieldFocusedStyle.Render(field.View())
	} else {
		style := FieldStyle
		if e.FieldMark(i) == engine.FieldError {
			style = FieldErrorStyle
		}
		value := field.Value()
		if value == "" {
			value = " "
		}
		text = style.Render(value)
	}
	if i == m.rejected {
		text = FieldRejectedStyle.Render(text)
	}
	return text
}
