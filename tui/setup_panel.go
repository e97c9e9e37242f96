// ABOUTME: Bubble Tea sub-model for the array setup bar: element type, name, length and construction method.
// ABOUTME: The name is edited in a text input; the other fields are changed with keys and locked during a run.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/arraylab/program"
)

// SetupPanelModel displays the array configuration.
type SetupPanelModel struct {
	name    textinput.Model
	nameBad bool
	width   int
}

// NewSetupPanelModel creates a setup panel showing name.
func NewSetupPanelModel(name string) SetupPanelModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.SetValue(name)
	return SetupPanelModel{name: ti}
}

// Name returns the text currently in the name field.
func (m SetupPanelModel) Name() string {
	return m.name.Value()
}

// SetName replaces the name field's text.
func (m *SetupPanelModel) SetName(name string) {
	m.name.SetValue(name)
	m.nameBad = false
}

// Focus gives the name field keyboard focus.
func (m *SetupPanelModel) Focus() {
	m.name.Focus()
}

// Blur removes keyboard focus from the name field.
func (m *SetupPanelModel) Blur() {
	m.name.Blur()
}

// Focused reports whether the name field has focus.
func (m SetupPanelModel) Focused() bool {
	return m.name.Focused()
}

// SetNameValid flags the name field as holding an unusable identifier.
func (m *SetupPanelModel) SetNameValid(ok bool) {
	m.nameBad = !ok
}

// NameValid reports whether the name field holds a usable identifier.
func (m SetupPanelModel) NameValid() bool {
	return !m.nameBad
}

// SetWidth sets the available width.
func (m *SetupPanelModel) SetWidth(w int) {
	m.width = w
}

// Update forwards a key to the name field and reports whether its text changed.
func (m SetupPanelModel) Update(msg tea.Msg) (SetupPanelModel, bool) {
	before := m.name.Value()
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	_ = cmd // textinput cmds (cursor blink) are ignored in sub-model updates
	return m, m.name.Value() != before
}

// View renders the setup bar for cfg. locked greys out the controls.
func (m SetupPanelModel) View(cfg program.Config, locked bool) string {
	name := m.name.View()
	if !m.name.Focused() {
		name = ValueStyle.Render(m.name.Value())
	}
	if m.nameBad {
		name = FieldErrorStyle.Render(m.name.Value()) + LogErrorStyle.Render(" (invalid name)")
	}

	lines := []string{
		TitleStyle.Render("ARRAY SETUP"),
		row("Type:", fmt.Sprintf("%s  [t]", cfg.Type)) + row("Length:", fmt.Sprintf("%d  [+/-]", cfg.Length)),
		LabelStyle.Render("Name:") + name,
		row("Method:", methodLabel(cfg.Method)+"  [m]"),
	}
	if locked {
		lines = append(lines, LockedStyle.Render("locked while a run is in progress (s to stop)"))
	}

	style := BorderStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func methodLabel(m program.Method) string {
	if m == program.LiteralList {
		return "literal list"
	}
	return "declare then assign"
}

// row renders a label-value pair using the standard label and value styles.
func row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value) + "  "
}
