// ABOUTME: Bubble Tea sub-model for the array illustration: one box per cell with its index underneath.
// ABOUTME: Hidden cells are drawn empty; boxes wrap onto new rows when the panel is narrow.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/arraylab/engine"
)

// CellsPanelModel displays the array cells.
type CellsPanelModel struct {
	width  int
	height int
}

// NewCellsPanelModel creates an empty cells panel.
func NewCellsPanelModel() CellsPanelModel {
	return CellsPanelModel{}
}

// SetSize sets the available dimensions.
func (m *CellsPanelModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the illustration for e.
func (m CellsPanelModel) View(e *engine.Engine) string {
	cfg := e.Config()
	title := TitleStyle.Render(fmt.Sprintf("%s[] %s", cfg.Type, cfg.Name))

	boxes := cellBoxes(e.Cells())
	inner := m.width - 4
	if inner < 1 {
		inner = 80
	}

	var rows []string
	var current []string
	used := 0
	for _, box := range boxes {
		w := lipgloss.Width(box)
		if used > 0 && used+w > inner {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current, used = nil, 0
		}
		current = append(current, box)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}

	content := title + "\n" + strings.Join(rows, "\n")

	style := BorderStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	if m.height > 0 {
		style = style.Height(m.height - 2)
	}
	return style.Render(content)
}

// cellBoxes renders each cell with its index below it.
func cellBoxes(cells []engine.Cell) []string {
	boxes := make([]string, len(cells))
	for i, c := range cells {
		text := ""
		if c.Visible {
			text = c.Text
		}
		box := StyleForHighlight(c.Highlight).Render(text)
		idx := CellIndexStyle.Width(lipgloss.Width(box)).Render(fmt.Sprintf("%d", i))
		boxes[i] = lipgloss.JoinVertical(lipgloss.Center, box, idx)
	}
	return boxes
}
