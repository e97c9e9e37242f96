// ABOUTME: Renders a plain-text frame of the engine: the code listing with line markers and the array cells.
// ABOUTME: Cells are drawn as lipgloss boxes whose border style encodes the highlight when color is unavailable.
package transcript

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/arraylab/engine"
	"github.com/2389-research/arraylab/program"
)

// Line markers in the code listing.
const (
	markCurrent = ">"
	markError   = "!"
	markNone    = " "
)

var (
	neutralCell = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
	successCell = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1)
	errorCell = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)
	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Align(lipgloss.Center)
)

// Frame renders the current listing and cell row of e.
func Frame(e *engine.Engine) string {
	var b strings.Builder
	b.WriteString(Header(e))
	b.WriteString("\n")
	b.WriteString(Listing(e))
	b.WriteString(Cells(e.Cells()))
	return b.String()
}

// Header summarizes the phase and position.
func Header(e *engine.Engine) string {
	s := e.State()
	return fmt.Sprintf("[%s] line %d/%d", s.Phase, s.Current+1, len(e.Lines()))
}

// Listing renders every code line with its marker column.
func Listing(e *engine.Engine) string {
	cfg := e.Config()
	slots := e.Slots()

	var b strings.Builder
	for i, line := range e.Lines() {
		b.WriteString(marker(e.LineMark(i)))
		b.WriteString(" ")
		b.WriteString(program.Render(cfg, line, slots))
		b.WriteString("\n")
	}
	return b.String()
}

func marker(m engine.LineMark) string {
	switch m {
	case engine.LineCurrent:
		return markCurrent
	case engine.LineError:
		return markError
	default:
		return markNone
	}
}

// Cells renders the array as a row of boxes with their indices underneath.
// Hidden cells are drawn empty.
func Cells(cells []engine.Cell) string {
	boxes := make([]string, len(cells))
	for i, c := range cells {
		text := ""
		if c.Visible {
			text = c.Text
		}
		box := cellStyle(c.Highlight).Render(text)
		idx := indexStyle.Width(lipgloss.Width(box)).Render(fmt.Sprintf("%d", i))
		boxes[i] = lipgloss.JoinVertical(lipgloss.Center, box, idx)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...) + "\n"
}

func cellStyle(h engine.Highlight) lipgloss.Style {
	switch h {
	case engine.Success:
		return successCell
	case engine.Error:
		return errorCell
	default:
		return neutralCell
	}
}
