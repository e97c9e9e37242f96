// ABOUTME: Defines lipgloss style constants for the TUI panels, line and cell highlights, and log formatting.
// ABOUTME: Provides StyleForHighlight and StyleForLineStatus to map engine marks to display styles.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/arraylab/engine"
)

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Line status colors
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	CurrentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("220")).
			Bold(true)
	DoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	FailedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Bold(true)
	CompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	// Slot fields
	FieldStyle         = lipgloss.NewStyle().Underline(true)
	FieldErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Underline(true).Bold(true)
	FieldFocusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	FieldRejectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("52"))

	// Array cells
	CellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	CellSuccessStyle = CellStyle.
				BorderForeground(lipgloss.Color("42")).
				Foreground(lipgloss.Color("42"))
	CellErrorStyle = CellStyle.
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196"))
	CellIndexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Align(lipgloss.Center)

	// Log event colors
	LogTimestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	LogEventStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	LogErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	LogSuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	LogPauseStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	FlashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	// Setup panel labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	LockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	// Validation notice
	NoticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)
)

// StyleForHighlight returns the box style for a cell highlight.
func StyleForHighlight(h engine.Highlight) lipgloss.Style {
	switch h {
	case engine.Success:
		return CellSuccessStyle
	case engine.Error:
		return CellErrorStyle
	default:
		return CellStyle
	}
}

// StyleForLineStatus returns the style a code line is drawn with.
func StyleForLineStatus(status LineStatus) lipgloss.Style {
	switch status {
	case LinePending:
		return PendingStyle
	case LineRunning:
		return CurrentStyle
	case LineDone:
		return DoneStyle
	case LineFailed:
		return FailedStyle
	default:
		return PendingStyle
	}
}
