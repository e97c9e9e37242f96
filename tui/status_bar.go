// ABOUTME: Implements a single-line status bar for the bottom of the TUI showing run progress.
// ABOUTME: Displays phase, current line, elapsed time, run id, and a transient flash message.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/arraylab/engine"
)

// StatusBarModel displays run status in a single line.
type StatusBarModel struct {
	phase      engine.Phase
	current    int
	totalLines int
	runID      string
	autoplay   bool
	startTime  time.Time
	flash      string
	width      int
}

// NewStatusBarModel creates a StatusBarModel for an idle engine.
func NewStatusBarModel(totalLines int) StatusBarModel {
	return StatusBarModel{current: -1, totalLines: totalLines}
}

// Start records the run start time.
func (m *StatusBarModel) Start() {
	m.startTime = time.Now()
}

// Stop clears the run start time.
func (m *StatusBarModel) Stop() {
	m.startTime = time.Time{}
}

// Sync copies the engine's position into the bar.
func (m *StatusBarModel) Sync(e *engine.Engine) {
	s := e.State()
	m.phase = s.Phase
	m.current = s.Current
	m.runID = s.RunID
	m.autoplay = s.Autoplay
	m.totalLines = len(e.Lines())
}

// SetFlash shows msg until the next call. An empty msg clears it.
func (m *StatusBarModel) SetFlash(msg string) {
	m.flash = msg
}

// Flash returns the current flash message.
func (m StatusBarModel) Flash() string {
	return m.flash
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// Elapsed returns the time since Start() was called, or zero if not started.
func (m StatusBarModel) Elapsed() time.Duration {
	if m.startTime.IsZero() {
		return 0
	}
	return time.Since(m.startTime)
}

// formatElapsed formats a duration as a human-readable string.
// Durations under a minute show as seconds (e.g. "12s").
// Durations of a minute or more show as minutes and seconds (e.g. "2m30s").
func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) - minutes*60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	line := m.current + 1
	if line > m.totalLines {
		line = m.totalLines
	}

	phase := m.phase.String()
	if m.autoplay {
		phase += " (auto)"
	}

	content := fmt.Sprintf("Phase: %s | Line: %d/%d | Elapsed: %s",
		phase, line, m.totalLines, formatElapsed(m.Elapsed()))
	if m.runID != "" {
		content += " | Run: " + m.runID
	}
	if m.flash != "" {
		content += " | " + FlashStyle.Render(m.flash)
	}

	style := StatusBarStyle.Width(m.width)

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(content))
}
