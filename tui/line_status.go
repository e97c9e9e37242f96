// ABOUTME: Defines the LineStatus enum the code panel derives from the engine's line marks and position.
// ABOUTME: Provides String/Icon methods and spinner animation frames for TUI rendering.
package tui

import "github.com/2389-research/arraylab/engine"

// LineStatus is how a code line is presented.
type LineStatus int

const (
	LinePending LineStatus = iota // not reached yet
	LineRunning                   // the line just executed
	LineDone                      // executed earlier in the run
	LineFailed                    // last attempt failed validation
)

// String returns the lowercase name of the status.
func (s LineStatus) String() string {
	switch s {
	case LinePending:
		return "pending"
	case LineRunning:
		return "running"
	case LineDone:
		return "done"
	case LineFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Icon returns a bracket-style status marker for TUI display.
func (s LineStatus) Icon() string {
	switch s {
	case LinePending:
		return "[ ]"
	case LineRunning:
		return "[>]"
	case LineDone:
		return "[*]"
	case LineFailed:
		return "[!]"
	default:
		return "[?]"
	}
}

// SpinnerFrames contains the Braille-dot animation frames shown next to the
// current line while autoplay is on.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// lineStatus derives line i's status from the engine.
func lineStatus(e *engine.Engine, i int) LineStatus {
	switch e.LineMark(i) {
	case engine.LineError:
		return LineFailed
	case engine.LineCurrent:
		if e.Phase() == engine.Completed {
			return LineDone
		}
		return LineRunning
	}
	if e.Phase() != engine.Idle && i <= e.State().Current {
		return LineDone
	}
	return LinePending
}
