// ABOUTME: Execution phases, cell view, and the highlight enums the engine exposes to a presentation layer.
// ABOUTME: State is the single authoritative snapshot of where a run stands.
package engine

// Phase is the engine's position in its run lifecycle.
type Phase int

const (
	Idle               Phase = iota // no run in progress
	Running                         // stepping through lines
	AwaitingCorrection              // paused on a line whose operand failed validation
	Completed                       // every line executed
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case AwaitingCorrection:
		return "awaiting-correction"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Highlight is the visual state of one array cell.
type Highlight int

const (
	Neutral Highlight = iota
	Error
	Success
)

// String returns the lowercase name of the highlight.
func (h Highlight) String() string {
	switch h {
	case Neutral:
		return "neutral"
	case Error:
		return "error"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// LineMark is the highlight of one code line.
type LineMark int

const (
	LineNeutral LineMark = iota
	LineCurrent          // the line being executed
	LineError            // the line whose last attempt failed
)

// FieldMark is the highlight of one slot's edit field.
type FieldMark int

const (
	FieldNeutral FieldMark = iota
	FieldError
)

// Cell mirrors one slot of the array as the illustration shows it.
type Cell struct {
	Visible   bool
	Text      string
	Highlight Highlight
}

// State is the engine's execution state.
type State struct {
	Phase         Phase
	Current       int // ordinal of the last executed line, -1 before the first
	FiltersActive bool
	Autoplay      bool
	RunID         string
}
