// ABOUTME: Stepwise execution engine that animates an array program one line at a time.
// ABOUTME: Owns the execution state, cell views and highlights; validates slots, rolls back on failure, and drives autoplay ticks.
package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/2389-research/arraylab/program"
	"github.com/2389-research/arraylab/values"
)

// DefaultInterval is the autoplay cadence between two steps.
const DefaultInterval = 400 * time.Millisecond

// Config holds engine settings.
type Config struct {
	Interval     time.Duration // autoplay cadence (0 = DefaultInterval)
	EventHandler func(Event)   // optional event callback
}

// Engine is the coordinator for one array model. All methods must be called
// from a single goroutine, typically the UI event loop.
type Engine struct {
	config Config
	model  *program.Model
	policy policy

	state       State
	cells       []Cell
	lineMarks   []LineMark
	fieldMarks  []FieldMark
	generation  uint64
	lastFailure *ValidationFailure
}

// New creates an idle engine over model.
func New(model *program.Model, config Config) *Engine {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	e := &Engine{
		config: config,
		model:  model,
		policy: policyFor(model.Config().Method),
		state:  State{Phase: Idle, Current: -1},
	}
	e.resetViews()
	return e
}

// State returns the current execution state.
func (e *Engine) State() State {
	return e.state
}

// Phase is shorthand for State().Phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// Config returns the array configuration being executed.
func (e *Engine) Config() program.Config {
	return e.model.Config()
}

// Lines returns the current line program.
func (e *Engine) Lines() []program.Line {
	return e.model.Lines()
}

// Slots returns every slot's source text.
func (e *Engine) Slots() []program.Slot {
	return e.model.Slots()
}

// Cells returns a copy of the cell views.
func (e *Engine) Cells() []Cell {
	return append([]Cell(nil), e.cells...)
}

// LineMark returns the highlight of line i.
func (e *Engine) LineMark(i int) LineMark {
	if i < 0 || i >= len(e.lineMarks) {
		return LineNeutral
	}
	return e.lineMarks[i]
}

// FieldMark returns the highlight of slot i's edit field.
func (e *Engine) FieldMark(i int) FieldMark {
	if i < 0 || i >= len(e.fieldMarks) {
		return FieldNeutral
	}
	return e.fieldMarks[i]
}

// LastFailure returns the most recent validation failure of the current
// run, or nil.
func (e *Engine) LastFailure() *ValidationFailure {
	return e.lastFailure
}

// Locked reports whether configuration controls must be disabled.
func (e *Engine) Locked() bool {
	return e.state.Phase == Running || e.state.Phase == AwaitingCorrection
}

// Autoplay reports whether automatic stepping is on.
func (e *Engine) Autoplay() bool {
	return e.state.Autoplay
}

// Interval returns the autoplay cadence.
func (e *Engine) Interval() time.Duration {
	return e.config.Interval
}

// Generation identifies the current autoplay schedule. Ticks carrying an
// older generation are ignored.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Reconfigure replaces the array configuration. A run in progress is
// stopped and every highlight cleared before the new program is built.
func (e *Engine) Reconfigure(cfg program.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if e.state.Phase != Idle {
		e.Reset()
	}
	if err := e.model.Reconfigure(cfg); err != nil {
		return err
	}
	e.policy = policyFor(cfg.Method)
	e.resetViews()

	log.Printf("component=engine action=reconfigured type=%s name=%s length=%d method=%s",
		cfg.Type, cfg.Name, cfg.Length, cfg.Method)
	e.emit(Event{
		Type: EventReconfigured,
		Line: program.NoSlot,
		Slot: program.NoSlot,
		Data: map[string]any{
			"type":   cfg.Type.String(),
			"name":   cfg.Name,
			"length": cfg.Length,
			"method": cfg.Method.String(),
		},
	})
	return nil
}

// SetSlotText stores raw as slot i's source text without filtering. During
// a run, a field flagged as erroneous is cleared once it holds a valid value.
func (e *Engine) SetSlotText(i int, raw string) error {
	if err := e.model.SetText(i, raw); err != nil {
		return err
	}
	if e.state.FiltersActive && e.fieldMarks[i] == FieldError && values.IsValid(raw, e.model.Config().Type) {
		e.fieldMarks[i] = FieldNeutral
	}
	evt := slotEvent(EventSlotEdited, i)
	evt.Data = map[string]any{"text": raw}
	e.emit(evt)
	return nil
}

// EditSlot applies a keystroke-level edit to slot i. While filters are
// active, edits that would leave the field outside its type's prefix
// grammar are rejected with values.ErrRejected and the field is unchanged.
func (e *Engine) EditSlot(i int, edit values.Edit) (string, error) {
	slot, err := e.model.Slot(i)
	if err != nil {
		return "", err
	}

	next := values.Splice(slot.Raw, edit)
	if e.state.FiltersActive {
		next, err = values.Apply(e.model.Config().Type, slot.Raw, edit)
		if err != nil {
			evt := slotEvent(EventKeystrokeRejected, i)
			evt.Data = map[string]any{"text": edit.Text}
			e.emit(evt)
			return slot.Raw, fmt.Errorf("slot %d: %w", i, err)
		}
	}
	if next == slot.Raw {
		return next, nil
	}
	return next, e.SetSlotText(i, next)
}

// Start begins a run. It is only legal from Idle.
func (e *Engine) Start() error {
	if e.state.Phase != Idle {
		return fmt.Errorf("start from %s: %w", e.state.Phase, ErrInvalidOperation)
	}
	e.begin()
	return nil
}

func (e *Engine) begin() {
	e.resetViews()
	e.lastFailure = nil
	e.state = State{
		Phase:         Running,
		Current:       -1,
		FiltersActive: true,
		RunID:         ulid.Make().String(),
	}
	e.generation++

	cfg := e.model.Config()
	log.Printf("component=engine action=run_started run_id=%s type=%s length=%d method=%s",
		e.state.RunID, cfg.Type, cfg.Length, cfg.Method)
	e.emit(Event{Type: EventRunStarted, Line: program.NoSlot, Slot: program.NoSlot})
}

// Step executes the next line. From Idle it starts a run first; from
// Completed it is a no-op returning ErrInvalidOperation. A malformed
// operand yields a *ValidationFailure and the same line is retried on the
// next step.
func (e *Engine) Step() error {
	switch e.state.Phase {
	case Idle:
		e.begin()
	case Completed:
		return fmt.Errorf("step from %s: %w", e.state.Phase, ErrInvalidOperation)
	}
	return e.advance()
}

// RunAll starts a run with autoplay on, or resumes autoplay on a paused run.
// The caller schedules Tick every Interval while Autoplay reports true.
func (e *Engine) RunAll() error {
	switch e.state.Phase {
	case Idle:
		e.begin()
	case Completed:
		return fmt.Errorf("run from %s: %w", e.state.Phase, ErrInvalidOperation)
	default:
		if e.state.Autoplay {
			return nil
		}
		e.generation++
		e.emit(Event{Type: EventRunResumed, Line: e.state.Current, Slot: program.NoSlot})
	}
	e.state.Autoplay = true
	return nil
}

// Tick performs one autoplay step if generation is current and autoplay is
// still on. Stale ticks are ignored.
func (e *Engine) Tick(generation uint64) error {
	if !e.state.Autoplay || generation != e.generation {
		return nil
	}
	return e.advance()
}

// Reset returns to Idle from any phase: autoplay halts, filters are removed,
// every highlight is cleared and cells go back to hidden defaults.
func (e *Engine) Reset() {
	wasActive := e.state.Phase != Idle
	runID := e.state.RunID

	e.state = State{Phase: Idle, Current: -1}
	e.generation++
	e.lastFailure = nil
	e.resetViews()

	if wasActive {
		log.Printf("component=engine action=run_stopped run_id=%s", runID)
		e.emit(Event{Type: EventRunStopped, RunID: runID, Line: program.NoSlot, Slot: program.NoSlot})
	}
}

// Stop is Reset under the name the controls use.
func (e *Engine) Stop() {
	e.Reset()
}

func (e *Engine) advance() error {
	lines := e.model.Lines()
	previous := e.state.Current
	e.state.Current++

	if e.state.Current >= len(lines) {
		e.complete()
		return nil
	}

	line := lines[e.state.Current]
	for i := range e.lineMarks {
		e.lineMarks[i] = LineNeutral
	}
	e.lineMarks[line.Ordinal] = LineCurrent

	cfg := e.model.Config()
	slots := e.model.Slots()

	var invalid []int
	for _, i := range e.policy.gate(line, len(slots)) {
		if slots[i].Valid(cfg.Type) {
			e.fieldMarks[i] = FieldNeutral
			continue
		}
		e.fieldMarks[i] = FieldError
		if e.cells[i].Visible {
			e.cells[i].Highlight = Error
		}
		invalid = append(invalid, i)
	}

	if len(invalid) > 0 {
		return e.fail(line, invalid, previous)
	}

	e.policy.reveal(e.cells, line, slots, cfg.Type)
	e.state.Phase = Running
	e.emit(lineEvent(EventLineExecuted, line.Ordinal))
	return nil
}

// fail rolls the current line back so the same line is retried once the
// offending slots are corrected.
func (e *Engine) fail(line program.Line, invalid []int, previous int) error {
	e.lineMarks[line.Ordinal] = LineError
	e.state.Current = previous
	e.state.Phase = AwaitingCorrection

	failure := &ValidationFailure{Line: line.Ordinal, Slots: invalid, Message: FailureMessage}
	e.lastFailure = failure

	log.Printf("component=engine action=line_failed run_id=%s line=%d slots=%v",
		e.state.RunID, line.Ordinal, invalid)
	evt := lineEvent(EventLineFailed, line.Ordinal)
	evt.Data = map[string]any{"slots": invalid, "message": failure.Message}
	e.emit(evt)

	if e.state.Autoplay {
		e.state.Autoplay = false
		e.generation++
		e.emit(lineEvent(EventRunPaused, line.Ordinal))
	}
	return failure
}

func (e *Engine) complete() {
	e.state.Phase = Completed
	e.state.FiltersActive = false
	e.state.Autoplay = false
	e.generation++

	log.Printf("component=engine action=run_completed run_id=%s lines=%d", e.state.RunID, len(e.lineMarks))
	e.emit(Event{Type: EventRunCompleted, Line: program.NoSlot, Slot: program.NoSlot})
}

// resetViews sizes cells and highlights to the model and restores defaults.
func (e *Engine) resetViews() {
	cfg := e.model.Config()
	e.cells = make([]Cell, e.model.Len())
	for i := range e.cells {
		e.cells[i] = Cell{Text: values.Default(cfg.Type)}
	}
	e.lineMarks = make([]LineMark, len(e.model.Lines()))
	e.fieldMarks = make([]FieldMark, e.model.Len())
}
