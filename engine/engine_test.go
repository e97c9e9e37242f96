// ABOUTME: Tests for the execution engine state machine across both construction methods.
// ABOUTME: Covers start/step/run/reset transitions, rollback on failure, autoplay ticks, filters, and reconfiguration.
package engine

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"

	"github.com/2389-research/arraylab/program"
	"github.com/2389-research/arraylab/values"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// recorder collects emitted events.
type recorder struct {
	events []Event
}

func (r *recorder) handle(evt Event) {
	r.events = append(r.events, evt)
}

func (r *recorder) count(t EventType) int {
	n := 0
	for _, evt := range r.events {
		if evt.Type == t {
			n++
		}
	}
	return n
}

// newTestEngine builds an engine for cfg and overwrites slots with raws.
func newTestEngine(t *testing.T, cfg program.Config, raws ...string) (*Engine, *recorder) {
	t.Helper()
	model, err := program.NewModel(cfg, nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	rec := &recorder{}
	e := New(model, Config{EventHandler: rec.handle})
	for i, raw := range raws {
		if err := e.SetSlotText(i, raw); err != nil {
			t.Fatalf("SetSlotText(%d): %v", i, err)
		}
	}
	rec.events = nil
	return e, rec
}

func cellTexts(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewEngineIsIdle(t *testing.T) {
	e, _ := newTestEngine(t, program.DefaultConfig())
	s := e.State()
	if s.Phase != Idle {
		t.Errorf("Phase = %v, want Idle", s.Phase)
	}
	if s.Current != -1 {
		t.Errorf("Current = %d, want -1", s.Current)
	}
	if s.FiltersActive || s.Autoplay {
		t.Errorf("FiltersActive=%v Autoplay=%v, want both false", s.FiltersActive, s.Autoplay)
	}
	if e.Interval() != DefaultInterval {
		t.Errorf("Interval() = %v, want %v", e.Interval(), DefaultInterval)
	}
	for i, c := range e.Cells() {
		if c.Visible || c.Text != "0" || c.Highlight != Neutral {
			t.Errorf("cell %d = %+v, want hidden default", i, c)
		}
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	e, rec := newTestEngine(t, program.DefaultConfig())
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := e.State()
	if s.Phase != Running || !s.FiltersActive || s.RunID == "" {
		t.Errorf("after Start state = %+v", s)
	}
	if !e.Locked() {
		t.Error("Locked() = false during a run")
	}
	if rec.count(EventRunStarted) != 1 {
		t.Errorf("run.started events = %d, want 1", rec.count(EventRunStarted))
	}

	if err := e.Start(); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("second Start = %v, want ErrInvalidOperation", err)
	}
	if e.State() != s {
		t.Errorf("state changed by rejected Start: %+v", e.State())
	}
}

// Integer, "tab", length 4, Declared, [1,2,3,4]: the declaration reveals
// zeros, then each assignment fills one cell.
func TestScenarioDeclaredIntegers(t *testing.T) {
	cfg := program.Config{Type: values.Integer, Name: "tab", Length: 4, Method: program.Declared}
	e, _ := newTestEngine(t, cfg, "1", "2", "3", "4")

	want := [][]string{
		{"0", "0", "0", "0"},
		{"1", "0", "0", "0"},
		{"1", "2", "0", "0"},
		{"1", "2", "3", "0"},
		{"1", "2", "3", "4"},
	}
	for step, w := range want {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", step+1, err)
		}
		cells := e.Cells()
		if got := cellTexts(cells); !equalStrings(got, w) {
			t.Errorf("after step %d cells = %v, want %v", step+1, got, w)
		}
		for i, c := range cells {
			if !c.Visible {
				t.Errorf("after step %d cell %d hidden", step+1, i)
			}
		}
		if e.LineMark(step) != LineCurrent {
			t.Errorf("after step %d line %d mark = %v, want LineCurrent", step+1, step, e.LineMark(step))
		}
	}
	if e.Phase() != Running {
		t.Errorf("after 5 steps Phase = %v, want Running", e.Phase())
	}

	if err := e.Step(); err != nil {
		t.Fatalf("final step: %v", err)
	}
	if e.Phase() != Completed {
		t.Errorf("Phase = %v, want Completed", e.Phase())
	}
}

// N+1 steps execute every line; the step past the end completes the run
// and any further step is a no-op.
func TestDeclaredRoundTrip(t *testing.T) {
	cfg := program.Config{Type: values.Text, Name: "mots", Length: 3, Method: program.Declared}
	e, rec := newTestEngine(t, cfg, `"a"`, `"b c"`, "null")

	for i := 0; i < cfg.Length+1; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", i+1, err)
		}
	}
	if err := e.Step(); err != nil {
		t.Fatalf("completing step: %v", err)
	}

	s := e.State()
	if s.Phase != Completed {
		t.Fatalf("Phase = %v, want Completed", s.Phase)
	}
	if s.FiltersActive || s.Autoplay {
		t.Errorf("FiltersActive=%v Autoplay=%v after completion", s.FiltersActive, s.Autoplay)
	}
	if e.Locked() {
		t.Error("Locked() = true after completion")
	}

	wantTexts := []string{"a", "b c", "null"}
	cells := e.Cells()
	for i, c := range cells {
		if !c.Visible || c.Highlight != Success || c.Text != wantTexts[i] {
			t.Errorf("cell %d = %+v, want visible success %q", i, c, wantTexts[i])
		}
	}
	if rec.count(EventRunCompleted) != 1 {
		t.Errorf("run.completed events = %d, want 1", rec.count(EventRunCompleted))
	}

	before := e.State()
	if err := e.Step(); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("Step after completion = %v, want ErrInvalidOperation", err)
	}
	if e.State() != before {
		t.Errorf("state changed after completed step: %+v", e.State())
	}
	if got := cellTexts(e.Cells()); !equalStrings(got, wantTexts) {
		t.Errorf("cells changed after completed step: %v", got)
	}
}

// Character, length 2, Declared: slot 1 is set to 'QQ' mid-run, the
// assignment fails and is retried after the fix.
func TestScenarioCharacterCorrection(t *testing.T) {
	cfg := program.Config{Type: values.Character, Name: "c", Length: 2, Method: program.Declared}
	e, rec := newTestEngine(t, cfg, "'W'", "'Q'")

	for i := 0; i < 2; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("step %d: %v", i+1, err)
		}
	}
	if err := e.SetSlotText(1, "'QQ'"); err != nil {
		t.Fatalf("SetSlotText: %v", err)
	}
	before := e.State().Current

	err := e.Step()
	var failure *ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Step = %v, want *ValidationFailure", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("failure does not match ErrValidation")
	}
	if failure.Line != 2 || len(failure.Slots) != 1 || failure.Slots[0] != 1 {
		t.Errorf("failure = %+v, want line 2 slot [1]", failure)
	}
	if e.State().Current != before {
		t.Errorf("Current = %d, want rolled back to %d", e.State().Current, before)
	}
	if e.Phase() != AwaitingCorrection {
		t.Errorf("Phase = %v, want AwaitingCorrection", e.Phase())
	}
	if e.LineMark(2) != LineError {
		t.Errorf("line 2 mark = %v, want LineError", e.LineMark(2))
	}
	if e.FieldMark(1) != FieldError {
		t.Errorf("field 1 mark = %v, want FieldError", e.FieldMark(1))
	}
	if c := e.Cells()[1]; c.Highlight != Error || c.Text != `\u0000` {
		t.Errorf("cell 1 = %+v, want error highlight over default", c)
	}
	if rec.count(EventLineFailed) != 1 {
		t.Errorf("line.failed events = %d, want 1", rec.count(EventLineFailed))
	}

	// Still malformed: the same line fails again.
	if err := e.Step(); !errors.Is(err, ErrValidation) {
		t.Fatalf("retry with bad value = %v, want validation failure", err)
	}
	if e.State().Current != before {
		t.Errorf("Current = %d after second failure, want %d", e.State().Current, before)
	}

	if err := e.SetSlotText(1, "'Z'"); err != nil {
		t.Fatalf("SetSlotText: %v", err)
	}
	if e.FieldMark(1) != FieldNeutral {
		t.Error("field 1 still flagged after a valid correction")
	}
	if err := e.Step(); err != nil {
		t.Fatalf("retry after fix: %v", err)
	}
	if e.Phase() != Running {
		t.Errorf("Phase = %v, want Running", e.Phase())
	}
	if c := e.Cells()[1]; !c.Visible || c.Highlight != Success || c.Text != "Z" {
		t.Errorf("cell 1 = %+v, want visible success Z", c)
	}
	if e.LineMark(2) != LineCurrent {
		t.Errorf("line 2 mark = %v, want LineCurrent", e.LineMark(2))
	}
}

// Boolean, length 3, LiteralList, [true, false, maybe]: nothing is revealed
// until every slot is valid.
func TestScenarioLiteralBooleans(t *testing.T) {
	cfg := program.Config{Type: values.Boolean, Name: "flags", Length: 3, Method: program.LiteralList}
	e, rec := newTestEngine(t, cfg, "true", "false", "maybe")

	err := e.Step()
	var failure *ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Step = %v, want *ValidationFailure", err)
	}
	if len(failure.Slots) != 1 || failure.Slots[0] != 2 {
		t.Errorf("failure slots = %v, want [2]", failure.Slots)
	}
	if rec.count(EventLineFailed) != 1 {
		t.Errorf("line.failed events = %d, want exactly 1", rec.count(EventLineFailed))
	}
	for i, c := range e.Cells() {
		if c.Visible {
			t.Errorf("cell %d revealed after failed literal block", i)
		}
	}
	if e.FieldMark(0) != FieldNeutral || e.FieldMark(1) != FieldNeutral {
		t.Error("valid fields should be clean after the pass")
	}
	if e.FieldMark(2) != FieldError {
		t.Error("field 2 should be flagged")
	}
	if e.LineMark(0) != LineError {
		t.Errorf("line mark = %v, want LineError", e.LineMark(0))
	}
	if e.State().Current != -1 {
		t.Errorf("Current = %d, want -1", e.State().Current)
	}

	if err := e.SetSlotText(2, "false"); err != nil {
		t.Fatalf("SetSlotText: %v", err)
	}
	if err := e.Step(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	want := []string{"true", "false", "false"}
	cells := e.Cells()
	for i, c := range cells {
		if !c.Visible || c.Highlight != Success {
			t.Errorf("cell %d = %+v, want visible success", i, c)
		}
	}
	if got := cellTexts(cells); !equalStrings(got, want) {
		t.Errorf("cells = %v, want %v", got, want)
	}

	if err := e.Step(); err != nil {
		t.Fatalf("completing step: %v", err)
	}
	if e.Phase() != Completed {
		t.Errorf("Phase = %v, want Completed", e.Phase())
	}
}

func TestLiteralListReportsEveryInvalidSlotOnce(t *testing.T) {
	cfg := program.Config{Type: values.Integer, Name: "n", Length: 4, Method: program.LiteralList}
	e, rec := newTestEngine(t, cfg, "1", "x", "3", "")

	err := e.Step()
	var failure *ValidationFailure
	if !errors.As(err, &failure) {
		t.Fatalf("Step = %v, want *ValidationFailure", err)
	}
	if len(failure.Slots) != 2 || failure.Slots[0] != 1 || failure.Slots[1] != 3 {
		t.Errorf("failure slots = %v, want [1 3]", failure.Slots)
	}
	if rec.count(EventLineFailed) != 1 {
		t.Errorf("line.failed events = %d, want 1", rec.count(EventLineFailed))
	}
}

func TestRunAllTicksUntilCompleted(t *testing.T) {
	cfg := program.Config{Type: values.Float, Name: "d", Length: 2, Method: program.Declared}
	e, _ := newTestEngine(t, cfg)

	if err := e.RunAll(); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if !e.Autoplay() || e.Phase() != Running {
		t.Fatalf("after RunAll state = %+v", e.State())
	}

	ticks := 0
	for e.Autoplay() {
		if err := e.Tick(e.Generation()); err != nil {
			t.Fatalf("tick %d: %v", ticks+1, err)
		}
		ticks++
		if ticks > 10 {
			t.Fatal("autoplay never finished")
		}
	}
	if ticks != 4 {
		t.Errorf("ticks = %d, want 4 (3 lines + completion)", ticks)
	}
	if e.Phase() != Completed {
		t.Errorf("Phase = %v, want Completed", e.Phase())
	}
	if got := cellTexts(e.Cells()); !equalStrings(got, []string{"1.0", "2.5"}) {
		t.Errorf("cells = %v", got)
	}

	if err := e.RunAll(); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("RunAll after completion = %v, want ErrInvalidOperation", err)
	}
}

func TestRunAllPausesOnFailureAndResumes(t *testing.T) {
	cfg := program.Config{Type: values.Integer, Name: "tab", Length: 3, Method: program.Declared}
	e, rec := newTestEngine(t, cfg, "1", "oops", "3")

	if err := e.RunAll(); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	gen := e.Generation()
	if err := e.Tick(gen); err != nil { // declaration
		t.Fatalf("tick: %v", err)
	}
	if err := e.Tick(gen); err != nil { // tab[0] = 1
		t.Fatalf("tick: %v", err)
	}
	if err := e.Tick(gen); !errors.Is(err, ErrValidation) { // tab[1] = oops
		t.Fatalf("tick = %v, want validation failure", err)
	}
	if e.Autoplay() {
		t.Error("autoplay still on after failure")
	}
	if e.Phase() != AwaitingCorrection {
		t.Errorf("Phase = %v, want AwaitingCorrection", e.Phase())
	}
	if rec.count(EventRunPaused) != 1 {
		t.Errorf("run.paused events = %d, want 1", rec.count(EventRunPaused))
	}

	// A tick already in flight when the run paused does nothing.
	current := e.State().Current
	if err := e.Tick(gen); err != nil {
		t.Fatalf("stale tick: %v", err)
	}
	if e.State().Current != current {
		t.Error("stale tick advanced the run")
	}

	if err := e.SetSlotText(1, "2"); err != nil {
		t.Fatalf("SetSlotText: %v", err)
	}
	if err := e.RunAll(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if rec.count(EventRunResumed) != 1 {
		t.Errorf("run.resumed events = %d, want 1", rec.count(EventRunResumed))
	}
	for e.Autoplay() {
		if err := e.Tick(e.Generation()); err != nil {
			t.Fatalf("tick after resume: %v", err)
		}
	}
	if e.Phase() != Completed {
		t.Errorf("Phase = %v, want Completed", e.Phase())
	}
	if got := cellTexts(e.Cells()); !equalStrings(got, []string{"1", "2", "3"}) {
		t.Errorf("cells = %v", got)
	}
}

func TestResetFromAnyPhase(t *testing.T) {
	cfg := program.Config{Type: values.Integer, Name: "tab", Length: 2, Method: program.Declared}
	e, rec := newTestEngine(t, cfg, "1", "bad")

	if err := e.RunAll(); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	gen := e.Generation()
	_ = e.Step()
	_ = e.Step()
	if err := e.Step(); !errors.Is(err, ErrValidation) {
		t.Fatalf("Step = %v, want failure", err)
	}

	e.Reset()
	s := e.State()
	if s.Phase != Idle || s.Current != -1 || s.FiltersActive || s.Autoplay || s.RunID != "" {
		t.Errorf("after Reset state = %+v", s)
	}
	for i := range e.Lines() {
		if e.LineMark(i) != LineNeutral {
			t.Errorf("line %d mark = %v after reset", i, e.LineMark(i))
		}
	}
	for i, c := range e.Cells() {
		if c.Visible || c.Highlight != Neutral || c.Text != "0" {
			t.Errorf("cell %d = %+v after reset", i, c)
		}
		if e.FieldMark(i) != FieldNeutral {
			t.Errorf("field %d mark = %v after reset", i, e.FieldMark(i))
		}
	}
	if e.LastFailure() != nil {
		t.Error("LastFailure survives reset")
	}
	if rec.count(EventRunStopped) != 1 {
		t.Errorf("run.stopped events = %d, want 1", rec.count(EventRunStopped))
	}
	if err := e.Tick(gen); err != nil || e.State().Current != -1 {
		t.Error("tick scheduled before reset advanced the engine")
	}

	// Stopping while idle is silent.
	e.Stop()
	if rec.count(EventRunStopped) != 1 {
		t.Error("Stop while idle emitted an event")
	}
}

func TestResetAfterCompletionAllowsNewRun(t *testing.T) {
	cfg := program.Config{Type: values.Boolean, Name: "b", Length: 1, Method: program.LiteralList}
	e, _ := newTestEngine(t, cfg)
	_ = e.Step()
	_ = e.Step()
	if e.Phase() != Completed {
		t.Fatalf("Phase = %v, want Completed", e.Phase())
	}
	firstRun := e.State().RunID
	e.Reset()
	if err := e.Start(); err != nil {
		t.Fatalf("Start after reset: %v", err)
	}
	if e.State().RunID == firstRun {
		t.Error("new run reuses the previous run id")
	}
}

func TestReconfigureWhileRunningForcesIdleFirst(t *testing.T) {
	cfg := program.Config{Type: values.Integer, Name: "tab", Length: 3, Method: program.Declared}
	model, err := program.NewModel(cfg, nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	var e *Engine
	var sawStop bool
	e = New(model, Config{EventHandler: func(evt Event) {
		if evt.Type != EventRunStopped {
			return
		}
		sawStop = true
		// The old program is still in place when the stop lands.
		if len(e.Lines()) != 4 {
			t.Errorf("lines at stop = %d, want old program of 4", len(e.Lines()))
		}
		for i := range e.Lines() {
			if e.LineMark(i) != LineNeutral {
				t.Errorf("line %d still highlighted at stop", i)
			}
		}
		if e.Phase() != Idle {
			t.Errorf("Phase at stop = %v, want Idle", e.Phase())
		}
	}})

	if err := e.RunAll(); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	_ = e.Step()
	_ = e.Step()

	next := cfg
	next.Method = program.LiteralList
	next.Length = 5
	if err := e.Reconfigure(next); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if !sawStop {
		t.Fatal("no run.stopped event before rebuild")
	}
	if e.Phase() != Idle || e.Autoplay() {
		t.Errorf("state after reconfigure = %+v", e.State())
	}
	if len(e.Lines()) != 1 || len(e.Cells()) != 5 {
		t.Errorf("lines=%d cells=%d, want 1 and 5", len(e.Lines()), len(e.Cells()))
	}
	if e.LineMark(0) != LineNeutral {
		t.Error("new program starts highlighted")
	}
}

func TestReconfigureInvalidChangesNothing(t *testing.T) {
	e, rec := newTestEngine(t, program.DefaultConfig())
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	before := e.State()

	bad := program.DefaultConfig()
	bad.Name = "new"
	if err := e.Reconfigure(bad); !errors.Is(err, program.ErrInvalidConfig) {
		t.Fatalf("Reconfigure = %v, want ErrInvalidConfig", err)
	}
	if e.State() != before {
		t.Errorf("state changed by invalid reconfigure: %+v", e.State())
	}
	if rec.count(EventReconfigured) != 0 {
		t.Error("model.reconfigured emitted for invalid config")
	}
}

func TestReconfigureReseedsSlots(t *testing.T) {
	e, rec := newTestEngine(t, program.DefaultConfig(), "42")
	cfg := program.DefaultConfig()
	cfg.Type = values.Text
	if err := e.Reconfigure(cfg); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if got := e.Slots()[0].Raw; got != `"Ceci"` {
		t.Errorf("slot 0 = %q, want %q", got, `"Ceci"`)
	}
	if c := e.Cells()[0]; c.Text != "null" || c.Visible {
		t.Errorf("cell 0 = %+v, want hidden null", c)
	}
	if rec.count(EventReconfigured) != 1 {
		t.Errorf("model.reconfigured events = %d, want 1", rec.count(EventReconfigured))
	}
}

func TestEditSlotFiltersOnlyDuringRun(t *testing.T) {
	cfg := program.Config{Type: values.Character, Name: "c", Length: 2, Method: program.Declared}
	e, rec := newTestEngine(t, cfg)

	// Idle: free-form editing.
	got, err := e.EditSlot(0, values.Edit{Offset: 3, Text: "zz"})
	if err != nil {
		t.Fatalf("EditSlot while idle: %v", err)
	}
	if got != "'W'zz" {
		t.Errorf("EditSlot = %q, want %q", got, "'W'zz")
	}

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	got, err = e.EditSlot(1, values.Edit{Offset: 2, Text: "Q"})
	if !errors.Is(err, values.ErrRejected) {
		t.Fatalf("EditSlot = %v, want ErrRejected", err)
	}
	if got != "'S'" || e.Slots()[1].Raw != "'S'" {
		t.Errorf("rejected edit changed the slot: got %q slot %q", got, e.Slots()[1].Raw)
	}
	if rec.count(EventKeystrokeRejected) != 1 {
		t.Errorf("keystroke.rejected events = %d, want 1", rec.count(EventKeystrokeRejected))
	}

	// Deleting is always allowed, then a legal replacement goes through.
	if _, err := e.EditSlot(1, values.Edit{Offset: 1, Length: 1}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = e.EditSlot(1, values.Edit{Offset: 1, Text: "x"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got != "'x'" {
		t.Errorf("slot 1 = %q, want 'x'", got)
	}

	if _, err := e.EditSlot(5, values.Edit{Text: "1"}); !errors.Is(err, program.ErrSlotOutOfRange) {
		t.Errorf("EditSlot(5) = %v, want ErrSlotOutOfRange", err)
	}
}

func TestStepFromIdleStartsRun(t *testing.T) {
	e, rec := newTestEngine(t, program.DefaultConfig())
	if err := e.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if e.Phase() != Running || e.State().Current != 0 {
		t.Errorf("state = %+v, want running at line 0", e.State())
	}
	if rec.count(EventRunStarted) != 1 || rec.count(EventLineExecuted) != 1 {
		t.Errorf("events = %+v", rec.events)
	}
}

func TestValidationFailureError(t *testing.T) {
	f := &ValidationFailure{Line: 2, Slots: []int{1, 3}, Message: FailureMessage}
	want := "line 3: check the value format (slot 1, 3)"
	if f.Error() != want {
		t.Errorf("Error() = %q, want %q", f.Error(), want)
	}
	if errors.Is(f, ErrInvalidOperation) {
		t.Error("failure matches ErrInvalidOperation")
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		Idle:               "idle",
		Running:            "running",
		AwaitingCorrection: "awaiting-correction",
		Completed:          "completed",
		Phase(9):           "unknown",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), p.String(), want)
		}
	}
}
