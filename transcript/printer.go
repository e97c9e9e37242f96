// ABOUTME: Non-interactive run driver: plays the program with autoplay and writes frames or a YAML snapshot.
// ABOUTME: Used when stdout is not a terminal or plain output was requested.
package transcript

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/2389-research/arraylab/engine"
)

// Format selects the transcript output.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a -format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or yaml)", s)
	}
}

// Printer plays a run to completion and writes what it sees.
type Printer struct {
	w        io.Writer
	format   Format
	interval time.Duration
	recorder *Recorder
}

// NewPrinter creates a printer writing to w. interval is the pause between
// steps; zero plays the run without waiting.
func NewPrinter(w io.Writer, format Format, interval time.Duration) *Printer {
	return &Printer{w: w, format: format, interval: interval, recorder: &Recorder{}}
}

// Handle records an engine event. Install it as the engine's EventHandler.
func (p *Printer) Handle(evt engine.Event) {
	p.recorder.Handle(evt)
}

// Run plays e from Idle until it completes or a line fails validation. A
// validation failure is returned as the engine's *ValidationFailure after
// the output is written.
func (p *Printer) Run(ctx context.Context, e *engine.Engine) error {
	if err := e.RunAll(); err != nil {
		return err
	}
	log.Printf("component=transcript action=run format=%s interval=%s", p.format, p.interval)

	var runErr error
	for e.Autoplay() {
		if err := p.wait(ctx); err != nil {
			e.Stop()
			return err
		}
		runErr = e.Tick(e.Generation())
		if p.format == FormatText && e.Phase() != engine.Completed {
			if _, err := fmt.Fprintln(p.w, Frame(e)); err != nil {
				return err
			}
		}
		if runErr != nil {
			break
		}
	}

	if p.format == FormatYAML {
		if err := WriteYAML(p.w, Snapshot(e, p.recorder)); err != nil {
			return err
		}
		return runErr
	}
	if runErr == nil {
		_, err := fmt.Fprintf(p.w, "completed %d lines (run %s)\n", len(e.Lines()), e.State().RunID)
		return err
	}
	return runErr
}

func (p *Printer) wait(ctx context.Context) error {
	if p.interval <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
