// ABOUTME: CLI entrypoint for arraylab with interactive terminal UI and plain transcript modes.
// ABOUTME: Resolves settings from config file, environment and flags, then wires the engine to the chosen presentation.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/2389-research/arraylab/config"
	"github.com/2389-research/arraylab/engine"
	"github.com/2389-research/arraylab/program"
	"github.com/2389-research/arraylab/transcript"
	"github.com/2389-research/arraylab/tui"
)

var version = "dev"

// cliConfig holds all CLI configuration parsed from flags.
type cliConfig struct {
	configPath  string
	elemType    string
	name        string
	length      int
	method      string
	interval    string
	values      []string
	plain       bool
	format      string
	logFile     string
	verbose     bool
	printConfig bool
	showVersion bool

	// set records which setting flags were given explicitly.
	set map[string]bool
}

// isTerminal reports whether f is attached to a terminal.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := config.LoadDotEnv(config.DotEnvPaths()...); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if cfg.showVersion {
		fmt.Printf("arraylab %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(cfg, os.Stdout, os.Stderr))
}

// parseFlags parses command-line flags into a cliConfig.
func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	var cfg cliConfig

	fs := flag.NewFlagSet("arraylab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.configPath, "config", "", "Settings file (default: $XDG_CONFIG_HOME/arraylab/config.yaml)")
	fs.StringVar(&cfg.elemType, "type", "", "Element type: int, double, String, char, boolean")
	fs.StringVar(&cfg.name, "name", "", "Array name")
	fs.IntVar(&cfg.length, "length", 0, "Number of cells (1-100)")
	fs.StringVar(&cfg.method, "method", "", "Construction method: declared or literal")
	fs.StringVar(&cfg.interval, "interval", "", "Autoplay interval, e.g. 400ms (0 in plain mode: no pause)")
	fs.Func("value", "Slot source text, repeat once per slot in order", func(s string) error {
		cfg.values = append(cfg.values, s)
		return nil
	})
	fs.BoolVar(&cfg.plain, "plain", false, "Print a transcript instead of starting the terminal UI")
	fs.StringVar(&cfg.format, "format", "text", "Transcript format: text or yaml")
	fs.StringVar(&cfg.logFile, "log-file", "", "Write debug logs to this file")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Log to stderr in plain mode")
	fs.BoolVar(&cfg.printConfig, "print-config", false, "Print the resolved settings as YAML and exit")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected argument %q\n", fs.Arg(0))
		return cfg, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		cfg.set[f.Name] = true
	})
	return cfg, nil
}

// resolveSettings layers the settings file, environment and explicit flags,
// then validates the result.
func resolveSettings(cfg cliConfig) (config.Settings, error) {
	s, err := config.Load(cfg.configPath)
	if err != nil {
		return s, err
	}
	if s, err = config.ApplyEnv(s); err != nil {
		return s, err
	}

	if cfg.set["type"] {
		s.Type = cfg.elemType
	}
	if cfg.set["name"] {
		s.Name = cfg.name
	}
	if cfg.set["length"] {
		s.Length = cfg.length
	}
	if cfg.set["method"] {
		s.Method = cfg.method
	}
	if cfg.set["interval"] {
		s.Interval = cfg.interval
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// run builds the engine and hands it to the chosen presentation.
// Returns an exit code: 0 for success, 1 for failure, 2 for bad settings.
func run(cfg cliConfig, stdout, stderr io.Writer) int {
	settings, err := resolveSettings(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if cfg.printConfig {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(settings); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		enc.Close()
		return 0
	}

	format, err := transcript.ParseFormat(cfg.format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	// Validate already checked every conversion.
	progCfg, _ := settings.Program()
	examples, _ := settings.ExampleTable()
	interval, _ := settings.IntervalDuration()

	model, err := program.NewModel(progCfg, examples)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if len(cfg.values) > model.Len() {
		fmt.Fprintf(stderr, "error: %d values given for %d slots\n", len(cfg.values), model.Len())
		return 2
	}
	for i, v := range cfg.values {
		if err := model.SetText(i, v); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
	}

	interactive := !cfg.plain && format == transcript.FormatText && stdoutIsTerminal(stdout)
	if interactive {
		return runTUI(cfg, model, interval, stderr)
	}
	return runPlain(cfg, model, format, interval, stdout, stderr)
}

func stdoutIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// runPlain plays the program once and prints a transcript.
func runPlain(cfg cliConfig, model *program.Model, format transcript.Format, interval time.Duration, stdout, stderr io.Writer) int {
	switch {
	case cfg.logFile != "":
		f, err := os.OpenFile(cfg.logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	case cfg.verbose:
		log.SetOutput(stderr)
	default:
		log.SetOutput(io.Discard)
	}

	printer := transcript.NewPrinter(stdout, format, interval)
	e := engine.New(model, engine.Config{Interval: interval, EventHandler: printer.Handle})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := printer.Run(ctx, e); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runTUI starts the interactive terminal UI. The UI owns the terminal, so
// logs go to -log-file or nowhere.
func runTUI(cfg cliConfig, model *program.Model, interval time.Duration, stderr io.Writer) int {
	if cfg.logFile != "" {
		f, err := tea.LogToFile(cfg.logFile, "arraylab")
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	bridge := tui.NewEventBridge()
	e := engine.New(model, engine.Config{Interval: interval, EventHandler: bridge.HandleEvent})
	app := tui.NewAppModel(e, bridge)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
