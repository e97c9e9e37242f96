// ABOUTME: Help display for the arraylab CLI with grouped flags, examples, and environment overrides.
// ABOUTME: Provides printHelp for usage output and envValue for showing which overrides are active.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/2389-research/arraylab/config"
)

const arraylabBanner = `
  +---+---+---+---+
  | 1 | 2 | 3 | 4 |
  +---+---+---+---+
    0   1   2   3
`

// printHelp writes a formatted help message to w, including usage patterns,
// grouped flags, examples and the environment variables that override settings.
func printHelp(w io.Writer, ver string) {
	fmt.Fprint(w, arraylabBanner)
	fmt.Fprintf(w, "arraylab %s: watch a Java array get built, one line at a time\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  arraylab [flags]                    Start the interactive terminal UI")
	fmt.Fprintln(w, "  arraylab -plain [flags]             Print a transcript of one run")
	fmt.Fprintln(w, "  arraylab -print-config              Show the resolved settings")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Array Flags:")
	fmt.Fprintln(w, "  -type <type>          int, double, String, char, boolean (default: int)")
	fmt.Fprintln(w, "  -name <name>          Array name, a Java identifier (default: tableau)")
	fmt.Fprintln(w, "  -length <n>           Number of cells, 1 to 100 (default: 4)")
	fmt.Fprintln(w, "  -method <method>      declared or literal (default: declared)")
	fmt.Fprintln(w, "  -value <text>         Slot source text, repeat once per slot")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Run Flags:")
	fmt.Fprintln(w, "  -interval <dur>       Autoplay interval (default: 400ms)")
	fmt.Fprintln(w, "  -plain                Print a transcript instead of the terminal UI")
	fmt.Fprintln(w, "  -format <fmt>         Transcript format: text or yaml (default: text)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -config <file>        Settings file (default: ~/.config/arraylab/config.yaml)")
	fmt.Fprintln(w, "  -log-file <file>      Write debug logs to a file")
	fmt.Fprintln(w, "  -verbose              Log to stderr in plain mode")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w, "  -help                 Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  arraylab")
	fmt.Fprintln(w, "  arraylab -type String -method literal -length 3")
	fmt.Fprintln(w, "  arraylab -plain -type int -length 2 -value 7 -value x")
	fmt.Fprintln(w, "  arraylab -plain -format yaml -interval 0")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	for _, key := range []string{config.EnvType, config.EnvName, config.EnvLength, config.EnvMethod, config.EnvInterval} {
		fmt.Fprintf(w, "  %-20s %s\n", key, envValue(key))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Flags override the environment, which overrides the settings file.")
	fmt.Fprintln(w, "  A .env file in the working directory is loaded if present.")
}

// envValue returns the quoted value of the named environment variable,
// or "[not set]" when it is empty.
func envValue(key string) string {
	if v := os.Getenv(key); v != "" {
		return fmt.Sprintf("%q", v)
	}
	return "[not set]"
}
