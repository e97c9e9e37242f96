// ABOUTME: Environment overrides for settings, plus .env loading via godotenv.
// ABOUTME: Variables already present in the process environment are never overwritten by .env files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read by ApplyEnv.
const (
	EnvType     = "ARRAYLAB_TYPE"
	EnvName     = "ARRAYLAB_NAME"
	EnvLength   = "ARRAYLAB_LENGTH"
	EnvMethod   = "ARRAYLAB_METHOD"
	EnvInterval = "ARRAYLAB_INTERVAL"
)

// ApplyEnv overlays any ARRAYLAB_* variables set in the environment.
func ApplyEnv(s Settings) (Settings, error) {
	if v, ok := lookup(EnvType); ok {
		s.Type = v
	}
	if v, ok := lookup(EnvName); ok {
		s.Name = v
	}
	if v, ok := lookup(EnvLength); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("%w: %s: %q is not a number", ErrConfigValidation, EnvLength, v)
		}
		s.Length = n
	}
	if v, ok := lookup(EnvMethod); ok {
		s.Method = v
	}
	if v, ok := lookup(EnvInterval); ok {
		s.Interval = v
	}
	return s, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// LoadDotEnv loads each existing .env file among paths. Missing files are
// skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// DotEnvPaths returns the .env candidates: the working directory first,
// then the directory holding the executable.
func DotEnvPaths() []string {
	var paths []string
	seen := map[string]bool{}
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}
	if wd, err := os.Getwd(); err == nil {
		add(filepath.Join(wd, ".env"))
	}
	if exe, err := os.Executable(); err == nil {
		add(filepath.Join(filepath.Dir(exe), ".env"))
	}
	return paths
}
