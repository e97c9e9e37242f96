// ABOUTME: Application settings for arraylab: the starting array configuration, autoplay cadence and example table.
// ABOUTME: Settings layer built-in defaults, a YAML file and ARRAYLAB_* environment variables, then validate as a whole.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/2389-research/arraylab/engine"
	"github.com/2389-research/arraylab/program"
	"github.com/2389-research/arraylab/values"
)

// ErrConfigValidation is returned when settings hold a value arraylab cannot use.
var ErrConfigValidation = errors.New("config validation failed")

// Settings is the on-disk and environment view of arraylab's configuration.
// Everything is kept as text until Validate so errors can name the bad key.
type Settings struct {
	Type     string              `yaml:"type"`
	Name     string              `yaml:"name"`
	Length   int                 `yaml:"length"`
	Method   string              `yaml:"method"`
	Interval string              `yaml:"interval"`
	Examples map[string][]string `yaml:"examples,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	cfg := program.DefaultConfig()
	return Settings{
		Type:     cfg.Type.String(),
		Name:     cfg.Name,
		Length:   cfg.Length,
		Method:   cfg.Method.String(),
		Interval: engine.DefaultInterval.String(),
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path means the default location, which may be absent; an explicit path
// must exist.
func Load(path string) (Settings, error) {
	s := Defaults()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return s, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

// Validate checks every field and returns the first problem found, wrapped
// in ErrConfigValidation.
func (s Settings) Validate() error {
	if _, err := s.Program(); err != nil {
		return err
	}
	if _, err := s.IntervalDuration(); err != nil {
		return err
	}
	if _, err := s.ExampleTable(); err != nil {
		return err
	}
	return nil
}

// Program converts the settings into the array configuration.
func (s Settings) Program() (program.Config, error) {
	t, err := values.ParseType(s.Type)
	if err != nil {
		return program.Config{}, fmt.Errorf("%w: type: %v", ErrConfigValidation, err)
	}
	m, err := program.ParseMethod(s.Method)
	if err != nil {
		return program.Config{}, fmt.Errorf("%w: method: %v", ErrConfigValidation, err)
	}
	cfg := program.Config{Type: t, Name: s.Name, Length: s.Length, Method: m}
	if err := cfg.Validate(); err != nil {
		return program.Config{}, fmt.Errorf("%w: %v", ErrConfigValidation, err)
	}
	return cfg, nil
}

// IntervalDuration parses the autoplay cadence. Zero is allowed and means
// "as fast as possible" in transcript mode.
func (s Settings) IntervalDuration() (time.Duration, error) {
	if strings.TrimSpace(s.Interval) == "" {
		return engine.DefaultInterval, nil
	}
	d, err := time.ParseDuration(s.Interval)
	if err != nil {
		return 0, fmt.Errorf("%w: interval: %v", ErrConfigValidation, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: interval must not be negative, got %s", ErrConfigValidation, d)
	}
	return d, nil
}

// ExampleTable returns the built-in example table with any configured
// entries replacing the built-in list for their type. Every example must
// form a valid literal once delimited.
func (s Settings) ExampleTable() (program.Examples, error) {
	table := program.DefaultExamples()

	keys := make([]string, 0, len(s.Examples))
	for k := range s.Examples {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		t, err := values.ParseType(k)
		if err != nil {
			return nil, fmt.Errorf("%w: examples: %v", ErrConfigValidation, err)
		}
		for i, v := range s.Examples[k] {
			if !values.IsValid(values.Quote(t, v), t) {
				return nil, fmt.Errorf("%w: examples.%s[%d]: %q is not a valid %s", ErrConfigValidation, k, i, v, t)
			}
		}
		table[t] = append([]string(nil), s.Examples[k]...)
	}
	return table, nil
}
