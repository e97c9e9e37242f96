// ABOUTME: Per-type table of bare example values used to seed slot fields on reconfiguration.
// ABOUTME: Slots beyond the table's length fall back to the type's default value.
package program

import "github.com/2389-research/arraylab/values"

// Examples maps each element type to bare (undelimited) sample values.
type Examples map[values.Type][]string

// DefaultExamples returns the built-in example table.
func DefaultExamples() Examples {
	return Examples{
		values.Text:      {"Ceci", "est", "un", "exemple"},
		values.Integer:   {"1", "2", "3", "4"},
		values.Float:     {"1.0", "2.5", "3.7", "4.2"},
		values.Character: {"W", "S", "S", "A"},
		values.Boolean:   {"true", "false", "true", "false"},
	}
}

// Seed returns the source text slot i starts with for type t.
func (e Examples) Seed(t values.Type, i int) string {
	if samples := e[t]; i < len(samples) {
		return values.Quote(t, samples[i])
	}
	return values.Default(t)
}

// Clone returns a deep copy of e.
func (e Examples) Clone() Examples {
	out := make(Examples, len(e))
	for t, samples := range e {
		out[t] = append([]string(nil), samples...)
	}
	return out
}
