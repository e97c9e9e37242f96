// ABOUTME: Complete-value grammar for each element type and delimiter stripping for display.
// ABOUTME: IsValid decides whether a line may consume a slot; DisplayText is what a cell shows.
package values

import (
	"regexp"
	"unicode/utf8"
)

var (
	intValue   = regexp.MustCompile(`^-?[0-9]+$`)
	floatShape = regexp.MustCompile(`^-?[0-9]*\.?[0-9]*$`)
	anyDigit   = regexp.MustCompile(`[0-9]`)
)

// IsValid reports whether raw is a complete literal of type t.
func IsValid(raw string, t Type) bool {
	switch t {
	case Integer:
		return intValue.MatchString(raw)
	case Float:
		// "-" and "-." fit the shape but carry no digits.
		return raw != "." && floatShape.MatchString(raw) && anyDigit.MatchString(raw)
	case Character:
		if raw == NullChar {
			return true
		}
		return utf8.RuneCountInString(raw) == 3 && raw[0] == '\'' && raw[len(raw)-1] == '\''
	case Boolean:
		return raw == "true" || raw == "false"
	case Text:
		if raw == "null" {
			return true
		}
		return len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"'
	default:
		return false
	}
}

// DisplayText strips the source delimiters from raw so a cell can show the
// stored value. Nested pairs are stripped too, which keeps DisplayText
// idempotent. Values without delimiters are returned unchanged.
func DisplayText(raw string, t Type) string {
	for {
		stripped, ok := stripOnce(raw, t)
		if !ok {
			return raw
		}
		raw = stripped
	}
}

func stripOnce(raw string, t Type) (string, bool) {
	switch t {
	case Text:
		if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
			return raw[1 : len(raw)-1], true
		}
	case Character:
		if utf8.RuneCountInString(raw) >= 3 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
			return raw[1 : len(raw)-1], true
		}
	}
	return raw, false
}
