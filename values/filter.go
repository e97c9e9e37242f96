// ABOUTME: Keystroke-level admission filter built from a relaxed prefix grammar per element type.
// ABOUTME: Apply computes the buffer an insert/replace edit would produce and rejects inadmissible results.
package values

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrRejected is returned by Apply when an edit would leave the buffer
// outside the type's prefix grammar.
var ErrRejected = errors.New("keystroke rejected")

var (
	intPrefix   = regexp.MustCompile(`^-?[0-9]*$`)
	floatPrefix = regexp.MustCompile(`^-?[0-9]*\.?[0-9]*$`)
)

// Edit is a single insert or replace on a text buffer. Offset and Length
// count runes; Length zero is a pure insert.
type Edit struct {
	Offset int
	Length int
	Text   string
}

// Admits reports whether buf is a prefix of some legal literal of type t, so
// typing may continue from it.
func Admits(t Type, buf string) bool {
	switch t {
	case Integer:
		return intPrefix.MatchString(buf)
	case Float:
		return floatPrefix.MatchString(buf)
	case Character:
		if buf == NullChar {
			return true
		}
		if !strings.HasPrefix(buf, "'") {
			return false
		}
		switch n := utf8.RuneCountInString(buf); {
		case n < 3:
			return true
		case n == 3:
			return strings.HasSuffix(buf, "'")
		default:
			return false
		}
	case Boolean:
		return strings.HasPrefix("true", buf) || strings.HasPrefix("false", buf)
	case Text:
		if buf == "null" {
			return true
		}
		if !strings.HasPrefix(buf, `"`) {
			return false
		}
		rest := buf[1:]
		closing := strings.Index(rest, `"`)
		return closing < 0 || closing == len(rest)-1
	default:
		return true
	}
}

// Apply returns the buffer produced by applying e to buf, or ErrRejected
// (with buf unchanged) when the result is not admitted for t. Pure
// deletions always pass.
func Apply(t Type, buf string, e Edit) (string, error) {
	next := Splice(buf, e)
	if e.Text == "" {
		return next, nil
	}
	if !Admits(t, next) {
		return buf, ErrRejected
	}
	return next, nil
}

// Splice applies e to buf without filtering. Offsets past the end of the
// buffer are clamped.
func Splice(buf string, e Edit) string {
	runes := []rune(buf)
	start := clamp(e.Offset, 0, len(runes))
	end := clamp(start+e.Length, start, len(runes))

	var b strings.Builder
	b.WriteString(string(runes[:start]))
	b.WriteString(e.Text)
	b.WriteString(string(runes[end:]))
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
