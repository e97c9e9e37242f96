// ABOUTME: Array configuration (element type, name, length, construction method) and its validation.
// ABOUTME: Names must be identifiers that are not keywords, lengths are bounded to [1, MaxLength].
package program

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/2389-research/arraylab/values"
)

// MaxLength bounds the number of slots an array may have.
const MaxLength = 100

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid array configuration")

// Method selects how the array is built in the code listing.
type Method int

const (
	// Declared allocates the array, then assigns each slot on its own line.
	Declared Method = iota
	// LiteralList initializes every slot in a single brace-list statement.
	LiteralList
)

// String returns the config-file spelling of the method.
func (m Method) String() string {
	switch m {
	case Declared:
		return "declared"
	case LiteralList:
		return "literal"
	default:
		return "unknown"
	}
}

// ParseMethod maps "declared" or "literal" back to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "declared", "1":
		return Declared, nil
	case "literal", "2":
		return LiteralList, nil
	default:
		return 0, fmt.Errorf("unknown construction method %q", s)
	}
}

// Config describes the array being illustrated.
type Config struct {
	Type   values.Type
	Name   string
	Length int
	Method Method
}

// DefaultConfig is the configuration shown at startup.
func DefaultConfig() Config {
	return Config{
		Type:   values.Integer,
		Name:   "tableau",
		Length: 4,
		Method: Declared,
	}
}

// keywords cannot be used as the array name.
var keywords = map[string]bool{
	"abstract": true, "boolean": true, "break": true, "byte": true, "case": true,
	"catch": true, "char": true, "class": true, "const": true, "continue": true,
	"default": true, "do": true, "double": true, "else": true, "enum": true,
	"extends": true, "false": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "null": true, "package": true, "private": true, "protected": true,
	"public": true, "return": true, "short": true, "static": true, "super": true,
	"switch": true, "this": true, "throw": true, "throws": true, "true": true,
	"try": true, "void": true, "volatile": true, "while": true,
}

// Validate checks every field of c.
func (c Config) Validate() error {
	found := false
	for _, t := range values.Types {
		if t == c.Type {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: unknown element type %d", ErrInvalidConfig, int(c.Type))
	}
	if c.Length < 1 || c.Length > MaxLength {
		return fmt.Errorf("%w: length %d outside [1, %d]", ErrInvalidConfig, c.Length, MaxLength)
	}
	if c.Method != Declared && c.Method != LiteralList {
		return fmt.Errorf("%w: unknown method %d", ErrInvalidConfig, int(c.Method))
	}
	if !IsIdentifier(c.Name) {
		return fmt.Errorf("%w: %q is not a valid array name", ErrInvalidConfig, c.Name)
	}
	return nil
}

// IsIdentifier reports whether name can be used as a variable name.
func IsIdentifier(name string) bool {
	if name == "" || keywords[name] {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
