// ABOUTME: Defines the element Type enum for array slots with keyword parsing and default values.
// ABOUTME: The default table mirrors the zero value each type takes in a freshly allocated array.
package values

import (
	"fmt"
	"strings"
)

// Type is the element type of the illustrated array.
type Type int

const (
	Integer   Type = iota // int
	Float                 // double
	Text                  // String
	Character             // char
	Boolean               // boolean
)

// Types lists every element type in menu order.
var Types = []Type{Integer, Float, Text, Character, Boolean}

// NullChar is the literal written for the char zero value.
const NullChar = `\u0000`

// String returns the keyword used in code listings.
func (t Type) String() string {
	switch t {
	case Integer:
		return "int"
	case Float:
		return "double"
	case Text:
		return "String"
	case Character:
		return "char"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Next returns the type following t in menu order, wrapping around.
func (t Type) Next() Type {
	return Types[(int(t)+1)%len(Types)]
}

// ParseType maps a keyword back to its Type. Matching is case-insensitive so
// config files may write "string" or "String".
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if strings.EqualFold(t.String(), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown element type %q", s)
}

// Default returns the zero value literal for t.
func Default(t Type) string {
	switch t {
	case Integer:
		return "0"
	case Float:
		return "0.0"
	case Text:
		return "null"
	case Character:
		return NullChar
	case Boolean:
		return "false"
	default:
		return ""
	}
}

// Quote wraps a bare example value in the delimiters its type needs in
// source code. The type default is returned unchanged.
func Quote(t Type, bare string) string {
	if bare == Default(t) {
		return bare
	}
	switch t {
	case Text:
		return `"` + bare + `"`
	case Character:
		return "'" + bare + "'"
	default:
		return bare
	}
}
