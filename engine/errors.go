// ABOUTME: Error kinds raised by the engine: recoverable validation failures and invalid operation requests.
// ABOUTME: ValidationFailure matches ErrValidation through errors.Is and carries the offending line and slots.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOperation is returned when a control operation is not legal
	// in the current phase. The engine state is never changed.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrValidation matches every *ValidationFailure.
	ErrValidation = errors.New("validation failure")
)

// FailureMessage is the notice shown when a line's operand is malformed.
const FailureMessage = "check the value format"

// ValidationFailure reports that a line could not execute because one or
// more of its slots held a malformed literal. It is recoverable: the same
// line is retried on the next step.
type ValidationFailure struct {
	Line    int
	Slots   []int
	Message string
}

func (f *ValidationFailure) Error() string {
	idx := make([]string, len(f.Slots))
	for i, s := range f.Slots {
		idx[i] = fmt.Sprintf("%d", s)
	}
	return fmt.Sprintf("line %d: %s (slot %s)", f.Line+1, f.Message, strings.Join(idx, ", "))
}

// Is reports whether target is ErrValidation.
func (f *ValidationFailure) Is(target error) bool {
	return target == ErrValidation
}
