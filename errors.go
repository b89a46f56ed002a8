package motif

import (
	"errors"
	"fmt"
)

// ErrNothingToRepeat is returned when Repeat is called before any step was
// applied to the Builder.
var ErrNothingToRepeat = errors.New("nothing to repeat: no step precedes Repeat")

// ArgumentError reports an invalid argument given to a Builder step or a
// collaborator. The Builder is not modified by the failing call.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}

// AnchorNotFoundError is returned when a jump refers to an anchor that was
// never recorded, or to an occurrence index beyond the recorded ones. Index is
// -1 for jumps to the first or last anchor.
type AnchorNotFoundError struct {
	Name  string
	Index int
}

func (e *AnchorNotFoundError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("anchor %q has no occurrence #%d", e.Name, e.Index)
	}
	return fmt.Sprintf("anchor %q not found", e.Name)
}

func argError(arg, format string, a ...any) error {
	return &ArgumentError{Arg: arg, Reason: fmt.Sprintf(format, a...)}
}
