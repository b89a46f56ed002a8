package motif

import (
	"fmt"
	"slices"
)

// Sequence is the frozen result of a Builder: an ordered list of recorded
// actions (Note, Control, ProgramNumber, ProgramGM) on a timeline starting at
// zero. A Sequence is never modified after it is built, so it can be shared
// and read concurrently.
type Sequence struct {
	actions []Action
}

// Actions returns the recorded actions in the order they were appended. The
// returned slice is a copy and may be modified by the caller.
func (s Sequence) Actions() []Action {
	return slices.Clone(s.actions)
}

// Len returns the number of actions in the Sequence.
func (s Sequence) Len() int { return len(s.actions) }

// At returns the i'th action.
func (s Sequence) At(i int) Action { return s.actions[i] }

// Clone returns a Sequence that owns its own copy of the action list.
func (s Sequence) Clone() Sequence {
	return Sequence{actions: slices.Clone(s.actions)}
}

// Equal reports whether both sequences hold equal actions in the same order.
func (s Sequence) Equal(o Sequence) bool {
	return slices.Equal(s.actions, o.actions)
}

// End returns the time at which the last action of the Sequence is over.
func (s Sequence) End() Ticks {
	var end Ticks
	for _, a := range s.actions {
		if t, _ := End(a); t > end {
			end = t
		}
	}
	return end
}

// Notes returns the notes of the Sequence in order.
func (s Sequence) Notes() []Note {
	var ret []Note
	for _, a := range s.actions {
		if n, ok := a.(Note); ok {
			ret = append(ret, n)
		}
	}
	return ret
}

// NewSequence makes a Sequence out of recorded actions, e.g. ones decoded
// from a file. Builder instructions such as Anchor or Repeat are rejected.
func NewSequence(actions ...Action) (Sequence, error) {
	for i, a := range actions {
		if !isRecorded(a) {
			return Sequence{}, argError("actions", "action #%d (%T) cannot be part of a sequence", i, a)
		}
		if t, _ := Time(a); t < 0 {
			return Sequence{}, argError("actions", "action #%d has negative time %d", i, t)
		}
		if err := validateRecorded(a); err != nil {
			return Sequence{}, fmt.Errorf("action #%d: %w", i, err)
		}
	}
	return Sequence{actions: slices.Clone(actions)}, nil
}
