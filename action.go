package motif

import (
	"github.com/vsariola/motif/gm"
	"github.com/vsariola/motif/gm2"
)

// Action is one composition step. The set of actions is closed: only the types
// in this package implement it.
//
// Note, Control, ProgramNumber and ProgramGM are recorded actions: they carry
// an absolute Time and are what a Sequence consists of. The other actions are
// instructions to a Builder, consumed when applied and never found in a
// Sequence.
type Action interface {
	isAction()
}

type (
	// Note is a note that starts at Time and lasts for Length.
	Note struct {
		Time     Ticks
		Pitch    Pitch
		Length   Ticks
		Velocity uint8
		Channel  uint8
	}

	// Control is a control change.
	Control struct {
		Time       Ticks
		Controller uint8
		Value      uint8
		Channel    uint8
	}

	// ProgramNumber is a program change to a raw 7-bit program number.
	ProgramNumber struct {
		Time    Ticks
		Number  uint8
		Channel uint8
	}

	// ProgramGM is a program change to a General MIDI program.
	ProgramGM struct {
		Time    Ticks
		Program gm.Program
		Channel uint8
	}

	// ProgramGM2 selects a General MIDI Level 2 sound. It expands to a bank
	// select MSB, a bank select LSB and a ProgramNumber, all at the cursor.
	ProgramGM2 struct {
		Program gm2.Program
		Channel uint8
	}

	// Anchor records the cursor under Name.
	Anchor struct {
		Name string
	}

	// JumpToFirstAnchor moves the cursor to the earliest recorded anchor Name.
	JumpToFirstAnchor struct {
		Name string
	}

	// JumpToLastAnchor moves the cursor to the latest recorded anchor Name.
	JumpToLastAnchor struct {
		Name string
	}

	// JumpToNthAnchor moves the cursor to the Index'th recorded anchor Name,
	// counting from zero.
	JumpToNthAnchor struct {
		Name  string
		Index int
	}

	// MoveTo sets the cursor to an absolute time.
	MoveTo struct {
		Time Ticks
	}

	// Step moves the cursor by Length, backwards if negative. The cursor never
	// goes below zero.
	Step struct {
		Length Ticks
	}

	// Chord plays all Pitches at the cursor and then advances it by Length.
	Chord struct {
		Pitches  []Pitch
		Length   Ticks
		Velocity uint8
		Channel  uint8
	}

	// Repeat applies the preceding step Count more times.
	Repeat struct {
		Count int
	}

	// Replay inlines the actions of Sequence at the cursor.
	Replay struct {
		Sequence Sequence
	}
)

// Bank select controller numbers.
const (
	BankSelectMSB uint8 = 0
	BankSelectLSB uint8 = 32
)

func (Note) isAction()              {}
func (Control) isAction()           {}
func (ProgramNumber) isAction()     {}
func (ProgramGM) isAction()         {}
func (ProgramGM2) isAction()        {}
func (Anchor) isAction()            {}
func (JumpToFirstAnchor) isAction() {}
func (JumpToLastAnchor) isAction()  {}
func (JumpToNthAnchor) isAction()   {}
func (MoveTo) isAction()            {}
func (Step) isAction()              {}
func (Chord) isAction()             {}
func (Repeat) isAction()            {}
func (Replay) isAction()            {}

// Time returns the time of a recorded action; ok is false for actions that
// are only instructions to a Builder.
func Time(a Action) (t Ticks, ok bool) {
	switch a := a.(type) {
	case Note:
		return a.Time, true
	case Control:
		return a.Time, true
	case ProgramNumber:
		return a.Time, true
	case ProgramGM:
		return a.Time, true
	}
	return 0, false
}

// End returns the time at which a recorded action is over: Time+Length for
// notes and Time for instantaneous actions.
func End(a Action) (t Ticks, ok bool) {
	if n, isNote := a.(Note); isNote {
		return n.Time + n.Length, true
	}
	return Time(a)
}

// shift returns a copy of a recorded action moved later by delta.
func shift(a Action, delta Ticks) Action {
	switch a := a.(type) {
	case Note:
		a.Time += delta
		return a
	case Control:
		a.Time += delta
		return a
	case ProgramNumber:
		a.Time += delta
		return a
	case ProgramGM:
		a.Time += delta
		return a
	}
	return a
}

func isRecorded(a Action) bool {
	_, ok := Time(a)
	return ok
}
