package motif

import (
	"math"
	"slices"

	"github.com/vsariola/motif/gm"
	"github.com/vsariola/motif/gm2"
)

// Defaults of a new Builder.
const (
	DefaultNoteLength       = Quarter
	DefaultVelocity   uint8 = 100
	DefaultChannel    uint8 = 0
)

// Settings are the values a Builder fills in for steps that leave them out.
type Settings struct {
	Channel    uint8
	Velocity   uint8
	NoteLength Ticks
}

// Builder accumulates a Sequence step by step. Each step method applies one
// Action at the cursor, a virtual time position that timed steps advance, and
// returns the Builder for chaining:
//
//	seq, err := motif.NewBuilder().
//		Note(motif.MustNote(motif.A, 4)).
//		Anchor("x").
//		Note(motif.MustNote(motif.ASharp, 4)).
//		MoveToFirstAnchor("x").
//		Note(motif.MustNote(motif.DSharp, 3)).
//		Build()
//
// The first failing step aborts the chain: the error is kept, every following
// step is ignored and Build returns the error. A Builder is owned by one
// goroutine; it is not safe for concurrent use.
type Builder struct {
	actions    []Action
	cursor     Ticks
	channel    uint8
	velocity   uint8
	noteLength Ticks
	anchors    AnchorTable
	last       Action // the last applied step, target of Repeat
	err        error
}

// NewBuilder returns an empty Builder with the cursor at zero.
func NewBuilder() *Builder {
	return &Builder{
		channel:    DefaultChannel,
		velocity:   DefaultVelocity,
		noteLength: DefaultNoteLength,
	}
}

// NewBuilderFrom returns a Builder continuing from s: the actions of s are
// copied in and the cursor is placed at the end of s.
func NewBuilderFrom(s Sequence) *Builder {
	b := NewBuilder()
	b.actions = slices.Clone(s.actions)
	b.cursor = s.End()
	return b
}

// Note plays pitch at the cursor with the default length and velocity, and
// advances the cursor by the length.
func (b *Builder) Note(pitch Pitch) *Builder {
	return b.NoteWith(pitch, b.noteLength, b.velocity)
}

// NoteWith is Note with an explicit length and velocity.
func (b *Builder) NoteWith(pitch Pitch, length Ticks, velocity uint8) *Builder {
	return b.step(Note{Pitch: pitch, Length: length, Velocity: velocity, Channel: b.channel})
}

// Chord plays all pitches at the cursor with the default length and velocity,
// then advances the cursor once by the length.
func (b *Builder) Chord(pitches ...Pitch) *Builder {
	return b.ChordWith(pitches, b.noteLength, b.velocity)
}

// ChordWith is Chord with an explicit length and velocity.
func (b *Builder) ChordWith(pitches []Pitch, length Ticks, velocity uint8) *Builder {
	return b.step(Chord{Pitches: slices.Clone(pitches), Length: length, Velocity: velocity, Channel: b.channel})
}

// ProgramChange switches to a raw program number at the cursor.
func (b *Builder) ProgramChange(number uint8) *Builder {
	return b.step(ProgramNumber{Number: number, Channel: b.channel})
}

// ProgramChangeGM switches to a General MIDI program at the cursor.
func (b *Builder) ProgramChangeGM(program gm.Program) *Builder {
	return b.step(ProgramGM{Program: program, Channel: b.channel})
}

// ProgramChangeGM2 switches to a General MIDI Level 2 sound: a bank select MSB,
// a bank select LSB and a program change to the base program, all at the
// cursor.
func (b *Builder) ProgramChangeGM2(program gm2.Program) *Builder {
	return b.step(ProgramGM2{Program: program, Channel: b.channel})
}

// ControlChange sends a controller value at the cursor.
func (b *Builder) ControlChange(controller, value uint8) *Builder {
	return b.step(Control{Controller: controller, Value: value, Channel: b.channel})
}

// Anchor records the cursor under name. Names may be recorded many times.
func (b *Builder) Anchor(name string) *Builder {
	return b.step(Anchor{Name: name})
}

// MoveToFirstAnchor moves the cursor to where name was first recorded.
func (b *Builder) MoveToFirstAnchor(name string) *Builder {
	return b.step(JumpToFirstAnchor{Name: name})
}

// MoveToLastAnchor moves the cursor to where name was last recorded.
func (b *Builder) MoveToLastAnchor(name string) *Builder {
	return b.step(JumpToLastAnchor{Name: name})
}

// MoveToNthAnchor moves the cursor to the index'th recording of name, counting
// from zero. A negative index is an ArgumentError.
func (b *Builder) MoveToNthAnchor(name string, index int) *Builder {
	return b.step(JumpToNthAnchor{Name: name, Index: index})
}

// MoveToTime moves the cursor to t.
func (b *Builder) MoveToTime(t Ticks) *Builder {
	return b.step(MoveTo{Time: t})
}

// StepForward moves the cursor forward by l, leaving a rest.
func (b *Builder) StepForward(l Ticks) *Builder {
	if l < 0 {
		return b.fail(argError("length", "cannot be negative, got %d", l))
	}
	return b.step(Step{Length: l})
}

// StepBack moves the cursor back by l, stopping at zero.
func (b *Builder) StepBack(l Ticks) *Builder {
	if l < 0 {
		return b.fail(argError("length", "cannot be negative, got %d", l))
	}
	return b.step(Step{Length: -l})
}

// Repeat applies the preceding step count more times, each as if it was called
// again at the cursor. A preceding Repeat is skipped over, so Repeat(2) followed
// by Repeat(3) gives five repetitions of the original step.
func (b *Builder) Repeat(count int) *Builder {
	return b.step(Repeat{Count: count})
}

// ReplayPattern copies the actions of s to the cursor, keeping their relative
// timing, and moves the cursor to the end of the copy.
func (b *Builder) ReplayPattern(s Sequence) *Builder {
	return b.step(Replay{Sequence: s})
}

// SetChannel sets the channel of the following steps.
func (b *Builder) SetChannel(channel uint8) *Builder {
	if b.err == nil {
		if channel > 15 {
			b.err = argError("channel", "must be in 0..15, got %d", channel)
		} else {
			b.channel = channel
		}
	}
	return b
}

// SetVelocity sets the default velocity of notes.
func (b *Builder) SetVelocity(velocity uint8) *Builder {
	if b.err == nil {
		if velocity > 127 {
			b.err = argError("velocity", "must be in 0..127, got %d", velocity)
		} else {
			b.velocity = velocity
		}
	}
	return b
}

// SetNoteLength sets the default length of notes.
func (b *Builder) SetNoteLength(l Ticks) *Builder {
	if b.err == nil {
		if l < 0 {
			b.err = argError("length", "cannot be negative, got %d", l)
		} else {
			b.noteLength = l
		}
	}
	return b
}

// Cursor returns the current cursor.
func (b *Builder) Cursor() Ticks { return b.cursor }

// Settings returns the channel, velocity and note length that the next steps
// use.
func (b *Builder) Settings() Settings {
	return Settings{Channel: b.channel, Velocity: b.velocity, NoteLength: b.noteLength}
}

// Err returns the error that aborted the chain, if any.
func (b *Builder) Err() error { return b.err }

// Anchors returns a copy of the anchors recorded so far.
func (b *Builder) Anchors() AnchorTable { return b.anchors.Copy() }

// Build returns the accumulated actions as a Sequence, or the error that
// aborted the chain. Anchors are dropped. The Builder should not be used after
// Build.
func (b *Builder) Build() (Sequence, error) {
	if b.err != nil {
		return Sequence{}, b.err
	}
	return Sequence{actions: slices.Clone(b.actions)}, nil
}

// Apply applies any Action as a step, e.g. ones decoded from a script.
func (b *Builder) Apply(a Action) *Builder {
	return b.step(a)
}

func (b *Builder) step(a Action) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.apply(a); err != nil {
		return b.fail(err)
	}
	if _, ok := a.(Repeat); !ok {
		b.last = a
	}
	return b
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// apply interprets one step. Arguments are validated before anything is
// changed, so a failing step leaves no partial result behind.
func (b *Builder) apply(a Action) error {
	switch a := a.(type) {
	case Note:
		if err := validateRecorded(a); err != nil {
			return err
		}
		a.Time = b.cursor
		b.actions = append(b.actions, a)
		b.cursor += a.Length
	case Chord:
		for _, p := range a.Pitches {
			if err := validateNote(p, a.Length, a.Velocity, a.Channel); err != nil {
				return err
			}
		}
		for _, p := range a.Pitches {
			b.actions = append(b.actions, Note{Time: b.cursor, Pitch: p, Length: a.Length, Velocity: a.Velocity, Channel: a.Channel})
		}
		b.cursor += a.Length
	case Control:
		if err := validateRecorded(a); err != nil {
			return err
		}
		a.Time = b.cursor
		b.actions = append(b.actions, a)
	case ProgramNumber:
		if err := validateRecorded(a); err != nil {
			return err
		}
		a.Time = b.cursor
		b.actions = append(b.actions, a)
	case ProgramGM:
		if err := validateRecorded(a); err != nil {
			return err
		}
		a.Time = b.cursor
		b.actions = append(b.actions, a)
	case ProgramGM2:
		if a.Channel > 15 {
			return argError("channel", "must be in 0..15, got %d", a.Channel)
		}
		bank, err := gm2.Info(a.Program)
		if err != nil {
			return err
		}
		number, err := gm.Number(bank.Base)
		if err != nil {
			return err
		}
		b.actions = append(b.actions,
			Control{Time: b.cursor, Controller: BankSelectMSB, Value: bank.MSB, Channel: a.Channel},
			Control{Time: b.cursor, Controller: BankSelectLSB, Value: bank.LSB, Channel: a.Channel},
			ProgramNumber{Time: b.cursor, Number: number, Channel: a.Channel},
		)
	case Anchor:
		if a.Name == "" {
			return argError("name", "anchor name cannot be empty")
		}
		b.anchors.Add(a.Name, b.cursor)
	case JumpToFirstAnchor:
		t, ok := b.anchors.First(a.Name)
		if !ok {
			return &AnchorNotFoundError{Name: a.Name, Index: -1}
		}
		b.cursor = t
	case JumpToLastAnchor:
		t, ok := b.anchors.Last(a.Name)
		if !ok {
			return &AnchorNotFoundError{Name: a.Name, Index: -1}
		}
		b.cursor = t
	case JumpToNthAnchor:
		if a.Index < 0 {
			return argError("index", "cannot be negative, got %d", a.Index)
		}
		t, ok := b.anchors.Nth(a.Name, a.Index)
		if !ok {
			return &AnchorNotFoundError{Name: a.Name, Index: a.Index}
		}
		b.cursor = t
	case MoveTo:
		if a.Time < 0 {
			return argError("time", "cannot be negative, got %d", a.Time)
		}
		b.cursor = a.Time
	case Step:
		if a.Length > 0 && b.cursor > math.MaxInt64-a.Length {
			return argError("length", "moving %d ticks from %d overflows the timeline", a.Length, b.cursor)
		}
		b.cursor = max(b.cursor+a.Length, 0)
	case Repeat:
		if a.Count < 0 {
			return argError("count", "cannot be negative, got %d", a.Count)
		}
		if b.last == nil {
			return ErrNothingToRepeat
		}
		for i := 0; i < a.Count; i++ {
			if err := b.apply(b.last); err != nil {
				return err
			}
		}
	case Replay:
		base := b.cursor
		for _, r := range a.Sequence.actions {
			b.actions = append(b.actions, shift(r, base))
		}
		b.cursor = base + a.Sequence.End()
	case nil:
		return argError("action", "cannot be nil")
	default:
		return argError("action", "unsupported action %T", a)
	}
	return nil
}

// validateRecorded checks the MIDI ranges of a recorded action: 7 bit data
// bytes and 4 bit channels.
func validateRecorded(a Action) error {
	switch a := a.(type) {
	case Note:
		return validateNote(a.Pitch, a.Length, a.Velocity, a.Channel)
	case Control:
		if a.Controller > 127 || a.Value > 127 || a.Channel > 15 {
			return argError("control", "controller %d, value %d or channel %d out of range", a.Controller, a.Value, a.Channel)
		}
	case ProgramNumber:
		if a.Number > 127 || a.Channel > 15 {
			return argError("program", "number %d or channel %d out of range", a.Number, a.Channel)
		}
	case ProgramGM:
		if _, err := gm.Number(a.Program); err != nil {
			return err
		}
		if a.Channel > 15 {
			return argError("channel", "must be in 0..15, got %d", a.Channel)
		}
	}
	return nil
}

func validateNote(pitch Pitch, length Ticks, velocity, channel uint8) error {
	switch {
	case pitch > 127:
		return argError("pitch", "must be in 0..127, got %d", pitch)
	case length < 0:
		return argError("length", "cannot be negative, got %d", length)
	case velocity > 127:
		return argError("velocity", "must be in 0..127, got %d", velocity)
	case channel > 15:
		return argError("channel", "must be in 0..15, got %d", channel)
	}
	return nil
}
