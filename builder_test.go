package motif_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/motif"
	"github.com/vsariola/motif/gm"
	"github.com/vsariola/motif/gm2"
)

var (
	a3      = motif.MustNote(motif.A, 3)
	a4      = motif.MustNote(motif.A, 4)
	aSharp4 = motif.MustNote(motif.ASharp, 4)
	dSharp3 = motif.MustNote(motif.DSharp, 3)
)

const length = motif.DefaultNoteLength

func note(t motif.Ticks, p motif.Pitch) motif.Note {
	return motif.Note{Time: t, Pitch: p, Length: length, Velocity: motif.DefaultVelocity, Channel: motif.DefaultChannel}
}

func build(t *testing.T, b *motif.Builder) motif.Sequence {
	t.Helper()
	seq, err := b.Build()
	require.NoError(t, err)
	return seq
}

func TestBuildEmpty(t *testing.T) {
	seq := build(t, motif.NewBuilder())
	assert.Empty(t, seq.Actions())
	assert.Equal(t, motif.Ticks(0), seq.End())
}

func TestSequentialNotes(t *testing.T) {
	b := motif.NewBuilder()
	pitches := []motif.Pitch{a4, aSharp4, dSharp3, a3, a4}
	for _, p := range pitches {
		b.Note(p)
	}
	notes := build(t, b).Notes()
	require.Len(t, notes, len(pitches))
	for i, n := range notes {
		assert.Equal(t, motif.Ticks(i)*length, n.Time, "note %d", i)
		assert.Equal(t, pitches[i], n.Pitch)
	}
}

func TestNoteWithVaryingLengths(t *testing.T) {
	seq := build(t, motif.NewBuilder().
		NoteWith(a4, motif.Eighth, 90).
		NoteWith(aSharp4, motif.Half, 80).
		Note(dSharp3))
	notes := seq.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, motif.Ticks(0), notes[0].Time)
	assert.Equal(t, motif.Eighth, notes[1].Time)
	assert.Equal(t, motif.Eighth+motif.Half, notes[2].Time)
	assert.Equal(t, uint8(80), notes[1].Velocity)
	assert.Equal(t, motif.Eighth+motif.Half+length, seq.End())
}

func TestClone(t *testing.T) {
	seq := build(t, motif.NewBuilder().Note(a3).Repeat(9))
	clone := seq.Clone()
	assert.Equal(t, 10, clone.Len())
	assert.True(t, seq.Equal(clone))
	assert.Equal(t, seq.Actions(), clone.Actions())

	first, second := seq.Clone(), seq.Clone()
	actions := first.Actions()
	actions[0] = motif.ProgramNumber{Number: 1}
	assert.True(t, first.Equal(second), "modifying a returned action list must not change the sequence")
	assert.Equal(t, note(0, a3), second.At(0))
}

func TestCloneEmpty(t *testing.T) {
	seq := build(t, motif.NewBuilder())
	clone := seq.Clone()
	assert.Empty(t, clone.Actions())
	assert.True(t, seq.Equal(clone))
}

func TestBuildTwice(t *testing.T) {
	b := motif.NewBuilder().Note(a4).Note(aSharp4)
	first := build(t, b)
	second := build(t, b)
	assert.True(t, first.Equal(second))
}

func TestReplayPatternEmpty(t *testing.T) {
	empty := build(t, motif.NewBuilder())
	b := motif.NewBuilder().Note(a4)
	cursor := b.Cursor()
	b.ReplayPattern(empty)
	assert.Equal(t, cursor, b.Cursor())
	seq := build(t, b)
	assert.Equal(t, []motif.Action{note(0, a4)}, seq.Actions())

	seq = build(t, motif.NewBuilder().ReplayPattern(empty))
	assert.Empty(t, seq.Actions())
}

func TestReplayPatternNotes(t *testing.T) {
	p1 := build(t, motif.NewBuilder().Note(a4).Note(aSharp4))
	p2 := build(t, motif.NewBuilder().ReplayPattern(p1))
	assert.Equal(t, []motif.Note{note(0, a4), note(length, aSharp4)}, p2.Notes())
	assert.True(t, p1.Equal(p2))
}

func TestReplayPatternShiftsToCursor(t *testing.T) {
	p1 := build(t, motif.NewBuilder().Note(a4).Note(aSharp4))
	b := motif.NewBuilder().Note(dSharp3).ReplayPattern(p1)
	assert.Equal(t, 3*length, b.Cursor())
	b.Note(a3)
	assert.Equal(t, []motif.Note{
		note(0, dSharp3),
		note(length, a4),
		note(2*length, aSharp4),
		note(3*length, a3),
	}, build(t, b).Notes())
}

func TestReplayPatternAnchor(t *testing.T) {
	p1 := build(t, motif.NewBuilder().
		Note(a4).
		Anchor("X").
		Note(aSharp4).
		MoveToFirstAnchor("X").
		Note(dSharp3))
	p2 := build(t, motif.NewBuilder().ReplayPattern(p1))
	assert.Equal(t, []motif.Note{note(0, a4), note(length, aSharp4), note(length, dSharp3)}, p2.Notes())
}

func TestReplayDoesNotCarryAnchors(t *testing.T) {
	p1 := build(t, motif.NewBuilder().Note(a4).Anchor("X"))
	b := motif.NewBuilder().ReplayPattern(p1).MoveToFirstAnchor("X")
	var anchorErr *motif.AnchorNotFoundError
	require.ErrorAs(t, b.Err(), &anchorErr)
	assert.Equal(t, "X", anchorErr.Name)
}

func TestBuildFromSequence(t *testing.T) {
	tests := []struct {
		name string
		from *motif.Builder
		want []motif.Note
	}{
		{"empty", motif.NewBuilder(), nil},
		{"notes", motif.NewBuilder().Note(a4).Note(aSharp4), []motif.Note{note(0, a4), note(length, aSharp4)}},
		{"anchor", motif.NewBuilder().Note(a4).Anchor("X").Note(aSharp4).MoveToFirstAnchor("X").Note(dSharp3),
			[]motif.Note{note(0, a4), note(length, aSharp4), note(length, dSharp3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1 := build(t, tt.from)
			p2 := build(t, motif.NewBuilderFrom(p1))
			assert.Equal(t, tt.want, p2.Notes())
			assert.True(t, p1.Equal(p2))
		})
	}
}

func TestBuildFromSequenceContinuesAtEnd(t *testing.T) {
	p1 := build(t, motif.NewBuilder().Note(a4).Note(aSharp4))
	b := motif.NewBuilderFrom(p1)
	assert.Equal(t, 2*length, b.Cursor())
	p2 := build(t, b.Note(dSharp3))
	assert.Equal(t, note(2*length, dSharp3), p2.At(2))
	assert.Equal(t, 2, p1.Len(), "continuing must not change the seed")
}

func TestAnchorRoundTrip(t *testing.T) {
	b := motif.NewBuilder().Note(a4).Anchor("X")
	anchored := b.Cursor()
	seq := build(t, b.Note(aSharp4).MoveToFirstAnchor("X").Note(dSharp3))
	notes := seq.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, anchored, notes[2].Time)
	assert.Equal(t, length, notes[2].Time)
}

func TestAnchorsAreNotRecorded(t *testing.T) {
	seq := build(t, motif.NewBuilder().Anchor("A").Note(a4).Anchor("B"))
	assert.Equal(t, []motif.Action{note(0, a4)}, seq.Actions())
}

func TestMoveToLastAndNthAnchor(t *testing.T) {
	b := motif.NewBuilder().
		Anchor("X").
		Note(a4).
		Anchor("X").
		Note(a4).
		Anchor("X").
		Note(a4)
	assert.Equal(t, 3*length, b.Cursor())
	b.MoveToLastAnchor("X")
	assert.Equal(t, 2*length, b.Cursor())
	b.MoveToNthAnchor("X", 1)
	assert.Equal(t, length, b.Cursor())
	b.MoveToFirstAnchor("X")
	assert.Equal(t, motif.Ticks(0), b.Cursor())
	assert.Equal(t, 3, b.Anchors().Count("X"))

	b.MoveToNthAnchor("X", 3)
	var anchorErr *motif.AnchorNotFoundError
	require.ErrorAs(t, b.Err(), &anchorErr)
	assert.Equal(t, 3, anchorErr.Index)
}

func TestMoveToMissingAnchorAborts(t *testing.T) {
	b := motif.NewBuilder().Note(a4).MoveToFirstAnchor("missing").Note(aSharp4)
	var anchorErr *motif.AnchorNotFoundError
	require.ErrorAs(t, b.Err(), &anchorErr)
	assert.Equal(t, "missing", anchorErr.Name)
	assert.Equal(t, length, b.Cursor(), "steps after the error must be ignored")
	_, err := b.Build()
	assert.ErrorAs(t, err, &anchorErr)
}

func TestProgramChangeNumber(t *testing.T) {
	seq := build(t, motif.NewBuilder().Note(a4).ProgramChange(10))
	assert.Equal(t, motif.ProgramNumber{Time: length, Number: 10}, seq.At(1))
}

func TestProgramChangeGM(t *testing.T) {
	seq := build(t, motif.NewBuilder().
		ProgramChangeGM(gm.Applause).
		Note(motif.Pitch(100)).
		ProgramChangeGM(gm.AltoSax))
	assert.Equal(t, []motif.Action{
		motif.ProgramGM{Time: 0, Program: gm.Applause},
		note(0, 100),
		motif.ProgramGM{Time: length, Program: gm.AltoSax},
	}, seq.Actions())
}

func TestProgramChangeGM2(t *testing.T) {
	seq := build(t, motif.NewBuilder().Note(a4).ProgramChangeGM2(gm2.BirdTweet2))
	require.Equal(t, 4, seq.Len())
	assert.Equal(t, []motif.Action{
		motif.Control{Time: length, Controller: motif.BankSelectMSB, Value: 0x79},
		motif.Control{Time: length, Controller: motif.BankSelectLSB, Value: 0x03},
		motif.ProgramNumber{Time: length, Number: uint8(gm.BirdTweet)},
	}, seq.Actions()[1:])
}

func TestProgramChangeUnknown(t *testing.T) {
	var programErr *gm.UnknownProgramError
	_, err := motif.NewBuilder().ProgramChangeGM2(gm2.Program(gm2.NumPrograms)).Build()
	assert.ErrorAs(t, err, &programErr)
	_, err = motif.NewBuilder().ProgramChangeGM(gm.Program(200)).Build()
	assert.ErrorAs(t, err, &programErr)
}

func TestChannel(t *testing.T) {
	seq := build(t, motif.NewBuilder().SetChannel(9).Note(a4).ProgramChangeGM2(gm2.Dog))
	for _, a := range seq.Actions() {
		switch a := a.(type) {
		case motif.Note:
			assert.Equal(t, uint8(9), a.Channel)
		case motif.Control:
			assert.Equal(t, uint8(9), a.Channel)
		case motif.ProgramNumber:
			assert.Equal(t, uint8(9), a.Channel)
		}
	}
}

func TestRepeatNote(t *testing.T) {
	seq := build(t, motif.NewBuilder().Note(a4).Repeat(9))
	actions := seq.Actions()
	require.Len(t, actions, 10)
	for i, a := range actions {
		n, ok := a.(motif.Note)
		require.True(t, ok, "action %d is %T", i, a)
		assert.Equal(t, motif.Ticks(i)*length, n.Time)
	}
}

func TestRepeatProgramChangeGM2(t *testing.T) {
	seq := build(t, motif.NewBuilder().ProgramChangeGM2(gm2.BirdTweet2).Repeat(1))
	actions := seq.Actions()
	require.Len(t, actions, 6)
	assert.Equal(t, actions[:3], actions[3:])
}

func TestRepeatChord(t *testing.T) {
	seq := build(t, motif.NewBuilder().Chord(a3, a4).Repeat(2))
	notes := seq.Notes()
	require.Len(t, notes, 6)
	for i, n := range notes {
		assert.Equal(t, motif.Ticks(i/2)*length, n.Time)
	}
}

func TestRepeatReplay(t *testing.T) {
	p1 := build(t, motif.NewBuilder().Note(a4).Note(aSharp4))
	seq := build(t, motif.NewBuilder().ReplayPattern(p1).Repeat(2))
	notes := seq.Notes()
	require.Len(t, notes, 6)
	for i, n := range notes {
		assert.Equal(t, motif.Ticks(i)*length, n.Time)
	}
}

func TestRepeatOfRepeatRepeatsOriginalStep(t *testing.T) {
	seq := build(t, motif.NewBuilder().Note(a4).Repeat(2).Repeat(3))
	assert.Equal(t, 6, seq.Len())
}

func TestRepeatAnchorAndJump(t *testing.T) {
	b := motif.NewBuilder().Note(a4).Anchor("X").Repeat(1)
	assert.Equal(t, 2, b.Anchors().Count("X"))
	b.Note(aSharp4).MoveToFirstAnchor("X").Repeat(3)
	require.NoError(t, b.Err())
	assert.Equal(t, length, b.Cursor())
}

func TestRepeatNothing(t *testing.T) {
	_, err := motif.NewBuilder().Repeat(1).Build()
	assert.ErrorIs(t, err, motif.ErrNothingToRepeat)

	seed := build(t, motif.NewBuilder().Note(a4))
	_, err = motif.NewBuilderFrom(seed).Repeat(1).Build()
	assert.ErrorIs(t, err, motif.ErrNothingToRepeat)
}

func TestSettingsAreNotRepeated(t *testing.T) {
	seq := build(t, motif.NewBuilder().Note(a4).SetVelocity(50).Repeat(1))
	notes := seq.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, motif.DefaultVelocity, notes[1].Velocity)
}

func TestCursorMoves(t *testing.T) {
	b := motif.NewBuilder().StepForward(motif.Half)
	assert.Equal(t, motif.Half, b.Cursor())
	b.StepBack(motif.Whole)
	assert.Equal(t, motif.Ticks(0), b.Cursor())
	b.MoveToTime(motif.Whole).Note(a4)
	assert.Equal(t, motif.Whole+length, b.Cursor())
	seq := build(t, b)
	assert.Equal(t, note(motif.Whole, a4), seq.At(0))
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder *motif.Builder
		arg     string
	}{
		{"pitch", motif.NewBuilder().Note(128), "pitch"},
		{"velocity", motif.NewBuilder().NoteWith(a4, length, 128), "velocity"},
		{"length", motif.NewBuilder().NoteWith(a4, -1, 100), "length"},
		{"channel", motif.NewBuilder().SetChannel(16), "channel"},
		{"default velocity", motif.NewBuilder().SetVelocity(200), "velocity"},
		{"default length", motif.NewBuilder().SetNoteLength(-5), "length"},
		{"anchor", motif.NewBuilder().Anchor(""), "name"},
		{"repeat", motif.NewBuilder().Note(a4).Repeat(-1), "count"},
		{"program", motif.NewBuilder().ProgramChange(128), "program"},
		{"move", motif.NewBuilder().MoveToTime(-1), "time"},
		{"step", motif.NewBuilder().StepForward(-1), "length"},
		{"nil action", motif.NewBuilder().Apply(nil), "action"},
		{"negative anchor index", motif.NewBuilder().Anchor("x").MoveToNthAnchor("x", -1), "index"},
		{"step overflow", motif.NewBuilder().StepForward(1).StepForward(math.MaxInt64), "length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			var argErr *motif.ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.arg, argErr.Arg)
		})
	}
}

func TestArgumentErrorLeavesNoPartialChord(t *testing.T) {
	b := motif.NewBuilder().Note(a4).Chord(a3, 200)
	require.Error(t, b.Err())
	assert.Equal(t, length, b.Cursor())
}

func TestFirstErrorWins(t *testing.T) {
	_, err := motif.NewBuilder().Repeat(1).MoveToFirstAnchor("nope").Build()
	assert.True(t, errors.Is(err, motif.ErrNothingToRepeat))
}
