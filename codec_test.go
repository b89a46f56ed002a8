package motif_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/motif"
	"github.com/vsariola/motif/gm"
	"github.com/vsariola/motif/gm2"
	"gopkg.in/yaml.v3"
)

func sampleSequence(t *testing.T) motif.Sequence {
	return build(t, motif.NewBuilder().
		ProgramChangeGM(gm.Marimba).
		Note(a4).
		SetChannel(2).
		ProgramChangeGM2(gm2.BirdTweet2).
		NoteWith(dSharp3, motif.Eighth, 0))
}

func TestSequenceYAML(t *testing.T) {
	seq := sampleSequence(t)
	data, err := yaml.Marshal(seq)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- {kind: gm, time: 0, program: Marimba, channel: 0}")
	assert.Contains(t, string(data), "D#3")
	var back motif.Sequence
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.True(t, seq.Equal(back), "got %v", back.Actions())
}

func TestSequenceJSON(t *testing.T) {
	seq := sampleSequence(t)
	data, err := json.Marshal(seq)
	require.NoError(t, err)
	var back motif.Sequence
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, seq.Equal(back))
}

func TestEmptySequenceYAML(t *testing.T) {
	data, err := yaml.Marshal(build(t, motif.NewBuilder()))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSequenceDecodeErrors(t *testing.T) {
	for _, in := range []string{
		"- {kind: anchor, time: 0, channel: 0}",
		"- {kind: note, time: 0, pitch: X9, channel: 0}",
		"- {kind: gm, time: 0, program: Kazoo, channel: 0}",
		"- {kind: control, time: 0, channel: 0}",
		"- {kind: note, time: -5, pitch: A4, channel: 0}",
		"- {kind: note, time: 0, pitch: A4, velocity: 255, channel: 0}",
		"- {kind: note, time: 0, pitch: A4, channel: 16}",
		"- {kind: control, time: 0, controller: 200, value: 1, channel: 0}",
		"- {kind: control, time: 0, controller: 7, value: 255, channel: 0}",
		"- {kind: control, time: 0, controller: 7, value: 1, channel: 99}",
		"- {kind: program, time: 0, number: 250, channel: 0}",
		"- {kind: program, time: 0, number: 5, channel: 40}",
		"- {kind: gm, time: 0, program: Marimba, channel: 16}",
	} {
		var s motif.Sequence
		assert.Error(t, yaml.Unmarshal([]byte(in), &s), in)
	}
}

func TestNewSequenceRejectsOutOfRange(t *testing.T) {
	for _, a := range []motif.Action{
		motif.Note{Pitch: 200, Length: length, Velocity: 100},
		motif.Note{Pitch: a4, Length: -10, Velocity: 100},
		motif.Note{Pitch: a4, Length: length, Velocity: 255},
		motif.Note{Pitch: a4, Length: length, Velocity: 100, Channel: 77},
		motif.Control{Controller: 200, Value: 1},
		motif.Control{Controller: 7, Value: 1, Channel: 16},
		motif.ProgramNumber{Number: 250},
		motif.ProgramGM{Program: gm.Program(200)},
	} {
		_, err := motif.NewSequence(a)
		assert.Error(t, err, "%+v", a)
	}
	_, err := motif.NewSequence(motif.Control{Controller: 7, Value: 127, Channel: 15})
	assert.NoError(t, err)
}

func TestNewSequenceRejectsInstructions(t *testing.T) {
	_, err := motif.NewSequence(motif.Note{Pitch: a4}, motif.Anchor{Name: "x"})
	var argErr *motif.ArgumentError
	assert.ErrorAs(t, err, &argErr)
}
