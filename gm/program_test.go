package gm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/motif/gm"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		program gm.Program
		want    uint8
	}{
		{gm.AcousticGrandPiano, 0},
		{gm.Clavi, 7},
		{gm.AcousticGuitarNylon, 24},
		{gm.AltoSax, 65},
		{gm.Lead1Square, 80},
		{gm.BirdTweet, 123},
		{gm.Applause, 126},
		{gm.Gunshot, 127},
	}
	for _, tt := range tests {
		got, err := gm.Number(tt.program)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.program.String())
	}
}

func TestNumberUnknown(t *testing.T) {
	_, err := gm.Number(gm.Program(128))
	var programErr *gm.UnknownProgramError
	require.ErrorAs(t, err, &programErr)
	assert.Equal(t, 128, programErr.Value)
}

func TestProgramByName(t *testing.T) {
	for i := 0; i < gm.NumPrograms; i++ {
		p := gm.Program(i)
		got, err := gm.ProgramByName(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	p, err := gm.ProgramByName("birdtweet")
	require.NoError(t, err)
	assert.Equal(t, gm.BirdTweet, p)
	_, err = gm.ProgramByName("Kazoo")
	assert.Error(t, err)
}
