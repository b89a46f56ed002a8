//go:build cgo

package main

import (
	"fmt"

	"github.com/vsariola/motif/recording"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

func openInput(prefix string) (recording.Source, func(), error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, nil, fmt.Errorf("could not open the rtmidi driver: %w", err)
	}
	ins, err := driver.Ins()
	if err != nil {
		driver.Close()
		return nil, nil, fmt.Errorf("could not list MIDI inputs: %w", err)
	}
	in, err := recording.FindInput(ins, prefix)
	if err != nil {
		driver.Close()
		return nil, nil, err
	}
	source := recording.NewGomidiSource(in)
	if err := source.Listen(); err != nil {
		driver.Close()
		return nil, nil, err
	}
	return source, func() {
		source.Close()
		driver.Close()
	}, nil
}
