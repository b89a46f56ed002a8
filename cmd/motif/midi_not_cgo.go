//go:build !cgo

package main

import (
	"errors"

	"github.com/vsariola/motif/recording"
)

// without cgo there is no rtmidi driver to record from
func openInput(prefix string) (recording.Source, func(), error) {
	return nil, nil, errors.New("recording needs a build with cgo enabled")
}
