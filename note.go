package motif

import (
	"fmt"
	"strconv"
	"strings"
)

// Pitch is a MIDI key number, 0..127.
type Pitch uint8

// NoteName is a chromatic note name within an octave.
type NoteName uint8

const (
	C NoteName = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var noteNames = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (n NoteName) String() string {
	if int(n) < len(noteNames) {
		return noteNames[n]
	}
	return fmt.Sprintf("NoteName(%d)", uint8(n))
}

// NoteNumber resolves a note name and octave into a pitch. Octave 4 contains
// middle C (60) and A4 is 69; the lowest octave is -1.
func NoteNumber(name NoteName, octave int) (Pitch, error) {
	if name > B {
		return 0, argError("name", "unknown note name %d", uint8(name))
	}
	n := (octave+1)*12 + int(name)
	if n < 0 || n > 127 {
		return 0, argError("octave", "%v%d is outside the MIDI key range", name, octave)
	}
	return Pitch(n), nil
}

// MustNote is like NoteNumber but panics on invalid input. Useful for
// constant pitches in tests and examples.
func MustNote(name NoteName, octave int) Pitch {
	p, err := NoteNumber(name, octave)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the note name of the pitch.
func (p Pitch) Name() NoteName { return NoteName(p % 12) }

// Octave returns the octave of the pitch, middle C being in octave 4.
func (p Pitch) Octave() int { return int(p)/12 - 1 }

func (p Pitch) String() string {
	return fmt.Sprintf("%v%d", p.Name(), p.Octave())
}

// ParsePitch parses pitches written as a note letter, an optional '#' or 'b'
// accidental and an octave, e.g. "A4", "C#-1" or "Eb3". A plain integer is taken
// as the key number itself.
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 127 {
			return 0, argError("pitch", "key number %d is outside 0..127", n)
		}
		return Pitch(n), nil
	}
	if len(s) < 2 {
		return 0, argError("pitch", "cannot parse %q", s)
	}
	var name int
	switch s[0] {
	case 'C', 'c':
		name = int(C)
	case 'D', 'd':
		name = int(D)
	case 'E', 'e':
		name = int(E)
	case 'F', 'f':
		name = int(F)
	case 'G', 'g':
		name = int(G)
	case 'A', 'a':
		name = int(A)
	case 'B', 'b':
		name = int(B)
	default:
		return 0, argError("pitch", "unknown note letter in %q", s)
	}
	rest := s[1:]
	octaveShift := 0
	switch rest[0] {
	case '#':
		name++
		rest = rest[1:]
	case 'b':
		name--
		rest = rest[1:]
	}
	// B# and Cb cross the octave boundary
	if name > int(B) {
		name -= 12
		octaveShift = 1
	} else if name < 0 {
		name += 12
		octaveShift = -1
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, argError("pitch", "cannot parse octave in %q", s)
	}
	return NoteNumber(NoteName(name), octave+octaveShift)
}
