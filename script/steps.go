package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vsariola/motif"
	"github.com/vsariola/motif/gm"
	"github.com/vsariola/motif/gm2"
	"gopkg.in/yaml.v3"
)

type (
	noteStep struct {
		Pitch    string `yaml:"pitch"`
		Length   string `yaml:"length"`
		Velocity *uint8 `yaml:"velocity"`
	}

	chordStep struct {
		Pitches  []string `yaml:"pitches"`
		Length   string   `yaml:"length"`
		Velocity *uint8   `yaml:"velocity"`
	}

	controlStep struct {
		Controller uint8 `yaml:"controller"`
		Value      uint8 `yaml:"value"`
	}

	nthStep struct {
		Name  string `yaml:"name"`
		Index int    `yaml:"index"`
	}
)

var errUnknownStep = errors.New("unknown step")

func apply(b *motif.Builder, s Step, patterns map[string]motif.Sequence) error {
	v := &s.Value
	switch s.Key {
	case "note":
		n, err := decodeNote(v)
		if err != nil {
			return err
		}
		if n.Length == "" && n.Velocity == nil {
			b.Note(mustPitch(n.Pitch))
			return nil
		}
		return withNoteSettings(b, n.Length, n.Velocity, func(length motif.Ticks, velocity uint8) {
			b.NoteWith(mustPitch(n.Pitch), length, velocity)
		})
	case "chord":
		c, err := decodeChord(v)
		if err != nil {
			return err
		}
		pitches := make([]motif.Pitch, len(c.Pitches))
		for i, p := range c.Pitches {
			if pitches[i], err = motif.ParsePitch(p); err != nil {
				return err
			}
		}
		if c.Length == "" && c.Velocity == nil {
			b.Chord(pitches...)
			return nil
		}
		return withNoteSettings(b, c.Length, c.Velocity, func(length motif.Ticks, velocity uint8) {
			b.ChordWith(pitches, length, velocity)
		})
	case "program":
		return program(b, v)
	case "gm2":
		p, err := gm2.ProgramByName(v.Value)
		if err != nil {
			return err
		}
		b.ProgramChangeGM2(p)
	case "control":
		var c controlStep
		if err := v.Decode(&c); err != nil {
			return err
		}
		b.ControlChange(c.Controller, c.Value)
	case "anchor":
		b.Anchor(v.Value)
	case "jump":
		b.MoveToFirstAnchor(v.Value)
	case "jumplast":
		b.MoveToLastAnchor(v.Value)
	case "jumpnth":
		var n nthStep
		if err := v.Decode(&n); err != nil {
			return err
		}
		b.MoveToNthAnchor(n.Name, n.Index)
	case "move":
		t, err := ParseLength(v.Value)
		if err != nil {
			return err
		}
		b.MoveToTime(t)
	case "step":
		l, err := ParseLength(v.Value)
		if err != nil {
			return err
		}
		b.StepForward(l)
	case "back":
		l, err := ParseLength(v.Value)
		if err != nil {
			return err
		}
		b.StepBack(l)
	case "repeat":
		var count int
		if err := v.Decode(&count); err != nil {
			return err
		}
		b.Repeat(count)
	case "replay":
		seq, ok := patterns[v.Value]
		if !ok {
			return fmt.Errorf("no pattern named %q is declared before this step", v.Value)
		}
		b.ReplayPattern(seq)
	case "channel":
		var ch uint8
		if err := v.Decode(&ch); err != nil {
			return err
		}
		b.SetChannel(ch)
	case "velocity":
		var vel uint8
		if err := v.Decode(&vel); err != nil {
			return err
		}
		b.SetVelocity(vel)
	case "length":
		l, err := ParseLength(v.Value)
		if err != nil {
			return err
		}
		b.SetNoteLength(l)
	default:
		return fmt.Errorf("%w %q", errUnknownStep, s.Key)
	}
	return nil
}

func decodeNote(v *yaml.Node) (noteStep, error) {
	var n noteStep
	if v.Kind == yaml.ScalarNode {
		n.Pitch = v.Value
	} else if err := v.Decode(&n); err != nil {
		return n, err
	}
	if _, err := motif.ParsePitch(n.Pitch); err != nil {
		return n, err
	}
	return n, nil
}

func decodeChord(v *yaml.Node) (chordStep, error) {
	var c chordStep
	if v.Kind == yaml.SequenceNode {
		err := v.Decode(&c.Pitches)
		return c, err
	}
	err := v.Decode(&c)
	return c, err
}

// mustPitch is only called on pitches that decodeNote already validated.
func mustPitch(s string) motif.Pitch {
	p, err := motif.ParsePitch(s)
	if err != nil {
		panic(err)
	}
	return p
}

// withNoteSettings calls do with the builder's current length and velocity,
// overridden by whichever of the two the step gives.
func withNoteSettings(b *motif.Builder, length string, velocity *uint8, do func(motif.Ticks, uint8)) error {
	settings := b.Settings()
	if length != "" {
		l, err := ParseLength(length)
		if err != nil {
			return err
		}
		settings.NoteLength = l
	}
	if velocity != nil {
		settings.Velocity = *velocity
	}
	do(settings.NoteLength, settings.Velocity)
	return nil
}

func program(b *motif.Builder, v *yaml.Node) error {
	if n, err := strconv.Atoi(v.Value); err == nil {
		if n < 0 || n > 127 {
			return &motif.ArgumentError{Arg: "program", Reason: fmt.Sprintf("must be in 0..127, got %d", n)}
		}
		b.ProgramChange(uint8(n))
		return nil
	}
	if p, err := gm.ProgramByName(v.Value); err == nil {
		b.ProgramChangeGM(p)
		return nil
	}
	p, err := gm2.ProgramByName(v.Value)
	if err != nil {
		return err
	}
	b.ProgramChangeGM2(p)
	return nil
}

// ParseLength parses a musical length: a fraction of a whole note such as
// "1/4" or "3/8", optionally dotted ("1/4.") or triplet ("1/8t"), or a plain
// number of ticks.
func ParseLength(s string) (motif.Ticks, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, &motif.ArgumentError{Arg: "length", Reason: fmt.Sprintf("cannot be negative, got %d", n)}
		}
		return motif.Ticks(n), nil
	}
	dotted := strings.HasSuffix(s, ".")
	triplet := strings.HasSuffix(s, "t")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "."), "t")
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, &motif.ArgumentError{Arg: "length", Reason: fmt.Sprintf("cannot parse %q", s)}
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, &motif.ArgumentError{Arg: "length", Reason: fmt.Sprintf("cannot parse numerator %q", num)}
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return 0, &motif.ArgumentError{Arg: "length", Reason: fmt.Sprintf("cannot parse denominator %q", den)}
	}
	l, err := motif.Fraction(n, d)
	if err != nil {
		return 0, err
	}
	if dotted {
		l = motif.Dotted(l)
	}
	if triplet {
		l = motif.Triplet(l)
	}
	return l, nil
}
