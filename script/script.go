// Package script reads compositions written as YAML step lists and plays them
// through a motif.Builder.
//
//	length: 1/8
//	patterns:
//	  - name: riff
//	    steps:
//	      - note: A4
//	      - note: {pitch: A#4, length: 1/4}
//	steps:
//	  - program: BirdTweet2
//	  - replay: riff
//	  - repeat: 3
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vsariola/motif"
	"gopkg.in/yaml.v3"
)

type (
	// Script is a parsed composition file. Defaults apply to the main steps and
	// to every pattern.
	Script struct {
		Channel  *uint8    `yaml:"channel,omitempty"`
		Velocity *uint8    `yaml:"velocity,omitempty"`
		Length   string    `yaml:"length,omitempty"`
		Patterns []Pattern `yaml:"patterns,omitempty"`
		Steps    []Step    `yaml:"steps"`
	}

	// Pattern is a named step list that later steps can replay.
	Pattern struct {
		Name  string `yaml:"name"`
		Steps []Step `yaml:"steps"`
	}

	// Step is one step of a script: a mapping with a single key naming the
	// step, e.g. "note: A4".
	Step struct {
		Key   string
		Value yaml.Node
		Line  int
	}

	// Result holds the main sequence and every named pattern.
	Result struct {
		Sequence motif.Sequence
		Patterns map[string]motif.Sequence
	}

	// StepError locates a failing step. Pattern is empty for the main steps.
	StepError struct {
		Pattern string
		Index   int
		Line    int
		Err     error
	}
)

func (e *StepError) Error() string {
	where := "steps"
	if e.Pattern != "" {
		where = fmt.Sprintf("pattern %q", e.Pattern)
	}
	return fmt.Sprintf("%s, step #%d (line %d): %v", where, e.Index, e.Line, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

var ErrDuplicatePattern = errors.New("duplicate pattern name")

func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: a step should be a mapping with exactly one key", value.Line)
	}
	s.Key = value.Content[0].Value
	s.Value = *value.Content[1]
	s.Line = value.Line
	return nil
}

// Parse decodes a script. Unknown top-level fields are errors.
func Parse(data []byte) (*Script, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes a script from r.
func Read(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("could not decode script: %w", err)
	}
	return &s, nil
}

// Build plays the patterns in the order they are declared, so that a pattern
// can replay the ones before it, and then the main steps.
func (s *Script) Build() (Result, error) {
	defaults, err := s.defaults()
	if err != nil {
		return Result{}, err
	}
	res := Result{Patterns: make(map[string]motif.Sequence, len(s.Patterns))}
	for _, p := range s.Patterns {
		if _, ok := res.Patterns[p.Name]; ok {
			return Result{}, fmt.Errorf("%w: %q", ErrDuplicatePattern, p.Name)
		}
		seq, err := play(p.Name, p.Steps, defaults, res.Patterns)
		if err != nil {
			return Result{}, err
		}
		res.Patterns[p.Name] = seq
	}
	res.Sequence, err = play("", s.Steps, defaults, res.Patterns)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

type defaults struct {
	channel  uint8
	velocity uint8
	length   motif.Ticks
}

func (s *Script) defaults() (defaults, error) {
	d := defaults{channel: motif.DefaultChannel, velocity: motif.DefaultVelocity, length: motif.DefaultNoteLength}
	if s.Channel != nil {
		d.channel = *s.Channel
	}
	if s.Velocity != nil {
		d.velocity = *s.Velocity
	}
	if s.Length != "" {
		l, err := ParseLength(s.Length)
		if err != nil {
			return defaults{}, fmt.Errorf("default length: %w", err)
		}
		d.length = l
	}
	return d, nil
}

func play(name string, steps []Step, d defaults, patterns map[string]motif.Sequence) (motif.Sequence, error) {
	b := motif.NewBuilder().SetChannel(d.channel).SetVelocity(d.velocity).SetNoteLength(d.length)
	if err := b.Err(); err != nil {
		return motif.Sequence{}, fmt.Errorf("defaults: %w", err)
	}
	for i, step := range steps {
		if err := apply(b, step, patterns); err != nil {
			return motif.Sequence{}, &StepError{Pattern: name, Index: i, Line: step.Line, Err: err}
		}
		if err := b.Err(); err != nil {
			return motif.Sequence{}, &StepError{Pattern: name, Index: i, Line: step.Line, Err: err}
		}
	}
	return b.Build()
}
