package motif

import (
	"encoding/json"
	"fmt"

	"github.com/vsariola/motif/gm"
	"gopkg.in/yaml.v3"
)

// actionRecord is the file representation of a recorded action, one flat
// record with a kind and the fields that kind uses.
type actionRecord struct {
	Kind       string `yaml:"kind" json:"kind"`
	Time       Ticks  `yaml:"time" json:"time"`
	Pitch      string `yaml:"pitch,omitempty" json:"pitch,omitempty"`
	Length     Ticks  `yaml:"length,omitempty" json:"length,omitempty"`
	Velocity   *uint8 `yaml:"velocity,omitempty" json:"velocity,omitempty"`
	Controller *uint8 `yaml:"controller,omitempty" json:"controller,omitempty"`
	Value      *uint8 `yaml:"value,omitempty" json:"value,omitempty"`
	Number     *uint8 `yaml:"number,omitempty" json:"number,omitempty"`
	Program    string `yaml:"program,omitempty" json:"program,omitempty"`
	Channel    uint8  `yaml:"channel" json:"channel"`
}

const (
	kindNote      = "note"
	kindControl   = "control"
	kindProgram   = "program"
	kindProgramGM = "gm"
)

func u8(v uint8) *uint8 { return &v }

func toRecord(a Action) actionRecord {
	switch a := a.(type) {
	case Note:
		return actionRecord{Kind: kindNote, Time: a.Time, Pitch: a.Pitch.String(), Length: a.Length, Velocity: u8(a.Velocity), Channel: a.Channel}
	case Control:
		return actionRecord{Kind: kindControl, Time: a.Time, Controller: u8(a.Controller), Value: u8(a.Value), Channel: a.Channel}
	case ProgramNumber:
		return actionRecord{Kind: kindProgram, Time: a.Time, Number: u8(a.Number), Channel: a.Channel}
	case ProgramGM:
		return actionRecord{Kind: kindProgramGM, Time: a.Time, Program: a.Program.String(), Channel: a.Channel}
	}
	panic(fmt.Sprintf("motif: %T is not a recorded action", a))
}

func fromRecord(r actionRecord) (Action, error) {
	switch r.Kind {
	case kindNote:
		p, err := ParsePitch(r.Pitch)
		if err != nil {
			return nil, err
		}
		velocity := DefaultVelocity
		if r.Velocity != nil {
			velocity = *r.Velocity
		}
		if err := validateNote(p, r.Length, velocity, r.Channel); err != nil {
			return nil, err
		}
		return Note{Time: r.Time, Pitch: p, Length: r.Length, Velocity: velocity, Channel: r.Channel}, nil
	case kindControl:
		if r.Controller == nil || r.Value == nil {
			return nil, argError("control", "needs both controller and value")
		}
		return Control{Time: r.Time, Controller: *r.Controller, Value: *r.Value, Channel: r.Channel}, nil
	case kindProgram:
		if r.Number == nil {
			return nil, argError("program", "needs a number")
		}
		return ProgramNumber{Time: r.Time, Number: *r.Number, Channel: r.Channel}, nil
	case kindProgramGM:
		p, err := gm.ProgramByName(r.Program)
		if err != nil {
			return nil, err
		}
		return ProgramGM{Time: r.Time, Program: p, Channel: r.Channel}, nil
	}
	return nil, argError("kind", "unknown action kind %q", r.Kind)
}

func (r actionRecord) MarshalYAML() (interface{}, error) {
	type plain actionRecord
	var n yaml.Node
	if err := n.Encode(plain(r)); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return &n, nil
}

func (s Sequence) records() []actionRecord {
	ret := make([]actionRecord, len(s.actions))
	for i, a := range s.actions {
		ret[i] = toRecord(a)
	}
	return ret
}

func sequenceFromRecords(records []actionRecord) (Sequence, error) {
	actions := make([]Action, len(records))
	for i, r := range records {
		a, err := fromRecord(r)
		if err != nil {
			return Sequence{}, fmt.Errorf("action #%d: %w", i, err)
		}
		actions[i] = a
	}
	return NewSequence(actions...)
}

// MarshalYAML encodes the Sequence as a list of flow mappings, one per action.
func (s Sequence) MarshalYAML() (interface{}, error) {
	return s.records(), nil
}

func (s *Sequence) UnmarshalYAML(value *yaml.Node) error {
	var records []actionRecord
	if err := value.Decode(&records); err != nil {
		return err
	}
	seq, err := sequenceFromRecords(records)
	if err != nil {
		return err
	}
	*s = seq
	return nil
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.records())
}

func (s *Sequence) UnmarshalJSON(data []byte) error {
	var records []actionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	seq, err := sequenceFromRecords(records)
	if err != nil {
		return err
	}
	*s = seq
	return nil
}
