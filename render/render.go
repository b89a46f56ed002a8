// Package render turns a motif.Sequence into timestamped MIDI messages. It
// does not encode files; the messages are the in-memory gomidi representation
// that a player or an SMF writer consumes.
package render

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/vsariola/motif"
	"github.com/vsariola/motif/gm"
	"gitlab.com/gomidi/midi/v2"
)

// Event is a MIDI message at an absolute time.
type Event struct {
	Time    motif.Ticks
	Message midi.Message
}

func (e Event) String() string {
	return fmt.Sprintf("%d %v", e.Time, e.Message)
}

// Events renders every action of the sequence as MIDI messages: a note on and
// a note off per note, a control change per control and a program change per
// program action. The result is sorted by time; events at the same time keep
// the order of the sequence, except that note offs come first so that a note
// ending where the same key starts again is not cut short.
func Events(seq motif.Sequence) ([]Event, error) {
	events := make([]Event, 0, seq.Len())
	var offs []Event
	for i := 0; i < seq.Len(); i++ {
		switch a := seq.At(i).(type) {
		case motif.Note:
			events = append(events, Event{a.Time, midi.NoteOn(a.Channel, uint8(a.Pitch), a.Velocity)})
			offs = append(offs, Event{a.Time + a.Length, midi.NoteOff(a.Channel, uint8(a.Pitch))})
		case motif.Control:
			events = append(events, Event{a.Time, midi.ControlChange(a.Channel, a.Controller, a.Value)})
		case motif.ProgramNumber:
			events = append(events, Event{a.Time, midi.ProgramChange(a.Channel, a.Number)})
		case motif.ProgramGM:
			number, err := gm.Number(a.Program)
			if err != nil {
				return nil, fmt.Errorf("action #%d: %w", i, err)
			}
			events = append(events, Event{a.Time, midi.ProgramChange(a.Channel, number)})
		default:
			return nil, fmt.Errorf("action #%d: cannot render %T", i, a)
		}
	}
	// offs go in front so the stable sort places them before other events at
	// the same time
	events = append(offs, events...)
	slices.SortStableFunc(events, func(a, b Event) int { return cmp.Compare(a.Time, b.Time) })
	return events, nil
}

// Deltas returns the time of each event relative to the previous one, the
// form used by MIDI tracks.
func Deltas(events []Event) []motif.Ticks {
	ret := make([]motif.Ticks, len(events))
	var prev motif.Ticks
	for i, e := range events {
		ret[i] = e.Time - prev
		prev = e.Time
	}
	return ret
}

// Channelize returns a copy of events with every channel message moved to
// channel ch. Other messages are copied as is.
func Channelize(events []Event, ch uint8) ([]Event, error) {
	if ch > 15 {
		return nil, &motif.ArgumentError{Arg: "channel", Reason: fmt.Sprintf("must be in 0..15, got %d", ch)}
	}
	ret := make([]Event, len(events))
	for i, e := range events {
		msg := slices.Clone(e.Message)
		if len(msg) > 0 && msg[0] >= 0x80 && msg[0] < 0xF0 {
			msg[0] = msg[0]&0xF0 | ch
		}
		ret[i] = Event{Time: e.Time, Message: msg}
	}
	return ret, nil
}
