package recording

import (
	"github.com/vsariola/motif"
)

// Sequence turns the captured events into a motif.Sequence. Each note on is
// paired with the next note on or off of the same key and channel; notes still
// held when the recording ends last until the end of the recording. Control and
// program changes are kept, everything else is dropped.
func (r *Recording) Sequence() (motif.Sequence, error) {
	events := r.Events()
	end := r.converter.Ticks(r.Elapsed())
	actions := make([]motif.Action, 0, len(events))
	for i, e := range events {
		var channel, key, velocity, controller, value, program uint8
		switch {
		case e.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
			endTime := end
			for _, next := range events[i+1:] {
				if ch, k, ok := noteKey(next); ok && ch == channel && k == key {
					endTime = next.Time
					break
				}
			}
			length := max(endTime-e.Time, 0)
			actions = append(actions, motif.Note{Time: e.Time, Pitch: motif.Pitch(key), Length: length, Velocity: velocity, Channel: channel})
		case e.Message.GetControlChange(&channel, &controller, &value):
			actions = append(actions, motif.Control{Time: e.Time, Controller: controller, Value: value, Channel: channel})
		case e.Message.GetProgramChange(&channel, &program):
			actions = append(actions, motif.ProgramNumber{Time: e.Time, Number: program, Channel: channel})
		}
	}
	return motif.NewSequence(actions...)
}

func noteKey(e Event) (channel, key uint8, ok bool) {
	var velocity uint8
	if e.Message.GetNoteOn(&channel, &key, &velocity) || e.Message.GetNoteOff(&channel, &key, &velocity) {
		return channel, key, true
	}
	return 0, 0, false
}
