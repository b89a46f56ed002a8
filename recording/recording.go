// Package recording captures MIDI messages from a live input against a
// stopwatch and maps the capture times onto the musical timeline.
package recording

import (
	"errors"
	"sync"
	"time"

	"github.com/vsariola/motif"
	"gitlab.com/gomidi/midi/v2"
)

type (
	// Source is a live MIDI input. Subscribers are called from the input's own
	// goroutine.
	Source interface {
		IsListening() bool
		Subscribe(func(msg midi.Message)) (unsubscribe func())
	}

	// Converter maps time elapsed since the start of a recording onto the
	// musical timeline.
	Converter interface {
		Ticks(elapsed time.Duration) motif.Ticks
	}

	// Event is a captured message at its position on the musical timeline.
	Event struct {
		Time    motif.Ticks
		Message midi.Message
	}

	// Recording records the messages of a Source while running. Stopping does
	// not reset the stopwatch: starting again resumes where the recording was
	// stopped. Recording is safe for concurrent use.
	Recording struct {
		converter Converter
		source    Source

		mu        sync.Mutex
		events    []captured
		running   bool
		disposed  bool
		elapsed   time.Duration // stopwatch total before the current run
		startedAt time.Time
		now       func() time.Time

		unsubscribe func()
		disposeOnce sync.Once
	}

	captured struct {
		elapsed time.Duration
		msg     midi.Message
	}
)

var (
	ErrNotListening = errors.New("input is not listening for MIDI messages; start listening before recording")
	ErrDisposed     = errors.New("recording has been disposed")
)

// New attaches a Recording to source. The recording does not capture anything
// until it is started.
func New(converter Converter, source Source) (*Recording, error) {
	if converter == nil {
		return nil, &motif.ArgumentError{Arg: "converter", Reason: "cannot be nil"}
	}
	if source == nil {
		return nil, &motif.ArgumentError{Arg: "source", Reason: "cannot be nil"}
	}
	r := &Recording{converter: converter, source: source, now: time.Now}
	r.unsubscribe = source.Subscribe(r.handle)
	return r, nil
}

// Start starts or resumes the stopwatch. Starting a running recording does
// nothing.
func (r *Recording) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed {
		return ErrDisposed
	}
	if r.running {
		return nil
	}
	if !r.source.IsListening() {
		return ErrNotListening
	}
	r.startedAt = r.now()
	r.running = true
	return nil
}

// Stop pauses the stopwatch. Stopping a stopped recording does nothing.
func (r *Recording) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stop()
}

func (r *Recording) stop() {
	if !r.running {
		return
	}
	r.elapsed += r.now().Sub(r.startedAt)
	r.running = false
}

// IsRunning reports whether messages are currently captured.
func (r *Recording) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Dispose stops the recording and detaches it from its source. The captured
// events remain readable. Calling Dispose more than once has no further effect.
func (r *Recording) Dispose() {
	r.disposeOnce.Do(func() {
		r.mu.Lock()
		r.stop()
		r.disposed = true
		r.mu.Unlock()
		r.unsubscribe()
	})
}

// Elapsed returns the stopwatch reading.
func (r *Recording) Elapsed() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elapsedLocked()
}

func (r *Recording) elapsedLocked() time.Duration {
	if r.running {
		return r.elapsed + r.now().Sub(r.startedAt)
	}
	return r.elapsed
}

// Events returns a snapshot of the captured messages with their capture times
// converted to ticks.
func (r *Recording) Events() []Event {
	r.mu.Lock()
	snapshot := make([]captured, len(r.events))
	copy(snapshot, r.events)
	r.mu.Unlock()
	ret := make([]Event, len(snapshot))
	for i, c := range snapshot {
		ret[i] = Event{Time: r.converter.Ticks(c.elapsed), Message: c.msg}
	}
	return ret
}

func (r *Recording) handle(msg midi.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	// the driver may reuse its buffer
	m := make(midi.Message, len(msg))
	copy(m, msg)
	r.events = append(r.events, captured{elapsed: r.elapsedLocked(), msg: m})
}
