package recording

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// GomidiSource is a Source reading a gomidi input port. It fans the messages
// out to every subscriber.
type GomidiSource struct {
	in drivers.In

	mu          sync.Mutex
	stop        func()
	subscribers map[int]func(midi.Message)
	nextID      int
}

// NewGomidiSource wraps an input port. The port is opened when listening
// starts.
func NewGomidiSource(in drivers.In) *GomidiSource {
	return &GomidiSource{in: in, subscribers: make(map[int]func(midi.Message))}
}

// FindInput returns the first input port whose name starts with prefix; an
// empty prefix takes the first port.
func FindInput(ins []drivers.In, prefix string) (drivers.In, error) {
	for _, in := range ins {
		if strings.HasPrefix(in.String(), prefix) {
			return in, nil
		}
	}
	if prefix == "" {
		return nil, errors.New("could not find any MIDI input")
	}
	return nil, fmt.Errorf("could not find any MIDI input starting with %q", prefix)
}

// Listen opens the port if needed and starts delivering messages.
func (s *GomidiSource) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return nil
	}
	if !s.in.IsOpen() {
		if err := s.in.Open(); err != nil {
			return fmt.Errorf("opening MIDI input failed: %w", err)
		}
	}
	stop, err := midi.ListenTo(s.in, s.dispatch)
	if err != nil {
		s.in.Close()
		return fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	s.stop = stop
	return nil
}

// IsListening reports whether Listen has been called and the port is open.
func (s *GomidiSource) IsListening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil && s.in.IsOpen()
}

// Subscribe registers fn for every received message.
func (s *GomidiSource) Subscribe(fn func(midi.Message)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Close stops listening and closes the port.
func (s *GomidiSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	if s.in.IsOpen() {
		return s.in.Close()
	}
	return nil
}

func (s *GomidiSource) String() string {
	return s.in.String()
}

func (s *GomidiSource) dispatch(msg midi.Message, timestampms int32) {
	s.mu.Lock()
	subscribers := make([]func(midi.Message), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(msg)
	}
}
