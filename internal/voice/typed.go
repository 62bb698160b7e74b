package voice

import (
	"context"
	"sync"
)

// TypedRecognizer feeds utterances typed into the command palette as
// final results, so voice commands work without a microphone.
type TypedRecognizer struct {
	mu  sync.Mutex
	cur *typedStream
}

func NewTypedRecognizer() *TypedRecognizer {
	return &TypedRecognizer{}
}

func (r *TypedRecognizer) Start(_ context.Context) (CommandStream, error) {
	s := &typedStream{ch: make(chan Event, 16)}
	r.mu.Lock()
	if r.cur != nil {
		r.cur.Stop()
	}
	r.cur = s
	r.mu.Unlock()
	return s, nil
}

// Say delivers utterance to the active session. It returns false when no
// session is listening or its buffer is full.
func (r *TypedRecognizer) Say(utterance string) bool {
	r.mu.Lock()
	s := r.cur
	r.mu.Unlock()
	if s == nil {
		return false
	}
	return s.send(Event{Transcript: utterance, Final: true})
}

// Active reports whether a session is running.
func (r *TypedRecognizer) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cur != nil && !r.cur.isClosed()
}

type typedStream struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

func (s *typedStream) Events() <-chan Event { return s.ch }

func (s *typedStream) send(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

func (s *typedStream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

func (s *typedStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
