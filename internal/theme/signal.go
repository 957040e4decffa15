package theme

import (
	"sync"
)

// SystemSignal is a live "prefers dark" signal with change notification.
type SystemSignal interface {
	PrefersDark() bool
	// Subscribe registers fn for change notifications. The returned
	// function removes exactly this registration and is safe to call twice.
	Subscribe(fn func(dark bool)) (unsubscribe func())
}

// listeners is the subscription registry shared by the signal sources.
type listeners struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func(bool)
}

func (l *listeners) add(fn func(bool)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[int]func(bool))
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.fns, id)
		})
	}
}

func (l *listeners) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

func (l *listeners) notify(dark bool) {
	l.mu.Lock()
	fns := make([]func(bool), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(dark)
	}
}

// ValueSignal is an in-process SystemSignal whose value is set by its owner.
type ValueSignal struct {
	mu   sync.Mutex
	dark bool
	subs listeners
}

var _ SystemSignal = (*ValueSignal)(nil)

// NewValueSignal creates a signal with an initial value.
func NewValueSignal(dark bool) *ValueSignal {
	return &ValueSignal{dark: dark}
}

// PrefersDark returns the current value.
func (s *ValueSignal) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Set updates the value and notifies subscribers when it changes.
func (s *ValueSignal) Set(dark bool) {
	s.mu.Lock()
	changed := s.dark != dark
	s.dark = dark
	s.mu.Unlock()

	if changed {
		s.subs.notify(dark)
	}
}

// Subscribe registers fn for change notifications.
func (s *ValueSignal) Subscribe(fn func(dark bool)) func() {
	return s.subs.add(fn)
}

// Subscribers returns the number of live subscriptions.
func (s *ValueSignal) Subscribers() int {
	return s.subs.len()
}
