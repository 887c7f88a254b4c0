// Package store holds the per-feature filter stores: the single source of
// truth for one feature's search, filter, sort and page state.
package store

import "sync"

type listener[C any] struct {
	id int
	fn func(C)
}

// filterState is a mutex-guarded criteria value with change listeners.
// Listeners run outside mu, in subscription order, and see changes in the
// order they were applied. A listener must not update the store it listens
// to synchronously.
type filterState[C any] struct {
	// notifyMu spans mutation and delivery of one update.
	notifyMu  sync.Mutex
	mu        sync.Mutex
	criteria  C
	defaults  func() C
	listeners []listener[C]
	nextID    int
}

func newFilterState[C any](defaults func() C) *filterState[C] {
	return &filterState[C]{criteria: defaults(), defaults: defaults}
}

func (s *filterState[C]) get() C {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

func (s *filterState[C]) update(fn func(c *C)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	fn(&s.criteria)
	snapshot := s.criteria
	listeners := make([]listener[C], len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(snapshot)
	}
}

func (s *filterState[C]) reset() {
	s.update(func(c *C) { *c = s.defaults() })
}

func (s *filterState[C]) subscribe(fn func(C)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[C]{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
