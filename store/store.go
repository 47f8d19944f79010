package store

import (
	"sync"
)

// Listener is notified after every dispatch with the action, its outcome and
// the resulting state. Listeners run synchronously on the dispatching goroutine
// and must not call Dispatch.
type Listener func(action Action, outcome Outcome, state AppState)

// Store is the single source of truth of the application. All mutations go
// through Dispatch, which applies actions strictly in call order.
type Store struct {
	dispatchMu sync.Mutex
	stateMu    sync.RWMutex
	state      AppState

	listenersMu sync.Mutex
	listeners   map[uint64]Listener
	nextID      uint64
}

// New creates a store holding the given state
func New(initial AppState) *Store {
	return &Store{
		state:     initial,
		listeners: make(map[uint64]Listener),
	}
}

// GetState returns the current snapshot
func (s *Store) GetState() AppState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Dispatch applies the action through the reducer, replaces the state and
// notifies subscribers before returning.
func (s *Store) Dispatch(action Action) Outcome {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	next, outcome := Reduce(s.GetState(), action)

	s.stateMu.Lock()
	s.state = next
	s.stateMu.Unlock()

	for _, l := range s.snapshotListeners() {
		l(action, outcome, next)
	}
	return outcome
}

// Subscribe registers a listener and returns the function that removes it
func (s *Store) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// snapshotListeners returns listeners in subscription order
func (s *Store) snapshotListeners() []Listener {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	out := make([]Listener, 0, len(s.listeners))
	for id := uint64(0); id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			out = append(out, l)
		}
	}
	return out
}
