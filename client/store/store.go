package store

import "sync"

// ChangeListener observes every transition with the state before and after.
// Listeners run synchronously in dispatch order and see every intermediate
// state; nothing is coalesced or dropped, which is what makes edge-triggered
// observers downstream correct.
type ChangeListener func(prev, next State)

// Store owns a session's State. All mutation funnels through the pure
// Transition function; other components read snapshots and dispatch actions.
//
// Dispatches are serialized onto a small internal queue so that a listener
// reacting to one transition can dispatch follow-up actions without
// re-entrancy problems: the follow-up is applied after the current
// notification round, preserving a single cooperative event-loop ordering.
type Store struct {
	mu        sync.Mutex
	state     State
	queue     []Action
	applying  bool
	listeners []ChangeListener
}

// New creates a Store holding the initial state for a session.
func New(initial State) *Store {
	return &Store{state: initial}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OnChange registers a listener for every subsequent transition.
func (s *Store) OnChange(l ChangeListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Dispatch applies a controller-sourced action. Only local UI fields can be
// written this way.
func (s *Store) Dispatch(a LocalAction) {
	s.apply(a)
}

// Sync applies a bridge-sourced action replacing authoritative fields.
func (s *Store) Sync(a SyncAction) {
	s.apply(a)
}

func (s *Store) apply(a Action) {
	s.mu.Lock()
	s.queue = append(s.queue, a)
	if s.applying {
		// Re-entrant dispatch from a listener: the draining loop already
		// running will pick it up in order.
		s.mu.Unlock()
		return
	}
	s.applying = true
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		prev := s.state
		s.state = Transition(prev, next)
		cur := s.state
		ls := make([]ChangeListener, len(s.listeners))
		copy(ls, s.listeners)

		// The lock is not held across listener calls so listeners can read
		// the store and dispatch follow-ups.
		s.mu.Unlock()
		for _, l := range ls {
			l(prev, cur)
		}
		s.mu.Lock()
	}
	s.applying = false
	s.mu.Unlock()
}
