package state

import "sync"

// Store is the mutex-guarded current state. Snapshot slices are shared by
// value copies but never mutated in place, so a copy read under the lock
// stays consistent after release.
type Store struct {
	mu    sync.Mutex
	state AppState
}

func NewStore() *Store {
	return &Store{state: New()}
}

// State returns the current state value.
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies one action and returns the resulting state.
func (s *Store) Dispatch(a Action) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

// BeginTaskLoad marks the start of a task fetch and returns the generation
// the eventual TasksLoaded must carry.
func (s *Store) BeginTaskLoad() uint64 {
	return s.Dispatch(BeginTaskLoad{}).TaskGen
}

func (s *Store) BeginRequestLoad() uint64 {
	return s.Dispatch(BeginRequestLoad{}).RequestGen
}

func (s *Store) BeginAnalyticsLoad() uint64 {
	return s.Dispatch(BeginAnalyticsLoad{}).AnalyticsGen
}
