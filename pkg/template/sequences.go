package template

import "sync"

// SequenceStore manages auto-incrementing named counters for
// {{sequence("name")}} expressions. Engines sharing a store share counters,
// so rows rendered by different engines can carry unique ids.
// It is safe for concurrent use.
type SequenceStore struct {
	sequences map[string]int64
	mu        sync.RWMutex
}

// NewSequenceStore creates a new sequence store.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{
		sequences: make(map[string]int64),
	}
}

// Next returns the current value of a sequence and then increments it.
// If the sequence doesn't exist yet, it starts at the given start value.
func (s *SequenceStore) Next(name string, start int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sequences[name]; !exists {
		s.sequences[name] = start
	}
	val := s.sequences[name]
	s.sequences[name]++
	return val
}

// Reset removes a sequence, causing it to restart from its start value
// on the next call to Next.
func (s *SequenceStore) Reset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sequences, name)
}

// Current returns the value the next call to Next would return, and false
// if the sequence has not been started.
func (s *SequenceStore) Current(name string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.sequences[name]
	return v, ok
}
