package progression

import "sync"

// MemoryStore keeps the expand counter in process memory. It backs tests
// and demo runs; durability is the Redis store's job.
type MemoryStore struct {
	mu    sync.Mutex
	count int
	subs  []func(int)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, nil
}

func (s *MemoryStore) Increment() (int, error) {
	s.mu.Lock()
	s.count++
	count := s.count
	subs := make([]func(int), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	// Callbacks run outside the lock; a callback may Read the store.
	for _, cb := range subs {
		cb(count)
	}
	return count, nil
}

func (s *MemoryStore) Subscribe(callback func(int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, callback)
}

// Set force-writes the counter, notifying subscribers. Used by tests to
// simulate another document mutating the shared value.
func (s *MemoryStore) Set(count int) {
	s.mu.Lock()
	s.count = count
	subs := make([]func(int), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, cb := range subs {
		cb(count)
	}
}
