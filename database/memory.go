package database

import "sync"

// MemoryStore is a map-backed slot store for tests.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]string
	saves map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[string]string),
		saves: make(map[string]int),
	}
}

func (s *MemoryStore) Load(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	return value, ok, nil
}

func (s *MemoryStore) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = value
	s.saves[key]++
	return nil
}

// SaveCount reports how many times a slot has been written.
func (s *MemoryStore) SaveCount(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.saves[key]
}
