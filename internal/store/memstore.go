package store

import "context"

// MemStore is a map-backed Store used by tests and anywhere a throwaway
// store is handy. Not safe for concurrent use, same as the design assumption
// for the rest of the storage layer: one logical actor at a time.
type MemStore struct {
	data map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Get reads the value for key.
func (s *MemStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := s.data[key]
	return raw, ok, nil
}

// Set writes the value for key.
func (s *MemStore) Set(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

// Delete removes the key.
func (s *MemStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}
