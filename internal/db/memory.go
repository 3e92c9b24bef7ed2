package db

import (
	"context"
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"
)

// MemoryStore is an in-memory Store holding collections as JSON blobs. It
// backs tests and the runtime fallback when MongoDB is unreachable; data
// lives only as long as the process.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

// Load reads a named collection into out, leaving out at the caller's
// default when the collection is missing or its blob cannot be parsed.
func (s *MemoryStore) Load(ctx context.Context, name string, out interface{}) error {
	s.mu.RLock()
	blob, ok := s.data[name]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(blob, out); err != nil {
		log.WithError(err).WithField("collection", name).Warn("Stored collection is unreadable, using default")
		return nil
	}
	return nil
}

// Save replaces a named collection with value.
func (s *MemoryStore) Save(ctx context.Context, name string, value interface{}) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[name] = blob
	s.mu.Unlock()
	return nil
}
