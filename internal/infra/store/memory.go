package store

import (
	"context"
	"sync"

	"booking-api/internal/domain/request"
)

// MemoryStore is the in-process implementation used by tests and the
// "memory" driver. Records are copied in and out so callers can never alias
// the canonical sequence.
type MemoryStore struct {
	mu      sync.RWMutex
	records []request.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: []request.Record{}}
}

func (s *MemoryStore) LoadAll(_ context.Context) ([]request.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]request.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) SaveAll(_ context.Context, records []request.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]request.Record, len(records))
	copy(s.records, records)
	return nil
}
