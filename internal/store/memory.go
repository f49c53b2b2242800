package store

import (
	"context"
	"sync"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// MemoryStore keeps serialized collections in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Collection][]byte
}

// NewMemoryStore returns an empty in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[Collection][]byte)}
}

// Read implements RecordStore.
func (s *MemoryStore) Read(_ context.Context, c Collection) ([]models.Record, error) {
	s.mu.RLock()
	raw := s.data[c]
	s.mu.RUnlock()
	return Decode(c, raw)
}

// Write implements RecordStore.
func (s *MemoryStore) Write(_ context.Context, c Collection, records []models.Record) error {
	raw, err := Encode(records)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.mu.Lock()
	s.data[c] = raw
	s.mu.Unlock()
	return nil
}

// PutRaw stores a payload verbatim, bypassing encoding.
func (s *MemoryStore) PutRaw(c Collection, raw []byte) {
	s.mu.Lock()
	s.data[c] = append([]byte(nil), raw...)
	s.mu.Unlock()
}

// Raw returns the stored payload for c, or nil if the key is absent.
func (s *MemoryStore) Raw(c Collection) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if raw, ok := s.data[c]; ok {
		return append([]byte(nil), raw...)
	}
	return nil
}
