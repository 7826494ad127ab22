package reportstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory ReportStore implementation for testing.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string][]byte
}

// NewMemoryStore creates a new in-memory report store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reports: make(map[string][]byte),
	}
}

// Put writes a report atomically.
func (m *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)
	m.reports[name] = copied
	return nil
}

// Get reads a report back.
func (m *MemoryStore) Get(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.reports[name]
	if !ok {
		return nil, ErrNotFound
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

// Len returns the number of stored reports.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reports)
}
