package session

import (
	"context"
	"sync"
)

// MemoryStore implements Store with an in-process slot. Useful for tests and
// for ephemeral sessions that should not survive the process.
type MemoryStore struct {
	mu    sync.RWMutex
	blob  string
	empty bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{empty: true}
}

func (m *MemoryStore) Read(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.empty {
		return "", ErrNoSession
	}
	return m.blob, nil
}

func (m *MemoryStore) Write(ctx context.Context, blob string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blob = blob
	m.empty = false
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blob = ""
	m.empty = true
	return nil
}
