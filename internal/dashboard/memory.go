package dashboard

import (
	"context"
	"sync"
)

// MemoryStorage is an in-process Storage for tests and ephemeral sessions.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
	// Err, when set, is returned by Set instead of writing.
	Err error
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: map[string]string{}}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = value
	return nil
}
