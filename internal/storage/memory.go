package storage

import (
	"context"
	"maps"
	"sync"
)

var _ SettingsStore = (*MemoryStore)(nil)

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	saves  int
}

func NewMemoryStore(initial map[string]string) *MemoryStore {
	return &MemoryStore{values: maps.Clone(initial)}
}

func (m *MemoryStore) Load(_ context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.values == nil {
		return map[string]string{}, nil
	}
	return maps.Clone(m.values), nil
}

func (m *MemoryStore) Save(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	m.values = maps.Clone(values)
	m.saves++
	m.mu.Unlock()
	return nil
}

// Saves counts Save calls.
func (m *MemoryStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func (m *MemoryStore) Close() error {
	return nil
}
