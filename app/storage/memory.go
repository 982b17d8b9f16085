package storage

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte
	saves map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[string][]byte{}, saves: map[string]int{}}
}

func (m *MemoryStore) Load(ctx context.Context, slot string) ([]byte, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.slots[slot]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) Save(ctx context.Context, slot string, data []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = append([]byte(nil), data...)
	m.saves[slot]++
	return nil
}

// Saves reports how many times slot has been written.
func (m *MemoryStore) Saves(slot string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves[slot]
}
