package database

import (
	"bytes"
	"context"
	"sync"
)

type memoryRepository struct {
	values map[string][]byte
	lock   sync.Mutex
}

// NewMemoryRepository returns a KVRepository that lives for the process only.
func NewMemoryRepository() KVRepository {
	return &memoryRepository{values: make(map[string][]byte)}
}

func (m *memoryRepository) Get(_ context.Context, keys ...string) (map[string][]byte, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	result := make(map[string][]byte, len(keys))
	for _, key := range keys {
		if v, ok := m.values[key]; ok {
			result[key] = bytes.Clone(v)
		}
	}
	return result, nil
}

func (m *memoryRepository) Set(_ context.Context, values map[string][]byte) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	for k, v := range values {
		m.values[k] = bytes.Clone(v)
	}
	return nil
}

func (m *memoryRepository) Remove(_ context.Context, keys ...string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}
