package varstore

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory variable store backed by a mutex-guarded map.
// Intended for tests and single-process deployments; variables do not expire.
type Memory struct {
	items  map[string]Variable
	mu     sync.RWMutex
	closed bool
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		items: make(map[string]Variable),
	}
}

// Get retrieves a variable by key.
// Returns ErrNotFound if the key does not exist.
func (m *Memory) Get(_ context.Context, key string) (Variable, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return Variable{}, ErrNotFound
	}
	return v, nil
}

// Set creates or replaces the variable under v.Key.
// CreatedAt is preserved across replacements; UpdatedAt is always refreshed.
func (m *Memory) Set(_ context.Context, v Variable) error {
	if v.Key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	now := time.Now()
	if existing, ok := m.items[v.Key]; ok {
		v.CreatedAt = existing.CreatedAt
	} else {
		v.CreatedAt = now
	}
	v.UpdatedAt = now

	m.items[v.Key] = v
	return nil
}

// Has checks whether a key exists.
func (m *Memory) Has(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.items[key]
	return ok, nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.items, key)
	return nil
}

// Keys returns all stored keys in lexicographic order.
func (m *Memory) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys, nil
}

// Close marks the store closed. Subsequent writes return ErrClosed;
// reads keep working so in-flight consumers can finish.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

var _ Store = (*Memory)(nil)
