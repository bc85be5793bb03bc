package storage

import (
	"context"
	"errors"
	"sync"
)

// Memory is an in-process KV for tests.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailSet makes every Set return FailErr, simulating a backend
	// that accepts reads but silently loses writes.
	FailSet bool
	FailErr error
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.blobs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	if m.FailSet {
		if m.FailErr != nil {
			return m.FailErr
		}
		return errors.New("simulated write failure")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.blobs[key] = stored
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, key)
	return nil
}

func (m *Memory) Close() error { return nil }
