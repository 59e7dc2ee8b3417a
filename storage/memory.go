package storage

import (
	"context"
	"sync"
)

// Memory is a process-local backend, used by tests and ephemeral runs.
type Memory struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.slots[key]
	if !ok {
		return nil, &Error{Op: "get", Key: key, Err: ErrNotFound}
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
