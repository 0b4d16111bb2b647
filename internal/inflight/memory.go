// Package inflight implements domain.InflightGuard, which admits at most one
// pending completion per conversation.
package inflight

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Memory is a process-local guard.
type Memory struct {
	mu      sync.Mutex
	pending map[string]string
}

// NewMemory creates an empty in-memory guard.
func NewMemory() *Memory {
	return &Memory{
		mu:      sync.Mutex{},
		pending: make(map[string]string),
	}
}

// Acquire marks key as pending unless it already is.
func (m *Memory) Acquire(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("key cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.pending[key]; exists {
		return "", false, nil
	}

	lease := uuid.New().String()
	m.pending[key] = lease
	return lease, true, nil
}

// Release clears key if lease holds it. Any other release is a no-op.
func (m *Memory) Release(_ context.Context, key, lease string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, exists := m.pending[key]; exists && current == lease {
		delete(m.pending, key)
	}
	return nil
}
