// ABOUTME: In-memory key-value store for tests and ephemeral sessions.
// ABOUTME: Counts writes and can be told to fail them to exercise warning paths.
package storage

import (
	"errors"
	"sync"
)

// ErrWriteFailed is returned by MemoryKV.Set while write failures are enabled.
var ErrWriteFailed = errors.New("write failed")

// MemoryKV is a thread-safe map-backed KV. Data is lost on exit.
type MemoryKV struct {
	mu         sync.RWMutex
	data       map[string][]byte
	writes     int
	failWrites bool
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get returns a copy of the value under key.
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set overwrites the value under key.
func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return ErrWriteFailed
	}
	m.data[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

// Delete removes key.
func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Writes returns the number of successful Set calls.
func (m *MemoryKV) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// FailWrites makes subsequent Set calls fail (or succeed again when false).
func (m *MemoryKV) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = fail
}

// Close releases any resources held by the store.
func (m *MemoryKV) Close() error {
	return nil
}
