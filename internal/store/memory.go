package store

import (
	"sync"
	"time"
)

// Memory is an in-memory history store for testing.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Append records one evaluated line.
func (m *Memory) Append(line, result, errText string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{
		Seq:    len(m.entries) + 1,
		Line:   line,
		Result: result,
		Err:    errText,
		Ts:     time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

// Recent returns up to limit entries, newest first.
func (m *Memory) Recent(limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Entry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

// Clear removes all recorded history.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

// Close is a no-op for the memory store.
func (m *Memory) Close() error { return nil }
