package clipboard

import (
	"context"
	"sync"
)

// Memory is an in-process clipboard. It backs tests and any environment
// where the system clipboard is unavailable.
type Memory struct {
	mu       sync.Mutex
	content  string
	readErr  error
	writeErr error
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the stored content, or the configured read failure.
func (m *Memory) Read(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.content, nil
}

// Write stores content, or returns the configured write failure.
func (m *Memory) Write(ctx context.Context, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.content = content
	return nil
}

// Set replaces the stored content without going through Write.
func (m *Memory) Set(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = content
}

// FailReads makes subsequent reads return err; nil restores normal reads.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// FailWrites makes subsequent writes return err; nil restores normal writes.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}
