package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a hand-driven clock for tests
// Time only moves through SetTime and Advance
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64
}

// NewMockTimeProvider starts the mock clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(m.Elapsed())
}

// Elapsed returns how far the clock has moved from its start
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.offset.Load())
}

// SetTime jumps to t; earlier instants are allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.start)))
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
