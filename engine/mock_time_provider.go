package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually driven clock for tests. It stores an offset
// from a fixed origin so reads never block
type MockTimeProvider struct {
	origin time.Time
	offset atomic.Int64
}

func NewMockTimeProvider(origin time.Time) *MockTimeProvider {
	return &MockTimeProvider{origin: origin}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.origin.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t, which may be earlier than the current reading
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.origin)))
}

// Advance moves forward by d and returns the new reading
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	return m.origin.Add(time.Duration(m.offset.Add(int64(d))))
}
