package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap hands out stable pointers to atomic values of type T, keyed by
// metric name. Hot paths resolve the pointer once and then update it without
// touching the map again
type MetricMap[T any] struct {
	mu      sync.RWMutex
	entries map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{entries: make(map[string]*T)}
}

// Get returns the value registered under key, registering a zero value on
// first use
func (m *MetricMap[T]) Get(key string) *T {
	if v := m.lookup(key); v != nil {
		return v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.entries[key]; ok {
		return v
	}
	v := new(T)
	m.entries[key] = v
	return v
}

func (m *MetricMap[T]) lookup(key string) *T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key]
}

// Range calls fn for every metric, ordered by name
func (m *MetricMap[T]) Range(fn func(key string, v *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.entries)) {
		fn(k, m.entries[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
