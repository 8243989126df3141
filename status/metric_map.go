package status

import "sort"

// MetricMap is a named set of metric cells of type T
// Owners cache the pointer once and write through it every frame; readers walk Range
type MetricMap[T any] struct {
	items map[string]*T
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		items: make(map[string]*T),
	}
}

// Get returns the cell for key, creating a zero cell on first use
func (m *MetricMap[T]) Get(key string) *T {
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr := new(T)
	m.items[key] = ptr
	return ptr
}

// Value returns the current value for key, zero if never registered
func (m *MetricMap[T]) Value(key string) T {
	if ptr, ok := m.items[key]; ok {
		return *ptr
	}
	var zero T
	return zero
}

// Range visits every metric in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, val T)) {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, *m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	return len(m.items)
}
