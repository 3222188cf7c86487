package collection

import (
	"cmp"
	"slices"
	"sync"
)

// SyncMap is a mutex guarded map used for property bags shared across helpers.
type SyncMap[K cmp.Ordered, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

func (m *SyncMap[K, V]) Put(k K, v V) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.m[k] = v
}

func (m *SyncMap[K, V]) Delete(k K) bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	if _, ok := m.m[k]; !ok {
		return false
	}
	delete(m.m, k)
	return true
}

func (m *SyncMap[K, V]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.m)
}

// Keys returns the keys in ascending order.
func (m *SyncMap[K, V]) Keys() []K {
	m.mux.RLock()
	keys := make([]K, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	m.mux.RUnlock()
	slices.Sort(keys)
	return keys
}

// Range visits entries in key order until f returns false.
func (m *SyncMap[K, V]) Range(f func(key K, value V) bool) {
	for _, k := range m.Keys() {
		v, ok := m.Get(k)
		if !ok {
			continue
		}
		if !f(k, v) {
			return
		}
	}
}

func NewSyncMap[K cmp.Ordered, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}
