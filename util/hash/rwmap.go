// Package hash provides small hash based containers.
package hash

import "sync"

// Map guarded by a sync.RWMutex.
type RWMap[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func NewRWMap[K comparable, V any]() *RWMap[K, V] {
	return &RWMap[K, V]{m: map[K]V{}}
}

func (r *RWMap[K, V]) Get(k K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[k]
	return v, ok
}

// Get value, or compute and store it with newFunc. The second return value is true if the value was present.
func (r *RWMap[K, V]) GetElse(k K, newFunc func(k K) V) (V, bool) {
	if v, ok := r.Get(k); ok {
		return v, true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.m[k]; ok {
		return v, true
	}
	v := newFunc(k)
	r.m[k] = v
	return v, false
}

func (r *RWMap[K, V]) Put(k K, v V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[k] = v
}

// Put entries in one critical section, readers never see a part of them.
func (r *RWMap[K, V]) PutAll(entries map[K]V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range entries {
		r.m[k] = v
	}
}

func (r *RWMap[K, V]) Del(k K) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, k)
}

func (r *RWMap[K, V]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.m)
}

func (r *RWMap[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Snapshot of values in no particular order.
func (r *RWMap[K, V]) Values() []V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vals := make([]V, 0, len(r.m))
	for _, v := range r.m {
		vals = append(vals, v)
	}
	return vals
}
