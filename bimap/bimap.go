// Package bimap implements a bidirectional map that stays injective in both
// directions: each key maps to exactly one value and each value is the image
// of exactly one key.
package bimap

import "maps"

// thread unsafe bidirectional map.
type Map[K comparable, V comparable] struct {
	forward map[K]V
	reverse map[V]K
}

func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{
		forward: make(map[K]V),
		reverse: make(map[V]K),
	}
}

// Set registers (or overwrites) the pairing (k, v). Any previous pairing
// involving k or v is removed first so that both directions stay injective.
func (m *Map[K, V]) Set(k K, v V) {
	if prevValue, ok := m.forward[k]; ok {
		delete(m.reverse, prevValue)
	}
	if prevKey, ok := m.reverse[v]; ok {
		delete(m.forward, prevKey)
	}
	m.forward[k] = v
	m.reverse[v] = k
}

// Get performs a forward lookup.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.forward[k]
	return v, ok
}

// GetByValue performs an inverse lookup.
func (m *Map[K, V]) GetByValue(v V) (K, bool) {
	k, ok := m.reverse[v]
	return k, ok
}

func (m *Map[K, V]) HasKey(k K) bool {
	_, ok := m.forward[k]
	return ok
}

func (m *Map[K, V]) HasValue(v V) bool {
	_, ok := m.reverse[v]
	return ok
}

// DeleteByKey removes the pairing whose key is k.
// The returned boolean is false if there was no such pairing.
func (m *Map[K, V]) DeleteByKey(k K) bool {
	v, ok := m.forward[k]
	if !ok {
		return false
	}
	delete(m.forward, k)
	delete(m.reverse, v)
	return true
}

// DeleteByValue removes the pairing whose value is v.
// The returned boolean is false if there was no such pairing.
func (m *Map[K, V]) DeleteByValue(v V) bool {
	k, ok := m.reverse[v]
	if !ok {
		return false
	}
	delete(m.forward, k)
	delete(m.reverse, v)
	return true
}

// Clear removes all pairings.
func (m *Map[K, V]) Clear() {
	clear(m.forward)
	clear(m.reverse)
}

// Len returns the number of pairings.
func (m *Map[K, V]) Len() int {
	return len(m.forward)
}

func (m *Map[K, V]) ForEachEntry(fn func(k K, v V) error) error {
	for k, v := range m.forward {
		err := fn(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		forward: maps.Clone(m.forward),
		reverse: maps.Clone(m.reverse),
	}
}
