package orderedmap

import (
	"errors"
	"iter"
	"slices"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

// Map remembers the order in which keys were first inserted.
type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

// Add inserts a new key, failing if it is already present.
func (m *Map[K, V]) Add(key K, value V) error {
	if _, exists := m.keys[key]; exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

// Set inserts or replaces. A replaced key keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.keys[key]; !exists {
		m.entries = append(m.entries, key)
	}
	m.keys[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Delete(key K) bool {
	if _, exists := m.keys[key]; !exists {
		return false
	}
	delete(m.keys, key)
	if i := slices.Index(m.entries, key); i >= 0 {
		m.entries = slices.Delete(m.entries, i, i+1)
	}
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.entries)
}

func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		entries: slices.Clone(m.entries),
		keys:    make(map[K]V, len(m.keys)),
	}
	for k, v := range m.keys {
		c.keys[k] = v
	}
	return c
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
