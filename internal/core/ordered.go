package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// OrderedMap is a string-keyed map that remembers insertion order.
// It marshals to a JSON object whose keys appear in that order, which keeps
// location breakdowns in first-seen order and scores in ranked order.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores v under key. New keys are appended; existing keys keep their position.
func (m *OrderedMap[V]) Set(key string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// GetOrInit returns the value under key, storing init() first if absent.
func (m *OrderedMap[V]) GetOrInit(key string, init func() V) V {
	if v, ok := m.values[key]; ok {
		return v
	}
	v := init()
	m.Set(key, v)
	return v
}

// Keys returns the keys in order.
func (m *OrderedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Each calls fn for every entry in order.
func (m *OrderedMap[V]) Each(fn func(key string, v V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// SortStable reorders the keys by less, keeping the current order for ties.
func (m *OrderedMap[V]) SortStable(less func(a, b V) bool) {
	sort.SliceStable(m.keys, func(i, j int) bool {
		return less(m.values[m.keys[i]], m.values[m.keys[j]])
	})
}

// MarshalJSON writes the entries as a JSON object in key order.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping its key order.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ordered map: expected object, got %v", tok)
	}

	m.keys = nil
	m.values = make(map[string]V)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ordered map: expected key, got %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("ordered map %q: %w", key, err)
		}
		m.Set(key, v)
	}

	_, err = dec.Token()
	return err
}

// addCount increments the integer stored under key.
func addCount(m *OrderedMap[int64], key string, n int64) {
	v, _ := m.Get(key)
	m.Set(key, v+n)
}
