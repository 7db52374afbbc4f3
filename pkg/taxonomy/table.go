package taxonomy

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Table is a keyed view of reference data that remembers insertion order.
// It encodes as a JSON object with keys in that order.
type Table[V any] struct {
	keys   []string
	values map[string]V
}

func NewTable[V any](size int) *Table[V] {
	return &Table[V]{
		keys:   make([]string, 0, size),
		values: make(map[string]V, size),
	}
}

// Set stores v under key. A key that is already present keeps its position.
func (t *Table[V]) Set(key string, v V) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

func (t *Table[V]) Get(key string) (V, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (t *Table[V]) Keys() []string {
	return append([]string(nil), t.keys...)
}

func (t *Table[V]) Len() int {
	return len(t.keys)
}

func (t *Table[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(t.values[key])
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
