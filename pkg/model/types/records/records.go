package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Record is an ordered mapping from field name to value. It is the plain data
// form of an entity and carries no entity identity of its own.
type Record struct {
	keys   []string
	values map[string]any
}

func New(capacity int) Record {
	return Record{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// FromMap creates a record from a map, ordering the keys alphabetically
func FromMap(m map[string]any) Record {
	r := New(len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		r.Set(k, m[k])
	}
	return r
}

// Set assigns value to name. New names are appended after existing ones.
func (r *Record) Set(name string, value any) {
	if r.values == nil {
		r.values = map[string]any{}
	}

	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}

	r.values[name] = value
}

func (r Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

func (r Record) Keys() []string {
	return slices.Clone(r.keys)
}

func (r Record) Len() int {
	return len(r.keys)
}

func (r Record) Each(callback func(name string, value any)) {
	for _, k := range r.keys {
		callback(k, r.values[k])
	}
}

func (r Record) AsMap() map[string]any {
	m := make(map[string]any, len(r.keys))
	maps.Copy(m, r.values)
	return m
}

func (r Record) Clone() Record {
	return Record{
		keys:   slices.Clone(r.keys),
		values: maps.Clone(r.values),
	}
}

func (r Record) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')

	for idx, k := range r.keys {
		if idx > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal value of %s: %w", k, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the document order of its keys
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("failed to unmarshal record: expected an object")
	}

	*r = New(8)

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("failed to unmarshal record: unexpected key %v", tok)
		}

		var value any
		if err = dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to unmarshal value of %s: %w", key, err)
		}

		r.Set(key, value)
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return nil
}
