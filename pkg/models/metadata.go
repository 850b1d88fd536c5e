package models

import (
	"bytes"
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
)

// Metadata is the complete environment snapshot attached to a benchmark run.
type Metadata struct {
	Hostname    string    `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	CollectedAt time.Time `json:"collected_at" yaml:"collected_at"`
	Facts       *FactSet  `json:"facts" yaml:"facts"`
}

// FactSet is an ordered mapping from fact name to fact value. Iteration
// order is insertion order; setting an existing key overwrites the value
// in place without changing its position.
type FactSet struct {
	keys   []string
	values map[string]string
}

// NewFactSet creates an empty fact set.
func NewFactSet() *FactSet {
	return &FactSet{
		values: make(map[string]string),
	}
}

// Set adds or overwrites a fact. Empty values are ignored so that callers
// can record probe results unconditionally.
func (f *FactSet) Set(name, value string) {
	if value == "" {
		return
	}
	if _, ok := f.values[name]; !ok {
		f.keys = append(f.keys, name)
	}
	f.values[name] = value
}

// Get returns the value for a fact name.
func (f *FactSet) Get(name string) (string, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Len returns the number of facts.
func (f *FactSet) Len() int {
	return len(f.keys)
}

// Keys returns the fact names in insertion order.
func (f *FactSet) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)
	return keys
}

// Each calls fn for every fact in insertion order.
func (f *FactSet) Each(fn func(name, value string)) {
	for _, k := range f.keys {
		fn(k, f.values[k])
	}
}

// Merge appends all facts from other, preserving other's order.
func (f *FactSet) Merge(other *FactSet) {
	if other == nil {
		return
	}
	other.Each(f.Set)
}

// MarshalJSON renders the fact set as a JSON object with keys in
// insertion order.
func (f *FactSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the fact set as a YAML mapping with keys in
// insertion order.
func (f *FactSet) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range f.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.values[k]},
		)
	}
	return node, nil
}
