package types

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MapValue represents the Map variant of Value: a string-keyed mapping to
// Value. Insertion order is irrelevant per the data model, but an ordered
// map gives deterministic String() output and iteration for free, which
// matters for reproducible error messages and tests.
type MapValue struct {
	data *orderedmap.OrderedMap[string, Value]
}

// NewMap creates a MapValue from a plain Go map. Iteration order over the
// input map is undefined, so callers that care about display order should
// build incrementally with NewEmptyMap+Set instead.
func NewMap(m map[string]Value) MapValue {
	om := orderedmap.New[string, Value](orderedmap.WithInitialData[string, Value]())
	for k, v := range m {
		om.Set(k, v)
	}
	return MapValue{data: om}
}

// NewEmptyMap creates an empty MapValue.
func NewEmptyMap() MapValue {
	return MapValue{data: orderedmap.New[string, Value]()}
}

func (m MapValue) Type() TypeCode { return TYPE_MAP }

func (m MapValue) Len() int {
	if m.data == nil {
		return 0
	}
	return m.data.Len()
}

// Get looks up key, returning (value, true) on hit.
func (m MapValue) Get(key string) (Value, bool) {
	if m.data == nil {
		return nil, false
	}
	return m.data.Get(key)
}

// Set returns a new MapValue with key bound to v; the receiver is
// unchanged (copy-on-write).
func (m MapValue) Set(key string, v Value) MapValue {
	clone := m.clone()
	clone.data.Set(key, v)
	return clone
}

func (m MapValue) clone() MapValue {
	fresh := orderedmap.New[string, Value]()
	if m.data != nil {
		for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
			fresh.Set(pair.Key, pair.Value)
		}
	}
	return MapValue{data: fresh}
}

// Keys returns the keys in insertion order.
func (m MapValue) Keys() []string {
	if m.data == nil {
		return nil
	}
	keys := make([]string, 0, m.data.Len())
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (m MapValue) String() string {
	if m.data == nil || m.data.Len() == 0 {
		return "{}"
	}
	parts := make([]string, 0, m.data.Len())
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		parts = append(parts, pair.Key+": "+pair.Value.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m MapValue) Equal(other Value) bool {
	o, ok := other.(MapValue)
	if !ok || m.Len() != o.Len() {
		return false
	}
	if m.data == nil {
		return true
	}
	for pair := m.data.Oldest(); pair != nil; pair = pair.Next() {
		ov, ok := o.Get(pair.Key)
		if !ok || !pair.Value.Equal(ov) {
			return false
		}
	}
	return true
}

// Truthy: every Map is truthy, including the empty map (spreadsheet
// truthiness rule).
func (m MapValue) Truthy() bool { return true }
