package types

import "strings"

// ListValue represents the ordered-sequence List variant of Value.
//
// Storage is copy-on-write over a plain slice, following the same pattern
// teacher code used for its list values: reads are O(1) and share the
// backing array across clones; any mutating helper returns a new ListValue
// rather than touching the receiver's backing array.
type ListValue struct {
	elements []Value
}

// NewList creates a ListValue from elements. The slice is taken by
// reference; callers that keep a mutable alias to it should copy first.
func NewList(elements []Value) ListValue {
	if elements == nil {
		elements = []Value{}
	}
	return ListValue{elements: elements}
}

func (l ListValue) Type() TypeCode { return TYPE_LIST }

func (l ListValue) Len() int { return len(l.elements) }

// At returns the 0-based element, or (nil, false) if out of range. Callers
// that need MOO-style 1-based indexing convert at the call site.
func (l ListValue) At(i int) (Value, bool) {
	if i < 0 || i >= len(l.elements) {
		return nil, false
	}
	return l.elements[i], true
}

// Elements returns the underlying slice for iteration. Callers must treat
// it as read-only.
func (l ListValue) Elements() []Value {
	return l.elements
}

// Append returns a new ListValue with v appended; the receiver is
// unchanged.
func (l ListValue) Append(v Value) ListValue {
	grown := make([]Value, len(l.elements)+1)
	copy(grown, l.elements)
	grown[len(l.elements)] = v
	return ListValue{elements: grown}
}

// Concat returns a new ListValue holding the receiver's elements followed
// by other's; used to implement flattening spreads.
func (l ListValue) Concat(other ListValue) ListValue {
	merged := make([]Value, 0, len(l.elements)+len(other.elements))
	merged = append(merged, l.elements...)
	merged = append(merged, other.elements...)
	return ListValue{elements: merged}
}

func (l ListValue) String() string {
	parts := make([]string, len(l.elements))
	for i, e := range l.elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l ListValue) Equal(other Value) bool {
	o, ok := other.(ListValue)
	if !ok || len(l.elements) != len(o.elements) {
		return false
	}
	for i := range l.elements {
		if !l.elements[i].Equal(o.elements[i]) {
			return false
		}
	}
	return true
}

// Truthy: every List is truthy, including the empty list (spreadsheet
// truthiness rule -- unlike the host languages this engine's teacher was
// written for, [] is not falsy here).
func (l ListValue) Truthy() bool { return true }
