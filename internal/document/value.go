// Package document implements path-addressed mutation and reconciliation of
// JSON object trees.
//
// A document is a tree of Objects whose leaves are Strings. Other JSON value
// kinds (arrays, numbers, booleans, null) survive a load/save round trip but
// are never created by a mutation and are rejected by enumeration.
package document

import "sort"

// Kind identifies the variant of a Value.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is a JSON value. The set of implementations is closed: Object, Array,
// String, Number, Bool and Null.
type Value interface {
	Kind() Kind
	sealed()
}

// Object maps keys to values. Key order is irrelevant; encoders sort keys.
type Object map[string]Value

// Array is an ordered list of values.
type Array []Value

// String is a string leaf.
type String string

// Number is a JSON number in its decoded text form. Saving re-encodes it by
// value.
type Number string

// Bool is a boolean leaf.
type Bool bool

// Null is the JSON null literal.
type Null struct{}

func (Object) Kind() Kind { return KindObject }
func (Array) Kind() Kind  { return KindArray }
func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }

func (Object) sealed() {}
func (Array) sealed()  {}
func (String) sealed() {}
func (Number) sealed() {}
func (Bool) sealed()   {}
func (Null) sealed()   {}

// NewObject returns an empty Object.
func NewObject() Object {
	return Object{}
}

// Keys returns the object's keys in ascending order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
