// Package mj parses JSON text into a Value tree and renders it back as
// pretty, minified, or ANSI-colorized output.
package mj

import "strconv"

// Kind identifies the concrete type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is a parsed JSON value. The concrete types are Null, Bool, Number,
// String, Array, and Object. A Value tree is built once by Parse, is finite
// and acyclic, and is never mutated afterwards.
type Value interface {
	Kind() Kind
}

// Null is the JSON null value.
type Null struct{}

// Bool is a JSON true or false.
type Bool bool

// Number is a JSON number. The literal text as it appeared in the input is
// retained so rendering can re-emit it exactly; Float converts on demand.
type Number struct {
	Literal string
}

// String is a JSON string with all escape sequences already decoded.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered sequence of members. Insertion order is preserved
// and duplicate keys are kept; Get resolves duplicates last-key-wins.
type Object []Member

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

// Float returns the number as a float64. The literal was validated during
// lexing, so conversion cannot fail.
func (n Number) Float() float64 {
	f, _ := strconv.ParseFloat(n.Literal, 64)
	return f
}

// Get returns the value of the last member with the given key.
func (o Object) Get(key string) (Value, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Keys returns the member keys in insertion order, duplicates included.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}
