package record

import (
	"encoding/json"
	"fmt"
)

type Kind int

const (
	ScalarKind Kind = iota
	ListKind
	NestedKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case ListKind:
		return "list"
	case NestedKind:
		return "nested"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a scalar (string, json.Number, bool or nil), a list of values, or a nested record.
type Value struct {
	kind   Kind
	scalar interface{}
	list   []Value
	nested *Record
}

func Scalar(v interface{}) Value {
	return Value{kind: ScalarKind, scalar: v}
}

func List(items ...Value) Value {
	return Value{kind: ListKind, list: items}
}

func Nested(r *Record) Value {
	return Value{kind: NestedKind, nested: r}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Scalar() interface{} { return v.scalar }

func (v Value) List() []Value { return v.list }

func (v Value) Nested() *Record { return v.nested }

// Reference returns the single (lookupField, lookupValue) pair of a nested value holding
// exactly one field.
func (v Value) Reference() (string, Value, bool) {
	if v.kind != NestedKind || v.nested == nil || v.nested.Len() != 1 {
		return "", Value{}, false
	}
	key := v.nested.keys[0]
	return key, v.nested.values[key], true
}

// Text renders a non-null scalar as it would appear in a query literal.
func (v Value) Text() (string, bool) {
	if v.kind != ScalarKind || v.scalar == nil {
		return "", false
	}
	switch s := v.scalar.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	default:
		return fmt.Sprint(s), true
	}
}

func (v Value) Clone() Value {
	switch v.kind {
	case ListKind:
		items := make([]Value, len(v.list))
		for i, item := range v.list {
			items[i] = item.Clone()
		}
		return List(items...)
	case NestedKind:
		if v.nested == nil {
			return v
		}
		return Nested(v.nested.Clone())
	}
	return v
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ListKind:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case NestedKind:
		if v.nested == nil {
			return []byte("null"), nil
		}
		return v.nested.MarshalJSON()
	}
	return json.Marshal(v.scalar)
}
