// Package diff computes field-level change sets between two versions of a
// resource document. Values are modeled as a typed tree rather than raw
// dynamic maps so the recursion is exhaustive over every JSON shape.
package diff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// Value is a tagged variant over the JSON data model. The zero value is null.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	o    *Object
	a    []Value
}

// Object is a key-ordered JSON object. Key enumeration order is the order
// keys appeared in the source document, which fixes the order of emitted
// fields.
type Object struct {
	keys  []string
	items map[string]Value
}

func NewObject() *Object {
	return &Object{items: make(map[string]Value)}
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in document order. The returned slice is shared.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Null(), false
	}
	v, ok := o.items[key]
	return v, ok
}

// Set stores a value, appending the key when it is new.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.items[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.items[key] = v
}

// Clone makes a deep copy of the object.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := NewObject()
	for _, k := range o.keys {
		c.Set(k, o.items[k].Clone())
	}
	return c
}

func Null() Value          { return Value{kind: KindNull} }
func Bool(b bool) Value    { return Value{kind: KindBool, b: b} }
func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}
func String(s string) Value { return Value{kind: KindString, s: s} }
func ObjectValue(o *Object) Value {
	if o == nil {
		return Null()
	}
	return Value{kind: KindObject, o: o}
}
func Array(a []Value) Value { return Value{kind: KindArray, a: a} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) BoolVal() bool     { return v.b }
func (v Value) NumberVal() float64 { return v.n }
func (v Value) StringVal() string { return v.s }

func (v Value) ObjectVal() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.o
}

func (v Value) ArrayVal() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.a
}

// Clone makes a deep copy of the value.
func (v Value) Clone() Value {
	switch v.kind {
	case KindObject:
		return ObjectValue(v.o.Clone())
	case KindArray:
		c := make([]Value, len(v.a))
		for i, e := range v.a {
			c[i] = e.Clone()
		}
		return Array(c)
	default:
		return v
	}
}

// Equal reports deep equality. Scalars of different kinds are never equal,
// so a transition from null to "" or from 0 to false always diffs.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.a) != len(b.a) {
			return false
		}
		for i := range a.a {
			if !Equal(a.a[i], b.a[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.o.Len() != b.o.Len() {
			return false
		}
		for _, k := range a.o.Keys() {
			bv, ok := b.o.Get(k)
			if !ok {
				return false
			}
			av, _ := a.o.Get(k)
			if !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON renders the value, preserving object key order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		b, err := json.Marshal(v.n)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindString:
		b, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.a {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, k := range v.o.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			e, _ := v.o.Get(k)
			if err := writeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// UnmarshalJSON parses JSON into a value tree, keeping object key order.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := FromJSON(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromJSON parses a JSON document into a value tree. A token-level walk is
// used because object key order must survive parsing.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Null(), err
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Null(), err
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Null(), err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Null(), fmt.Errorf("diff: object key is not a string: %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Null(), err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return Null(), err
			}
			return ObjectValue(obj), nil
		case '[':
			var arr []Value
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return Null(), err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return Null(), err
			}
			return Array(arr), nil
		}
	}
	return Null(), fmt.Errorf("diff: unexpected token %v", tok)
}

// FromStruct converts any JSON-serializable Go value into a value tree.
// Struct field order follows the struct definition.
func FromStruct(src any) (Value, error) {
	data, err := sonic.Marshal(src)
	if err != nil {
		return Null(), err
	}
	return FromJSON(data)
}
