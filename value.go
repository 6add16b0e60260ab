package jot

import (
	"math"

	"jot.dev/alloc"
	"jot.dev/errorf"
	"jot.dev/text"
)

// Kind discriminates the payload held by a Value.
type Kind int

const (
	// KindInvalid is the sentinel reported for a nil or absent Value.
	KindInvalid Kind = iota
	KindNull
	KindString
	KindNumber
	KindObject
	KindArray
	KindBool
)

var kindNames = []string{"invalid", "null", "string", "number", "object",
	"array", "bool"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Value is one node of a document tree. It holds exactly one payload
// matching its kind, and a non-owning link to the Value of the container
// holding it (nil for a root or a value not yet attached). The container
// is the sole owner; a Value is in at most one container at a time.
type Value struct {
	parent  *Value
	kind    Kind
	str     []byte
	num     float64
	boolean bool
	obj     *Object
	arr     *Array
}

// Kind returns the discriminant, KindInvalid for a nil Value.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}
	return v.kind
}

// Parent returns the Value of the container holding v, or nil.
func (v *Value) Parent() *Value {
	if v == nil {
		return nil
	}
	return v.parent
}

// Object returns the object payload, or nil if v is not an object.
func (v *Value) Object() *Object {
	if v.Kind() != KindObject {
		return nil
	}
	return v.obj
}

// Array returns the array payload, or nil if v is not an array.
func (v *Value) Array() *Array {
	if v.Kind() != KindArray {
		return nil
	}
	return v.arr
}

// Text returns the string payload bytes, or nil if v is not a string.
// The buffer is owned by the Value; callers must not retain it past a
// Free of the tree.
func (v *Value) Text() []byte {
	if v.Kind() != KindString {
		return nil
	}
	return v.str
}

// Number returns the number payload, or 0 if v is not a number.
func (v *Value) Number() float64 {
	if v.Kind() != KindNumber {
		return 0
	}
	return v.num
}

// Bool returns the boolean payload; ok is false if v is not a boolean.
func (v *Value) Bool() (b, ok bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.boolean, true
}

// NewNull constructs an unattached null Value.
func (c *Codec) NewNull() *Value { return &Value{kind: KindNull} }

// NewBool constructs an unattached boolean Value.
func (c *Codec) NewBool(b bool) *Value {
	return &Value{kind: KindBool, boolean: b}
}

// NewNumber constructs an unattached number Value. NaN and infinities
// have no JSON representation and are rejected.
func (c *Codec) NewNumber(n float64) (*Value, error) {
	return newNumberValue(n)
}

func newNumberValue(n float64) (*Value, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, errorf.E("number %v is not representable in JSON", n)
	}
	return &Value{kind: KindNumber, num: n}, nil
}

// NewString constructs an unattached string Value holding an owned copy
// of s. The bytes must be well formed UTF-8.
func (c *Codec) NewString(s string) (*Value, error) {
	return newStringValue(c.Alloc, []byte(s))
}

func newStringValue(al *alloc.A, s []byte) (*Value, error) {
	if !text.ValidUTF8(s) {
		return nil, errorf.E("string payload is not valid utf-8")
	}
	cp := al.Dup(s)
	if cp == nil {
		return nil, errorf.E("allocation of %d bytes failed", len(s))
	}
	return &Value{kind: KindString, str: cp}, nil
}

// newStringOwned wraps an allocator-owned buffer without copy or
// validation; the parser's unescape path produces validated bytes.
func newStringOwned(s []byte) *Value {
	return &Value{kind: KindString, str: s}
}

// NewObject constructs an unattached empty object. Its table holds no
// storage until the first insert.
func (c *Codec) NewObject() *Value { return newObjectValue(c.Alloc) }

func newObjectValue(al *alloc.A) *Value {
	v := &Value{kind: KindObject}
	v.obj = &Object{wrap: v, al: al}
	return v
}

// NewArray constructs an unattached empty array.
func (c *Codec) NewArray() *Value {
	v := &Value{kind: KindArray}
	v.arr = &Array{wrap: v, al: c.Alloc}
	return v
}

// Free recursively destroys v, releasing every owned byte buffer through
// the codec's allocator. The value and everything below it must not be
// used afterwards. Teardown is not depth-limited: it must complete to
// release every buffer.
func (c *Codec) Free(v *Value) {
	freeValue(c.Alloc, v)
}

func freeValue(al *alloc.A, v *Value) {
	if v == nil {
		return
	}
	switch v.kind {
	case KindString:
		al.Free(v.str)
		v.str = nil
	case KindObject:
		o := v.obj
		for i := 0; i < o.count; i++ {
			o.al.Free(o.keys[i])
			freeValue(o.al, o.values[i])
		}
		o.reset()
	case KindArray:
		a := v.arr
		for i := 0; i < a.count; i++ {
			freeValue(a.al, a.items[i])
		}
		a.items, a.count = nil, 0
	}
	v.kind = KindInvalid
	v.parent = nil
}
