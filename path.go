package jot

import (
	"strings"

	"jot.dev/errorf"
)

// Dot paths address nested object entries: "a.b.c" names entry "c" of
// the object at entry "b" of the object at entry "a". Path segments
// cannot contain dots; only objects are traversed.

// PathGet returns the value at a dot path, or nil when any segment is
// absent or an intermediate is not an object.
func (o *Object) PathGet(path string) *Value {
	if o == nil {
		return nil
	}
	i := strings.IndexByte(path, '.')
	if i < 0 {
		return o.Get(path)
	}
	return o.GetObject(path[:i]).PathGet(path[i+1:])
}

// PathHas reports whether a dot path resolves to a value.
func (o *Object) PathHas(path string) bool { return o.PathGet(path) != nil }

// PathHasKind reports whether a dot path resolves to a value of kind k.
func (o *Object) PathHasKind(path string, k Kind) bool {
	return o.PathGet(path).Kind() == k
}

// PathSet stores v at a dot path, creating intermediate objects for
// absent segments. An intermediate that exists but is not an object is
// never clobbered; the call fails and any scaffolding it created is torn
// down, leaving v unattached.
func (o *Object) PathSet(path string, v *Value) error {
	i := strings.IndexByte(path, '.')
	if i < 0 {
		return o.Set(path, v)
	}
	head, rest := path[:i], path[i+1:]
	if existing := o.Get(head); existing != nil {
		inner := existing.Object()
		if inner == nil {
			return errorf.T("path segment %q is not an object", head)
		}
		return inner.PathSet(rest, v)
	}
	nv := newObjectValue(o.al)
	if err := o.Add(head, nv); err != nil {
		freeValue(o.al, nv)
		return err
	}
	if err := nv.obj.PathSet(rest, v); err != nil {
		_ = o.Remove(head)
		return err
	}
	return nil
}

// PathRemove destroys the entry at a dot path. Intermediate objects are
// left in place even when emptied.
func (o *Object) PathRemove(path string) error {
	if o == nil {
		return errorf.T("path %q not found", path)
	}
	i := strings.IndexByte(path, '.')
	if i < 0 {
		return o.Remove(path)
	}
	inner := o.GetObject(path[:i])
	if inner == nil {
		return errorf.T("path %q not found", path)
	}
	return inner.PathRemove(path[i+1:])
}

// PathGetText returns the string payload at a dot path, or nil.
func (o *Object) PathGetText(path string) []byte {
	return o.PathGet(path).Text()
}

// PathGetNumber returns the number at a dot path, or 0.
func (o *Object) PathGetNumber(path string) float64 {
	return o.PathGet(path).Number()
}

// PathGetBool returns the boolean at a dot path; ok is false when the
// path does not resolve to a boolean.
func (o *Object) PathGetBool(path string) (b, ok bool) {
	return o.PathGet(path).Bool()
}

// PathGetObject returns the object payload at a dot path, or nil.
func (o *Object) PathGetObject(path string) *Object {
	return o.PathGet(path).Object()
}

// PathGetArray returns the array payload at a dot path, or nil.
func (o *Object) PathGetArray(path string) *Array {
	return o.PathGet(path).Array()
}

// PathSetText stores a string value at a dot path.
func (o *Object) PathSetText(path, s string) error {
	v, err := newStringValue(o.al, []byte(s))
	if err != nil {
		return err
	}
	if err = o.PathSet(path, v); err != nil {
		freeValue(o.al, v)
		return err
	}
	return nil
}

// PathSetNumber stores a number value at a dot path.
func (o *Object) PathSetNumber(path string, n float64) error {
	v, err := newNumberValue(n)
	if err != nil {
		return err
	}
	if err = o.PathSet(path, v); err != nil {
		freeValue(o.al, v)
		return err
	}
	return nil
}

// PathSetBool stores a boolean value at a dot path.
func (o *Object) PathSetBool(path string, b bool) error {
	v := &Value{kind: KindBool, boolean: b}
	if err := o.PathSet(path, v); err != nil {
		return err
	}
	return nil
}

// PathSetNull stores null at a dot path.
func (o *Object) PathSetNull(path string) error {
	return o.PathSet(path, &Value{kind: KindNull})
}
