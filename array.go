package jot

import (
	"jot.dev/alloc"
	"jot.dev/errorf"
)

// Array is an ordered, owned sequence of Values. Index is the sole
// identity; count never exceeds capacity, and growth doubles.
type Array struct {
	wrap  *Value
	al    *alloc.A
	items []*Value
	count int
}

// resize reallocates the backing storage to exactly capacity slots,
// keeping existing references. Used to double on growth and to shrink to
// fit once parsing completes.
func (a *Array) resize(capacity int) {
	next := make([]*Value, capacity)
	copy(next, a.items[:min(a.count, capacity)])
	a.items = next
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return a.count
}

// At returns the i-th element, or nil out of range.
func (a *Array) At(i int) *Value {
	if a == nil || i < 0 || i >= a.count {
		return nil
	}
	return a.items[i]
}

// Wrap returns the Value this array is the payload of.
func (a *Array) Wrap() *Value {
	if a == nil {
		return nil
	}
	return a.wrap
}

// Append adds v at the end. The value must not already have a parent.
func (a *Array) Append(v *Value) error {
	if v == nil {
		return errorf.E("cannot append nil value")
	}
	if v.parent != nil {
		return errorf.E("value already owned by a container")
	}
	if a.count >= len(a.items) {
		a.resize(max(len(a.items)*2, startingCapacity))
	}
	a.items[a.count] = v
	a.count++
	v.parent = a.wrap
	return nil
}

// Remove destroys the i-th element and shifts the rest down by one.
func (a *Array) Remove(i int) error {
	if a == nil || i < 0 || i >= a.count {
		return errorf.T("index %d out of range", i)
	}
	freeValue(a.al, a.items[i])
	copy(a.items[i:], a.items[i+1:a.count])
	a.count--
	a.items[a.count] = nil
	return nil
}

// Replace destroys the i-th element and stores v in its place. The new
// value must not already have a parent.
func (a *Array) Replace(i int, v *Value) error {
	if v == nil {
		return errorf.E("cannot store nil value")
	}
	if v.parent != nil {
		return errorf.E("value already owned by a container")
	}
	if a == nil || i < 0 || i >= a.count {
		return errorf.T("index %d out of range", i)
	}
	freeValue(a.al, a.items[i])
	a.items[i] = v
	v.parent = a.wrap
	return nil
}

// Clear destroys every element, keeping the backing storage.
func (a *Array) Clear() {
	for i := 0; i < a.count; i++ {
		freeValue(a.al, a.items[i])
		a.items[i] = nil
	}
	a.count = 0
}

// GetText returns the string payload at i, nil if out of range or not a
// string.
func (a *Array) GetText(i int) []byte { return a.At(i).Text() }

// GetNumber returns the number at i, 0 if out of range or not a number.
func (a *Array) GetNumber(i int) float64 { return a.At(i).Number() }

// GetBool returns the boolean at i; ok is false if out of range or not a
// boolean.
func (a *Array) GetBool(i int) (b, ok bool) { return a.At(i).Bool() }

// GetObject returns the object payload at i, or nil.
func (a *Array) GetObject(i int) *Object { return a.At(i).Object() }

// GetArray returns the array payload at i, or nil.
func (a *Array) GetArray(i int) *Array { return a.At(i).Array() }

// AppendText appends a string value.
func (a *Array) AppendText(s string) error {
	v, err := newStringValue(a.al, []byte(s))
	if err != nil {
		return err
	}
	if err = a.Append(v); err != nil {
		freeValue(a.al, v)
		return err
	}
	return nil
}

// AppendNumber appends a number value.
func (a *Array) AppendNumber(n float64) error {
	v, err := newNumberValue(n)
	if err != nil {
		return err
	}
	if err = a.Append(v); err != nil {
		freeValue(a.al, v)
		return err
	}
	return nil
}

// AppendBool appends a boolean value.
func (a *Array) AppendBool(b bool) error {
	return a.Append(&Value{kind: KindBool, boolean: b})
}

// AppendNull appends a null value.
func (a *Array) AppendNull() error {
	return a.Append(&Value{kind: KindNull})
}

// ReplaceText replaces the i-th element with a string value.
func (a *Array) ReplaceText(i int, s string) error {
	v, err := newStringValue(a.al, []byte(s))
	if err != nil {
		return err
	}
	if err = a.Replace(i, v); err != nil {
		freeValue(a.al, v)
		return err
	}
	return nil
}

// ReplaceNumber replaces the i-th element with a number value.
func (a *Array) ReplaceNumber(i int, n float64) error {
	v, err := newNumberValue(n)
	if err != nil {
		return err
	}
	if err = a.Replace(i, v); err != nil {
		freeValue(a.al, v)
		return err
	}
	return nil
}

// ReplaceBool replaces the i-th element with a boolean value.
func (a *Array) ReplaceBool(i int, b bool) error {
	return a.Replace(i, &Value{kind: KindBool, boolean: b})
}

// ReplaceNull replaces the i-th element with null.
func (a *Array) ReplaceNull(i int) error {
	return a.Replace(i, &Value{kind: KindNull})
}
