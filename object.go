package jot

import (
	"bytes"

	"jot.dev/alloc"
	"jot.dev/errorf"
)

// emptyCell marks an unoccupied slot in the sparse cell table.
const emptyCell = -1

// Object is an insertion-ordered collection of unique (key, Value)
// entries, backed by a closed hash table with linear probing and no
// tombstones: removal backward-shifts later entries of the probe chain
// into the gap, so lookup cost never degrades and no rehash-on-remove is
// needed.
//
// Storage is split in two. The dense side (keys, values, cellIdx, hashes,
// indexed 0..count) holds live entries in insertion order. The sparse
// side (cells, power-of-two length) maps probe slots to dense indices.
// cellIdx is the reverse mapping; the two are kept mutually consistent on
// every move. Invariant: every occupied slot is reachable from its
// entry's home slot by a contiguous run of occupied slots.
type Object struct {
	wrap *Value
	al   *alloc.A

	cells   []int    // sparse: dense index or emptyCell
	keys    [][]byte // dense, insertion order, allocator-owned
	values  []*Value // dense, owned children
	cellIdx []int    // dense: current slot of each entry
	hashes  []uint64 // dense: cached key hashes
	count   int
	itemCap int // dense capacity, 7/10 of len(cells)
}

// hashKey is djb2: hash*33 + c over the key bytes.
func hashKey[T ~string | ~[]byte](key T) uint64 {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return h
}

// cellFor probes from the key's home slot. It returns the key's slot
// with found=true, or the first empty slot (the insertion point) with
// found=false. Hash collisions with unequal keys never terminate the
// probe. With no backing storage yet it reports (-1, false).
func cellFor[T ~string | ~[]byte](o *Object, key T, hash uint64) (cell int, found bool) {
	n := len(o.cells)
	if n == 0 {
		return -1, false
	}
	home := int(hash & uint64(n-1))
	for i := 0; i < n; i++ {
		ix := (home + i) & (n - 1)
		e := o.cells[ix]
		if e == emptyCell {
			return ix, false
		}
		if o.hashes[e] != hash {
			continue
		}
		if string(o.keys[e]) == string(key) {
			return ix, true
		}
	}
	return -1, false
}

// init allocates backing storage for the given cell capacity, which must
// be a power of two. Capacity zero means no storage at all.
func (o *Object) init(capacity int) {
	o.count = 0
	o.itemCap = capacity * 7 / 10
	if capacity == 0 {
		o.cells, o.keys, o.values, o.cellIdx, o.hashes = nil, nil, nil, nil, nil
		return
	}
	o.cells = make([]int, capacity)
	for i := range o.cells {
		o.cells[i] = emptyCell
	}
	o.keys = make([][]byte, o.itemCap)
	o.values = make([]*Value, o.itemCap)
	o.cellIdx = make([]int, o.itemCap)
	o.hashes = make([]uint64, o.itemCap)
}

func (o *Object) reset() {
	o.count, o.itemCap = 0, 0
	o.cells, o.keys, o.values, o.cellIdx, o.hashes = nil, nil, nil, nil, nil
}

// claim installs an entry at a slot previously returned by cellFor with
// found=false, appending it to the dense arrays. The key buffer becomes
// owned by the object.
func (o *Object) claim(cell int, key []byte, hash uint64, v *Value) {
	o.cells[cell] = o.count
	o.keys[o.count] = key
	o.values[o.count] = v
	o.cellIdx[o.count] = cell
	o.hashes[o.count] = hash
	o.count++
	v.parent = o.wrap
}

// growAndRehash doubles the cell table (16 at minimum), re-inserting
// every live entry into a transient table and swapping it in. Existing
// key buffers and cached hashes are reused, so the re-insert cannot fail.
func (o *Object) growAndRehash() {
	capacity := max(len(o.cells)*2, startingCapacity)
	next := Object{wrap: o.wrap, al: o.al}
	next.init(capacity)
	for i := 0; i < o.count; i++ {
		cell, _ := cellFor(&next, o.keys[i], o.hashes[i])
		next.claim(cell, o.keys[i], o.hashes[i], o.values[i])
	}
	*o = next
}

// addOwned inserts strictly (an existing key is an error), taking
// ownership of the key buffer on success only.
func (o *Object) addOwned(key []byte, v *Value) error {
	if v == nil {
		return errorf.E("cannot add nil value")
	}
	if v.parent != nil {
		return errorf.E("value already owned by a container")
	}
	if bytes.IndexByte(key, 0) >= 0 {
		return errorf.T("object key contains NUL byte")
	}
	hash := hashKey(key)
	cell, found := cellFor(o, key, hash)
	if found {
		return errorf.T("duplicate object key %q", key)
	}
	if o.count >= o.itemCap {
		o.growAndRehash()
		cell, _ = cellFor(o, key, hash)
	}
	o.claim(cell, key, hash, v)
	return nil
}

// Add inserts a new entry, failing on a duplicate key, a key containing
// NUL, or a value that is already owned. Neither container is mutated on
// failure.
func (o *Object) Add(key string, v *Value) error {
	kc := o.al.Dup([]byte(key))
	if kc == nil {
		return errorf.E("allocation of %d byte key failed", len(key))
	}
	if err := o.addOwned(kc, v); err != nil {
		o.al.Free(kc)
		return err
	}
	return nil
}

// Set inserts or overwrites. When the key exists its old value is
// destroyed and replaced in place; slot and cached hash are untouched.
// The new value must not already have a parent.
func (o *Object) Set(key string, v *Value) error {
	if v == nil {
		return errorf.E("cannot set nil value")
	}
	if v.parent != nil {
		return errorf.E("value already owned by a container")
	}
	hash := hashKey(key)
	if cell, found := cellFor(o, key, hash); found {
		e := o.cells[cell]
		freeValue(o.al, o.values[e])
		o.values[e] = v
		v.parent = o.wrap
		return nil
	}
	return o.Add(key, v)
}

// Remove deletes the entry for key, destroying its value and key buffer.
// The last dense entry is moved into the freed dense slot, then the probe
// chain after the freed cell is repaired by backward shifting.
func (o *Object) Remove(key string) error {
	hash := hashKey(key)
	cell, found := cellFor(o, key, hash)
	if !found {
		return errorf.T("key %q not found", key)
	}
	e := o.cells[cell]
	freeValue(o.al, o.values[e])
	o.al.Free(o.keys[e])
	last := o.count - 1
	if e < last {
		o.keys[e] = o.keys[last]
		o.values[e] = o.values[last]
		o.cellIdx[e] = o.cellIdx[last]
		o.hashes[e] = o.hashes[last]
		o.cells[o.cellIdx[e]] = e
	}
	o.keys[last] = nil
	o.values[last] = nil
	o.count--

	mask := len(o.cells) - 1
	free := cell
	j := free
	for x := 0; x < len(o.cells)-1; x++ {
		j = (j + 1) & mask
		if o.cells[j] == emptyCell {
			break
		}
		home := int(o.hashes[o.cells[j]] & uint64(mask))
		if movable(free, j, home) {
			o.cellIdx[o.cells[j]] = free
			o.cells[free] = o.cells[j]
			free = j
		}
	}
	o.cells[free] = emptyCell
	return nil
}

// movable reports whether the entry occupying slot j, whose home slot is
// home, may be shifted back into the freed slot. It may not when its
// home lies in the circular range (freed, j]: shifting it before its own
// home would break its probe chain.
func movable(freed, j, home int) bool {
	if j > freed {
		return home <= freed || home > j
	}
	return home <= freed && home > j
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return o.count
}

// Key returns the i-th key in insertion order, or nil out of range. The
// buffer is owned by the object.
func (o *Object) Key(i int) []byte {
	if o == nil || i < 0 || i >= o.count {
		return nil
	}
	return o.keys[i]
}

// At returns the i-th value in insertion order, or nil out of range.
func (o *Object) At(i int) *Value {
	if o == nil || i < 0 || i >= o.count {
		return nil
	}
	return o.values[i]
}

// Wrap returns the Value this object is the payload of.
func (o *Object) Wrap() *Value {
	if o == nil {
		return nil
	}
	return o.wrap
}

// Get returns the value for key, or nil when absent.
func (o *Object) Get(key string) *Value {
	if o == nil {
		return nil
	}
	cell, found := cellFor(o, key, hashKey(key))
	if !found {
		return nil
	}
	return o.values[o.cells[cell]]
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool { return o.Get(key) != nil }

// HasKind reports whether key is present with a value of kind k.
func (o *Object) HasKind(key string, k Kind) bool {
	return o.Get(key).Kind() == k
}

// GetText returns the string payload for key, nil if absent or not a
// string.
func (o *Object) GetText(key string) []byte { return o.Get(key).Text() }

// GetNumber returns the number for key, 0 if absent or not a number.
func (o *Object) GetNumber(key string) float64 { return o.Get(key).Number() }

// GetBool returns the boolean for key; ok is false if absent or not a
// boolean.
func (o *Object) GetBool(key string) (b, ok bool) { return o.Get(key).Bool() }

// GetObject returns the object payload for key, or nil.
func (o *Object) GetObject(key string) *Object { return o.Get(key).Object() }

// GetArray returns the array payload for key, or nil.
func (o *Object) GetArray(key string) *Array { return o.Get(key).Array() }

// SetText sets key to a string value.
func (o *Object) SetText(key, s string) error {
	v, err := newStringValue(o.al, []byte(s))
	if err != nil {
		return err
	}
	if err = o.Set(key, v); err != nil {
		freeValue(o.al, v)
		return err
	}
	return nil
}

// SetNumber sets key to a number value.
func (o *Object) SetNumber(key string, n float64) error {
	v, err := newNumberValue(n)
	if err != nil {
		return err
	}
	if err = o.Set(key, v); err != nil {
		freeValue(o.al, v)
		return err
	}
	return nil
}

// SetBool sets key to a boolean value.
func (o *Object) SetBool(key string, b bool) error {
	return o.Set(key, &Value{kind: KindBool, boolean: b})
}

// SetNull sets key to null.
func (o *Object) SetNull(key string) error {
	return o.Set(key, &Value{kind: KindNull})
}

// Clear destroys every entry, keeping the backing storage for reuse.
func (o *Object) Clear() {
	for i := 0; i < o.count; i++ {
		o.al.Free(o.keys[i])
		freeValue(o.al, o.values[i])
		o.keys[i] = nil
		o.values[i] = nil
	}
	o.count = 0
	for i := range o.cells {
		o.cells[i] = emptyCell
	}
}
