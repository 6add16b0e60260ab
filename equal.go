package jot

import "math"

// equalEpsilon is the tolerance for number comparison. Two numbers
// closer than this are the same value.
const equalEpsilon = 1e-6

// Equal reports deep structural equality of two trees. Strings compare
// byte for byte, numbers within equalEpsilon, arrays element by element
// in order, objects entry by entry regardless of insertion order. Trees
// deeper than the parser admits compare unequal.
func Equal(a, b *Value) bool { return equalValues(a, b, 1) }

func equalValues(a, b *Value, depth int) bool {
	if depth > maxNesting {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindNumber:
		return math.Abs(a.num-b.num) < equalEpsilon
	case KindString:
		return string(a.str) == string(b.str)
	case KindArray:
		aa, ba := a.arr, b.arr
		if aa.count != ba.count {
			return false
		}
		for i := 0; i < aa.count; i++ {
			if !equalValues(aa.items[i], ba.items[i], depth+1) {
				return false
			}
		}
		return true
	case KindObject:
		ao, bo := a.obj, b.obj
		if ao.count != bo.count {
			return false
		}
		for i := 0; i < ao.count; i++ {
			bv := bo.Get(string(ao.keys[i]))
			if bv == nil {
				return false
			}
			if !equalValues(ao.values[i], bv, depth+1) {
				return false
			}
		}
		return true
	}
	return false
}
