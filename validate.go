package jot

// Validate reports whether candidate conforms to the shape described by
// schema. A null schema matches anything. Scalar schema values require
// only a kind match. A non-empty schema array requires every candidate
// element to conform to the schema's first element; an empty schema
// array matches any array. A schema object requires each of its keys to
// be present in the candidate with a conforming value; the candidate may
// carry extra keys. Trees deeper than the parser admits fail.
func Validate(schema, candidate *Value) bool {
	return validate(schema, candidate, 1)
}

func validate(schema, candidate *Value, depth int) bool {
	if depth > maxNesting {
		return false
	}
	if schema.Kind() == KindNull {
		return true
	}
	if schema.Kind() != candidate.Kind() {
		return false
	}
	switch schema.Kind() {
	case KindArray:
		sa, ca := schema.arr, candidate.arr
		if sa.count == 0 {
			return true
		}
		elem := sa.items[0]
		for i := 0; i < ca.count; i++ {
			if !validate(elem, ca.items[i], depth+1) {
				return false
			}
		}
		return true
	case KindObject:
		so, co := schema.obj, candidate.obj
		for i := 0; i < so.count; i++ {
			cv := co.Get(string(so.keys[i]))
			if cv == nil {
				return false
			}
			if !validate(so.values[i], cv, depth+1) {
				return false
			}
		}
		return true
	}
	return true
}
