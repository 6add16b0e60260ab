package jot

import "jot.dev/errorf"

// Copy returns a detached deep copy of v. The copy owns fresh buffers
// for every string and key. On any failure nothing is returned and every
// partially built node is destroyed; the source is never modified.
func (c *Codec) Copy(v *Value) (*Value, error) {
	return c.copyValue(v, 1)
}

func (c *Codec) copyValue(v *Value, depth int) (*Value, error) {
	if depth > maxNesting {
		return nil, errorf.T("nesting deeper than %d", maxNesting)
	}
	switch v.Kind() {
	case KindNull:
		return &Value{kind: KindNull}, nil
	case KindBool:
		return &Value{kind: KindBool, boolean: v.boolean}, nil
	case KindNumber:
		return &Value{kind: KindNumber, num: v.num}, nil
	case KindString:
		cp := c.Alloc.Dup(v.str)
		if cp == nil {
			return nil, errorf.E("allocation of %d bytes failed", len(v.str))
		}
		return newStringOwned(cp), nil
	case KindArray:
		out := c.NewArray()
		a := v.arr
		for i := 0; i < a.count; i++ {
			child, err := c.copyValue(a.items[i], depth+1)
			if err != nil {
				c.Free(out)
				return nil, err
			}
			if err = out.arr.Append(child); err != nil {
				c.Free(child)
				c.Free(out)
				return nil, err
			}
		}
		return out, nil
	case KindObject:
		out := c.NewObject()
		o := v.obj
		for i := 0; i < o.count; i++ {
			child, err := c.copyValue(o.values[i], depth+1)
			if err != nil {
				c.Free(out)
				return nil, err
			}
			key := c.Alloc.Dup(o.keys[i])
			if key == nil {
				c.Free(child)
				c.Free(out)
				return nil, errorf.E("allocation of %d byte key failed",
					len(o.keys[i]))
			}
			if err = out.obj.addOwned(key, child); err != nil {
				c.Alloc.Free(key)
				c.Free(child)
				c.Free(out)
				return nil, err
			}
		}
		return out, nil
	}
	return nil, errorf.E("cannot copy %s value", v.Kind())
}
