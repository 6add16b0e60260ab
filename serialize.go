package jot

import (
	"fmt"
	"strconv"

	"jot.dev/errorf"
)

// indentUnit is one level of pretty-mode indentation.
const indentUnit = "    "

const hexDigits = "0123456789abcdef"

// writer is the sink shared by both serializer passes. With buf nil it
// only counts bytes; with buf set it fills it at off. Both passes run
// the identical recursion, so the measured and written lengths cannot
// disagree.
type writer struct {
	buf []byte
	off int
}

func (w *writer) literal(s string) {
	if w.buf != nil {
		copy(w.buf[w.off:], s)
	}
	w.off += len(s)
}

func (w *writer) bytes(b []byte) {
	if w.buf != nil {
		copy(w.buf[w.off:], b)
	}
	w.off += len(b)
}

func (w *writer) byte1(c byte) {
	if w.buf != nil && w.off < len(w.buf) {
		w.buf[w.off] = c
	}
	w.off++
}

func (w *writer) indent(level int) {
	for i := 0; i < level; i++ {
		w.literal(indentUnit)
	}
}

// write emits one value into the sink. level is both the pretty-mode
// indent depth and the recursion bound.
func (c *Codec) write(v *Value, w *writer, level int, pretty bool, scratch []byte) error {
	if level > maxNesting {
		return errorf.T("nesting deeper than %d", maxNesting)
	}
	switch v.Kind() {
	case KindArray:
		a := v.arr
		w.literal("[")
		if a.count > 0 && pretty {
			w.literal("\n")
		}
		for i := 0; i < a.count; i++ {
			if pretty {
				w.indent(level + 1)
			}
			if err := c.write(a.items[i], w, level+1, pretty, scratch); err != nil {
				return err
			}
			if i < a.count-1 {
				w.literal(",")
			}
			if pretty {
				w.literal("\n")
			}
		}
		if a.count > 0 && pretty {
			w.indent(level)
		}
		w.literal("]")
	case KindObject:
		o := v.obj
		w.literal("{")
		if o.count > 0 && pretty {
			w.literal("\n")
		}
		for i := 0; i < o.count; i++ {
			if pretty {
				w.indent(level + 1)
			}
			c.writeString(w, o.keys[i])
			w.literal(":")
			if pretty {
				w.literal(" ")
			}
			if err := c.write(o.values[i], w, level+1, pretty, scratch); err != nil {
				return err
			}
			if i < o.count-1 {
				w.literal(",")
			}
			if pretty {
				w.literal("\n")
			}
		}
		if o.count > 0 && pretty {
			w.indent(level)
		}
		w.literal("}")
	case KindString:
		c.writeString(w, v.str)
	case KindNumber:
		var out []byte
		switch {
		case c.FormatNumber != nil:
			out = c.FormatNumber(v.num, scratch[:0])
		case c.FloatFormat != "":
			out = fmt.Appendf(scratch[:0], c.FloatFormat, v.num)
		default:
			// 17 significant digits round-trip any IEEE-754 double
			out = strconv.AppendFloat(scratch[:0], v.num, 'g', 17, 64)
		}
		w.bytes(out)
	case KindBool:
		if v.boolean {
			w.literal("true")
		} else {
			w.literal("false")
		}
	case KindNull:
		w.literal("null")
	default:
		return errorf.E("cannot serialize %s value", v.Kind())
	}
	return nil
}

// writeString emits a quoted, escaped string. Control bytes use the
// short escapes where JSON defines them and \u00XX otherwise; '/' is
// escaped when the codec says so.
func (c *Codec) writeString(w *writer, s []byte) {
	w.literal("\"")
	for _, b := range s {
		switch {
		case b == '"':
			w.literal("\\\"")
		case b == '\\':
			w.literal("\\\\")
		case b == '\b':
			w.literal("\\b")
		case b == '\f':
			w.literal("\\f")
		case b == '\n':
			w.literal("\\n")
		case b == '\r':
			w.literal("\\r")
		case b == '\t':
			w.literal("\\t")
		case b < 0x20:
			w.literal("\\u00")
			w.byte1(hexDigits[b>>4])
			w.byte1(hexDigits[b&0xF])
		case b == '/' && c.EscapeSlashes:
			w.literal("\\/")
		default:
			w.byte1(b)
		}
	}
	w.literal("\"")
}

// Measure returns the exact compact output length of v, 0 on failure.
func (c *Codec) Measure(v *Value) int { return c.measure(v, false) }

// MeasurePretty returns the exact pretty output length of v, 0 on
// failure.
func (c *Codec) MeasurePretty(v *Value) int { return c.measure(v, true) }

func (c *Codec) measure(v *Value, pretty bool) int {
	scratch := make([]byte, 0, 64)
	w := writer{}
	if err := c.write(v, &w, 0, pretty, scratch); err != nil {
		return 0
	}
	return w.off
}

// Serialize renders v compactly into a single exactly-sized buffer
// allocated through the codec's allocator.
func (c *Codec) Serialize(v *Value) ([]byte, error) {
	return c.render(v, false)
}

// SerializePretty renders v with indentation.
func (c *Codec) SerializePretty(v *Value) ([]byte, error) {
	return c.render(v, true)
}

func (c *Codec) render(v *Value, pretty bool) ([]byte, error) {
	scratch := make([]byte, 0, 64)
	m := writer{}
	if err := c.write(v, &m, 0, pretty, scratch); err != nil {
		return nil, err
	}
	buf := c.Alloc.Bytes(m.off)
	if buf == nil {
		return nil, errorf.E("allocation of %d bytes failed", m.off)
	}
	f := writer{buf: buf}
	if err := c.write(v, &f, 0, pretty, scratch); err != nil {
		c.Alloc.Free(buf)
		return nil, err
	}
	if f.off != m.off {
		// only a nondeterministic number hook can get here
		c.Alloc.Free(buf)
		return nil, errorf.E("measured %d bytes but wrote %d", m.off, f.off)
	}
	return buf, nil
}

// SerializeTo renders v compactly into a caller-supplied buffer, failing
// without touching it when the buffer is smaller than the measured size.
// Returns the number of bytes written.
func (c *Codec) SerializeTo(v *Value, buf []byte) (int, error) {
	return c.renderTo(v, buf, false)
}

// SerializeToPretty is SerializeTo with indentation.
func (c *Codec) SerializeToPretty(v *Value, buf []byte) (int, error) {
	return c.renderTo(v, buf, true)
}

func (c *Codec) renderTo(v *Value, buf []byte, pretty bool) (int, error) {
	scratch := make([]byte, 0, 64)
	m := writer{}
	if err := c.write(v, &m, 0, pretty, scratch); err != nil {
		return 0, err
	}
	if len(buf) < m.off {
		return 0, errorf.E("buffer of %d bytes cannot hold %d", len(buf), m.off)
	}
	f := writer{buf: buf}
	if err := c.write(v, &f, 0, pretty, scratch); err != nil {
		return 0, err
	}
	return f.off, nil
}
