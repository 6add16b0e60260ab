package jot

import (
	"bytes"
	"errors"
	"math"
	"strconv"

	"jot.dev/errorf"
	"jot.dev/text"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// parser is a recursive-descent reader over a single input buffer. No
// backtracking beyond one-character lookahead; depth is threaded
// explicitly and checked against maxNesting on every value.
type parser struct {
	c   *Codec
	buf []byte
	pos int
}

// Parse parses one complete JSON document. A leading UTF-8 byte order
// mark is skipped; anything but whitespace after the top-level value is
// an error. On any failure every partially built value is destroyed.
func (c *Codec) Parse(input []byte) (*Value, error) {
	p := parser{c: c, buf: input}
	if bytes.HasPrefix(input, bom) {
		p.pos = len(bom)
	}
	v, err := p.parseValue(1)
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if p.pos < len(p.buf) {
		c.Free(v)
		return nil, errorf.T("trailing garbage at offset %d", p.pos)
	}
	return v, nil
}

// ParseString is Parse over a string.
func (c *Codec) ParseString(s string) (*Value, error) {
	return c.Parse([]byte(s))
}

// ParseWithComments blanks C-style comments in a private copy of the
// input, then parses strictly. Comment syntax inside string literals is
// left alone.
func (c *Codec) ParseWithComments(input []byte) (*Value, error) {
	cp := c.Alloc.Dup(input)
	if cp == nil {
		return nil, errorf.E("allocation of %d bytes failed", len(input))
	}
	text.StripComments(cp)
	v, err := c.Parse(cp)
	c.Alloc.Free(cp)
	return v, err
}

func (p *parser) skipWS() {
	for p.pos < len(p.buf) {
		switch p.buf[p.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.pos++
		default:
			return
		}
	}
}

// peek returns the current byte, 0 at end of input. NUL never occurs in
// a well formed document outside string escapes, so 0 is a safe sentinel.
func (p *parser) peek() byte {
	if p.pos < len(p.buf) {
		return p.buf[p.pos]
	}
	return 0
}

func (p *parser) parseValue(depth int) (*Value, error) {
	if depth > maxNesting {
		return nil, errorf.T("nesting deeper than %d", maxNesting)
	}
	p.skipWS()
	if p.pos >= len(p.buf) {
		return nil, errorf.T("unexpected end of input")
	}
	switch c := p.buf[p.pos]; {
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"':
		return p.parseString()
	case c == 't' || c == 'f':
		return p.parseBool()
	case c == 'n':
		return p.parseNull()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, errorf.T("unexpected character %q at offset %d", c, p.pos)
	}
}

// quoted consumes a string literal at the cursor and returns its decoded
// contents in an allocator-owned exact-size buffer.
func (p *parser) quoted() ([]byte, error) {
	if p.peek() != '"' {
		return nil, errorf.T("expected string at offset %d", p.pos)
	}
	start := p.pos + 1
	i := start
	for i < len(p.buf) && p.buf[i] != '"' {
		if p.buf[i] == '\\' {
			i++
			if i >= len(p.buf) {
				return nil, errorf.T("unterminated string")
			}
		}
		i++
	}
	if i >= len(p.buf) {
		return nil, errorf.T("unterminated string")
	}
	out, err := text.Unescape(p.c.Alloc, p.buf[start:i])
	if err != nil {
		return nil, err
	}
	p.pos = i + 1
	return out, nil
}

func (p *parser) parseString() (*Value, error) {
	s, err := p.quoted()
	if err != nil {
		return nil, err
	}
	return newStringOwned(s), nil
}

func (p *parser) parseObject(depth int) (*Value, error) {
	v := p.c.NewObject()
	o := v.obj
	p.pos++ // '{'
	p.skipWS()
	if p.peek() == '}' {
		p.pos++
		return v, nil
	}
	for p.pos < len(p.buf) {
		key, err := p.quoted()
		if err != nil {
			p.c.Free(v)
			return nil, err
		}
		p.skipWS()
		if p.peek() != ':' {
			p.c.Alloc.Free(key)
			p.c.Free(v)
			return nil, errorf.T("expected ':' at offset %d", p.pos)
		}
		p.pos++
		child, err := p.parseValue(depth + 1)
		if err != nil {
			p.c.Alloc.Free(key)
			p.c.Free(v)
			return nil, err
		}
		// duplicate keys and keys with embedded NUL are hard failures
		if err = o.addOwned(key, child); err != nil {
			p.c.Alloc.Free(key)
			p.c.Free(child)
			p.c.Free(v)
			return nil, err
		}
		p.skipWS()
		if p.peek() != ',' {
			break
		}
		p.pos++
		p.skipWS()
		if p.peek() == '}' { // tolerated trailing comma
			break
		}
	}
	p.skipWS()
	if p.peek() != '}' {
		p.c.Free(v)
		return nil, errorf.T("expected '}' at offset %d", p.pos)
	}
	p.pos++
	return v, nil
}

func (p *parser) parseArray(depth int) (*Value, error) {
	v := p.c.NewArray()
	a := v.arr
	p.pos++ // '['
	p.skipWS()
	if p.peek() == ']' {
		p.pos++
		return v, nil
	}
	for p.pos < len(p.buf) {
		child, err := p.parseValue(depth + 1)
		if err != nil {
			p.c.Free(v)
			return nil, err
		}
		if err = a.Append(child); err != nil {
			p.c.Free(child)
			p.c.Free(v)
			return nil, err
		}
		p.skipWS()
		if p.peek() != ',' {
			break
		}
		p.pos++
		p.skipWS()
		if p.peek() == ']' { // tolerated trailing comma
			break
		}
	}
	p.skipWS()
	if p.peek() != ']' {
		p.c.Free(v)
		return nil, errorf.T("expected ']' at offset %d", p.pos)
	}
	p.pos++
	a.resize(a.count) // no retained slack after parsing
	return v, nil
}

func (p *parser) parseBool() (*Value, error) {
	switch {
	case bytes.HasPrefix(p.buf[p.pos:], []byte("true")):
		p.pos += 4
		return &Value{kind: KindBool, boolean: true}, nil
	case bytes.HasPrefix(p.buf[p.pos:], []byte("false")):
		p.pos += 5
		return &Value{kind: KindBool, boolean: false}, nil
	}
	return nil, errorf.T("invalid literal at offset %d", p.pos)
}

func (p *parser) parseNull() (*Value, error) {
	if !bytes.HasPrefix(p.buf[p.pos:], []byte("null")) {
		return nil, errorf.T("invalid literal at offset %d", p.pos)
	}
	p.pos += 4
	return &Value{kind: KindNull}, nil
}

// parseNumber scans the numeric span, re-validates it against JSON
// literal policy (no hex, no bare leading zero), and converts it with
// the standard float scanner. Overflow to infinity is rejected;
// underflow keeps the rounded value.
func (p *parser) parseNumber() (*Value, error) {
	i := p.pos
scan:
	for i < len(p.buf) {
		switch c := p.buf[i]; {
		case c >= '0' && c <= '9',
			c == '-', c == '+', c == '.',
			c == 'e', c == 'E', c == 'x', c == 'X':
			i++
		default:
			break scan
		}
	}
	span := p.buf[p.pos:i]
	if !text.IsDecimal(span) {
		return nil, errorf.T("invalid number literal %q", span)
	}
	n, err := strconv.ParseFloat(string(span), 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && !math.IsInf(n, 0)) {
		return nil, errorf.T("invalid number literal %q", span)
	}
	p.pos = i
	return &Value{kind: KindNumber, num: n}, nil
}
