package text

import (
	"unicode/utf8"

	"jot.dev/alloc"
	"jot.dev/errorf"
)

// Unescape copies the raw contents of a JSON string literal (the bytes
// between the quotes) into a freshly allocated buffer with all escape
// sequences decoded. Decoded output is never longer than the input, so a
// single worst-case buffer is filled and then shrunk to exact size with a
// second allocation. Raw control bytes below 0x20 are rejected, as is any
// malformed UTF-8 sequence.
func Unescape(al *alloc.A, in []byte) (out []byte, err error) {
	buf := al.Bytes(len(in))
	if buf == nil {
		return nil, errorf.E("allocation of %d bytes failed", len(in))
	}
	w := 0
	for r := 0; r < len(in); {
		c := in[r]
		switch {
		case c == '\\':
			r++
			if r >= len(in) {
				al.Free(buf)
				return nil, errorf.T("dangling backslash")
			}
			switch in[r] {
			case '"':
				buf[w] = '"'
				w++
			case '\\':
				buf[w] = '\\'
				w++
			case '/':
				buf[w] = '/'
				w++
			case 'b':
				buf[w] = '\b'
				w++
			case 'f':
				buf[w] = '\f'
				w++
			case 'n':
				buf[w] = '\n'
				w++
			case 'r':
				buf[w] = '\r'
				w++
			case 't':
				buf[w] = '\t'
				w++
			case 'u':
				cp, n, e := DecodeUnicodeEscape(in[r+1:])
				if e != nil {
					al.Free(buf)
					return nil, e
				}
				w += utf8.EncodeRune(buf[w:], cp)
				r += n
			default:
				al.Free(buf)
				return nil, errorf.T("invalid escape '\\%c'", in[r])
			}
			r++
		case c < 0x20:
			al.Free(buf)
			return nil, errorf.T("raw control byte 0x%02x in string", c)
		case c < 0x80:
			buf[w] = c
			w++
			r++
		default:
			_, n, e := VerifySequence(in[r:])
			if e != nil {
				al.Free(buf)
				return nil, e
			}
			copy(buf[w:], in[r:r+n])
			w += n
			r += n
		}
	}
	out = al.Dup(buf[:w])
	al.Free(buf)
	if out == nil {
		return nil, errorf.E("allocation of %d bytes failed", w)
	}
	return out, nil
}
