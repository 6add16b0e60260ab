package text

import (
	"github.com/templexxx/xhex"

	"jot.dev/errorf"
)

// DecodeHex4 decodes exactly four hex digits into a 16 bit value.
func DecodeHex4(b []byte) (u uint32, err error) {
	if len(b) < 4 {
		return 0, errorf.T("truncated \\u escape")
	}
	var pair [2]byte
	if err = xhex.Decode(pair[:], b[:4]); err != nil {
		return 0, errorf.T("invalid hex in \\u escape")
	}
	return uint32(pair[0])<<8 | uint32(pair[1]), nil
}

// DecodeUnicodeEscape decodes the hex payload of a \u escape starting at
// b[0] (the first hex digit). A lead surrogate must be immediately
// followed by a complete `\uXXXX` trail surrogate; the two combine into
// one code point above U+FFFF. A lone or misordered surrogate is an
// error. Returns the code point and the number of input bytes consumed
// (4 for a plain escape, 10 for a pair).
func DecodeUnicodeEscape(b []byte) (cp rune, n int, err error) {
	var u uint32
	if u, err = DecodeHex4(b); err != nil {
		return 0, 0, err
	}
	switch {
	case u < 0xD800 || u > 0xDFFF:
		return rune(u), 4, nil
	case u <= 0xDBFF: // lead surrogate, trail must follow
		if len(b) < 10 || b[4] != '\\' || b[5] != 'u' {
			return 0, 0, errorf.T("unpaired lead surrogate")
		}
		var trail uint32
		if trail, err = DecodeHex4(b[6:]); err != nil {
			return 0, 0, err
		}
		if trail < 0xDC00 || trail > 0xDFFF {
			return 0, 0, errorf.T("invalid trail surrogate %04x", trail)
		}
		cp = rune((u-0xD800)<<10|(trail-0xDC00)) + 0x10000
		return cp, 10, nil
	default: // trail surrogate with no lead
		return 0, 0, errorf.T("trail surrogate before lead surrogate")
	}
}
