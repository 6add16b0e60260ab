package text

import (
	"jot.dev/errorf"
)

func isCont(b byte) bool { return b&0xC0 == 0x80 }

// SequenceLen returns the expected byte length of a UTF-8 sequence from
// its lead byte, or 0 if the lead byte can never start a valid sequence.
func SequenceLen(c byte) int {
	switch {
	case c == 0xC0 || c == 0xC1 || c > 0xF4 || isCont(c):
		return 0
	case c&0x80 == 0:
		return 1
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// VerifySequence decodes one UTF-8 sequence at the start of b, rejecting
// truncated sequences, overlong encodings, code points above U+10FFFF and
// surrogate halves appearing directly in the byte stream. It returns the
// code point and the number of bytes consumed.
func VerifySequence(b []byte) (cp rune, n int, err error) {
	n = SequenceLen(b[0])
	switch {
	case n == 1:
		cp = rune(b[0])
	case n == 2 && len(b) >= 2 && isCont(b[1]):
		cp = rune(b[0]&0x1F)<<6 | rune(b[1]&0x3F)
	case n == 3 && len(b) >= 3 && isCont(b[1]) && isCont(b[2]):
		cp = rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
	case n == 4 && len(b) >= 4 && isCont(b[1]) && isCont(b[2]) && isCont(b[3]):
		cp = rune(b[0]&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 |
			rune(b[3]&0x3F)
	default:
		return 0, 0, errorf.T("malformed utf-8 sequence")
	}
	// overlong encodings
	if (cp < 0x80 && n > 1) || (cp < 0x800 && n > 2) || (cp < 0x10000 && n > 3) {
		return 0, 0, errorf.T("overlong utf-8 encoding")
	}
	if cp > 0x10FFFF {
		return 0, 0, errorf.T("code point beyond U+10FFFF")
	}
	// surrogate halves are only expressible through \u escape pairs
	if cp >= 0xD800 && cp <= 0xDFFF {
		return 0, 0, errorf.T("surrogate half in utf-8 stream")
	}
	return cp, n, nil
}

// ValidUTF8 reports whether b is entirely well formed UTF-8 under the
// same policy as VerifySequence.
func ValidUTF8(b []byte) bool {
	for i := 0; i < len(b); {
		_, n, err := VerifySequence(b[i:])
		if err != nil {
			return false
		}
		i += n
	}
	return true
}
