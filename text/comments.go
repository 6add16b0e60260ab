package text

import (
	"bytes"
)

// blank overwrites every span from startTok to endTok (inclusive) with
// spaces, skipping spans that begin inside a string literal. Quote state
// tracks backslash escapes so an escaped quote does not flip it. An
// unterminated span is left as it is past the start token; the parser
// rejects the leftovers.
func blank(b []byte, startTok, endTok string) {
	var inString, escaped bool
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == '\\' && !escaped {
			escaped = true
			continue
		}
		if c == '"' && !escaped {
			inString = !inString
		} else if !inString && bytes.HasPrefix(b[i:], []byte(startTok)) {
			end := bytes.Index(b[i+len(startTok):], []byte(endTok))
			if end < 0 {
				return
			}
			span := len(startTok) + end + len(endTok)
			for j := 0; j < span; j++ {
				b[i+j] = ' '
			}
			i += span - 1
		}
		escaped = false
	}
}

// StripComments blanks C-style block and line comments in place so the
// strict parser can run over the result. Positions of everything outside
// comments are preserved.
func StripComments(b []byte) {
	blank(b, "/*", "*/")
	blank(b, "//", "\n")
}
