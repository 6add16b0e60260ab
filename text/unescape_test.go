package text

import (
	"fmt"
	"strings"
	"testing"

	"lukechampine.com/frand"

	"jot.dev/alloc"
)

func TestUnescapeVectors(t *testing.T) {
	al := alloc.Heap()
	for _, tc := range []struct{ in, want string }{
		{``, ""},
		{`plain`, "plain"},
		{`a\"b`, `a"b`},
		{`a\\b`, `a\b`},
		{`a\/b`, "a/b"},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`A`, "A"},
		{`é`, "é"},
		{`€`, "€"},
		{`😀`, "\U0001F600"},
		{`mixed 1\n end`, "mixed 1\n end"},
		{"caf\xc3\xa9", "café"},
	} {
		out, err := Unescape(al, []byte(tc.in))
		if err != nil {
			t.Fatalf("Unescape(%q): %v", tc.in, err)
		}
		if string(out) != tc.want {
			t.Fatalf("Unescape(%q) = %q, want %q", tc.in, out, tc.want)
		}
		al.Free(out)
	}
}

func TestUnescapeRejects(t *testing.T) {
	al := alloc.Heap()
	for _, in := range []string{
		`trailing\`,
		`\q`,
		`\u12`,     // truncated hex
		`\uZZZZ`,   // not hex
		`\ud800`,   // lone high surrogate
		`\ude00`,   // lone low surrogate
		`\ud800\n`, // high surrogate followed by the wrong escape
		`\ud800A`,  // high surrogate not followed by a low one
		"raw\x01ctl",
		"bad\xffutf8",
		"cut\xe2\x82", // truncated multi-byte sequence
		"over\xc0\xaflong",
	} {
		if out, err := Unescape(al, []byte(in)); err == nil {
			t.Fatalf("Unescape(%q) accepted: %q", in, out)
		}
	}
}

// Escape-free printable input must come back byte for byte, whatever
// random shape it takes.
func TestUnescapePassThrough(t *testing.T) {
	al := alloc.Heap()
	runes := []rune("abcdefghij KLMNOP 0123456789 éüñ €漢😀")
	for i := 0; i < 1000; i++ {
		var sb strings.Builder
		for n := frand.Intn(64); n > 0; n-- {
			sb.WriteRune(runes[frand.Intn(len(runes))])
		}
		in := sb.String()
		out, err := Unescape(al, []byte(in))
		if err != nil {
			t.Fatalf("Unescape(%q): %v", in, err)
		}
		if string(out) != in {
			t.Fatalf("Unescape(%q) = %q", in, out)
		}
		al.Free(out)
	}
}

// Every code point escaped as \uXXXX (or a surrogate pair) must decode
// back to itself.
func TestUnescapeRandomCodePoints(t *testing.T) {
	al := alloc.Heap()
	for i := 0; i < 2000; i++ {
		cp := rune(frand.Intn(0x10FFFF + 1))
		if cp >= 0xD800 && cp <= 0xDFFF {
			continue
		}
		var in string
		if cp <= 0xFFFF {
			in = fmt.Sprintf(`\u%04x`, cp)
		} else {
			u := cp - 0x10000
			in = fmt.Sprintf(`\u%04x\u%04x`, 0xD800+(u>>10), 0xDC00+(u&0x3FF))
		}
		out, err := Unescape(al, []byte(in))
		if err != nil {
			t.Fatalf("Unescape(%q): %v", in, err)
		}
		if string(out) != string(cp) {
			t.Fatalf("Unescape(%q) = %q, want %q", in, out, string(cp))
		}
		al.Free(out)
	}
}
