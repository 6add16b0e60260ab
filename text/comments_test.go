package text

import "testing"

func TestStripComments(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		// the end token is blanked along with the comment
		{"// gone\n1", "        1"},
		{"1 /* gone */ 2", "1            2"},
		{"/* a */\n// b\n", "       \n     "},
		// comment syntax inside string literals is untouched
		{`"keep // this"`, `"keep // this"`},
		{`"and /* this */"`, `"and /* this */"`},
		{`"esc \" // quote"`, `"esc \" // quote"`},
		// unterminated spans stay; the parser rejects them later
		{"x /* unterminated", "x /* unterminated"},
		{"y // no newline", "y // no newline"},
		{"/*a*/\"s\"//b\n/*/", "     \"s\"    /*/"},
	} {
		b := []byte(tc.in)
		StripComments(b)
		if string(b) != tc.want {
			t.Fatalf("StripComments(%q) = %q, want %q", tc.in, b, tc.want)
		}
	}
}
