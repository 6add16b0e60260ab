package jot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	c := Default()
	for in, k := range map[string]Kind{
		"true":    KindBool,
		"false":   KindBool,
		"null":    KindNull,
		"42":      KindNumber,
		"-0.5":    KindNumber,
		"1e-999":  KindNumber, // underflows to zero, still a number
		`"hi"`:    KindString,
		" {} ":    KindObject,
		"\t[]\n":  KindArray,
		"\v1.5\f": KindNumber,
	} {
		v, err := c.ParseString(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, k, v.Kind(), "input %q", in)
		c.Free(v)
	}
}

func TestParseRejects(t *testing.T) {
	c := Default()
	for _, in := range []string{
		"",
		"   ",
		"tru",
		"truee",
		"nul",
		"01",
		"-01",
		"0x1A",
		"1e400",  // overflows to infinity
		"-1e309", // likewise
		"-",
		"+1",
		".5",
		"[1,2",
		`{"a":1`,
		`{"a" 1}`,
		`{a:1}`,
		`{"a":}`,
		"[,1]",
		"[1,,2]",
		`{"a":1,"a":2}`, // duplicate key
		"{\"a\x00b\":1}",
		`"unterminated`,
		`"bad \q escape"`,
		`"lone \ud800 surrogate"`,
		`"\udc00\ud800"`, // reversed pair
		"\"raw \x01 control\"",
		"\"truncated \xe2\x82\"", // cut-off UTF-8 sequence
		"{} trailing",
		"1 2",
		`[1] []`,
	} {
		v, err := c.ParseString(in)
		require.Error(t, err, "input %q parsed", in)
		require.Nil(t, v, "input %q returned a value with an error", in)
	}
}

func TestParseTrailingCommas(t *testing.T) {
	c := Default()
	v, err := c.ParseString(`{"a":[1,2,],}`)
	require.NoError(t, err)
	a := v.Object().GetArray("a")
	require.Equal(t, 2, a.Len())
	c.Free(v)

	// a comma must still separate real elements
	_, err = c.ParseString("[,]")
	require.Error(t, err)
	_, err = c.ParseString("{,}")
	require.Error(t, err)
}

func TestParseStringEscapes(t *testing.T) {
	c := Default()
	v, err := c.ParseString(`"a\"b\\c\/d\be\ff\ng\rh\ti"`)
	require.NoError(t, err)
	require.Equal(t, "a\"b\\c/d\be\ff\ng\rh\ti", string(v.Text()))
	c.Free(v)

	v, err = c.ParseString(`"éA😀"`)
	require.NoError(t, err)
	require.Equal(t, "éA\U0001F600", string(v.Text()))
	c.Free(v)
}

func TestParseBOM(t *testing.T) {
	c := Default()
	v, err := c.Parse([]byte("\xEF\xBB\xBF{\"a\":1}"))
	require.NoError(t, err)
	require.Equal(t, float64(1), v.Object().GetNumber("a"))
	c.Free(v)
}

func TestParseNestingCeiling(t *testing.T) {
	c := Default()
	deep := strings.Repeat("[", 2048) + strings.Repeat("]", 2048)
	v, err := c.ParseString(deep)
	require.NoError(t, err)
	c.Free(v)

	tooDeep := strings.Repeat("[", 2049) + strings.Repeat("]", 2049)
	_, err = c.ParseString(tooDeep)
	require.Error(t, err)
}

func TestParseWithComments(t *testing.T) {
	c := Default()
	in := []byte(`{
	// the whole line goes
	"a": 1, /* and this span */ "b": 2,
	"url": "https://example.com/x", /* slashes in strings stay */
	"star": "not /* a comment */"
}`)
	v, err := c.ParseWithComments(in)
	require.NoError(t, err)
	o := v.Object()
	require.Equal(t, float64(1), o.GetNumber("a"))
	require.Equal(t, float64(2), o.GetNumber("b"))
	require.Equal(t, "https://example.com/x", string(o.GetText("url")))
	require.Equal(t, "not /* a comment */", string(o.GetText("star")))
	c.Free(v)

	// the strict entry point still refuses them
	_, err = c.Parse(in)
	require.Error(t, err)
}

func TestParseNumberValues(t *testing.T) {
	c := Default()
	for in, want := range map[string]float64{
		"0":        0,
		"-0":       0,
		"3.25":     3.25,
		"-12e2":    -1200,
		"1E+2":     100,
		"0.125e-1": 0.0125,
	} {
		v, err := c.ParseString(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, v.Number(), "input %q", in)
		c.Free(v)
	}
}
