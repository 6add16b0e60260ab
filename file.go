package jot

import (
	"os"

	"jot.dev/chk"
)

// ParseFile loads an entire file and parses it strictly.
func (c *Codec) ParseFile(path string) (v *Value, err error) {
	var b []byte
	if b, err = os.ReadFile(path); chk.E(err) {
		return
	}
	return c.Parse(b)
}

// ParseFileWithComments loads an entire file, blanks comments, and
// parses it.
func (c *Codec) ParseFileWithComments(path string) (v *Value, err error) {
	var b []byte
	if b, err = os.ReadFile(path); chk.E(err) {
		return
	}
	return c.ParseWithComments(b)
}

// WriteFile serializes v compactly and writes it whole. The file is
// either replaced completely or the call fails; no partial document is
// ever observed through this interface.
func (c *Codec) WriteFile(v *Value, path string) error {
	return c.writeFile(v, path, false)
}

// WriteFilePretty is WriteFile with indented output.
func (c *Codec) WriteFilePretty(v *Value, path string) error {
	return c.writeFile(v, path, true)
}

func (c *Codec) writeFile(v *Value, path string, pretty bool) (err error) {
	var b []byte
	if b, err = c.render(v, pretty); err != nil {
		return
	}
	err = os.WriteFile(path, b, 0o644)
	c.Alloc.Free(b)
	if chk.E(err) {
		return
	}
	return nil
}
