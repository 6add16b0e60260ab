// Package chk is a convenience shortcut to the error-check printers of
// lol.Main, so call sites read `if chk.E(err) { return }`.
package chk

import (
	"jot.dev/lol"
)

var F, E, W, I, D, T lol.Chk

func init() {
	F, E, W, I, D, T = lol.Main.Check.F, lol.Main.Check.E, lol.Main.Check.W,
		lol.Main.Check.I, lol.Main.Check.D, lol.Main.Check.T
}
