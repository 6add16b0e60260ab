// Package errorf is a convenience shortcut to the error constructors of
// lol.Main; errorf.E builds an error, logs it at the site, and returns it.
package errorf

import (
	"jot.dev/lol"
)

var F, E, W, I, D, T lol.Err

func init() {
	F, E, W, I, D, T = lol.Main.Errorf.F, lol.Main.Errorf.E, lol.Main.Errorf.W,
		lol.Main.Errorf.I, lol.Main.Errorf.D, lol.Main.Errorf.T
}
