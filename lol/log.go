// Package lol (log of location) prints leveled log lines with a high
// precision timestamp and the source location of the print site, which
// makes tracing a failing parse or a misbehaving caller much simpler.
// Levels above the configured threshold are filtered out.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{"off", "fatal", "error", "warn", "info", "debug", "trace"}

type (
	// Ln prints a list of values separated by spaces.
	Ln func(a ...any)
	// F prints with a format string.
	F func(format string, a ...any)
	// S prints a spew.Sdump of the values, for dumping tree structures.
	S func(a ...any)
	// Chk prints the error if it is not nil and reports whether it was.
	Chk func(e error) bool
	// Err constructs an error with fmt.Errorf, logs it at the site, and
	// returns it.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of printers available at one log level.
	LevelPrinter struct {
		Ln  Ln
		F   F
		S   S
		Chk Chk
		Err Err
	}

	// LevelSpec is the name and colorizer for one level.
	LevelSpec struct {
		Name      string
		Colorizer func(a ...any) string
	}
)

var LevelSpecs = []LevelSpec{
	{"", func(...any) string { return "" }},
	{"FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
	{"ERR", color.New(color.FgHiRed).Sprint},
	{"WRN", color.New(color.FgHiYellow).Sprint},
	{"INF", color.New(color.FgHiGreen).Sprint},
	{"DBG", color.New(color.FgHiBlue).Sprint},
	{"TRC", color.New(color.FgHiMagenta).Sprint},
}

// Log is a full set of level printers.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the Chk shorthand of each level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf is the Err shorthand of each level.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger bundles the three views of one output writer.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Level gates printing; lines above it are dropped.
var Level atomic.Int32

// Main is the package-wide logger, writing to stderr.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	SetLogLevel("info")
}

// SetLogLevel sets the threshold by name; unknown names select info.
func SetLogLevel(level string) {
	Level.Store(int32(GetLogLevel(level)))
}

// GetLogLevel returns the level number for a name, info for unknown names.
func GetLogLevel(level string) int {
	for i := range LevelNames {
		if level == LevelNames[i] {
			return i
		}
	}
	return Info
}

var msgCol = color.New(color.FgBlue).Sprint

func timestamp() string {
	return time.Now().Format("2006-01-02T15:04:05.000Z07:00 ")
}

// GetLoc returns the code location of the caller at the given skip depth.
func GetLoc(skip int) string {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}

func emit(w io.Writer, l int32, text string) {
	fmt.Fprintf(w, "%s%s %s %s\n",
		msgCol(timestamp()), LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		text, msgCol(GetLoc(3)))
}

// GetPrinter returns the printer set for one level on a writer.
func GetPrinter(l int32, w io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...any) {
			if Level.Load() >= l {
				emit(w, l, fmt.Sprint(a...))
			}
		},
		F: func(format string, a ...any) {
			if Level.Load() >= l {
				emit(w, l, fmt.Sprintf(format, a...))
			}
		},
		S: func(a ...any) {
			if Level.Load() >= l {
				emit(w, l, spew.Sdump(a...))
			}
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if Level.Load() >= l {
				emit(w, l, e.Error())
			}
			return true
		},
		Err: func(format string, a ...any) error {
			if Level.Load() >= l {
				emit(w, l, fmt.Sprintf(format, a...))
			}
			return fmt.Errorf(format, a...)
		},
	}
}

// New creates the three shorthand views over one writer.
func New(w io.Writer) (l *Log, c *Check, e *Errorf) {
	l = &Log{
		F: GetPrinter(Fatal, w),
		E: GetPrinter(Error, w),
		W: GetPrinter(Warn, w),
		I: GetPrinter(Info, w),
		D: GetPrinter(Debug, w),
		T: GetPrinter(Trace, w),
	}
	c = &Check{F: l.F.Chk, E: l.E.Chk, W: l.W.Chk, I: l.I.Chk, D: l.D.Chk, T: l.T.Chk}
	e = &Errorf{F: l.F.Err, E: l.E.Err, W: l.W.Err, I: l.I.Err, D: l.D.Err, T: l.T.Err}
	return
}
