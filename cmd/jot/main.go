// Command jot reads a JSON document, parses it strictly and re-emits
// it, compact by default or indented with -p. It exists both as a
// formatter and as the simplest possible end to end exercise of the
// library: comment blanking, the parser, the two pass serializer and
// the file boundary.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"go-simpler.org/env"

	jot "jot.dev"
	"jot.dev/chk"
	"jot.dev/lol"
)

type Config struct {
	Input      string `arg:"positional" help:"input file; - or absent reads stdin"`
	Output     string `arg:"-o,--output" env:"JOT_OUTPUT" help:"output file; absent writes stdout"`
	Pretty     bool   `arg:"-p,--pretty" env:"JOT_PRETTY" help:"indent output"`
	Comments   bool   `arg:"-k,--comments" env:"JOT_COMMENTS" help:"blank // and /* */ comments before parsing"`
	Check      bool   `arg:"-c,--check" help:"parse and report validity only, emit nothing"`
	RawSlashes bool   `arg:"--raw-slashes" env:"JOT_RAW_SLASHES" help:"do not escape / in output"`
	NumFormat  string `arg:"--number-format" env:"JOT_NUMBER_FORMAT" help:"fmt verb for numbers, eg %.10g"`
	LogLevel   string `arg:"--loglevel" env:"JOT_LOGLEVEL" default:"info" help:"off|fatal|error|warn|info|debug|trace"`
}

func (Config) Description() string {
	return "jot validates and reformats JSON documents"
}

func main() {
	var cfg Config
	if err := env.Load(&cfg, nil); chk.E(err) {
		os.Exit(1)
	}
	arg.MustParse(&cfg)
	lol.SetLogLevel(cfg.LogLevel)

	c := jot.Default()
	if cfg.RawSlashes {
		c.EscapeSlashes = false
	}
	if cfg.NumFormat != "" {
		c.FloatFormat = cfg.NumFormat
	}

	var in []byte
	var err error
	if cfg.Input == "" || cfg.Input == "-" {
		in, err = io.ReadAll(os.Stdin)
	} else {
		in, err = os.ReadFile(cfg.Input)
	}
	if chk.E(err) {
		os.Exit(1)
	}

	var v *jot.Value
	if cfg.Comments {
		v, err = c.ParseWithComments(in)
	} else {
		v, err = c.Parse(in)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
		os.Exit(1)
	}
	if cfg.Check {
		fmt.Println("valid")
		c.Free(v)
		return
	}

	var out []byte
	if cfg.Pretty {
		out, err = c.SerializePretty(v)
	} else {
		out, err = c.Serialize(v)
	}
	if chk.E(err) {
		c.Free(v)
		os.Exit(1)
	}
	if cfg.Output == "" {
		_, err = os.Stdout.Write(append(out, '\n'))
	} else {
		err = os.WriteFile(cfg.Output, out, 0o644)
	}
	c.Alloc.Free(out)
	c.Free(v)
	if chk.E(err) {
		os.Exit(1)
	}
}
