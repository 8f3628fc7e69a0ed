package aoc

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/maps"
)

// Exit codes returned by Main.
const (
	ExitOK     = 0
	ExitNoDay  = 1
	ExitBadDay = 2
)

var errorColor = color.New(color.FgRed)

// Runner is a named puzzle routine. It validates its own args and writes
// its answer to w.
type Runner interface {
	Run(w io.Writer, args []string) error
}

// RunnerFunc adapts a func to a Runner.
type RunnerFunc func(w io.Writer, args []string) error

func (f RunnerFunc) Run(w io.Writer, args []string) error {
	return f(w, args)
}

// Registry maps routine names (e.g. "day1") to their Runner.
type Registry map[string]Runner

// Names returns the registered routine names, sorted.
func (r Registry) Names() []string {
	names := maps.Keys(r)
	slices.Sort(names)
	return names
}

// Main runs the routine named by args[0] with the remaining args and
// returns the process exit code.
//
// A missing or unknown routine name is reported on stderr with ExitNoDay
// or ExitBadDay. Errors from the routine itself are printed to stdout and
// do not change the exit code.
func Main(args []string, stdout, stderr io.Writer, reg Registry) int {
	if len(args) == 0 {
		errorColor.Fprintln(stderr, `Please provide at least the name of the day to run, i.e. "day1".`)
		return ExitNoDay
	}
	name, dayArgs := args[0], args[1:]
	r, ok := reg[name]
	if !ok {
		errorColor.Fprintf(stderr, "Not a valid day: %s (known: %s)\n", name, strings.Join(reg.Names(), ", "))
		return ExitBadDay
	}
	slog.Debug("running", "day", name, "args", dayArgs)
	if err := r.Run(stdout, dayArgs); err != nil {
		slog.Debug("run failed", "day", name, "kind", KindOf(err), "err", err)
		fmt.Fprintln(stdout, err)
	}
	return ExitOK
}

// NewLogger returns a text logger writing to w. Only warnings and errors
// are logged unless debug is set.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
