// Package day1 solves Advent of Code 2019 day 1, "The Tyranny of the
// Rocket Equation".
package day1

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/maisem/aoc2019"
	"golang.org/x/exp/constraints"
)

// Fuel returns the fuel needed to launch a module of the given mass:
// mass / 3, rounded down, minus 2. It may be negative for small masses.
func Fuel[T constraints.Signed](mass T) T {
	return mass/3 - 2
}

// BasicFuel is Fuel floored at zero. It ignores the mass of the fuel
// itself.
func BasicFuel[T constraints.Signed](mass T) T {
	return max(0, Fuel(mass))
}

// CompleteFuel is BasicFuel plus the fuel needed to carry that fuel,
// repeated until the extra fuel needed is zero.
func CompleteFuel[T constraints.Signed](mass T) T {
	var total T
	for f := BasicFuel(mass); f > 0; f = BasicFuel(f) {
		total += f
	}
	return total
}

// TotalBasicFuel returns the sum of BasicFuel over all masses.
func TotalBasicFuel[T constraints.Signed](masses []T) T {
	return aoc.Sum(aoc.Map(masses, BasicFuel[T])...)
}

// TotalCompleteFuel returns the sum of CompleteFuel over all masses.
func TotalCompleteFuel[T constraints.Signed](masses []T) T {
	return aoc.Fold(masses, func(sum, m T) T {
		return sum + CompleteFuel(m)
	}, 0)
}

// Runner is the "day1" routine. It takes the path of the input file,
// one module mass per line.
type Runner struct{}

func (Runner) Run(w io.Writer, args []string) error {
	switch {
	case len(args) < 1:
		return aoc.UsageError("Please provide the name of the file to load input from relative to the current working directory.")
	case len(args) > 1:
		return aoc.UsageError("Please provide only the name of the file to load input from relative to the current working directory.")
	}

	in, err := aoc.FromFile(args[0])
	if err != nil {
		return err
	}
	slog.Debug("loaded input", "path", args[0], "bytes", in.Len(), "hash", in.Hash())
	masses, err := aoc.Parse(in, aoc.Int32)
	if err != nil {
		return err
	}
	slog.Debug("parsed masses", "count", len(masses))

	fmt.Fprintf(w, "Basic fuel requirements for all %d modules: %d\n", len(masses), TotalBasicFuel(masses))
	fmt.Fprintf(w, "Complete fuel requirements for all %d modules: %d\n", len(masses), TotalCompleteFuel(masses))
	return nil
}
