// Command aoc2019 runs an Advent of Code 2019 solution.
//
// Usage:
//
//	aoc2019 [-debug] <day> <input-file>
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/maisem/aoc2019"
	"github.com/maisem/aoc2019/day1"
)

var flagDebug = flag.Bool("debug", false, "debug logging")

var days = aoc.Registry{
	"day1": day1.Runner{},
}

func main() {
	flag.Parse()
	slog.SetDefault(aoc.NewLogger(os.Stderr, *flagDebug))
	os.Exit(aoc.Main(flag.Args(), os.Stdout, os.Stderr, days))
}
