package aoc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"tailscale.com/util/deephash"
)

// ErrInvalidUTF8 is wrapped by FromFile when the file is not valid text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Input is the raw text of a puzzle input, usually one value per line.
// It is immutable once created.
type Input struct {
	raw string
}

// FromString returns an Input wrapping text verbatim.
func FromString(text string) *Input {
	return &Input{raw: text}
}

// FromFile reads the whole file at path. Errors are of KindIO and wrap
// the underlying cause.
func FromFile(path string) (*Input, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(err)
	}
	if !utf8.Valid(b) {
		return nil, ioError(fmt.Errorf("%s: %w", path, ErrInvalidUTF8))
	}
	return FromString(string(b)), nil
}

// Raw returns the text as it was loaded.
func (in *Input) Raw() string {
	return in.raw
}

// Len returns the size of the input in bytes.
func (in *Input) Len() int {
	return len(in.raw)
}

func (in *Input) scanner() *bufio.Scanner {
	s := bufio.NewScanner(strings.NewReader(in.raw))
	// A line may be as long as the whole input.
	s.Buffer(make([]byte, 0, 4096), len(in.raw)+1)
	return s
}

// ForLines calls onLine for each line of input, stopping at the first
// error it returns. The y value is the row number, starting with 0.
//
// A trailing "\r" is dropped from each line and a final newline does not
// start another line.
func (in *Input) ForLines(onLine func(y int, line string) error) error {
	s := in.scanner()
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

// Lines returns the lines of the input, split as ForLines does.
func (in *Input) Lines() []string {
	var out []string
	in.ForLines(func(_ int, line string) error {
		out = append(out, line)
		return nil
	})
	return out
}

// Hash returns a fingerprint of the input text.
func (in *Input) Hash() deephash.Sum {
	return deephash.Hash(&in.raw)
}
