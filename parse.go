package aoc

import "strconv"

// LineParser converts a single line of input into a T.
type LineParser[T any] interface {
	// Name is what a failed conversion reports it was parsing into.
	Name() string
	ParseLine(line string) (T, error)
}

// ParserFunc is a LineParser built from a name and a conversion func.
type ParserFunc[T any] struct {
	Type string
	Func func(string) (T, error)
}

func (p ParserFunc[T]) Name() string { return p.Type }

func (p ParserFunc[T]) ParseLine(line string) (T, error) {
	return p.Func(line)
}

var (
	// Int32 parses base-10 signed 32-bit integers. Whitespace is not
	// trimmed.
	Int32 LineParser[int32] = ParserFunc[int32]{
		Type: "numbers",
		Func: func(s string) (int32, error) {
			v, err := strconv.ParseInt(s, 10, 32)
			return int32(v), err
		},
	}

	Int64 LineParser[int64] = ParserFunc[int64]{
		Type: "64-bit numbers",
		Func: func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		},
	}

	Int LineParser[int] = ParserFunc[int]{
		Type: "ints",
		Func: strconv.Atoi,
	}

	String LineParser[string] = ParserFunc[string]{
		Type: "strings",
		Func: func(s string) (string, error) { return s, nil },
	}
)

// Parse converts every line of in with p, in order. It returns the first
// conversion failure as a KindParse *Error and no values.
func Parse[T any](in *Input, p LineParser[T]) ([]T, error) {
	var out []T
	err := in.ForLines(func(y int, line string) error {
		v, err := p.ParseLine(line)
		if err != nil {
			return &Error{
				Kind:   KindParse,
				Target: p.Name(),
				Line:   y + 1,
				Text:   line,
				Err:    err,
			}
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseFile is FromFile followed by Parse.
func ParseFile[T any](path string, p LineParser[T]) ([]T, error) {
	in, err := FromFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(in, p)
}
