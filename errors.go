package aoc

import (
	"errors"
	"fmt"
)

// Kind is the discriminant of an Error.
type Kind int

const (
	KindOther Kind = iota
	KindIO
	KindParse
	KindUsage
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindUsage:
		return "usage"
	case KindOther:
		return "other"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error type returned by input loading, parsing and
// runners. Callers branch on Kind.
type Error struct {
	Kind Kind

	// Target is the name of the type a line was being parsed into.
	// Only set for KindParse.
	Target string
	// Line is the 1-based line number and Text its content.
	// Only set for KindParse.
	Line int
	Text string

	// Msg is the message for KindUsage and KindOther.
	Msg string
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		if e.Err == nil {
			return "io error"
		}
		return e.Err.Error()
	case KindParse:
		s := "failed to parse input list into a list of " + e.Target
		if e.Line > 0 {
			s += fmt.Sprintf(": line %d %q", e.Line, e.Text)
		}
		if e.Err != nil {
			s += ": " + e.Err.Error()
		}
		return s
	}
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of the first *Error in err's chain.
// Errors that are not an *Error are KindOther.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// UsageError returns a KindUsage error with the given message.
func UsageError(msg string) error {
	return &Error{Kind: KindUsage, Msg: msg}
}

// OtherError returns a KindOther error with the given message.
func OtherError(msg string) error {
	return &Error{Kind: KindOther, Msg: msg}
}

func ioError(err error) error {
	return &Error{Kind: KindIO, Err: err}
}
