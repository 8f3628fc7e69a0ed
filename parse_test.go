package aoc

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseInt32(t *testing.T) {
	tests := []struct {
		in   string
		want []int32
	}{
		{in: "123\n234\n345", want: []int32{123, 234, 345}},
		{in: strings.Join([]string{"12", "14", "1969", "100756"}, "\n"), want: []int32{12, 14, 1969, 100756}},
		{in: "-5\n+7\n", want: []int32{-5, 7}},
		{in: "", want: nil},
	}
	for _, tt := range tests {
		got, err := Parse(FromString(tt.in), Int32)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
		if len(got) != len(FromString(tt.in).Lines()) {
			t.Errorf("Parse(%q) returned %d values for %d lines", tt.in, len(got), len(FromString(tt.in).Lines()))
		}
	}
}

func TestParseFailure(t *testing.T) {
	tests := []struct {
		in       string
		wantLine int
		wantText string
	}{
		{in: "cat\ndog\nnotanumber", wantLine: 1, wantText: "cat"},
		{in: "1\n2\n\n3", wantLine: 3, wantText: ""},
		{in: "1\n 2", wantLine: 2, wantText: " 2"},
		{in: "1\n3000000000", wantLine: 2, wantText: "3000000000"},
	}
	for _, tt := range tests {
		got, err := Parse(FromString(tt.in), Int32)
		if got != nil {
			t.Errorf("Parse(%q) = %v, want no values", tt.in, got)
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("Parse(%q) err = %v, want *Error", tt.in, err)
		}
		if e.Kind != KindParse || e.Target != "numbers" || e.Line != tt.wantLine || e.Text != tt.wantText {
			t.Errorf("Parse(%q) err = %+v, want parse error at line %d %q", tt.in, e, tt.wantLine, tt.wantText)
		}
		if !strings.HasPrefix(err.Error(), "failed to parse input list into a list of numbers") {
			t.Errorf("Parse(%q) message = %q", tt.in, err)
		}
	}
}

func TestParseUnwrapsCause(t *testing.T) {
	_, err := Parse(FromString("x"), Int)
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("err = %v, want wrapping strconv.ErrSyntax", err)
	}
}

func TestParseCustom(t *testing.T) {
	words := ParserFunc[int]{
		Type: "word lengths",
		Func: func(s string) (int, error) {
			if s == "" {
				return 0, errors.New("empty")
			}
			return len(s), nil
		},
	}
	got, err := Parse(FromString("a\nbb\nccc"), words)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	_, err = Parse(FromString("a\n"+"\n"), words)
	if want := `failed to parse input list into a list of word lengths: line 2 "": empty`; err == nil || err.Error() != want {
		t.Errorf("err = %v, want %q", err, want)
	}
}

func TestParseStrings(t *testing.T) {
	got := MustGet(Parse(FromString("x\n\ny\n"), String))
	if diff := cmp.Diff([]string{"x", "", "y"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got64 := MustGet(Parse(FromString("9000000000"), Int64))
	if diff := cmp.Diff([]int64{9000000000}, got64); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in")
	if err := os.WriteFile(path, []byte("1\n2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ParseFile(path, Int)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := ParseFile(path+".missing", Int); KindOf(err) != KindIO {
		t.Errorf("missing file kind = %v, want io", KindOf(err))
	}
}
