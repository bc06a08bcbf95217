package bfvm

import (
	"errors"
	"testing"
)

func TestNewProgramUnmatched(t *testing.T) {
	for _, c := range []struct {
		src     string
		pos     int
		bracket byte
	}{
		{"[", 0, '['},
		{"]", 0, ']'},
		{"+[[]", 1, '['},
		{"[]]", 2, ']'},
		{"a]b[", 1, ']'},
		{"[[[]]", 0, '['},
	} {
		_, err := NewProgram(c.src)
		if !errors.Is(err, ErrUnmatchedBracket) {
			t.Fatalf("%q: got %v", c.src, err)
		}
		var bracketErr *UnmatchedBracketError
		if !errors.As(err, &bracketErr) {
			t.Fatalf("%q: got %T", c.src, err)
		}
		if bracketErr.Pos != c.pos || bracketErr.Bracket != c.bracket {
			t.Fatalf("%q: got %+v", c.src, bracketErr)
		}
	}
}

func TestMatchAgreesWithScan(t *testing.T) {
	for _, src := range []string{
		"",
		"[]",
		"+[>[-]<[>+<-]]x[y]",
		"[[[[]]]][][[]]",
		"a[b[c]d]e",
	} {
		program, err := NewProgram(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		code := []byte(src)
		for pc, c := range code {
			if c != OpBegin && c != OpEnd {
				if _, err := program.Match(pc); !errors.Is(err, ErrUnmatchedBracket) {
					t.Fatalf("%q %d: got %v", src, pc, err)
				}
				continue
			}
			want, err := ScanMatch(code, pc)
			if err != nil {
				t.Fatalf("%q %d: %v", src, pc, err)
			}
			got, err := program.Match(pc)
			if err != nil {
				t.Fatalf("%q %d: %v", src, pc, err)
			}
			if got != want {
				t.Fatalf("%q %d: got %d, want %d", src, pc, got, want)
			}
		}
	}
}

func TestScanMatchUnmatched(t *testing.T) {
	for _, c := range []struct {
		src string
		pc  int
	}{
		{"[", 0},
		{"]", 0},
		{"[[]", 0},
		{"[]]", 2},
		{"+", 0},
		{"+", 5},
	} {
		if _, err := ScanMatch([]byte(c.src), c.pc); !errors.Is(err, ErrUnmatchedBracket) {
			t.Fatalf("%q %d: got %v", c.src, c.pc, err)
		}
	}
}

func TestUnmatchedBracketErrorMessage(t *testing.T) {
	_, err := NewProgram("+[")
	if err.Error() != "unmatched '[' at position 1" {
		t.Fatalf("got %v", err)
	}
}
