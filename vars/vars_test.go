package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true": true,
		"Y":    true,
		" on ": true,
		"1":    true,
		"no":   false,
		"":     false,
		"foo":  false,
	} {
		if got := StrToBool(str); got != want {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero(0, 0, 3, 4); got != 3 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero[string](); got != "" {
		t.Fatalf("got %q", got)
	}
}
