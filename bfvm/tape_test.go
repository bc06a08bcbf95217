package bfvm

import "testing"

func TestTapeWraparound(t *testing.T) {
	tape := NewTape(0)
	for range 256 {
		tape.Increment()
	}
	if v := tape.Current(); v != 0 {
		t.Fatalf("got %v", v)
	}
	tape.Decrement()
	if v := tape.Current(); v != 255 {
		t.Fatalf("got %v", v)
	}
	tape.Increment()
	if v := tape.Current(); v != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestTapeIncDecRoundTrip(t *testing.T) {
	tape := NewTape(DefaultTapeCapacity)
	for i := range 256 {
		tape.Set(byte(i))
		tape.Increment()
		tape.Decrement()
		if v := tape.Current(); v != byte(i) {
			t.Fatalf("%d: got %v", i, v)
		}
	}
}

func TestTapeUnbounded(t *testing.T) {
	for _, capacity := range []int{0, 1, DefaultTapeCapacity} {
		tape := NewTape(capacity)
		tape.Set(42)
		const n = 100000

		for range n {
			tape.MoveLeft()
		}
		if tape.Pos() != -n {
			t.Fatalf("got %v", tape.Pos())
		}
		if v := tape.Current(); v != 0 {
			t.Fatalf("got %v", v)
		}
		tape.Set(7)
		for range 2 * n {
			tape.MoveRight()
		}
		if v := tape.Current(); v != 0 {
			t.Fatalf("got %v", v)
		}
		tape.Increment()
		for range n {
			tape.MoveLeft()
		}
		if tape.Pos() != 0 {
			t.Fatalf("got %v", tape.Pos())
		}
		if v := tape.Current(); v != 42 {
			t.Fatalf("got %v", v)
		}

		// negative positions do not alias non-negative ones
		for range n {
			tape.MoveLeft()
		}
		if v := tape.Current(); v != 7 {
			t.Fatalf("got %v", v)
		}
		for range 2 * n {
			tape.MoveRight()
		}
		if v := tape.Current(); v != 1 {
			t.Fatalf("got %v", v)
		}
	}
}

func TestTapeNegativeCells(t *testing.T) {
	tape := NewTape(0)
	tape.MoveLeft()
	tape.Decrement()
	if v := tape.Current(); v != 255 {
		t.Fatalf("got %v", v)
	}
	tape.MoveRight()
	if v := tape.Current(); v != 0 {
		t.Fatalf("got %v", v)
	}
	tape.MoveLeft()
	tape.MoveLeft()
	if v := tape.Current(); v != 0 {
		t.Fatalf("got %v", v)
	}
}
