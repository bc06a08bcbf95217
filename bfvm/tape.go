package bfvm

// Tape is an unbounded sequence of byte cells addressed by a signed position.
// Cells at non-negative positions live in pos, cell -1-i lives in neg[i].
type Tape struct {
	pos   []byte
	neg   []byte
	point int
}

const DefaultTapeCapacity = 3000

func NewTape(capacity int) *Tape {
	if capacity < 0 {
		capacity = 0
	}
	return &Tape{
		pos: make([]byte, 0, capacity),
	}
}

func (t *Tape) Pos() int {
	return t.point
}

func (t *Tape) Current() byte {
	if t.point >= 0 {
		if t.point < len(t.pos) {
			return t.pos[t.point]
		}
		return 0
	}
	i := -1 - t.point
	if i < len(t.neg) {
		return t.neg[i]
	}
	return 0
}

// cell returns the addressed cell, growing the backing slice as needed.
func (t *Tape) cell() *byte {
	if t.point >= 0 {
		if t.point >= len(t.pos) {
			t.pos = grow(t.pos, t.point+1)
		}
		return &t.pos[t.point]
	}
	i := -1 - t.point
	if i >= len(t.neg) {
		t.neg = grow(t.neg, i+1)
	}
	return &t.neg[i]
}

func grow(s []byte, n int) []byte {
	if n <= cap(s) {
		return s[:n]
	}
	newCap := cap(s) * 2
	if newCap < n {
		newCap = n
	}
	if newCap < 8 {
		newCap = 8
	}
	ret := make([]byte, n, newCap)
	copy(ret, s)
	return ret
}

func (t *Tape) Set(b byte) {
	*t.cell() = b
}

func (t *Tape) Increment() {
	*t.cell()++
}

func (t *Tape) Decrement() {
	*t.cell()--
}

func (t *Tape) MoveRight() {
	t.point++
}

func (t *Tape) MoveLeft() {
	t.point--
}
