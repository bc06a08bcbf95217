package bfvm

const (
	OpRight  = '>'
	OpLeft   = '<'
	OpInc    = '+'
	OpDec    = '-'
	OpOutput = '.'
	OpInput  = ','
	OpBegin  = '['
	OpEnd    = ']'
)

// Program is an immutable source with its bracket pairs resolved.
type Program struct {
	code  []byte
	jumps []int
}

func NewProgram(source string) (*Program, error) {
	code := []byte(source)
	jumps := make([]int, len(code))
	var stack []int
	for i, c := range code {
		jumps[i] = -1
		switch c {
		case OpBegin:
			stack = append(stack, i)
		case OpEnd:
			if len(stack) == 0 {
				return nil, &UnmatchedBracketError{
					Pos:     i,
					Bracket: OpEnd,
				}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}
	if len(stack) > 0 {
		return nil, &UnmatchedBracketError{
			Pos:     stack[len(stack)-1],
			Bracket: OpBegin,
		}
	}
	return &Program{
		code:  code,
		jumps: jumps,
	}, nil
}

func (p *Program) Len() int {
	return len(p.code)
}

func (p *Program) At(pc int) byte {
	return p.code[pc]
}

// Match returns the position of the bracket paired with the one at pc.
func (p *Program) Match(pc int) (int, error) {
	if pc < 0 || pc >= len(p.code) || p.jumps[pc] < 0 {
		var c byte
		if pc >= 0 && pc < len(p.code) {
			c = p.code[pc]
		}
		return 0, &UnmatchedBracketError{
			Pos:     pc,
			Bracket: c,
		}
	}
	return p.jumps[pc], nil
}

// ScanMatch finds the partner of the bracket at pc by counting nesting depth,
// forward from '[' or backward from ']'.
func ScanMatch(code []byte, pc int) (int, error) {
	if pc < 0 || pc >= len(code) {
		return 0, &UnmatchedBracketError{
			Pos: pc,
		}
	}
	c := code[pc]
	var step int
	var same, opposite byte
	switch c {
	case OpBegin:
		step, same, opposite = 1, OpBegin, OpEnd
	case OpEnd:
		step, same, opposite = -1, OpEnd, OpBegin
	default:
		return 0, &UnmatchedBracketError{
			Pos:     pc,
			Bracket: c,
		}
	}
	depth := 1
	for i := pc + step; i >= 0 && i < len(code); i += step {
		switch code[i] {
		case same:
			depth++
		case opposite:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, &UnmatchedBracketError{
		Pos:     pc,
		Bracket: c,
	}
}
