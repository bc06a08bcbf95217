package bfvm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type VM struct {
	Program *Program
	Tape    *Tape
	PC      int
	Steps   int

	input         io.ByteReader
	output        output
	newlineAsZero bool
}

func NewVM(program *Program, input io.Reader, w io.Writer, options *Options) *VM {
	if options == nil {
		options = new(Options)
	}
	capacity := options.TapeCapacity
	if capacity == 0 {
		capacity = DefaultTapeCapacity
	}
	if input == nil {
		input = strings.NewReader("")
	}
	byteReader, ok := input.(io.ByteReader)
	if !ok {
		byteReader = bufio.NewReader(input)
	}
	if w == nil {
		w = io.Discard
	}
	return &VM{
		Program:       program,
		Tape:          NewTape(capacity),
		input:         byteReader,
		output:        newOutput(w, options.UTF8Output),
		newlineAsZero: options.NewlineAsZero,
	}
}

// Step executes the instruction at PC. It reports false once PC is past the end.
func (v *VM) Step() (bool, error) {
	if v.PC >= v.Program.Len() {
		return false, nil
	}

	switch v.Program.At(v.PC) {

	case OpRight:
		v.Tape.MoveRight()

	case OpLeft:
		v.Tape.MoveLeft()

	case OpInc:
		v.Tape.Increment()

	case OpDec:
		v.Tape.Decrement()

	case OpOutput:
		if err := v.output.WriteByte(v.Tape.Current()); err != nil {
			return false, fmt.Errorf("write output: %w", err)
		}

	case OpInput:
		// prompts must be visible before blocking on input
		if err := v.output.Flush(); err != nil {
			return false, fmt.Errorf("write output: %w", err)
		}
		b, err := v.input.ReadByte()
		if err != nil {
			// end of input, or any read failure, stores zero
			b = 0
		} else if b == '\n' && v.newlineAsZero {
			b = 0
		}
		v.Tape.Set(b)

	case OpBegin:
		if v.Tape.Current() == 0 {
			end, err := v.Program.Match(v.PC)
			if err != nil {
				return false, err
			}
			v.PC = end
		}

	case OpEnd:
		if v.Tape.Current() != 0 {
			begin, err := v.Program.Match(v.PC)
			if err != nil {
				return false, err
			}
			v.PC = begin
		}

	}

	v.PC++
	v.Steps++
	return true, nil
}

const checkContextInterval = 4096

// Run executes until the program counter passes the end of the program.
// Pending output is flushed before returning.
func (v *VM) Run(ctx context.Context) (err error) {
	defer func() {
		if e := v.output.Flush(); e != nil && err == nil {
			err = fmt.Errorf("write output: %w", e)
		}
	}()
	for n := 0; ; n++ {
		if n%checkContextInterval == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		ok, err := v.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Run compiles source and executes it against a fresh tape.
func Run(ctx context.Context, source string, input io.Reader, output io.Writer, options *Options) error {
	program, err := NewProgram(source)
	if err != nil {
		return err
	}
	vm := NewVM(program, input, output, options)
	if options != nil && options.Logger != nil {
		logger := options.Logger
		logger.DebugContext(ctx, "run", "length", program.Len())
		defer func() {
			logger.DebugContext(ctx, "run end", "steps", vm.Steps, "pos", vm.Tape.Pos())
		}()
	}
	return vm.Run(ctx)
}
