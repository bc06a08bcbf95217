package bfstar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/bf/bfvm"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Globals are predeclared in scripts. The "bf" module exposes:
//
//	bf.run(source, input="")  -> bytes
//	bf.valid(source)          -> bool
type Globals starlark.StringDict

const contextKey = "context"

func (Module) Globals(
	options *bfvm.Options,
) Globals {
	return Globals{
		"bf": &starlarkstruct.Module{
			Name: "bf",
			Members: starlark.StringDict{
				"run":   starlark.NewBuiltin("run", runBuiltin(options)),
				"valid": starlark.NewBuiltin("valid", validBuiltin),
			},
		},
	}
}

type builtinFunc = func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

func runBuiltin(options *bfvm.Options) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var source string
		var input starlark.Value = starlark.String("")
		if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
			"source", &source,
			"input?", &input,
		); err != nil {
			return nil, err
		}

		var in string
		switch v := input.(type) {
		case starlark.String:
			in = string(v)
		case starlark.Bytes:
			in = string(v)
		default:
			return nil, fmt.Errorf("%s: input must be string or bytes, got %s", fn.Name(), input.Type())
		}

		ctx, ok := thread.Local(contextKey).(context.Context)
		if !ok {
			ctx = context.Background()
		}

		buf := new(bytes.Buffer)
		if err := bfvm.Run(ctx, source, strings.NewReader(in), buf, options); err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name(), err)
		}
		return starlark.Bytes(buf.String()), nil
	}
}

func validBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "source", &source); err != nil {
		return nil, err
	}
	_, err := bfvm.NewProgram(source)
	if errors.Is(err, bfvm.ErrUnmatchedBracket) {
		return starlark.False, nil
	} else if err != nil {
		return nil, err
	}
	return starlark.True, nil
}
