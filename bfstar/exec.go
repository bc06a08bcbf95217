package bfstar

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/bf/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ExecFile runs a starlark script with the bf module predeclared.
// print() writes lines to output.
type ExecFile func(ctx context.Context, filename string, src any, output io.Writer) (starlark.StringDict, error)

func (Module) ExecFile(
	globals Globals,
	logger logs.Logger,
) ExecFile {
	return func(ctx context.Context, filename string, src any, output io.Writer) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		thread.SetLocal(contextKey, ctx)
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(ctx.Err().Error())
		})
		defer stop()

		logger.DebugContext(ctx, "exec script", "file", filename)
		ret, err := starlark.ExecFileOptions(
			&syntax.FileOptions{
				Set:             true,
				While:           true,
				TopLevelControl: true,
			},
			thread,
			filename,
			src,
			starlark.StringDict(globals),
		)
		if err != nil {
			return nil, err
		}
		return ret, nil
	}
}
