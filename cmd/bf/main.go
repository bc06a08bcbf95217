package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/bf/bfstar"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/sources"
)

var script = cmds.Var[string]("-script")

var sourceArg string

func init() {
	cmds.Positional(func(arg string) error {
		if sourceArg != "" {
			return fmt.Errorf("unexpected argument: %s", arg)
		}
		sourceArg = arg
		return nil
	})
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		loader configs.Loader,
		logger logs.Logger,
	) {
		if err := loader.Err(); err != nil {
			fatal(err)
		}
		logger.Debug("configs", "paths", loader.Paths())
	})

	scope.Call(func(
		logger logs.Logger,
		load sources.Load,
		execute bfvm.Execute,
		execFile bfstar.ExecFile,
	) {
		if *script != "" {
			if _, err := execFile(ctx, *script, nil, os.Stdout); err != nil {
				fatal(err)
			}
			return
		}

		// source line and program input share one reader
		stdin := bufio.NewReader(os.Stdin)
		source, err := load(ctx, sourceArg, stdin)
		if err != nil {
			logger.ErrorContext(ctx, "load source", "error", err)
			fatal(err)
		}

		if err := execute(ctx, source, stdin, os.Stdout); err != nil {
			fatal(err)
		}
	})
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "bf: %v\n", err)
	os.Exit(1)
}
