package bfvm

import (
	"context"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

func (Module) Options(
	logger logs.Logger,
	newlineAsZero bfconfigs.NewlineAsZero,
	utf8Output bfconfigs.UTF8Output,
	capacity bfconfigs.TapeCapacity,
) *Options {
	return &Options{
		TapeCapacity:  int(capacity),
		NewlineAsZero: bool(newlineAsZero),
		UTF8Output:    bool(utf8Output),
		Logger:        logger,
	}
}

// Execute runs source in its own span against a fresh tape.
type Execute func(ctx context.Context, source string, input io.Reader, output io.Writer) error

func (Module) Execute(
	options *Options,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Execute {
	return func(ctx context.Context, source string, input io.Reader, output io.Writer) error {
		ctx, _ = newSpan(ctx, "run")
		if err := Run(ctx, source, input, output, options); err != nil {
			logger.ErrorContext(ctx, "run failed", "error", err)
			return logs.WrapSpan(ctx, err)
		}
		return nil
	}
}
