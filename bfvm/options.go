package bfvm

import "github.com/reusee/bf/logs"

type Options struct {
	TapeCapacity  int  // if zero, default to DefaultTapeCapacity
	NewlineAsZero bool // store 0 instead of '\n' on input
	UTF8Output    bool // hold output bytes until they form valid UTF-8
	Logger        logs.Logger
}
