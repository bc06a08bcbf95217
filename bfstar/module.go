package bfstar

import (
	"github.com/reusee/dscope"
	"github.com/reusee/bf/bfvm"
)

type Module struct {
	dscope.Module
	VM bfvm.Module
}
