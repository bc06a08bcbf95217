package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/bf/bfstar"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/sources"
)

type Module struct {
	dscope.Module
	VM      bfvm.Module
	Star    bfstar.Module
	Sources sources.Module
}
