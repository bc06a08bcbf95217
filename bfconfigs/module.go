package bfconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/bf/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
