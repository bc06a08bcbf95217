package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}
