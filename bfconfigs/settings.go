package bfconfigs

import (
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

// NewlineAsZero makes ',' store 0 when it reads '\n'.
type NewlineAsZero bool

var _ configs.Configurable = NewlineAsZero(false)

func (NewlineAsZero) ConfigPaths() []string {
	return []string{"newline_as_zero"}
}

var newlineAsZeroFlag = cmds.Switch("-newline-zero")

func (Module) NewlineAsZero(
	loader configs.Loader,
) NewlineAsZero {
	if *newlineAsZeroFlag {
		return true
	}
	return configs.FirstOf[NewlineAsZero](loader)
}

// UTF8Output holds output bytes back until they form complete UTF-8 sequences.
type UTF8Output bool

var _ configs.Configurable = UTF8Output(false)

func (UTF8Output) ConfigPaths() []string {
	return []string{"utf8_output"}
}

var utf8OutputFlag = cmds.Switch("-utf8")

func (Module) UTF8Output(
	loader configs.Loader,
) UTF8Output {
	if *utf8OutputFlag {
		return true
	}
	return configs.FirstOf[UTF8Output](loader)
}

// TapeCapacity is the number of cells preallocated. Zero selects the interpreter default.
type TapeCapacity int

var _ configs.Configurable = TapeCapacity(0)

func (TapeCapacity) ConfigPaths() []string {
	return []string{"tape_capacity"}
}

var tapeCapacityFlag = cmds.Var[int]("-tape-capacity")

func (Module) TapeCapacity(
	loader configs.Loader,
) TapeCapacity {
	if *tapeCapacityFlag > 0 {
		return TapeCapacity(*tapeCapacityFlag)
	}
	return configs.FirstOf[TapeCapacity](loader)
}
