package emulator

import (
	"errors"

	"github.com/ezrec/mix/translate"
)

var f = translate.From

var (
	ErrLimit   = errors.New(f("tick limit reached"))
	ErrProgram = errors.New(f("program does not fit in memory"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address int   // Address of the failing instruction.
	Tick    int   // Instructions executed before the failure.
	Err     error // Underlying machine error.
}

func (err *ErrRuntime) Error() string {
	return f("address %d tick %d: %v", err.Address, err.Tick, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
