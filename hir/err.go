package hir

import (
	"errors"

	"github.com/ezrec/ppclift/translate"
)

var f = translate.From

var (
	ErrDebugBreak    = errors.New(f("debug break"))
	ErrValueUnset    = errors.New(f("value used before definition"))
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
)

// ErrRun reports the instruction that stopped Function.Run.
type ErrRun struct {
	Index int
	Instr *Instr
	Err   error
}

func (err ErrRun) Error() string {
	return f("hir %d '%v': %v", err.Index, err.Instr, err.Err)
}

func (err ErrRun) Unwrap() error {
	return err.Err
}
