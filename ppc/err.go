package ppc

import (
	"errors"

	"github.com/ezrec/ppclift/translate"
)

var f = translate.From

var (
	// Lift errors
	ErrUnassigned     = errors.New(f("unassigned opcode"))
	ErrUnimplemented  = errors.New(f("unimplemented"))
	ErrInvalidOperand = errors.New(f("invalid operand"))
	ErrInstrShort     = errors.New(f("short instruction word"))

	// Table errors
	ErrTableDuplicate = errors.New(f("table entry overlaps"))
	ErrTableSealed    = errors.New(f("table sealed"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOpcodeMissing      = errors.New(f("operand missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// Status is the outcome class of a single lift.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_LIFTED          = Status(0) // lifted
	STATUS_UNIMPLEMENTED   = Status(1) // unimplemented
	STATUS_INVALID_OPERAND = Status(2) // invalid operand
	STATUS_UNASSIGNED      = Status(3) // unassigned
)

// StatusOf classifies the error returned by a lift. Errors outside the lift
// sentinels are reported as STATUS_UNIMPLEMENTED.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return STATUS_LIFTED
	case errors.Is(err, ErrUnassigned):
		return STATUS_UNASSIGNED
	case errors.Is(err, ErrInvalidOperand):
		return STATUS_INVALID_OPERAND
	default:
		return STATUS_UNIMPLEMENTED
	}
}

// ErrInstr reports the instruction that could not be lifted.
type ErrInstr struct {
	Instr Instr
	Entry *Entry // nil for unassigned words.
	Err   error
}

func (err ErrInstr) Error() string {
	if err.Entry == nil {
		return f("0x%08x: %08x: %v", err.Instr.Address, err.Instr.Code, err.Err)
	}
	return f("0x%08x: %08x %v (%v-form): %v", err.Instr.Address, err.Instr.Code,
		err.Entry.Mnemonic, err.Entry.Form, err.Err)
}

func (err ErrInstr) Unwrap() error {
	return err.Err
}

// ErrTableEntry reports the entry that could not be registered.
type ErrTableEntry struct {
	Entry    *Entry
	Existing *Entry // nil for ErrTableSealed.
	Err      error
}

func (err ErrTableEntry) Error() string {
	if err.Existing == nil {
		return f("%v 0x%08x: %v", err.Entry.Mnemonic, err.Entry.Opcode, err.Err)
	}
	return f("%v 0x%08x: %v %v 0x%08x", err.Entry.Mnemonic, err.Entry.Opcode, err.Err,
		err.Existing.Mnemonic, err.Existing.Opcode)
}

func (err ErrTableEntry) Unwrap() error {
	return err.Err
}

// ErrOperandRange reports an operand value that does not fit its field.
type ErrOperandRange struct {
	Operand Operand
	Value   int64
}

func (err ErrOperandRange) Error() string {
	lo, hi := err.Operand.Range()
	return f("%v %d out of range [%d, %d]", err.Operand, err.Value, lo, hi)
}

func (err ErrOperandRange) Is(target error) bool {
	return target == ErrInvalidOperand
}

// ErrOperandAlign reports a displacement with set implied-zero bits.
type ErrOperandAlign struct {
	Operand Operand
	Value   int64
}

func (err ErrOperandAlign) Error() string {
	return f("%v %d misaligned", err.Operand, err.Value)
}

func (err ErrOperandAlign) Is(target error) bool {
	return target == ErrInvalidOperand
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
