package ppc

import (
	"fmt"
)

// Operand is an assembler/disassembler operand slot of an instruction.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	OPERAND_RT  = Operand(0)  // rt
	OPERAND_RS  = Operand(1)  // rs
	OPERAND_RA  = Operand(2)  // ra
	OPERAND_RB  = Operand(3)  // rb
	OPERAND_SI  = Operand(4)  // si
	OPERAND_UI  = Operand(5)  // ui
	OPERAND_D   = Operand(6)  // d
	OPERAND_DS  = Operand(7)  // ds
	OPERAND_BF  = Operand(8)  // bf
	OPERAND_L   = Operand(9)  // l
	OPERAND_SH  = Operand(10) // sh
	OPERAND_MB  = Operand(11) // mb
	OPERAND_ME  = Operand(12) // me
	OPERAND_SH6 = Operand(13) // sh6
	OPERAND_MB6 = Operand(14) // mb6
	OPERAND_LI  = Operand(15) // li
	OPERAND_BO  = Operand(16) // bo
	OPERAND_BI  = Operand(17) // bi
	OPERAND_BD  = Operand(18) // bd
	OPERAND_SPR = Operand(19) // spr
	OPERAND_FXM = Operand(20) // fxm
)

// IsRegister returns true if the operand names a general purpose register.
func (op Operand) IsRegister() bool {
	switch op {
	case OPERAND_RT, OPERAND_RS, OPERAND_RA, OPERAND_RB:
		return true
	}
	return false
}

// IsSigned returns true if the operand is a sign extended immediate.
func (op Operand) IsSigned() bool {
	switch op {
	case OPERAND_SI, OPERAND_D, OPERAND_DS, OPERAND_LI, OPERAND_BD:
		return true
	}
	return false
}

// field describes where an operand lives in the instruction word.
type field struct {
	shift uint
	width uint
	scale uint // Low bits implied zero.
}

var operandFields = [...]field{
	OPERAND_RT:  {21, 5, 0},
	OPERAND_RS:  {21, 5, 0},
	OPERAND_RA:  {16, 5, 0},
	OPERAND_RB:  {11, 5, 0},
	OPERAND_SI:  {0, 16, 0},
	OPERAND_UI:  {0, 16, 0},
	OPERAND_D:   {0, 16, 0},
	OPERAND_DS:  {2, 14, 2},
	OPERAND_BF:  {23, 3, 0},
	OPERAND_L:   {21, 1, 0},
	OPERAND_SH:  {11, 5, 0},
	OPERAND_MB:  {6, 5, 0},
	OPERAND_ME:  {1, 5, 0},
	OPERAND_LI:  {2, 24, 2},
	OPERAND_BO:  {21, 5, 0},
	OPERAND_BI:  {16, 5, 0},
	OPERAND_BD:  {2, 14, 2},
	OPERAND_FXM: {12, 8, 0},
}

// Range returns the inclusive range of values the operand accepts.
func (op Operand) Range() (lo, hi int64) {
	switch op {
	case OPERAND_SH6, OPERAND_MB6:
		return 0, 63
	case OPERAND_SPR:
		return 0, 1023
	}
	fl := operandFields[op]
	bits := fl.width + fl.scale
	if op.IsSigned() {
		return -(int64(1) << (bits - 1)), (int64(1) << (bits - 1)) - 1
	}
	return 0, (int64(1) << bits) - 1
}

// Extract returns the operand value encoded in code.
func (op Operand) Extract(code uint32) (value int64) {
	switch op {
	case OPERAND_SH6:
		// sh[0:4] || sh[5]
		return int64((code>>11)&0x1f | ((code>>1)&1)<<5)
	case OPERAND_MB6:
		// mb[0:4] || mb[5]
		return int64((code>>6)&0x1f | ((code>>5)&1)<<5)
	case OPERAND_SPR:
		return int64((code>>16)&0x1f | ((code>>11)&0x1f)<<5)
	}

	fl := operandFields[op]
	raw := (code >> fl.shift) & ((uint32(1) << fl.width) - 1)
	value = int64(raw) << fl.scale
	if op.IsSigned() {
		bits := fl.width + fl.scale
		if value&(int64(1)<<(bits-1)) != 0 {
			value -= int64(1) << bits
		}
	}

	return
}

// Insert returns code with the operand set to value.
func (op Operand) Insert(code uint32, value int64) (out uint32, err error) {
	lo, hi := op.Range()
	if value < lo || value > hi {
		err = ErrOperandRange{Operand: op, Value: value}
		return
	}

	switch op {
	case OPERAND_SH6:
		v := uint32(value)
		out = code&^(0x1f<<11|1<<1) | (v&0x1f)<<11 | (v>>5)<<1
		return
	case OPERAND_MB6:
		v := uint32(value)
		out = code&^(0x1f<<6|1<<5) | (v&0x1f)<<6 | (v>>5)<<5
		return
	case OPERAND_SPR:
		v := uint32(value)
		out = code&^(0x3ff<<11) | (v&0x1f)<<16 | (v>>5)<<11
		return
	}

	fl := operandFields[op]
	if value&((int64(1)<<fl.scale)-1) != 0 {
		err = ErrOperandAlign{Operand: op, Value: value}
		return
	}

	mask := ((uint32(1) << fl.width) - 1) << fl.shift
	raw := uint32(value>>fl.scale) << fl.shift
	out = code&^mask | raw&mask

	return
}

// Format returns the operand in assembler syntax.
func (op Operand) Format(value int64) string {
	switch {
	case op.IsRegister():
		return fmt.Sprintf("r%d", value)
	case op == OPERAND_BF:
		return fmt.Sprintf("cr%d", value)
	case op == OPERAND_UI, op == OPERAND_FXM:
		return fmt.Sprintf("0x%x", value)
	}
	return fmt.Sprintf("%d", value)
}
