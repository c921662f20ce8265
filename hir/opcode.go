package hir

// Opcode is a HIR operation.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OPCODE_NOP           = Opcode(0)  // nop
	OPCODE_DEBUG_BREAK   = Opcode(1)  // debug_break
	OPCODE_SOURCE_OFFSET = Opcode(2)  // source_offset
	OPCODE_LOAD_GPR      = Opcode(3)  // load_gpr
	OPCODE_STORE_GPR     = Opcode(4)  // store_gpr
	OPCODE_LOAD_CA       = Opcode(5)  // load_ca
	OPCODE_STORE_CA      = Opcode(6)  // store_ca
	OPCODE_STORE_OV      = Opcode(7)  // store_ov
	OPCODE_UPDATE_CR     = Opcode(8)  // update_cr
	OPCODE_ADD           = Opcode(9)  // add
	OPCODE_ADD_CARRY     = Opcode(10) // add_carry
	OPCODE_SUB           = Opcode(11) // sub
	OPCODE_MUL           = Opcode(12) // mul
	OPCODE_DIV           = Opcode(13) // div
	OPCODE_NEG           = Opcode(14) // neg
	OPCODE_NOT           = Opcode(15) // not
	OPCODE_AND           = Opcode(16) // and
	OPCODE_OR            = Opcode(17) // or
	OPCODE_XOR           = Opcode(18) // xor
	OPCODE_SHL           = Opcode(19) // shl
	OPCODE_SHR           = Opcode(20) // shr
	OPCODE_SHA           = Opcode(21) // sha
	OPCODE_ROTATE_LEFT   = Opcode(22) // rotate_left
	OPCODE_TRUNCATE      = Opcode(23) // truncate
	OPCODE_SIGN_EXTEND   = Opcode(24) // sign_extend
	OPCODE_ZERO_EXTEND   = Opcode(25) // zero_extend
	OPCODE_DID_CARRY     = Opcode(26) // did_carry
	OPCODE_DID_OVERFLOW  = Opcode(27) // did_overflow
	OPCODE_IS_TRUE       = Opcode(28) // is_true
	OPCODE_IS_FALSE      = Opcode(29) // is_false
	OPCODE_COMPARE_EQ    = Opcode(30) // compare_eq
	OPCODE_CNTLZ         = Opcode(31) // cntlz
)

// HasDest returns true if the opcode defines a value.
func (op Opcode) HasDest() bool {
	switch op {
	case OPCODE_NOP, OPCODE_DEBUG_BREAK, OPCODE_SOURCE_OFFSET,
		OPCODE_STORE_GPR, OPCODE_STORE_CA, OPCODE_STORE_OV, OPCODE_UPDATE_CR:
		return false
	}
	return true
}
