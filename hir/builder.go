package hir

import (
	"fmt"
	"log"
)

// Builder records HIR instructions for one translation unit.
//
// A Builder is not safe for concurrent use; each worker owns its own.
type Builder struct {
	Verbose bool // Log every emitted instruction.

	instrs []*Instr
	values int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Reset discards all recorded instructions.
func (b *Builder) Reset() {
	b.instrs = nil
	b.values = 0
}

// Function returns the instructions recorded so far, and resets the builder.
func (b *Builder) Function(name string) (fn *Function) {
	fn = &Function{
		Name:   name,
		Instrs: b.instrs,
		Values: b.values,
	}
	b.Reset()
	return
}

// Len returns the number of recorded instructions.
func (b *Builder) Len() int {
	return len(b.instrs)
}

func (b *Builder) emit(op Opcode, t Type, flags ArithmeticFlags, src ...*Value) (in *Instr) {
	for n, v := range src {
		if v == nil {
			panic(fmt.Sprintf("hir: %v: nil operand %d", op, n))
		}
	}

	in = &Instr{
		Opcode: op,
		Flags:  flags,
		Src:    src,
	}
	if op.HasDest() {
		in.Dest = &Value{
			ID:   b.values,
			Type: t,
			Def:  in,
		}
		b.values++
	}

	b.instrs = append(b.instrs, in)
	if b.Verbose {
		log.Printf("hir: %v", in)
	}

	return
}

func sameType(op Opcode, a, c *Value) {
	if a.Type != c.Type {
		panic(fmt.Sprintf("hir: %v: type mismatch %v, %v", op, a.Type, c.Type))
	}
}

func wantType(op Opcode, v *Value, t Type) {
	if v.Type != t {
		panic(fmt.Sprintf("hir: %v: want %v, got %v", op, t, v.Type))
	}
}

func (b *Builder) binary(op Opcode, flags ArithmeticFlags, x, y *Value) *Value {
	sameType(op, x, y)
	return b.emit(op, x.Type, flags, x, y).Dest
}

func (b *Builder) unary(op Opcode, x *Value) *Value {
	return b.emit(op, x.Type, 0, x).Dest
}

// SourceOffset marks the start of the guest instruction at address.
func (b *Builder) SourceOffset(address uint64) {
	b.emit(OPCODE_SOURCE_OFFSET, TYPE_INT8, 0).Address = address
}

// Nop emits an explicit no-operation.
func (b *Builder) Nop() {
	b.emit(OPCODE_NOP, TYPE_INT8, 0)
}

// DebugBreak emits a trap for an unreachable or unsupported path.
func (b *Builder) DebugBreak() {
	b.emit(OPCODE_DEBUG_BREAK, TYPE_INT8, 0)
}

// LoadGPR reads a 64-bit general purpose register.
func (b *Builder) LoadGPR(reg uint32) *Value {
	if reg >= 32 {
		panic(fmt.Sprintf("hir: load_gpr: r%d", reg))
	}
	in := b.emit(OPCODE_LOAD_GPR, TYPE_INT64, 0)
	in.Index = reg
	return in.Dest
}

// StoreGPR writes a 64-bit general purpose register.
func (b *Builder) StoreGPR(reg uint32, v *Value) {
	if reg >= 32 {
		panic(fmt.Sprintf("hir: store_gpr: r%d", reg))
	}
	wantType(OPCODE_STORE_GPR, v, TYPE_INT64)
	b.emit(OPCODE_STORE_GPR, TYPE_INT8, 0, v).Index = reg
}

// LoadCA reads XER[CA] as an i8 0 or 1.
func (b *Builder) LoadCA() *Value {
	return b.emit(OPCODE_LOAD_CA, TYPE_INT8, 0).Dest
}

// StoreCA writes XER[CA] from an i8.
func (b *Builder) StoreCA(v *Value) {
	wantType(OPCODE_STORE_CA, v, TYPE_INT8)
	b.emit(OPCODE_STORE_CA, TYPE_INT8, 0, v)
}

// StoreOV writes XER[OV] from an i8. A set OV also sets XER[SO].
func (b *Builder) StoreOV(v *Value) {
	wantType(OPCODE_STORE_OV, v, TYPE_INT8)
	b.emit(OPCODE_STORE_OV, TYPE_INT8, 0, v)
}

// UpdateCR compares lhs with rhs and stores LT, GT, EQ and the current
// XER[SO] into condition register field n.
func (b *Builder) UpdateCR(n uint32, lhs, rhs *Value, signed bool) {
	if n >= 8 {
		panic(fmt.Sprintf("hir: update_cr: cr%d", n))
	}
	sameType(OPCODE_UPDATE_CR, lhs, rhs)
	var flags ArithmeticFlags
	if !signed {
		flags = ARITHMETIC_UNSIGNED
	}
	b.emit(OPCODE_UPDATE_CR, TYPE_INT8, flags, lhs, rhs).Index = n
}

// LoadConstant returns a literal of type t. Bits above the type width are
// dropped.
func (b *Builder) LoadConstant(t Type, value uint64) *Value {
	return &Value{
		ID:       -1,
		Type:     t,
		Constant: t.Truncate(value),
	}
}

// LoadZero returns the zero literal of type t.
func (b *Builder) LoadZero(t Type) *Value {
	return b.LoadConstant(t, 0)
}

// Add returns x + y.
func (b *Builder) Add(x, y *Value, flags ArithmeticFlags) *Value {
	return b.binary(OPCODE_ADD, flags, x, y)
}

// AddWithCarry returns x + y + carry, where carry is an i8 0 or 1.
func (b *Builder) AddWithCarry(x, y, carry *Value, flags ArithmeticFlags) *Value {
	sameType(OPCODE_ADD_CARRY, x, y)
	wantType(OPCODE_ADD_CARRY, carry, TYPE_INT8)
	return b.emit(OPCODE_ADD_CARRY, x.Type, flags, x, y, carry).Dest
}

// Sub returns x - y. The captured carry is set when no borrow occurs.
func (b *Builder) Sub(x, y *Value, flags ArithmeticFlags) *Value {
	return b.binary(OPCODE_SUB, flags, x, y)
}

// Mul returns the low bits of x * y.
func (b *Builder) Mul(x, y *Value, flags ArithmeticFlags) *Value {
	return b.binary(OPCODE_MUL, flags, x, y)
}

// Div returns x / y. A zero divisor yields 0, and the signed quotient of the
// most negative value by -1 yields the most negative value.
func (b *Builder) Div(x, y *Value, flags ArithmeticFlags) *Value {
	return b.binary(OPCODE_DIV, flags, x, y)
}

// Neg returns -x.
func (b *Builder) Neg(x *Value) *Value {
	return b.unary(OPCODE_NEG, x)
}

// Not returns ^x.
func (b *Builder) Not(x *Value) *Value {
	return b.unary(OPCODE_NOT, x)
}

func (b *Builder) And(x, y *Value) *Value {
	return b.binary(OPCODE_AND, 0, x, y)
}

func (b *Builder) Or(x, y *Value) *Value {
	return b.binary(OPCODE_OR, 0, x, y)
}

func (b *Builder) Xor(x, y *Value) *Value {
	return b.binary(OPCODE_XOR, 0, x, y)
}

// Shl returns x << n; shifts of the width or more yield 0.
func (b *Builder) Shl(x, n *Value) *Value {
	return b.emit(OPCODE_SHL, x.Type, 0, x, n).Dest
}

// Shr returns the logical x >> n; shifts of the width or more yield 0.
func (b *Builder) Shr(x, n *Value) *Value {
	return b.emit(OPCODE_SHR, x.Type, 0, x, n).Dest
}

// Sha returns the arithmetic x >> n; shifts of the width or more yield the
// sign fill.
func (b *Builder) Sha(x, n *Value) *Value {
	return b.emit(OPCODE_SHA, x.Type, 0, x, n).Dest
}

// RotateLeft rotates x left by n modulo the width.
func (b *Builder) RotateLeft(x, n *Value) *Value {
	return b.emit(OPCODE_ROTATE_LEFT, x.Type, 0, x, n).Dest
}

// Truncate narrows x to type t.
func (b *Builder) Truncate(x *Value, t Type) *Value {
	if t > x.Type {
		panic(fmt.Sprintf("hir: truncate: %v to %v", x.Type, t))
	}
	if t == x.Type {
		return x
	}
	return b.emit(OPCODE_TRUNCATE, t, 0, x).Dest
}

// SignExtend widens x to type t, copying the sign bit.
func (b *Builder) SignExtend(x *Value, t Type) *Value {
	if t < x.Type {
		panic(fmt.Sprintf("hir: sign_extend: %v to %v", x.Type, t))
	}
	if t == x.Type {
		return x
	}
	return b.emit(OPCODE_SIGN_EXTEND, t, 0, x).Dest
}

// ZeroExtend widens x to type t with zero fill.
func (b *Builder) ZeroExtend(x *Value, t Type) *Value {
	if t < x.Type {
		panic(fmt.Sprintf("hir: zero_extend: %v to %v", x.Type, t))
	}
	if t == x.Type {
		return x
	}
	return b.emit(OPCODE_ZERO_EXTEND, t, 0, x).Dest
}

func (b *Builder) capture(op Opcode, x *Value, flag ArithmeticFlags) *Value {
	if x.Def == nil || !x.Def.Flags.Has(flag) {
		panic(fmt.Sprintf("hir: %v: %v does not capture %v", op, x, flag))
	}
	return b.emit(op, TYPE_INT8, 0, x).Dest
}

// DidCarry returns the captured carry of x as an i8 0 or 1.
// x must be defined with ARITHMETIC_SET_CARRY.
func (b *Builder) DidCarry(x *Value) *Value {
	return b.capture(OPCODE_DID_CARRY, x, ARITHMETIC_SET_CARRY)
}

// DidOverflow returns the captured overflow of x as an i8 0 or 1.
// x must be defined with ARITHMETIC_SET_OVERFLOW.
func (b *Builder) DidOverflow(x *Value) *Value {
	return b.capture(OPCODE_DID_OVERFLOW, x, ARITHMETIC_SET_OVERFLOW)
}

// IsTrue returns 1 if x is non-zero.
func (b *Builder) IsTrue(x *Value) *Value {
	return b.emit(OPCODE_IS_TRUE, TYPE_INT8, 0, x).Dest
}

// IsFalse returns 1 if x is zero.
func (b *Builder) IsFalse(x *Value) *Value {
	return b.emit(OPCODE_IS_FALSE, TYPE_INT8, 0, x).Dest
}

// CompareEQ returns 1 if x equals y.
func (b *Builder) CompareEQ(x, y *Value) *Value {
	sameType(OPCODE_COMPARE_EQ, x, y)
	return b.emit(OPCODE_COMPARE_EQ, TYPE_INT8, 0, x, y).Dest
}

// CountLeadingZeros returns the number of leading zero bits of x as an i8.
func (b *Builder) CountLeadingZeros(x *Value) *Value {
	return b.emit(OPCODE_CNTLZ, TYPE_INT8, 0, x).Dest
}
