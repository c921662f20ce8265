package hir

import (
	"math"
	"math/bits"
)

type runValue struct {
	value    uint64
	carry    bool
	overflow bool
	set      bool
}

type runState struct {
	values []runValue
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func (rs *runState) get(v *Value) (value uint64, err error) {
	if v.IsConstant() {
		value = v.Constant
		return
	}
	rv := &rs.values[v.ID]
	if !rv.set {
		err = ErrValueUnset
		return
	}
	value = rv.value
	return
}

// add returns a + b + c in type t with its unsigned carry-out and signed
// overflow.
func add(t Type, a, b, c uint64) (r uint64, carry bool, overflow bool) {
	if t == TYPE_INT64 {
		var co uint64
		r, co = bits.Add64(a, b, c)
		carry = co != 0
	} else {
		sum := a + b + c
		carry = sum > t.Mask()
		r = t.Truncate(sum)
	}
	sign := t.SignBit()
	overflow = (a&sign) == (b&sign) && (r&sign) != (a&sign)
	return
}

func shiftAmount(v uint64, t Type) (n uint, over bool) {
	if v >= uint64(t.Bits()) {
		return t.Bits(), true
	}
	return uint(v), false
}

// Run evaluates the function against the architectural state in ctx.
func (fn *Function) Run(ctx *Context) (err error) {
	rs := &runState{values: make([]runValue, fn.Values)}

	for index, in := range fn.Instrs {
		err = rs.step(ctx, in)
		if err != nil {
			err = ErrRun{Index: index, Instr: in, Err: err}
			return
		}
	}

	return
}

func (rs *runState) step(ctx *Context, in *Instr) (err error) {
	src := make([]uint64, len(in.Src))
	for n, v := range in.Src {
		src[n], err = rs.get(v)
		if err != nil {
			return
		}
	}

	var out runValue
	var t Type
	if in.Dest != nil {
		t = in.Dest.Type
	}

	switch in.Opcode {
	case OPCODE_NOP:
	case OPCODE_DEBUG_BREAK:
		err = ErrDebugBreak
		return
	case OPCODE_SOURCE_OFFSET:
		ctx.Address = in.Address
	case OPCODE_LOAD_GPR:
		out.value = ctx.GPR[in.Index]
	case OPCODE_STORE_GPR:
		ctx.GPR[in.Index] = src[0]
	case OPCODE_LOAD_CA:
		out.value = boolValue(ctx.CA)
	case OPCODE_STORE_CA:
		ctx.CA = src[0] != 0
	case OPCODE_STORE_OV:
		ctx.OV = src[0] != 0
		if ctx.OV {
			ctx.SO = true
		}
	case OPCODE_UPDATE_CR:
		st := in.Src[0].Type
		lhs, rhs := src[0], src[1]
		var lt, gt bool
		if in.Flags.Has(ARITHMETIC_UNSIGNED) {
			lt, gt = lhs < rhs, lhs > rhs
		} else {
			sl, sr := int64(st.SignExtend(lhs)), int64(st.SignExtend(rhs))
			lt, gt = sl < sr, sl > sr
		}
		var field uint8
		switch {
		case lt:
			field = CR_LT
		case gt:
			field = CR_GT
		default:
			field = CR_EQ
		}
		if ctx.SO {
			field |= CR_SO
		}
		ctx.CR[in.Index] = field
	case OPCODE_ADD:
		out.value, out.carry, out.overflow = add(t, src[0], src[1], 0)
	case OPCODE_ADD_CARRY:
		out.value, out.carry, out.overflow = add(t, src[0], src[1], src[2]&1)
	case OPCODE_SUB:
		// a - b == a + ^b + 1
		out.value, out.carry, out.overflow = add(t, src[0], t.Truncate(^src[1]), 1)
	case OPCODE_MUL:
		out.value = t.Truncate(src[0] * src[1])
		if in.Flags.Has(ARITHMETIC_UNSIGNED) {
			hi, lo := bits.Mul64(src[0], src[1])
			out.overflow = hi != 0 || lo != out.value
		} else {
			sa, sb := int64(t.SignExtend(src[0])), int64(t.SignExtend(src[1]))
			p := sa * sb
			out.overflow = (sa != 0 && p/sa != sb) || (sa == -1 && sb == math.MinInt64) ||
				int64(t.SignExtend(uint64(p))) != p
		}
	case OPCODE_DIV:
		a, b := src[0], src[1]
		switch {
		case b == 0:
			out.value = 0
			out.overflow = true
		case in.Flags.Has(ARITHMETIC_UNSIGNED):
			out.value = a / b
		default:
			sa, sb := int64(t.SignExtend(a)), int64(t.SignExtend(b))
			if sa == int64(t.SignExtend(t.SignBit())) && sb == -1 {
				out.value = t.SignBit()
				out.overflow = true
			} else {
				out.value = t.Truncate(uint64(sa / sb))
			}
		}
	case OPCODE_NEG:
		out.value = t.Truncate(-src[0])
	case OPCODE_NOT:
		out.value = t.Truncate(^src[0])
	case OPCODE_AND:
		out.value = src[0] & src[1]
	case OPCODE_OR:
		out.value = src[0] | src[1]
	case OPCODE_XOR:
		out.value = src[0] ^ src[1]
	case OPCODE_SHL:
		if n, over := shiftAmount(src[1], t); !over {
			out.value = t.Truncate(src[0] << n)
		}
	case OPCODE_SHR:
		if n, over := shiftAmount(src[1], t); !over {
			out.value = src[0] >> n
		}
	case OPCODE_SHA:
		n, _ := shiftAmount(src[1], t)
		if n >= t.Bits() {
			n = t.Bits() - 1
		}
		out.value = t.Truncate(uint64(int64(t.SignExtend(src[0])) >> n))
	case OPCODE_ROTATE_LEFT:
		width := t.Bits()
		n := uint(src[1] % uint64(width))
		out.value = src[0]
		if n != 0 {
			out.value = t.Truncate(src[0]<<n | src[0]>>(width-n))
		}
	case OPCODE_TRUNCATE:
		out.value = t.Truncate(src[0])
	case OPCODE_SIGN_EXTEND:
		out.value = t.Truncate(in.Src[0].Type.SignExtend(src[0]))
	case OPCODE_ZERO_EXTEND:
		out.value = src[0]
	case OPCODE_DID_CARRY:
		out.value = boolValue(rs.values[in.Src[0].ID].carry)
	case OPCODE_DID_OVERFLOW:
		out.value = boolValue(rs.values[in.Src[0].ID].overflow)
	case OPCODE_IS_TRUE:
		out.value = boolValue(src[0] != 0)
	case OPCODE_IS_FALSE:
		out.value = boolValue(src[0] == 0)
	case OPCODE_COMPARE_EQ:
		out.value = boolValue(src[0] == src[1])
	case OPCODE_CNTLZ:
		st := in.Src[0].Type
		out.value = uint64(bits.LeadingZeros64(src[0]) - (64 - int(st.Bits())))
	default:
		err = ErrOpcodeUnknown
		return
	}

	if in.Dest != nil {
		out.set = true
		rs.values[in.Dest.ID] = out
	}

	return
}
