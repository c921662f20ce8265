package ppc

import (
	"github.com/ezrec/ppclift/hir"
)

// LiftFunc translates one decoded instruction into builder calls.
//
// It returns nil when the instruction was lifted, ErrUnimplemented when the
// instruction or one of its variants is not supported, and ErrInvalidOperand
// for an invalid encoding. A lift that fails makes no builder calls.
type LiftFunc func(f Builder, i Instr) error

var lifters = [MNEMONIC_COUNT]LiftFunc{
	MNEMONIC_ADD:       liftAdd,
	MNEMONIC_ADDC:      liftAddc,
	MNEMONIC_ADDE:      liftAdde,
	MNEMONIC_ADDI:      liftAddi,
	MNEMONIC_ADDIC:     liftAddic,
	MNEMONIC_ADDIC_DOT: liftAddicDot,
	MNEMONIC_ADDIS:     liftAddis,
	MNEMONIC_ADDME:     liftAddme,
	MNEMONIC_ADDZE:     liftAddze,
	MNEMONIC_DIVD:      liftDivd,
	MNEMONIC_DIVDU:     liftDivdu,
	MNEMONIC_DIVW:      liftDivw,
	MNEMONIC_DIVWU:     liftDivwu,
	MNEMONIC_MULHD:     liftUnimplemented,
	MNEMONIC_MULHDU:    liftUnimplemented,
	MNEMONIC_MULHW:     liftMulhw,
	MNEMONIC_MULHWU:    liftMulhwu,
	MNEMONIC_MULLD:     liftMulld,
	MNEMONIC_MULLI:     liftMulli,
	MNEMONIC_MULLW:     liftMullw,
	MNEMONIC_NEG:       liftNeg,
	MNEMONIC_SUBF:      liftSubf,
	MNEMONIC_SUBFC:     liftSubfc,
	MNEMONIC_SUBFE:     liftSubfe,
	MNEMONIC_SUBFIC:    liftSubfic,
	MNEMONIC_SUBFME:    liftSubfme,
	MNEMONIC_SUBFZE:    liftSubfze,

	MNEMONIC_CMP:   liftCmp,
	MNEMONIC_CMPI:  liftCmpi,
	MNEMONIC_CMPL:  liftCmpl,
	MNEMONIC_CMPLI: liftCmpli,

	MNEMONIC_AND:       liftAnd,
	MNEMONIC_ANDC:      liftAndc,
	MNEMONIC_ANDI_DOT:  liftAndiDot,
	MNEMONIC_ANDIS_DOT: liftAndisDot,
	MNEMONIC_CNTLZD:    liftCntlzd,
	MNEMONIC_CNTLZW:    liftCntlzw,
	MNEMONIC_EQV:       liftEqv,
	MNEMONIC_EXTSB:     liftExtsb,
	MNEMONIC_EXTSH:     liftExtsh,
	MNEMONIC_EXTSW:     liftExtsw,
	MNEMONIC_NAND:      liftUnimplemented,
	MNEMONIC_NOR:       liftNor,
	MNEMONIC_OR:        liftOr,
	MNEMONIC_ORC:       liftOrc,
	MNEMONIC_ORI:       liftOri,
	MNEMONIC_ORIS:      liftOris,
	MNEMONIC_XOR:       liftXor,
	MNEMONIC_XORI:      liftXori,
	MNEMONIC_XORIS:     liftXoris,

	MNEMONIC_RLDCL:  liftRldcl,
	MNEMONIC_RLDCR:  liftRldcr,
	MNEMONIC_RLDIC:  liftRldic,
	MNEMONIC_RLDICL: liftRldicl,
	MNEMONIC_RLDICR: liftRldicr,
	MNEMONIC_RLDIMI: liftRldimi,
	MNEMONIC_RLWIMI: liftRlwimi,
	MNEMONIC_RLWINM: liftRlwinm,
	MNEMONIC_RLWNM:  liftRlwnm,

	MNEMONIC_SLD:   liftSld,
	MNEMONIC_SLW:   liftSlw,
	MNEMONIC_SRAD:  liftSrad,
	MNEMONIC_SRADI: liftSradi,
	MNEMONIC_SRAW:  liftSraw,
	MNEMONIC_SRAWI: liftSrawi,
	MNEMONIC_SRD:   liftSrd,
	MNEMONIC_SRW:   liftSrw,
}

// lifterOf returns the lift function of a mnemonic, or nil.
func lifterOf(mnemonic Mnemonic) LiftFunc {
	if mnemonic < 0 || mnemonic >= MNEMONIC_COUNT {
		return nil
	}
	return lifters[mnemonic]
}

func exts16(v uint32) uint64 {
	return uint64(int64(int16(v)))
}

func const64(f Builder, value uint64) *hir.Value {
	return f.LoadConstant(hir.TYPE_INT64, value)
}

func const32(f Builder, value uint32) *hir.Value {
	return f.LoadConstant(hir.TYPE_INT32, uint64(value))
}

func const8(f Builder, value uint32) *hir.Value {
	return f.LoadConstant(hir.TYPE_INT8, uint64(value))
}

func low32(f Builder, reg uint32) *hir.Value {
	return f.Truncate(f.LoadGPR(reg), hir.TYPE_INT32)
}

func updateCR0(f Builder, v *hir.Value) {
	f.UpdateCR(0, v, f.LoadZero(v.Type), true)
}

func updateCR0Unsigned(f Builder, v *hir.Value) {
	f.UpdateCR(0, v, f.LoadZero(v.Type), false)
}

func overflowFlag(oe bool) hir.ArithmeticFlags {
	if oe {
		return hir.ARITHMETIC_SET_OVERFLOW
	}
	return 0
}

// finishXO stores the result of an XO-form instruction, then the overflow
// and condition updates its OE and Rc bits ask for.
func finishXO(f Builder, xo XOForm, v *hir.Value) {
	f.StoreGPR(xo.RT, v)
	if xo.OE {
		f.StoreOV(f.DidOverflow(v))
	}
	if xo.Rc {
		updateCR0(f, v)
	}
}

func liftUnimplemented(f Builder, i Instr) error {
	return ErrUnimplemented
}

// Integer arithmetic

func liftAdd(f Builder, i Instr) (err error) {
	// RD <- (RA) + (RB)
	xo := i.XO()
	v := f.Add(f.LoadGPR(xo.RA), f.LoadGPR(xo.RB), overflowFlag(xo.OE))
	finishXO(f, xo, v)
	return
}

func liftAddc(f Builder, i Instr) (err error) {
	// RD <- (RA) + (RB)
	// CA <- carry bit
	xo := i.XO()
	v := f.Add(f.LoadGPR(xo.RA), f.LoadGPR(xo.RB), hir.ARITHMETIC_SET_CARRY|overflowFlag(xo.OE))
	f.StoreCA(f.DidCarry(v))
	finishXO(f, xo, v)
	return
}

func liftAdde(f Builder, i Instr) (err error) {
	// RD <- (RA) + (RB) + XER[CA]
	xo := i.XO()
	v := f.AddWithCarry(f.LoadGPR(xo.RA), f.LoadGPR(xo.RB), f.LoadCA(),
		hir.ARITHMETIC_SET_CARRY|overflowFlag(xo.OE))
	f.StoreCA(f.DidCarry(v))
	finishXO(f, xo, v)
	return
}

func liftAddi(f Builder, i Instr) (err error) {
	// if RA = 0 then RT <- EXTS(SI)
	// else RT <- (RA) + EXTS(SI)
	d := i.D()
	v := const64(f, exts16(d.DS))
	if d.RA != 0 {
		v = f.Add(f.LoadGPR(d.RA), v, 0)
	}
	f.StoreGPR(d.RT, v)
	return
}

func liftAddis(f Builder, i Instr) (err error) {
	// if RA = 0 then RT <- EXTS(SI) || i16.0
	// else RT <- (RA) + EXTS(SI) || i16.0
	d := i.D()
	v := const64(f, exts16(d.DS)<<16)
	if d.RA != 0 {
		v = f.Add(f.LoadGPR(d.RA), v, 0)
	}
	f.StoreGPR(d.RT, v)
	return
}

func addic(f Builder, d DForm) *hir.Value {
	// RT <- (RA) + EXTS(SI)
	v := f.Add(f.LoadGPR(d.RA), const64(f, exts16(d.DS)), hir.ARITHMETIC_SET_CARRY)
	f.StoreCA(f.DidCarry(v))
	f.StoreGPR(d.RT, v)
	return v
}

func liftAddic(f Builder, i Instr) (err error) {
	addic(f, i.D())
	return
}

func liftAddicDot(f Builder, i Instr) (err error) {
	updateCR0(f, addic(f, i.D()))
	return
}

func liftAddme(f Builder, i Instr) (err error) {
	// RT <- (RA) + CA - 1
	xo := i.XO()
	v := f.AddWithCarry(f.LoadGPR(xo.RA), const64(f, ^uint64(0)), f.LoadCA(),
		hir.ARITHMETIC_SET_CARRY|overflowFlag(xo.OE))
	f.StoreCA(f.DidCarry(v))
	finishXO(f, xo, v)
	return
}

func liftAddze(f Builder, i Instr) (err error) {
	// RT <- (RA) + CA
	xo := i.XO()
	v := f.AddWithCarry(f.LoadGPR(xo.RA), f.LoadZero(hir.TYPE_INT64), f.LoadCA(),
		hir.ARITHMETIC_SET_CARRY|overflowFlag(xo.OE))
	f.StoreCA(f.DidCarry(v))
	finishXO(f, xo, v)
	return
}

func liftDivd(f Builder, i Instr) (err error) {
	// RT <- (RA) ÷ (RB)
	xo := i.XO()
	v := f.Div(f.LoadGPR(xo.RA), f.LoadGPR(xo.RB), overflowFlag(xo.OE))
	finishXO(f, xo, v)
	return
}

func liftDivdu(f Builder, i Instr) (err error) {
	xo := i.XO()
	v := f.Div(f.LoadGPR(xo.RA), f.LoadGPR(xo.RB), hir.ARITHMETIC_UNSIGNED|overflowFlag(xo.OE))
	f.StoreGPR(xo.RT, v)
	if xo.OE {
		f.StoreOV(f.DidOverflow(v))
	}
	if xo.Rc {
		updateCR0Unsigned(f, v)
	}
	return
}

func liftDivw(f Builder, i Instr) (err error) {
	// RT[32:63] <- (RA)[32:63] ÷ (RB)[32:63]
	// RT[0:31] <- undefined
	xo := i.XO()
	q := f.Div(low32(f, xo.RA), low32(f, xo.RB), overflowFlag(xo.OE))
	v := f.ZeroExtend(q, hir.TYPE_INT64)
	f.StoreGPR(xo.RT, v)
	if xo.OE {
		f.StoreOV(f.DidOverflow(q))
	}
	if xo.Rc {
		updateCR0(f, v)
	}
	return
}

func liftDivwu(f Builder, i Instr) (err error) {
	xo := i.XO()
	q := f.Div(low32(f, xo.RA), low32(f, xo.RB), hir.ARITHMETIC_UNSIGNED|overflowFlag(xo.OE))
	v := f.ZeroExtend(q, hir.TYPE_INT64)
	f.StoreGPR(xo.RT, v)
	if xo.OE {
		f.StoreOV(f.DidOverflow(q))
	}
	if xo.Rc {
		updateCR0Unsigned(f, v)
	}
	return
}

func liftMulhw(f Builder, i Instr) (err error) {
	// RT[32:63] <- ((RA)[32:63] × (RB)[32:63])[0:31]
	xo := i.XO()
	if xo.OE {
		err = ErrInvalidOperand
		return
	}
	p := f.Mul(
		f.SignExtend(low32(f, xo.RA), hir.TYPE_INT64),
		f.SignExtend(low32(f, xo.RB), hir.TYPE_INT64), 0)
	v := f.Sha(p, const8(f, 32))
	f.StoreGPR(xo.RT, v)
	if xo.Rc {
		updateCR0(f, v)
	}
	return
}

func liftMulhwu(f Builder, i Instr) (err error) {
	xo := i.XO()
	if xo.OE {
		err = ErrInvalidOperand
		return
	}
	p := f.Mul(
		f.ZeroExtend(low32(f, xo.RA), hir.TYPE_INT64),
		f.ZeroExtend(low32(f, xo.RB), hir.TYPE_INT64), hir.ARITHMETIC_UNSIGNED)
	v := f.Shr(p, const8(f, 32))
	f.StoreGPR(xo.RT, v)
	if xo.Rc {
		updateCR0Unsigned(f, v)
	}
	return
}

func liftMulld(f Builder, i Instr) (err error) {
	// RT <- ((RA) × (RB))[64:127]
	xo := i.XO()
	if xo.OE {
		err = ErrUnimplemented
		return
	}
	v := f.Mul(f.LoadGPR(xo.RA), f.LoadGPR(xo.RB), 0)
	f.StoreGPR(xo.RT, v)
	if xo.Rc {
		updateCR0(f, v)
	}
	return
}

func liftMulli(f Builder, i Instr) (err error) {
	// RT <- ((RA) × EXTS(SI))[64:127]
	d := i.D()
	v := f.Mul(f.LoadGPR(d.RA), const64(f, exts16(d.DS)), 0)
	f.StoreGPR(d.RT, v)
	return
}

func liftMullw(f Builder, i Instr) (err error) {
	// RT <- (RA)[32:63] × (RB)[32:63]
	xo := i.XO()
	v := f.Mul(
		f.SignExtend(low32(f, xo.RA), hir.TYPE_INT64),
		f.SignExtend(low32(f, xo.RB), hir.TYPE_INT64), 0)
	f.StoreGPR(xo.RT, v)
	if xo.OE {
		// OV when the product does not fit in 32 signed bits.
		fits := f.CompareEQ(f.SignExtend(f.Truncate(v, hir.TYPE_INT32), hir.TYPE_INT64), v)
		f.StoreOV(f.IsFalse(fits))
	}
	if xo.Rc {
		updateCR0(f, v)
	}
	return
}

func liftNeg(f Builder, i Instr) (err error) {
	// RT <- ¬(RA) + 1
	xo := i.XO()
	var v *hir.Value
	if xo.OE {
		v = f.Sub(f.LoadZero(hir.TYPE_INT64), f.LoadGPR(xo.RA), hir.ARITHMETIC_SET_OVERFLOW)
	} else {
		v = f.Neg(f.LoadGPR(xo.RA))
	}
	finishXO(f, xo, v)
	return
}

func liftSubf(f Builder, i Instr) (err error) {
	// RT <- ¬(RA) + (RB) + 1
	xo := i.XO()
	v := f.Sub(f.LoadGPR(xo.RB), f.LoadGPR(xo.RA), overflowFlag(xo.OE))
	finishXO(f, xo, v)
	return
}

func liftSubfc(f Builder, i Instr) (err error) {
	// RT <- ¬(RA) + (RB) + 1
	// CA <- carry bit
	xo := i.XO()
	v := f.Sub(f.LoadGPR(xo.RB), f.LoadGPR(xo.RA), hir.ARITHMETIC_SET_CARRY|overflowFlag(xo.OE))
	f.StoreCA(f.DidCarry(v))
	finishXO(f, xo, v)
	return
}

func liftSubfe(f Builder, i Instr) (err error) {
	// RT <- ¬(RA) + (RB) + CA
	xo := i.XO()
	v := f.AddWithCarry(f.Not(f.LoadGPR(xo.RA)), f.LoadGPR(xo.RB), f.LoadCA(),
		hir.ARITHMETIC_SET_CARRY|overflowFlag(xo.OE))
	f.StoreCA(f.DidCarry(v))
	finishXO(f, xo, v)
	return
}

func liftSubfic(f Builder, i Instr) (err error) {
	// RT <- ¬(RA) + EXTS(SI) + 1
	d := i.D()
	v := f.Sub(const64(f, exts16(d.DS)), f.LoadGPR(d.RA), hir.ARITHMETIC_SET_CARRY)
	f.StoreCA(f.DidCarry(v))
	f.StoreGPR(d.RT, v)
	return
}

func liftSubfme(f Builder, i Instr) (err error) {
	// RT <- ¬(RA) + CA - 1
	xo := i.XO()
	v := f.AddWithCarry(f.Not(f.LoadGPR(xo.RA)), const64(f, ^uint64(0)), f.LoadCA(),
		hir.ARITHMETIC_SET_CARRY|overflowFlag(xo.OE))
	f.StoreCA(f.DidCarry(v))
	finishXO(f, xo, v)
	return
}

func liftSubfze(f Builder, i Instr) (err error) {
	// RT <- ¬(RA) + CA
	xo := i.XO()
	v := f.AddWithCarry(f.Not(f.LoadGPR(xo.RA)), f.LoadZero(hir.TYPE_INT64), f.LoadCA(),
		hir.ARITHMETIC_SET_CARRY|overflowFlag(xo.OE))
	f.StoreCA(f.DidCarry(v))
	finishXO(f, xo, v)
	return
}

// Integer compare

func compareRegs(f Builder, x XForm, signed bool) {
	bf, l := x.RT>>2, x.RT&1
	var lhs, rhs *hir.Value
	if l != 0 {
		lhs = f.LoadGPR(x.RA)
		rhs = f.LoadGPR(x.RB)
	} else {
		lhs = low32(f, x.RA)
		rhs = low32(f, x.RB)
	}
	f.UpdateCR(bf, lhs, rhs, signed)
}

func liftCmp(f Builder, i Instr) (err error) {
	compareRegs(f, i.X(), true)
	return
}

func liftCmpl(f Builder, i Instr) (err error) {
	compareRegs(f, i.X(), false)
	return
}

func liftCmpi(f Builder, i Instr) (err error) {
	d := i.D()
	bf, l := d.RT>>2, d.RT&1
	var lhs, rhs *hir.Value
	if l != 0 {
		lhs = f.LoadGPR(d.RA)
		rhs = const64(f, exts16(d.DS))
	} else {
		lhs = low32(f, d.RA)
		rhs = const32(f, uint32(exts16(d.DS)))
	}
	f.UpdateCR(bf, lhs, rhs, true)
	return
}

func liftCmpli(f Builder, i Instr) (err error) {
	d := i.D()
	bf, l := d.RT>>2, d.RT&1
	var lhs, rhs *hir.Value
	if l != 0 {
		lhs = f.LoadGPR(d.RA)
		rhs = const64(f, uint64(d.DS))
	} else {
		lhs = low32(f, d.RA)
		rhs = const32(f, d.DS)
	}
	f.UpdateCR(bf, lhs, rhs, false)
	return
}

// Integer logical

// finishX stores the result of an X-form instruction to RA, updating CR0
// first when Rc is set.
func finishX(f Builder, x XForm, v *hir.Value) {
	if x.Rc {
		updateCR0(f, v)
	}
	f.StoreGPR(x.RA, v)
}

func liftAnd(f Builder, i Instr) (err error) {
	// RA <- (RS) & (RB)
	x := i.X()
	finishX(f, x, f.And(f.LoadGPR(x.RT), f.LoadGPR(x.RB)))
	return
}

func liftAndc(f Builder, i Instr) (err error) {
	// RA <- (RS) & ¬(RB)
	x := i.X()
	finishX(f, x, f.And(f.LoadGPR(x.RT), f.Not(f.LoadGPR(x.RB))))
	return
}

func liftAndiDot(f Builder, i Instr) (err error) {
	// RA <- (RS) & (i48.0 || UI)
	d := i.D()
	v := f.And(f.LoadGPR(d.RT), const64(f, uint64(d.DS)))
	updateCR0(f, v)
	f.StoreGPR(d.RA, v)
	return
}

func liftAndisDot(f Builder, i Instr) (err error) {
	// RA <- (RS) & (i32.0 || UI || i16.0)
	d := i.D()
	v := f.And(f.LoadGPR(d.RT), const64(f, uint64(d.DS)<<16))
	updateCR0(f, v)
	f.StoreGPR(d.RA, v)
	return
}

func liftCntlzd(f Builder, i Instr) (err error) {
	x := i.X()
	v := f.ZeroExtend(f.CountLeadingZeros(f.LoadGPR(x.RT)), hir.TYPE_INT64)
	finishX(f, x, v)
	return
}

func liftCntlzw(f Builder, i Instr) (err error) {
	x := i.X()
	v := f.ZeroExtend(f.CountLeadingZeros(low32(f, x.RT)), hir.TYPE_INT64)
	finishX(f, x, v)
	return
}

func liftEqv(f Builder, i Instr) (err error) {
	// RA <- (RS) ≡ (RB)
	x := i.X()
	finishX(f, x, f.Not(f.Xor(f.LoadGPR(x.RT), f.LoadGPR(x.RB))))
	return
}

func extend(f Builder, i Instr, t hir.Type) {
	x := i.X()
	v := f.SignExtend(f.Truncate(f.LoadGPR(x.RT), t), hir.TYPE_INT64)
	finishX(f, x, v)
}

func liftExtsb(f Builder, i Instr) (err error) {
	extend(f, i, hir.TYPE_INT8)
	return
}

func liftExtsh(f Builder, i Instr) (err error) {
	extend(f, i, hir.TYPE_INT16)
	return
}

func liftExtsw(f Builder, i Instr) (err error) {
	extend(f, i, hir.TYPE_INT32)
	return
}

func liftNor(f Builder, i Instr) (err error) {
	// RA <- ¬((RS) | (RB))
	x := i.X()
	finishX(f, x, f.Not(f.Or(f.LoadGPR(x.RT), f.LoadGPR(x.RB))))
	return
}

func liftOr(f Builder, i Instr) (err error) {
	// RA <- (RS) | (RB)
	x := i.X()
	if x.RT == x.RB && x.RT == x.RA && !x.Rc {
		// or rX,rX,rX is a hint no-op.
		f.Nop()
		return
	}
	var v *hir.Value
	if x.RT == x.RB {
		v = f.LoadGPR(x.RT)
	} else {
		v = f.Or(f.LoadGPR(x.RT), f.LoadGPR(x.RB))
	}
	finishX(f, x, v)
	return
}

func liftOrc(f Builder, i Instr) (err error) {
	// RA <- (RS) | ¬(RB)
	x := i.X()
	finishX(f, x, f.Or(f.LoadGPR(x.RT), f.Not(f.LoadGPR(x.RB))))
	return
}

func liftOri(f Builder, i Instr) (err error) {
	// RA <- (RS) | (i48.0 || UI)
	d := i.D()
	if d.RT == 0 && d.RA == 0 && d.DS == 0 {
		f.Nop()
		return
	}
	f.StoreGPR(d.RA, f.Or(f.LoadGPR(d.RT), const64(f, uint64(d.DS))))
	return
}

func liftOris(f Builder, i Instr) (err error) {
	// RA <- (RS) | (i32.0 || UI || i16.0)
	d := i.D()
	f.StoreGPR(d.RA, f.Or(f.LoadGPR(d.RT), const64(f, uint64(d.DS)<<16)))
	return
}

func liftXor(f Builder, i Instr) (err error) {
	// RA <- (RS) XOR (RB)
	x := i.X()
	finishX(f, x, f.Xor(f.LoadGPR(x.RT), f.LoadGPR(x.RB)))
	return
}

func liftXori(f Builder, i Instr) (err error) {
	d := i.D()
	f.StoreGPR(d.RA, f.Xor(f.LoadGPR(d.RT), const64(f, uint64(d.DS))))
	return
}

func liftXoris(f Builder, i Instr) (err error) {
	d := i.D()
	f.StoreGPR(d.RA, f.Xor(f.LoadGPR(d.RT), const64(f, uint64(d.DS)<<16)))
	return
}

// Integer rotate

func rotate(f Builder, v *hir.Value, sh uint32) *hir.Value {
	if sh == 0 {
		return v
	}
	return f.RotateLeft(v, const8(f, sh))
}

func liftRlwinm(f Builder, i Instr) (err error) {
	// n <- SH
	// r <- ROTL32((RS)[32:63], n)
	// m <- MASK(MB+32, ME+32)
	// RA <- r & m
	m := i.M()
	v := rotate(f, low32(f, m.RT), m.SH)
	if m.MB != 0 || m.ME != 31 {
		v = f.And(v, const32(f, uint32(Mask(m.MB+32, m.ME+32))))
	}
	v = f.ZeroExtend(v, hir.TYPE_INT64)
	finishX(f, XForm{RA: m.RA, Rc: m.Rc}, v)
	return
}

func liftRlwnm(f Builder, i Instr) (err error) {
	// n <- (RB)[59:63]
	// r <- ROTL32((RS)[32:63], n)
	// m <- MASK(MB+32, ME+32)
	// RA <- r & m
	m := i.M()
	n := f.And(f.LoadGPR(m.SH), const64(f, 0x1f))
	v := f.RotateLeft(low32(f, m.RT), n)
	if m.MB != 0 || m.ME != 31 {
		v = f.And(v, const32(f, uint32(Mask(m.MB+32, m.ME+32))))
	}
	v = f.ZeroExtend(v, hir.TYPE_INT64)
	finishX(f, XForm{RA: m.RA, Rc: m.Rc}, v)
	return
}

func liftRlwimi(f Builder, i Instr) (err error) {
	// n <- SH
	// r <- ROTL32((RS)[32:63], n)
	// m <- MASK(MB+32, ME+32)
	// RA <- r&m | (RA)&¬m
	m := i.M()
	mask := uint32(Mask(m.MB+32, m.ME+32))
	v := rotate(f, low32(f, m.RT), m.SH)
	v = f.ZeroExtend(f.And(v, const32(f, mask)), hir.TYPE_INT64)
	v = f.Or(v, f.And(f.LoadGPR(m.RA), const64(f, ^uint64(mask))))
	finishX(f, XForm{RA: m.RA, Rc: m.Rc}, v)
	return
}

func liftRldicl(f Builder, i Instr) (err error) {
	// n <- sh[5] || sh[0:4]
	// r <- ROTL64((RS), n)
	// b <- mb[5] || mb[0:4]
	// m <- MASK(b, 63)
	// RA <- r & m
	md := i.MD()
	v := f.LoadGPR(md.RT)
	if md.MB != 0 && md.SH == 64-md.MB {
		v = f.Shr(v, const8(f, md.MB))
	} else {
		v = rotate(f, v, md.SH)
		if mask := Mask(md.MB, 63); mask != ^uint64(0) {
			v = f.And(v, const64(f, mask))
		}
	}
	finishX(f, XForm{RA: md.RA, Rc: md.Rc}, v)
	return
}

func liftRldicr(f Builder, i Instr) (err error) {
	// n <- sh[5] || sh[0:4]
	// r <- ROTL64((RS), n)
	// e <- me[5] || me[0:4]
	// m <- MASK(0, e)
	// RA <- r & m
	md := i.MD()
	v := f.LoadGPR(md.RT)
	if md.SH != 0 && md.MB == 63-md.SH {
		v = f.Shl(v, const8(f, md.SH))
	} else {
		v = rotate(f, v, md.SH)
		if mask := Mask(0, md.MB); mask != ^uint64(0) {
			v = f.And(v, const64(f, mask))
		}
	}
	finishX(f, XForm{RA: md.RA, Rc: md.Rc}, v)
	return
}

func liftRldic(f Builder, i Instr) (err error) {
	// n <- sh[5] || sh[0:4]
	// r <- ROTL64((RS), n)
	// b <- mb[5] || mb[0:4]
	// m <- MASK(b, ¬n)
	// RA <- r & m
	md := i.MD()
	v := rotate(f, f.LoadGPR(md.RT), md.SH)
	if mask := Mask(md.MB, ^md.SH&63); mask != ^uint64(0) {
		v = f.And(v, const64(f, mask))
	}
	finishX(f, XForm{RA: md.RA, Rc: md.Rc}, v)
	return
}

func liftRldimi(f Builder, i Instr) (err error) {
	// n <- sh[5] || sh[0:4]
	// r <- ROTL64((RS), n)
	// b <- mb[5] || mb[0:4]
	// m <- MASK(b, ¬n)
	// RA <- r&m | (RA)&¬m
	md := i.MD()
	v := rotate(f, f.LoadGPR(md.RT), md.SH)
	if mask := Mask(md.MB, ^md.SH&63); mask != ^uint64(0) {
		v = f.Or(
			f.And(v, const64(f, mask)),
			f.And(f.LoadGPR(md.RA), const64(f, ^mask)))
	}
	finishX(f, XForm{RA: md.RA, Rc: md.Rc}, v)
	return
}

func rotateByRegister(f Builder, mds MDSForm) *hir.Value {
	n := f.And(f.LoadGPR(mds.RB), const64(f, 0x3f))
	return f.RotateLeft(f.LoadGPR(mds.RT), n)
}

func liftRldcl(f Builder, i Instr) (err error) {
	// n <- (RB)[58:63]
	// r <- ROTL64((RS), n)
	// m <- MASK(b, 63)
	mds := i.MDS()
	v := rotateByRegister(f, mds)
	if mask := Mask(mds.MB, 63); mask != ^uint64(0) {
		v = f.And(v, const64(f, mask))
	}
	finishX(f, XForm{RA: mds.RA, Rc: mds.Rc}, v)
	return
}

func liftRldcr(f Builder, i Instr) (err error) {
	// n <- (RB)[58:63]
	// r <- ROTL64((RS), n)
	// m <- MASK(0, e)
	mds := i.MDS()
	v := rotateByRegister(f, mds)
	if mask := Mask(0, mds.MB); mask != ^uint64(0) {
		v = f.And(v, const64(f, mask))
	}
	finishX(f, XForm{RA: mds.RA, Rc: mds.Rc}, v)
	return
}

// Integer shift

func liftSld(f Builder, i Instr) (err error) {
	// RA <- (RS) << (RB)[57:63], zero above 63
	x := i.X()
	n := f.And(f.LoadGPR(x.RB), const64(f, 0x7f))
	finishX(f, x, f.Shl(f.LoadGPR(x.RT), n))
	return
}

func liftSrd(f Builder, i Instr) (err error) {
	// RA <- (RS) >> (RB)[57:63], zero above 63
	x := i.X()
	n := f.And(f.LoadGPR(x.RB), const64(f, 0x7f))
	finishX(f, x, f.Shr(f.LoadGPR(x.RT), n))
	return
}

func liftSlw(f Builder, i Instr) (err error) {
	// RA[32:63] <- (RS)[32:63] << (RB)[58:63], zero above 31
	x := i.X()
	n := f.And(f.LoadGPR(x.RB), const64(f, 0x3f))
	v := f.ZeroExtend(f.Shl(low32(f, x.RT), n), hir.TYPE_INT64)
	finishX(f, x, v)
	return
}

func liftSrw(f Builder, i Instr) (err error) {
	// RA[32:63] <- (RS)[32:63] >> (RB)[58:63], zero above 31
	x := i.X()
	n := f.And(f.LoadGPR(x.RB), const64(f, 0x3f))
	v := f.ZeroExtend(f.Shr(low32(f, x.RT), n), hir.TYPE_INT64)
	finishX(f, x, v)
	return
}

// shiftAlgebraic returns rs >> n with the sign filled in, and the CA
// value: set when rs is negative and any one bit was shifted out.
func shiftAlgebraic(f Builder, rs, n *hir.Value) (v, ca *hir.Value) {
	sign := const8(f, uint32(rs.Type.Bits()-1))
	v = f.Sha(rs, n)
	ca = f.And(
		f.IsTrue(f.Shr(rs, sign)),
		f.IsFalse(f.CompareEQ(f.Shl(v, n), rs)))
	return
}

func liftSrad(f Builder, i Instr) (err error) {
	// n <- (RB)[57:63]
	// RA <- EXTS((RS) >> n)
	// CA <- (RS) < 0 & any one bits shifted out
	x := i.X()
	n := f.And(f.LoadGPR(x.RB), const64(f, 0x7f))
	v, ca := shiftAlgebraic(f, f.LoadGPR(x.RT), n)
	f.StoreCA(ca)
	finishX(f, x, v)
	return
}

func liftSraw(f Builder, i Instr) (err error) {
	// n <- (RB)[58:63]
	// RA <- EXTS((RS)[32:63] >> n)
	// CA <- (RS)[32] & any one bits shifted out
	x := i.X()
	n := f.And(f.LoadGPR(x.RB), const64(f, 0x3f))
	v, ca := shiftAlgebraic(f, low32(f, x.RT), n)
	f.StoreCA(ca)
	finishX(f, x, f.SignExtend(v, hir.TYPE_INT64))
	return
}

func liftSrawi(f Builder, i Instr) (err error) {
	// n <- SH
	// RA <- EXTS((RS)[32:63] >> n)
	// CA <- (RS)[32] & any one bits shifted out
	x := i.X()
	sh := x.RB
	v := low32(f, x.RT)
	if sh == 0 {
		f.StoreCA(f.LoadZero(hir.TYPE_INT8))
		finishX(f, x, f.SignExtend(v, hir.TYPE_INT64))
		return
	}
	ca := f.And(
		f.IsTrue(f.Shr(v, const8(f, 31))),
		f.IsTrue(f.And(v, const32(f, uint32(Mask(64-sh, 63))))))
	f.StoreCA(ca)
	finishX(f, x, f.SignExtend(f.Sha(v, const8(f, sh)), hir.TYPE_INT64))
	return
}

func liftSradi(f Builder, i Instr) (err error) {
	// n <- sh[5] || sh[0:4]
	// RA <- EXTS((RS) >> n)
	// CA <- (RS)[0] & any one bits shifted out
	xs := i.XS()
	x := XForm{RA: xs.RA, Rc: xs.Rc}
	v := f.LoadGPR(xs.RT)
	if xs.SH == 0 {
		f.StoreCA(f.LoadZero(hir.TYPE_INT8))
		finishX(f, x, v)
		return
	}
	ca := f.And(
		f.IsTrue(f.Shr(v, const8(f, 63))),
		f.IsTrue(f.And(v, const64(f, Mask(64-xs.SH, 63)))))
	f.StoreCA(ca)
	finishX(f, x, f.Sha(v, const8(f, xs.SH)))
	return
}
