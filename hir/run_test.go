package hir_test

import (
	"github.com/ezrec/ppclift/hir"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Function.Run", func() {
	var (
		b   *hir.Builder
		ctx *hir.Context
	)

	BeforeEach(func() {
		b = hir.NewBuilder()
		ctx = &hir.Context{}
	})

	run := func() {
		Expect(b.Function("test").Run(ctx)).To(Succeed())
	}

	It("should add modulo 2^64 and capture the carry", func() {
		ctx.GPR[1] = 0xFFFFFFFFFFFFFFFF
		ctx.GPR[2] = 2
		sum := b.Add(b.LoadGPR(1), b.LoadGPR(2), hir.ARITHMETIC_SET_CARRY)
		b.StoreGPR(3, sum)
		b.StoreCA(b.DidCarry(sum))
		run()

		Expect(ctx.GPR[3]).To(Equal(uint64(1)))
		Expect(ctx.CA).To(BeTrue())
	})

	It("should add with carry in", func() {
		ctx.GPR[1] = 10
		ctx.CA = true
		sum := b.AddWithCarry(b.LoadGPR(1), b.LoadConstant(hir.TYPE_INT64, 5), b.LoadCA(), hir.ARITHMETIC_SET_CARRY)
		b.StoreGPR(2, sum)
		b.StoreCA(b.DidCarry(sum))
		run()

		Expect(ctx.GPR[2]).To(Equal(uint64(16)))
		Expect(ctx.CA).To(BeFalse())
	})

	DescribeTable("subtraction carry means no borrow",
		func(x, y uint64, diff uint64, carry bool) {
			ctx.GPR[1] = x
			ctx.GPR[2] = y
			d := b.Sub(b.LoadGPR(1), b.LoadGPR(2), hir.ARITHMETIC_SET_CARRY)
			b.StoreGPR(3, d)
			b.StoreCA(b.DidCarry(d))
			run()

			Expect(ctx.GPR[3]).To(Equal(diff))
			Expect(ctx.CA).To(Equal(carry))
		},
		Entry("greater", uint64(5), uint64(3), uint64(2), true),
		Entry("equal", uint64(3), uint64(3), uint64(0), true),
		Entry("borrow", uint64(3), uint64(5), uint64(0xFFFFFFFFFFFFFFFE), false),
	)

	It("should fold overflow into summary overflow", func() {
		ctx.GPR[1] = 0x7FFFFFFFFFFFFFFF
		sum := b.Add(b.LoadGPR(1), b.LoadConstant(hir.TYPE_INT64, 1), hir.ARITHMETIC_SET_OVERFLOW)
		b.StoreOV(b.DidOverflow(sum))
		b.UpdateCR(0, sum, b.LoadZero(hir.TYPE_INT64), true)
		run()

		Expect(ctx.OV).To(BeTrue())
		Expect(ctx.SO).To(BeTrue())
		Expect(ctx.CR[0]).To(Equal(hir.CR_LT | hir.CR_SO))

		ctx.GPR[1] = 1
		b.StoreOV(b.DidOverflow(b.Add(b.LoadGPR(1), b.LoadGPR(1), hir.ARITHMETIC_SET_OVERFLOW)))
		run()

		Expect(ctx.OV).To(BeFalse())
		Expect(ctx.SO).To(BeTrue())
	})

	DescribeTable("compare",
		func(lhs, rhs uint64, signed bool, field uint8) {
			ctx.GPR[1] = lhs
			ctx.GPR[2] = rhs
			b.UpdateCR(7, b.LoadGPR(1), b.LoadGPR(2), signed)
			run()

			Expect(ctx.CR[7]).To(Equal(field))
		},
		Entry("signed less", ^uint64(0), uint64(1), true, hir.CR_LT),
		Entry("unsigned greater", ^uint64(0), uint64(1), false, hir.CR_GT),
		Entry("equal", uint64(9), uint64(9), true, hir.CR_EQ),
	)

	It("should compare narrow values by their own width", func() {
		ctx.GPR[1] = 0x00000000_80000000
		w := b.Truncate(b.LoadGPR(1), hir.TYPE_INT32)
		b.UpdateCR(1, w, b.LoadZero(hir.TYPE_INT32), true)
		b.UpdateCR(2, w, b.LoadZero(hir.TYPE_INT32), false)
		run()

		Expect(ctx.CR[1]).To(Equal(hir.CR_LT))
		Expect(ctx.CR[2]).To(Equal(hir.CR_GT))
	})

	DescribeTable("shifts saturate at the type width",
		func(op hir.Opcode, x uint64, n uint64, out uint64) {
			ctx.GPR[1] = x
			v := b.Truncate(b.LoadGPR(1), hir.TYPE_INT32)
			amount := b.LoadConstant(hir.TYPE_INT8, n)
			var r *hir.Value
			switch op {
			case hir.OPCODE_SHL:
				r = b.Shl(v, amount)
			case hir.OPCODE_SHR:
				r = b.Shr(v, amount)
			case hir.OPCODE_SHA:
				r = b.Sha(v, amount)
			case hir.OPCODE_ROTATE_LEFT:
				r = b.RotateLeft(v, amount)
			}
			b.StoreGPR(2, b.ZeroExtend(r, hir.TYPE_INT64))
			run()

			Expect(ctx.GPR[2]).To(Equal(out))
		},
		Entry("shl", hir.OPCODE_SHL, uint64(0x80000001), uint64(1), uint64(2)),
		Entry("shl 32", hir.OPCODE_SHL, uint64(1), uint64(32), uint64(0)),
		Entry("shr 40", hir.OPCODE_SHR, uint64(0xFFFFFFFF), uint64(40), uint64(0)),
		Entry("sha negative", hir.OPCODE_SHA, uint64(0x80000000), uint64(4), uint64(0xF8000000)),
		Entry("sha 63", hir.OPCODE_SHA, uint64(0x80000000), uint64(63), uint64(0xFFFFFFFF)),
		Entry("rotate", hir.OPCODE_ROTATE_LEFT, uint64(0x80000001), uint64(4), uint64(0x00000018)),
		Entry("rotate zero", hir.OPCODE_ROTATE_LEFT, uint64(0x12345678), uint64(0), uint64(0x12345678)),
	)

	DescribeTable("division never traps",
		func(x, y uint64, flags hir.ArithmeticFlags, q uint64) {
			ctx.GPR[1] = x
			ctx.GPR[2] = y
			b.StoreGPR(3, b.Div(b.LoadGPR(1), b.LoadGPR(2), flags))
			run()

			Expect(ctx.GPR[3]).To(Equal(q))
		},
		Entry("signed", uint64(0xFFFFFFFFFFFFFFF6), uint64(3), hir.ArithmeticFlags(0), uint64(0xFFFFFFFFFFFFFFFD)),
		Entry("unsigned", uint64(0xFFFFFFFFFFFFFFF6), uint64(3), hir.ARITHMETIC_UNSIGNED, uint64(0x5555555555555552)),
		Entry("by zero", uint64(7), uint64(0), hir.ArithmeticFlags(0), uint64(0)),
		Entry("min by -1", uint64(0x8000000000000000), ^uint64(0), hir.ArithmeticFlags(0), uint64(0x8000000000000000)),
	)

	It("should sign and zero extend", func() {
		ctx.GPR[1] = 0x1234_5680
		lo := b.Truncate(b.LoadGPR(1), hir.TYPE_INT8)
		b.StoreGPR(2, b.SignExtend(lo, hir.TYPE_INT64))
		b.StoreGPR(3, b.ZeroExtend(lo, hir.TYPE_INT64))
		run()

		Expect(ctx.GPR[2]).To(Equal(uint64(0xFFFFFFFFFFFFFF80)))
		Expect(ctx.GPR[3]).To(Equal(uint64(0x80)))
	})

	It("should count leading zeros at the operand width", func() {
		ctx.GPR[1] = 0x0000_0001_0000_0000
		r := b.LoadGPR(1)
		b.StoreGPR(2, b.ZeroExtend(b.CountLeadingZeros(r), hir.TYPE_INT64))
		b.StoreGPR(3, b.ZeroExtend(b.CountLeadingZeros(b.Truncate(r, hir.TYPE_INT32)), hir.TYPE_INT64))
		run()

		Expect(ctx.GPR[2]).To(Equal(uint64(31)))
		Expect(ctx.GPR[3]).To(Equal(uint64(32)))
	})

	It("should stop at a debug break", func() {
		b.DebugBreak()
		b.StoreGPR(1, b.LoadConstant(hir.TYPE_INT64, 1))
		err := b.Function("trap").Run(ctx)

		Expect(err).To(MatchError(hir.ErrDebugBreak))
		Expect(ctx.GPR[1]).To(BeZero())
	})

	It("should track the source offset", func() {
		b.SourceOffset(0x8200_0010)
		run()

		Expect(ctx.Address).To(Equal(uint64(0x8200_0010)))
	})
})
