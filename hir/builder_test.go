package hir_test

import (
	"github.com/ezrec/ppclift/hir"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	var b *hir.Builder

	BeforeEach(func() {
		b = hir.NewBuilder()
	})

	It("should number values in definition order", func() {
		r1 := b.LoadGPR(1)
		r2 := b.LoadGPR(2)
		sum := b.Add(r1, r2, 0)
		b.StoreGPR(3, sum)

		Expect(r1.ID).To(Equal(0))
		Expect(r2.ID).To(Equal(1))
		Expect(sum.ID).To(Equal(2))
		Expect(sum.Def.Opcode).To(Equal(hir.OPCODE_ADD))
		Expect(b.Len()).To(Equal(4))
	})

	It("should not emit instructions for constants", func() {
		k := b.LoadConstant(hir.TYPE_INT16, 0x12345)

		Expect(k.IsConstant()).To(BeTrue())
		Expect(k.Constant).To(Equal(uint64(0x2345)))
		Expect(b.LoadZero(hir.TYPE_INT64).Constant).To(BeZero())
		Expect(b.Len()).To(BeZero())
	})

	It("should elide same-width conversions", func() {
		r := b.LoadGPR(4)

		Expect(b.Truncate(r, hir.TYPE_INT64)).To(BeIdenticalTo(r))
		Expect(b.SignExtend(r, hir.TYPE_INT64)).To(BeIdenticalTo(r))
		Expect(b.ZeroExtend(r, hir.TYPE_INT64)).To(BeIdenticalTo(r))
		Expect(b.Len()).To(Equal(1))
	})

	It("should reject mismatched operand types", func() {
		r := b.LoadGPR(1)
		w := b.Truncate(r, hir.TYPE_INT32)

		Expect(func() { b.Add(r, w, 0) }).To(Panic())
		Expect(func() { b.StoreGPR(1, w) }).To(Panic())
		Expect(func() { b.StoreCA(w) }).To(Panic())
		Expect(func() { b.ZeroExtend(r, hir.TYPE_INT32) }).To(Panic())
	})

	It("should only capture flags that were requested", func() {
		r := b.LoadGPR(1)
		plain := b.Add(r, r, 0)
		carried := b.Add(r, r, hir.ARITHMETIC_SET_CARRY)

		Expect(func() { b.DidCarry(plain) }).To(Panic())
		Expect(func() { b.DidOverflow(carried) }).To(Panic())
		Expect(b.DidCarry(carried).Type).To(Equal(hir.TYPE_INT8))
	})

	It("should reset when the function is taken", func() {
		b.Nop()
		fn := b.Function("f")

		Expect(fn.Instrs).To(HaveLen(1))
		Expect(fn.Count(hir.OPCODE_NOP)).To(Equal(1))
		Expect(b.Len()).To(BeZero())
	})

	It("should list instructions", func() {
		b.SourceOffset(0x1000)
		r1 := b.LoadGPR(1)
		sum := b.Add(r1, b.LoadConstant(hir.TYPE_INT64, 5), hir.ARITHMETIC_SET_CARRY)
		b.StoreCA(b.DidCarry(sum))
		b.UpdateCR(0, sum, b.LoadZero(hir.TYPE_INT64), true)

		listing := b.Function("addic").String()

		Expect(listing).To(HavePrefix("addic:\n; 0x00001000\n"))
		Expect(listing).To(ContainSubstring("v0:i64 = load_gpr r1"))
		Expect(listing).To(ContainSubstring("v1:i64 = add v0, 0x5:i64 [carry]"))
		Expect(listing).To(ContainSubstring("store_ca v2"))
		Expect(listing).To(ContainSubstring("update_cr cr0, v1, 0x0:i64"))
	})
})

var _ = Describe("hir.ArithmeticFlags", func() {
	It("should name each flag", func() {
		Expect(hir.ArithmeticFlags(0).String()).To(BeEmpty())
		Expect((hir.ARITHMETIC_SET_CARRY | hir.ARITHMETIC_UNSIGNED).String()).To(Equal("carry|unsigned"))
	})
})

var _ = Describe("Type", func() {
	DescribeTable("sign extension",
		func(t hir.Type, in uint64, out uint64) {
			Expect(t.SignExtend(in)).To(Equal(out))
		},
		Entry("i8 negative", hir.TYPE_INT8, uint64(0x80), uint64(0xFFFFFFFFFFFFFF80)),
		Entry("i8 positive", hir.TYPE_INT8, uint64(0x17F), uint64(0x7F)),
		Entry("i16 negative", hir.TYPE_INT16, uint64(0xFFFF), ^uint64(0)),
		Entry("i32 negative", hir.TYPE_INT32, uint64(0x80000000), uint64(0xFFFFFFFF80000000)),
		Entry("i64", hir.TYPE_INT64, uint64(0x8000000000000000), uint64(0x8000000000000000)),
	)
})
