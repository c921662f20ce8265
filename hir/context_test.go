package hir_test

import (
	"github.com/ezrec/ppclift/hir"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Context", func() {
	var ctx *hir.Context

	BeforeEach(func() {
		ctx = &hir.Context{}
	})

	It("should pack the condition register with cr0 high", func() {
		ctx.CR[0] = hir.CR_LT
		ctx.CR[7] = hir.CR_EQ | hir.CR_SO

		Expect(ctx.CRWord()).To(Equal(uint32(0x80000003)))
	})

	It("should pack the XER flags", func() {
		ctx.SO = true
		ctx.CA = true

		Expect(ctx.XER()).To(Equal(hir.XER_SO | hir.XER_CA))
	})

	It("should iterate GPRs before special registers", func() {
		ctx.GPR[31] = 0x1f
		var names []string
		var last uint64
		for name, value := range ctx.Registers() {
			names = append(names, name)
			if name == "r31" {
				last = value
			}
		}

		Expect(names).To(HaveLen(34))
		Expect(names[0]).To(Equal("r0"))
		Expect(names[32:]).To(Equal([]string{"cr", "xer"}))
		Expect(last).To(Equal(uint64(0x1f)))
	})

	It("should stop iterating early", func() {
		count := 0
		for range ctx.Registers() {
			count++
			if count == 3 {
				break
			}
		}

		Expect(count).To(Equal(3))
	})

	It("should render a register table", func() {
		ctx.GPR[3] = 0xdead
		ctx.CR[0] = hir.CR_GT | hir.CR_SO
		ctx.CA = true

		out := ctx.Table()

		Expect(out).To(ContainSubstring("0x000000000000dead"))
		Expect(out).To(ContainSubstring("gt|so"))
		Expect(out).To(ContainSubstring("0x20000000"))
	})

	It("should name empty condition fields", func() {
		Expect(hir.CRField(0)).To(Equal("-"))
		Expect(hir.CRField(hir.CR_LT | hir.CR_EQ)).To(Equal("lt|eq"))
	})
})
