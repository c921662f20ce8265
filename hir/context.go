package hir

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/ppclift/internal"
)

// Condition register field bits.
const (
	CR_LT = uint8(0b1000)
	CR_GT = uint8(0b0100)
	CR_EQ = uint8(0b0010)
	CR_SO = uint8(0b0001)
)

// XER flag bits, as seen in the low word of the register.
const (
	XER_SO = uint64(1) << 31
	XER_OV = uint64(1) << 30
	XER_CA = uint64(1) << 29
)

// Context is the architectural integer state touched by lifted code.
type Context struct {
	GPR [32]uint64
	CR  [8]uint8 // Fields cr0..cr7, LT|GT|EQ|SO.
	CA  bool
	OV  bool
	SO  bool

	Address uint64 // Guest address of the last source offset.
}

// XER returns the SO, OV and CA bits of the fixed-point exception register.
func (ctx *Context) XER() (xer uint64) {
	if ctx.SO {
		xer |= XER_SO
	}
	if ctx.OV {
		xer |= XER_OV
	}
	if ctx.CA {
		xer |= XER_CA
	}
	return
}

// CRWord returns the 32-bit condition register, cr0 in the high nibble.
func (ctx *Context) CRWord() (cr uint32) {
	for n, field := range ctx.CR {
		cr |= uint32(field&0xf) << (28 - 4*n)
	}
	return
}

func (ctx *Context) gprs() iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		for n, value := range ctx.GPR {
			if !yield(fmt.Sprintf("r%d", n), value) {
				return
			}
		}
	}
}

func (ctx *Context) special() iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		if !yield("cr", uint64(ctx.CRWord())) {
			return
		}
		yield("xer", ctx.XER())
	}
}

// Registers iterates over every register name and value, GPRs first.
func (ctx *Context) Registers() iter.Seq2[string, uint64] {
	return internal.IterSeq2Concat(ctx.gprs(), ctx.special())
}

// CRField formats a condition register field as its set flag names.
func CRField(field uint8) string {
	var names []string
	for _, bit := range []struct {
		mask uint8
		name string
	}{{CR_LT, "lt"}, {CR_GT, "gt"}, {CR_EQ, "eq"}, {CR_SO, "so"}} {
		if field&bit.mask != 0 {
			names = append(names, bit.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "|")
}

// Table renders the register state as a text table.
func (ctx *Context) Table() string {
	regTable := table.NewWriter()
	regTable.SetTitle(fmt.Sprintf("State @ 0x%08x", ctx.Address))
	regTable.AppendHeader(table.Row{"Reg", "Value", "Reg", "Value", "Reg", "Value", "Reg", "Value"})

	for row := 0; row < 8; row++ {
		regRow := make(table.Row, 0, 8)
		for col := 0; col < 4; col++ {
			n := col*8 + row
			regRow = append(regRow, fmt.Sprintf("r%d", n), fmt.Sprintf("0x%016x", ctx.GPR[n]))
		}
		regTable.AppendRow(regRow)
	}

	regTable.AppendSeparator()
	crRow := table.Row{}
	for n, field := range ctx.CR {
		if n == 4 {
			regTable.AppendRow(crRow)
			crRow = table.Row{}
		}
		crRow = append(crRow, fmt.Sprintf("cr%d", n), CRField(field))
	}
	regTable.AppendRow(crRow)

	regTable.AppendRow(table.Row{
		"ca", ctx.CA,
		"ov", ctx.OV,
		"so", ctx.SO,
		"xer", fmt.Sprintf("0x%08x", ctx.XER()),
	})

	return regTable.Render()
}
