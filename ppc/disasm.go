package ppc

import (
	"fmt"
	"strings"
)

// suffix returns the mnemonic suffix selected by the optional bits of code.
func (entry *Entry) suffix(code uint32) (text string) {
	if entry.Flags&ENTRY_OE != 0 && bit(code, 10) {
		text += "o"
	}
	if entry.Flags&ENTRY_RC != 0 && bit(code, 0) {
		text += "."
	}
	if entry.Flags&ENTRY_LK != 0 && bit(code, 0) {
		text += "l"
	}
	if entry.Flags&ENTRY_AA != 0 && bit(code, 1) {
		text += "a"
	}
	return
}

// Disasm returns the instruction in assembler syntax.
//
// Displacements followed by RA are written as d(rA). Branch operands are
// written as target addresses.
func (entry *Entry) Disasm(instr Instr) string {
	var args []string

	ops := entry.Operands
	for n := 0; n < len(ops); n++ {
		op := ops[n]
		value := op.Extract(instr.Code)
		switch {
		case (op == OPERAND_D || op == OPERAND_DS) && n+1 < len(ops) && ops[n+1] == OPERAND_RA:
			ra := OPERAND_RA.Extract(instr.Code)
			args = append(args, fmt.Sprintf("%d(%v)", value, OPERAND_RA.Format(ra)))
			n++
		case op == OPERAND_LI || op == OPERAND_BD:
			target := uint64(value)
			if !bit(instr.Code, 1) {
				target += instr.Address
			}
			args = append(args, fmt.Sprintf("0x%x", target))
		default:
			args = append(args, op.Format(value))
		}
	}

	text := entry.Mnemonic.String() + entry.suffix(instr.Code)
	if len(args) == 0 {
		return text
	}

	return text + " " + strings.Join(args, ", ")
}

// Disasm returns the instruction in assembler syntax, or a .long directive
// for an unassigned word.
func (table *Table) Disasm(instr Instr) string {
	entry := table.Lookup(instr.Code)
	if entry == nil {
		return fmt.Sprintf(".long 0x%08x", instr.Code)
	}
	return entry.Disasm(instr)
}
