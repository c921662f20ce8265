package hir

import (
	"fmt"
	"strings"
)

// Function is a finished list of HIR instructions.
type Function struct {
	Name   string
	Instrs []*Instr
	Values int // Number of non-constant values defined.
}

// Count returns the number of instructions with the given opcode.
func (fn *Function) Count(op Opcode) (count int) {
	for _, in := range fn.Instrs {
		if in.Opcode == op {
			count++
		}
	}
	return
}

// String returns the function listing, one instruction per line.
func (fn *Function) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%v:\n", fn.Name)
	for _, in := range fn.Instrs {
		if in.Opcode == OPCODE_SOURCE_OFFSET {
			fmt.Fprintf(&sb, "; 0x%08x\n", in.Address)
			continue
		}
		fmt.Fprintf(&sb, "    %v\n", in)
	}

	return sb.String()
}
