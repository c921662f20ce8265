package hir

import (
	"fmt"
	"strings"
)

// Instr is a single HIR instruction.
type Instr struct {
	Opcode  Opcode
	Flags   ArithmeticFlags
	Dest    *Value   // Defined value, nil for stores and markers.
	Src     []*Value // Operands.
	Index   uint32   // GPR or CR field number.
	Address uint64   // Guest address for OPCODE_SOURCE_OFFSET.
}

func (in *Instr) String() string {
	var sb strings.Builder

	if in.Dest != nil {
		fmt.Fprintf(&sb, "%v:%v = ", in.Dest, in.Dest.Type)
	}
	sb.WriteString(in.Opcode.String())

	var args []string
	switch in.Opcode {
	case OPCODE_SOURCE_OFFSET:
		args = append(args, fmt.Sprintf("0x%08x", in.Address))
	case OPCODE_LOAD_GPR, OPCODE_STORE_GPR:
		args = append(args, fmt.Sprintf("r%d", in.Index))
	case OPCODE_UPDATE_CR:
		args = append(args, fmt.Sprintf("cr%d", in.Index))
	}
	for _, src := range in.Src {
		args = append(args, src.String())
	}
	if len(args) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(args, ", "))
	}
	if in.Flags != 0 {
		fmt.Fprintf(&sb, " [%v]", in.Flags)
	}

	return sb.String()
}
