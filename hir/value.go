package hir

import (
	"fmt"
)

// Value is a single-assignment HIR value.
//
// A constant Value has a nil Def and carries its bits in Constant.
type Value struct {
	ID       int
	Type     Type
	Def      *Instr
	Constant uint64
}

// IsConstant returns true if the value is a literal.
func (v *Value) IsConstant() bool {
	return v.Def == nil
}

func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.IsConstant() {
		return fmt.Sprintf("0x%x:%v", v.Constant, v.Type)
	}
	return fmt.Sprintf("v%d", v.ID)
}
