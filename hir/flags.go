package hir

import (
	"strings"
)

// ArithmeticFlags modify arithmetic and comparison instructions.
type ArithmeticFlags uint8

const (
	ARITHMETIC_SET_CARRY    = ArithmeticFlags(1 << 0) // Capture the unsigned carry-out.
	ARITHMETIC_SET_OVERFLOW = ArithmeticFlags(1 << 1) // Capture the signed overflow.
	ARITHMETIC_UNSIGNED     = ArithmeticFlags(1 << 2) // Operands are unsigned.
)

var flagNames = []struct {
	flag ArithmeticFlags
	name string
}{
	{ARITHMETIC_SET_CARRY, "carry"},
	{ARITHMETIC_SET_OVERFLOW, "overflow"},
	{ARITHMETIC_UNSIGNED, "unsigned"},
}

// Has returns true if all of the flags in want are set.
func (flags ArithmeticFlags) Has(want ArithmeticFlags) bool {
	return flags&want == want
}

// String returns the '|' separated flag names.
func (flags ArithmeticFlags) String() string {
	var names []string
	for _, fn := range flagNames {
		if flags.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
