package hir

// Type is the integer type carried by a Value.
type Type int

//go:generate go tool stringer -linecomment -type=Type
const (
	TYPE_INT8  = Type(0) // i8
	TYPE_INT16 = Type(1) // i16
	TYPE_INT32 = Type(2) // i32
	TYPE_INT64 = Type(3) // i64
)

// Bits returns the width of the type.
func (t Type) Bits() uint {
	return 8 << uint(t)
}

// Mask returns the all-ones value of the type.
func (t Type) Mask() uint64 {
	if t == TYPE_INT64 {
		return ^uint64(0)
	}
	return (uint64(1) << t.Bits()) - 1
}

// SignBit returns the most significant bit of the type.
func (t Type) SignBit() uint64 {
	return uint64(1) << (t.Bits() - 1)
}

// Truncate drops all bits above the width of the type.
func (t Type) Truncate(value uint64) uint64 {
	return value & t.Mask()
}

// SignExtend extends a value of this type to 64 bits, copying the sign bit.
func (t Type) SignExtend(value uint64) uint64 {
	value &= t.Mask()
	if value&t.SignBit() != 0 {
		value |= ^t.Mask()
	}
	return value
}
