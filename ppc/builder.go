package ppc

import (
	"github.com/ezrec/ppclift/hir"
)

//go:generate go tool mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_builder_test.go github.com/ezrec/ppclift/ppc Builder

// Builder is the HIR construction interface the lifters emit into.
//
// Guest register state is only reachable through the load, store and update
// methods. Values are single-assignment and owned by the builder.
type Builder interface {
	LoadGPR(reg uint32) *hir.Value
	StoreGPR(reg uint32, v *hir.Value)
	LoadCA() *hir.Value
	StoreCA(v *hir.Value)
	StoreOV(v *hir.Value)
	UpdateCR(n uint32, lhs, rhs *hir.Value, signed bool)

	LoadConstant(t hir.Type, value uint64) *hir.Value
	LoadZero(t hir.Type) *hir.Value

	Add(x, y *hir.Value, flags hir.ArithmeticFlags) *hir.Value
	AddWithCarry(x, y, carry *hir.Value, flags hir.ArithmeticFlags) *hir.Value
	Sub(x, y *hir.Value, flags hir.ArithmeticFlags) *hir.Value
	Mul(x, y *hir.Value, flags hir.ArithmeticFlags) *hir.Value
	Div(x, y *hir.Value, flags hir.ArithmeticFlags) *hir.Value
	Neg(x *hir.Value) *hir.Value
	Not(x *hir.Value) *hir.Value
	And(x, y *hir.Value) *hir.Value
	Or(x, y *hir.Value) *hir.Value
	Xor(x, y *hir.Value) *hir.Value
	Shl(x, n *hir.Value) *hir.Value
	Shr(x, n *hir.Value) *hir.Value
	Sha(x, n *hir.Value) *hir.Value
	RotateLeft(x, n *hir.Value) *hir.Value

	Truncate(x *hir.Value, t hir.Type) *hir.Value
	SignExtend(x *hir.Value, t hir.Type) *hir.Value
	ZeroExtend(x *hir.Value, t hir.Type) *hir.Value

	DidCarry(x *hir.Value) *hir.Value
	DidOverflow(x *hir.Value) *hir.Value
	IsTrue(x *hir.Value) *hir.Value
	IsFalse(x *hir.Value) *hir.Value
	CompareEQ(x, y *hir.Value) *hir.Value
	CountLeadingZeros(x *hir.Value) *hir.Value

	Nop()
	DebugBreak()
}

// SourceMarker is implemented by builders that record guest addresses.
type SourceMarker interface {
	SourceOffset(address uint64)
}

var (
	_ Builder      = (*hir.Builder)(nil)
	_ SourceMarker = (*hir.Builder)(nil)
)
