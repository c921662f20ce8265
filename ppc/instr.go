package ppc

import (
	"encoding/binary"
	"fmt"
	"iter"
)

// Instr is a guest instruction word at a guest address.
//
// Every form view decodes the same word; the dispatch table decides which
// view is meaningful.
type Instr struct {
	Address uint64
	Code    uint32
}

// ReadInstr decodes the big-endian instruction word at the start of data.
func ReadInstr(address uint64, data []byte) (instr Instr, err error) {
	if len(data) < 4 {
		err = ErrInstrShort
		return
	}

	instr = Instr{
		Address: address,
		Code:    binary.BigEndian.Uint32(data),
	}
	return
}

func (i Instr) String() string {
	return fmt.Sprintf("0x%08x: %08x", i.Address, i.Code)
}

func bit(code uint32, n uint) bool {
	return (code>>n)&1 != 0
}

func bits5(code uint32, shift uint) uint32 {
	return (code >> shift) & 0x1f
}

// Primary returns the primary opcode, bits 26..31.
func (i Instr) Primary() uint32 {
	return i.Code >> 26
}

// ExtendedX returns the 10-bit extended opcode of the X, XL and XFX forms.
func (i Instr) ExtendedX() uint32 {
	return (i.Code >> 1) & 0x3ff
}

// ExtendedXO returns the 9-bit extended opcode of the XO form.
func (i Instr) ExtendedXO() uint32 {
	return (i.Code >> 1) & 0x1ff
}

// DForm is the immediate form.
type DForm struct {
	RT uint32
	RA uint32
	DS uint32 // Raw 16-bit immediate.
}

func (i Instr) D() DForm {
	return DForm{
		RT: bits5(i.Code, 21),
		RA: bits5(i.Code, 16),
		DS: i.Code & 0xffff,
	}
}

// DSForm is the scaled displacement form.
type DSForm struct {
	RT uint32
	RA uint32
	DS uint32 // Displacement with the two implied low zero bits.
}

func (i Instr) DS() DSForm {
	return DSForm{
		RT: bits5(i.Code, 21),
		RA: bits5(i.Code, 16),
		DS: i.Code & 0xfffc,
	}
}

type XForm struct {
	RT uint32
	RA uint32
	RB uint32
	Rc bool
}

func (i Instr) X() XForm {
	return XForm{
		RT: bits5(i.Code, 21),
		RA: bits5(i.Code, 16),
		RB: bits5(i.Code, 11),
		Rc: bit(i.Code, 0),
	}
}

type XOForm struct {
	RT uint32
	RA uint32
	RB uint32
	OE bool
	Rc bool
}

func (i Instr) XO() XOForm {
	return XOForm{
		RT: bits5(i.Code, 21),
		RA: bits5(i.Code, 16),
		RB: bits5(i.Code, 11),
		OE: bit(i.Code, 10),
		Rc: bit(i.Code, 0),
	}
}

// XSForm is the 64-bit shift immediate form.
type XSForm struct {
	RT uint32
	RA uint32
	SH uint32 // 6-bit shift, SH5 || SH.
	Rc bool
}

func (i Instr) XS() XSForm {
	return XSForm{
		RT: bits5(i.Code, 21),
		RA: bits5(i.Code, 16),
		SH: bits5(i.Code, 11) | ((i.Code>>1)&1)<<5,
		Rc: bit(i.Code, 0),
	}
}

// MForm is the 32-bit rotate form. SH holds RB for rlwnm.
type MForm struct {
	RT uint32
	RA uint32
	SH uint32
	MB uint32
	ME uint32
	Rc bool
}

func (i Instr) M() MForm {
	return MForm{
		RT: bits5(i.Code, 21),
		RA: bits5(i.Code, 16),
		SH: bits5(i.Code, 11),
		MB: bits5(i.Code, 6),
		ME: bits5(i.Code, 1),
		Rc: bit(i.Code, 0),
	}
}

// MDForm is the 64-bit rotate immediate form.
type MDForm struct {
	RT  uint32
	RA  uint32
	SH  uint32 // 6-bit shift, SH5 || SH.
	MB  uint32 // 6-bit mask begin or end, MB5 || MB.
	Idx uint32
	Rc  bool
}

func (i Instr) MD() MDForm {
	return MDForm{
		RT:  bits5(i.Code, 21),
		RA:  bits5(i.Code, 16),
		SH:  bits5(i.Code, 11) | ((i.Code>>1)&1)<<5,
		MB:  bits5(i.Code, 6) | ((i.Code>>5)&1)<<5,
		Idx: (i.Code >> 2) & 0x7,
		Rc:  bit(i.Code, 0),
	}
}

// MDSForm is the 64-bit rotate by register form.
type MDSForm struct {
	RT  uint32
	RA  uint32
	RB  uint32
	MB  uint32 // 6-bit mask begin or end, MB5 || MB.
	Idx uint32
	Rc  bool
}

func (i Instr) MDS() MDSForm {
	return MDSForm{
		RT:  bits5(i.Code, 21),
		RA:  bits5(i.Code, 16),
		RB:  bits5(i.Code, 11),
		MB:  bits5(i.Code, 6) | ((i.Code>>5)&1)<<5,
		Idx: (i.Code >> 1) & 0xf,
		Rc:  bit(i.Code, 0),
	}
}

type IForm struct {
	LI uint32 // Raw 24-bit word displacement.
	AA bool
	LK bool
}

func (i Instr) I() IForm {
	return IForm{
		LI: (i.Code >> 2) & 0xffffff,
		AA: bit(i.Code, 1),
		LK: bit(i.Code, 0),
	}
}

type BForm struct {
	BO uint32
	BI uint32
	BD uint32 // Raw 14-bit word displacement.
	AA bool
	LK bool
}

func (i Instr) B() BForm {
	return BForm{
		BO: bits5(i.Code, 21),
		BI: bits5(i.Code, 16),
		BD: (i.Code >> 2) & 0x3fff,
		AA: bit(i.Code, 1),
		LK: bit(i.Code, 0),
	}
}

type XLForm struct {
	BO uint32
	BI uint32
	BB uint32
	LK bool
}

func (i Instr) XL() XLForm {
	return XLForm{
		BO: bits5(i.Code, 21),
		BI: bits5(i.Code, 16),
		BB: bits5(i.Code, 11),
		LK: bit(i.Code, 0),
	}
}

type XFXForm struct {
	RT  uint32
	SPR uint32 // Halves swapped back into register number order.
}

func (i Instr) XFX() XFXForm {
	return XFXForm{
		RT:  bits5(i.Code, 21),
		SPR: bits5(i.Code, 16) | bits5(i.Code, 11)<<5,
	}
}

// Block is a run of consecutive big-endian instruction words.
type Block struct {
	Address uint64
	Words   []uint32
}

// NewBlock decodes big-endian instruction words from data.
func NewBlock(address uint64, data []byte) (block Block, err error) {
	if len(data)%4 != 0 {
		err = ErrInstrShort
		return
	}

	block.Address = address
	block.Words = make([]uint32, len(data)/4)
	for n := range block.Words {
		block.Words[n] = binary.BigEndian.Uint32(data[n*4:])
	}

	return
}

// Instrs iterates over the instructions of the block in address order.
func (block Block) Instrs() iter.Seq[Instr] {
	return func(yield func(Instr) bool) {
		for n, code := range block.Words {
			if !yield(Instr{Address: block.Address + uint64(n)*4, Code: code}) {
				return
			}
		}
	}
}

// Bytes returns the block as big-endian guest memory.
func (block Block) Bytes() (data []byte) {
	data = make([]byte, 0, len(block.Words)*4)
	for _, code := range block.Words {
		data = binary.BigEndian.AppendUint32(data, code)
	}
	return
}
