package ppc

// Form is an instruction encoding layout.
type Form int

//go:generate go tool stringer -linecomment -type=Form
const (
	FORM_I   = Form(0)  // I
	FORM_B   = Form(1)  // B
	FORM_D   = Form(2)  // D
	FORM_DS  = Form(3)  // DS
	FORM_X   = Form(4)  // X
	FORM_XL  = Form(5)  // XL
	FORM_XFX = Form(6)  // XFX
	FORM_XO  = Form(7)  // XO
	FORM_XS  = Form(8)  // XS
	FORM_M   = Form(9)  // M
	FORM_MD  = Form(10) // MD
	FORM_MDS = Form(11) // MDS
	FORM_SC  = Form(12) // SC
)

// Mask returns the bits of an instruction word that select an entry of this
// form. OE and Rc are never part of the mask.
func (form Form) Mask() uint32 {
	switch form {
	case FORM_DS:
		return 0xFC000003
	case FORM_X, FORM_XL, FORM_XFX:
		return 0xFC0007FE
	case FORM_SC:
		return 0xFC000002
	case FORM_XO:
		return 0xFC0003FE
	case FORM_XS:
		return 0xFC0007FC
	case FORM_MD:
		return 0xFC00001C
	case FORM_MDS:
		return 0xFC00001E
	default:
		return 0xFC000000
	}
}
