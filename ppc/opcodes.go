package ppc

// Operand orders shared by several entries.
var (
	opsRtRaRb   = []Operand{OPERAND_RT, OPERAND_RA, OPERAND_RB}
	opsRtRa     = []Operand{OPERAND_RT, OPERAND_RA}
	opsRtRaSi   = []Operand{OPERAND_RT, OPERAND_RA, OPERAND_SI}
	opsRaRsRb   = []Operand{OPERAND_RA, OPERAND_RS, OPERAND_RB}
	opsRaRs     = []Operand{OPERAND_RA, OPERAND_RS}
	opsRaRsUi   = []Operand{OPERAND_RA, OPERAND_RS, OPERAND_UI}
	opsCmp      = []Operand{OPERAND_BF, OPERAND_L, OPERAND_RA, OPERAND_RB}
	opsRotW     = []Operand{OPERAND_RA, OPERAND_RS, OPERAND_SH, OPERAND_MB, OPERAND_ME}
	opsRotWReg  = []Operand{OPERAND_RA, OPERAND_RS, OPERAND_RB, OPERAND_MB, OPERAND_ME}
	opsRotD     = []Operand{OPERAND_RA, OPERAND_RS, OPERAND_SH6, OPERAND_MB6}
	opsRotDReg  = []Operand{OPERAND_RA, OPERAND_RS, OPERAND_RB, OPERAND_MB6}
	opsLoad     = []Operand{OPERAND_RT, OPERAND_D, OPERAND_RA}
	opsStore    = []Operand{OPERAND_RS, OPERAND_D, OPERAND_RA}
	opsBranchCR = []Operand{OPERAND_BO, OPERAND_BI}
)

// opcodes lists every recognized instruction, in registration order.
var opcodes = []Entry{
	// Integer arithmetic
	{Opcode: 0x7C000214, Mnemonic: MNEMONIC_ADD, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000014, Mnemonic: MNEMONIC_ADDC, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000114, Mnemonic: MNEMONIC_ADDE, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x38000000, Mnemonic: MNEMONIC_ADDI, Form: FORM_D, Operands: opsRtRaSi},
	{Opcode: 0x30000000, Mnemonic: MNEMONIC_ADDIC, Form: FORM_D, Operands: opsRtRaSi},
	{Opcode: 0x34000000, Mnemonic: MNEMONIC_ADDIC_DOT, Form: FORM_D, Operands: opsRtRaSi},
	{Opcode: 0x3C000000, Mnemonic: MNEMONIC_ADDIS, Form: FORM_D, Operands: opsRtRaSi},
	{Opcode: 0x7C0001D4, Mnemonic: MNEMONIC_ADDME, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRa},
	{Opcode: 0x7C000194, Mnemonic: MNEMONIC_ADDZE, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRa},
	{Opcode: 0x7C0003D2, Mnemonic: MNEMONIC_DIVD, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000392, Mnemonic: MNEMONIC_DIVDU, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C0003D6, Mnemonic: MNEMONIC_DIVW, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000396, Mnemonic: MNEMONIC_DIVWU, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000092, Mnemonic: MNEMONIC_MULHD, Form: FORM_XO, Flags: ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000012, Mnemonic: MNEMONIC_MULHDU, Form: FORM_XO, Flags: ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000096, Mnemonic: MNEMONIC_MULHW, Form: FORM_XO, Flags: ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000016, Mnemonic: MNEMONIC_MULHWU, Form: FORM_XO, Flags: ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C0001D2, Mnemonic: MNEMONIC_MULLD, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x1C000000, Mnemonic: MNEMONIC_MULLI, Form: FORM_D, Operands: opsRtRaSi},
	{Opcode: 0x7C0001D6, Mnemonic: MNEMONIC_MULLW, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C0000D0, Mnemonic: MNEMONIC_NEG, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRa},
	{Opcode: 0x7C000050, Mnemonic: MNEMONIC_SUBF, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000010, Mnemonic: MNEMONIC_SUBFC, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x7C000110, Mnemonic: MNEMONIC_SUBFE, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRaRb},
	{Opcode: 0x20000000, Mnemonic: MNEMONIC_SUBFIC, Form: FORM_D, Operands: opsRtRaSi},
	{Opcode: 0x7C0001D0, Mnemonic: MNEMONIC_SUBFME, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRa},
	{Opcode: 0x7C000190, Mnemonic: MNEMONIC_SUBFZE, Form: FORM_XO, Flags: ENTRY_OE | ENTRY_RC, Operands: opsRtRa},

	// Integer compare
	{Opcode: 0x7C000000, Mnemonic: MNEMONIC_CMP, Form: FORM_X, Operands: opsCmp},
	{Opcode: 0x2C000000, Mnemonic: MNEMONIC_CMPI, Form: FORM_D, Operands: []Operand{OPERAND_BF, OPERAND_L, OPERAND_RA, OPERAND_SI}},
	{Opcode: 0x7C000040, Mnemonic: MNEMONIC_CMPL, Form: FORM_X, Operands: opsCmp},
	{Opcode: 0x28000000, Mnemonic: MNEMONIC_CMPLI, Form: FORM_D, Operands: []Operand{OPERAND_BF, OPERAND_L, OPERAND_RA, OPERAND_UI}},

	// Integer logical
	{Opcode: 0x7C000038, Mnemonic: MNEMONIC_AND, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C000078, Mnemonic: MNEMONIC_ANDC, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x70000000, Mnemonic: MNEMONIC_ANDI_DOT, Form: FORM_D, Operands: opsRaRsUi},
	{Opcode: 0x74000000, Mnemonic: MNEMONIC_ANDIS_DOT, Form: FORM_D, Operands: opsRaRsUi},
	{Opcode: 0x7C000074, Mnemonic: MNEMONIC_CNTLZD, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRs},
	{Opcode: 0x7C000034, Mnemonic: MNEMONIC_CNTLZW, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRs},
	{Opcode: 0x7C000238, Mnemonic: MNEMONIC_EQV, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C000774, Mnemonic: MNEMONIC_EXTSB, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRs},
	{Opcode: 0x7C000734, Mnemonic: MNEMONIC_EXTSH, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRs},
	{Opcode: 0x7C0007B4, Mnemonic: MNEMONIC_EXTSW, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRs},
	{Opcode: 0x7C0003B8, Mnemonic: MNEMONIC_NAND, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C0000F8, Mnemonic: MNEMONIC_NOR, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C000378, Mnemonic: MNEMONIC_OR, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C000338, Mnemonic: MNEMONIC_ORC, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x60000000, Mnemonic: MNEMONIC_ORI, Form: FORM_D, Operands: opsRaRsUi},
	{Opcode: 0x64000000, Mnemonic: MNEMONIC_ORIS, Form: FORM_D, Operands: opsRaRsUi},
	{Opcode: 0x7C000278, Mnemonic: MNEMONIC_XOR, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x68000000, Mnemonic: MNEMONIC_XORI, Form: FORM_D, Operands: opsRaRsUi},
	{Opcode: 0x6C000000, Mnemonic: MNEMONIC_XORIS, Form: FORM_D, Operands: opsRaRsUi},

	// Integer rotate
	{Opcode: 0x78000010, Mnemonic: MNEMONIC_RLDCL, Form: FORM_MDS, Flags: ENTRY_RC, Operands: opsRotDReg},
	{Opcode: 0x78000012, Mnemonic: MNEMONIC_RLDCR, Form: FORM_MDS, Flags: ENTRY_RC, Operands: opsRotDReg},
	{Opcode: 0x78000008, Mnemonic: MNEMONIC_RLDIC, Form: FORM_MD, Flags: ENTRY_RC, Operands: opsRotD},
	{Opcode: 0x78000000, Mnemonic: MNEMONIC_RLDICL, Form: FORM_MD, Flags: ENTRY_RC, Operands: opsRotD},
	{Opcode: 0x78000004, Mnemonic: MNEMONIC_RLDICR, Form: FORM_MD, Flags: ENTRY_RC, Operands: opsRotD},
	{Opcode: 0x7800000C, Mnemonic: MNEMONIC_RLDIMI, Form: FORM_MD, Flags: ENTRY_RC, Operands: opsRotD},
	{Opcode: 0x50000000, Mnemonic: MNEMONIC_RLWIMI, Form: FORM_M, Flags: ENTRY_RC, Operands: opsRotW},
	{Opcode: 0x54000000, Mnemonic: MNEMONIC_RLWINM, Form: FORM_M, Flags: ENTRY_RC, Operands: opsRotW},
	{Opcode: 0x5C000000, Mnemonic: MNEMONIC_RLWNM, Form: FORM_M, Flags: ENTRY_RC, Operands: opsRotWReg},

	// Integer shift
	{Opcode: 0x7C000036, Mnemonic: MNEMONIC_SLD, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C000030, Mnemonic: MNEMONIC_SLW, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C000634, Mnemonic: MNEMONIC_SRAD, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C000674, Mnemonic: MNEMONIC_SRADI, Form: FORM_XS, Flags: ENTRY_RC, Operands: []Operand{OPERAND_RA, OPERAND_RS, OPERAND_SH6}},
	{Opcode: 0x7C000630, Mnemonic: MNEMONIC_SRAW, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C000670, Mnemonic: MNEMONIC_SRAWI, Form: FORM_X, Flags: ENTRY_RC, Operands: []Operand{OPERAND_RA, OPERAND_RS, OPERAND_SH}},
	{Opcode: 0x7C000436, Mnemonic: MNEMONIC_SRD, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},
	{Opcode: 0x7C000430, Mnemonic: MNEMONIC_SRW, Form: FORM_X, Flags: ENTRY_RC, Operands: opsRaRsRb},

	// Branch and system
	{Opcode: 0x48000000, Mnemonic: MNEMONIC_B, Form: FORM_I, Flags: ENTRY_LK | ENTRY_AA, Operands: []Operand{OPERAND_LI}},
	{Opcode: 0x40000000, Mnemonic: MNEMONIC_BC, Form: FORM_B, Flags: ENTRY_LK | ENTRY_AA, Operands: []Operand{OPERAND_BO, OPERAND_BI, OPERAND_BD}},
	{Opcode: 0x4C000420, Mnemonic: MNEMONIC_BCCTR, Form: FORM_XL, Flags: ENTRY_LK, Operands: opsBranchCR},
	{Opcode: 0x4C000020, Mnemonic: MNEMONIC_BCLR, Form: FORM_XL, Flags: ENTRY_LK, Operands: opsBranchCR},
	{Opcode: 0x44000002, Mnemonic: MNEMONIC_SC, Form: FORM_SC},

	// Load and store
	{Opcode: 0x88000000, Mnemonic: MNEMONIC_LBZ, Form: FORM_D, Operands: opsLoad},
	{Opcode: 0xA8000000, Mnemonic: MNEMONIC_LHA, Form: FORM_D, Operands: opsLoad},
	{Opcode: 0xA0000000, Mnemonic: MNEMONIC_LHZ, Form: FORM_D, Operands: opsLoad},
	{Opcode: 0x80000000, Mnemonic: MNEMONIC_LWZ, Form: FORM_D, Operands: opsLoad},
	{Opcode: 0xE8000000, Mnemonic: MNEMONIC_LD, Form: FORM_DS, Operands: []Operand{OPERAND_RT, OPERAND_DS, OPERAND_RA}},
	{Opcode: 0x7C00002E, Mnemonic: MNEMONIC_LWZX, Form: FORM_X, Operands: opsRtRaRb},
	{Opcode: 0x98000000, Mnemonic: MNEMONIC_STB, Form: FORM_D, Operands: opsStore},
	{Opcode: 0xB0000000, Mnemonic: MNEMONIC_STH, Form: FORM_D, Operands: opsStore},
	{Opcode: 0x90000000, Mnemonic: MNEMONIC_STW, Form: FORM_D, Operands: opsStore},
	{Opcode: 0xF8000000, Mnemonic: MNEMONIC_STD, Form: FORM_DS, Operands: []Operand{OPERAND_RS, OPERAND_DS, OPERAND_RA}},
	{Opcode: 0x7C00012E, Mnemonic: MNEMONIC_STWX, Form: FORM_X, Operands: []Operand{OPERAND_RS, OPERAND_RA, OPERAND_RB}},

	// System registers
	{Opcode: 0x7C000026, Mnemonic: MNEMONIC_MFCR, Form: FORM_XFX, Operands: []Operand{OPERAND_RT}},
	{Opcode: 0x7C0002A6, Mnemonic: MNEMONIC_MFSPR, Form: FORM_XFX, Operands: []Operand{OPERAND_RT, OPERAND_SPR}},
	{Opcode: 0x7C000120, Mnemonic: MNEMONIC_MTCRF, Form: FORM_XFX, Operands: []Operand{OPERAND_FXM, OPERAND_RS}},
	{Opcode: 0x7C0003A6, Mnemonic: MNEMONIC_MTSPR, Form: FORM_XFX, Operands: []Operand{OPERAND_SPR, OPERAND_RS}},
	{Opcode: 0x7C0004AC, Mnemonic: MNEMONIC_SYNC, Form: FORM_X},
}
