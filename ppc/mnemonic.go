package ppc

// Mnemonic names an instruction entry.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	// Integer arithmetic
	MNEMONIC_ADD       = Mnemonic(0) // add
	MNEMONIC_ADDC      = Mnemonic(1) // addc
	MNEMONIC_ADDE      = Mnemonic(2) // adde
	MNEMONIC_ADDI      = Mnemonic(3) // addi
	MNEMONIC_ADDIC     = Mnemonic(4) // addic
	MNEMONIC_ADDIC_DOT = Mnemonic(5) // addic.
	MNEMONIC_ADDIS     = Mnemonic(6) // addis
	MNEMONIC_ADDME     = Mnemonic(7) // addme
	MNEMONIC_ADDZE     = Mnemonic(8) // addze

	MNEMONIC_DIVD   = Mnemonic(9)  // divd
	MNEMONIC_DIVDU  = Mnemonic(10) // divdu
	MNEMONIC_DIVW   = Mnemonic(11) // divw
	MNEMONIC_DIVWU  = Mnemonic(12) // divwu
	MNEMONIC_MULHD  = Mnemonic(13) // mulhd
	MNEMONIC_MULHDU = Mnemonic(14) // mulhdu
	MNEMONIC_MULHW  = Mnemonic(15) // mulhw
	MNEMONIC_MULHWU = Mnemonic(16) // mulhwu
	MNEMONIC_MULLD  = Mnemonic(17) // mulld
	MNEMONIC_MULLI  = Mnemonic(18) // mulli
	MNEMONIC_MULLW  = Mnemonic(19) // mullw

	MNEMONIC_NEG    = Mnemonic(20) // neg
	MNEMONIC_SUBF   = Mnemonic(21) // subf
	MNEMONIC_SUBFC  = Mnemonic(22) // subfc
	MNEMONIC_SUBFE  = Mnemonic(23) // subfe
	MNEMONIC_SUBFIC = Mnemonic(24) // subfic
	MNEMONIC_SUBFME = Mnemonic(25) // subfme
	MNEMONIC_SUBFZE = Mnemonic(26) // subfze

	// Integer compare
	MNEMONIC_CMP   = Mnemonic(27) // cmp
	MNEMONIC_CMPI  = Mnemonic(28) // cmpi
	MNEMONIC_CMPL  = Mnemonic(29) // cmpl
	MNEMONIC_CMPLI = Mnemonic(30) // cmpli

	// Integer logical
	MNEMONIC_AND       = Mnemonic(31) // and
	MNEMONIC_ANDC      = Mnemonic(32) // andc
	MNEMONIC_ANDI_DOT  = Mnemonic(33) // andi.
	MNEMONIC_ANDIS_DOT = Mnemonic(34) // andis.
	MNEMONIC_CNTLZD    = Mnemonic(35) // cntlzd
	MNEMONIC_CNTLZW    = Mnemonic(36) // cntlzw
	MNEMONIC_EQV       = Mnemonic(37) // eqv
	MNEMONIC_EXTSB     = Mnemonic(38) // extsb
	MNEMONIC_EXTSH     = Mnemonic(39) // extsh
	MNEMONIC_EXTSW     = Mnemonic(40) // extsw
	MNEMONIC_NAND      = Mnemonic(41) // nand
	MNEMONIC_NOR       = Mnemonic(42) // nor
	MNEMONIC_OR        = Mnemonic(43) // or
	MNEMONIC_ORC       = Mnemonic(44) // orc
	MNEMONIC_ORI       = Mnemonic(45) // ori
	MNEMONIC_ORIS      = Mnemonic(46) // oris
	MNEMONIC_XOR       = Mnemonic(47) // xor
	MNEMONIC_XORI      = Mnemonic(48) // xori
	MNEMONIC_XORIS     = Mnemonic(49) // xoris

	// Integer rotate
	MNEMONIC_RLDCL  = Mnemonic(50) // rldcl
	MNEMONIC_RLDCR  = Mnemonic(51) // rldcr
	MNEMONIC_RLDIC  = Mnemonic(52) // rldic
	MNEMONIC_RLDICL = Mnemonic(53) // rldicl
	MNEMONIC_RLDICR = Mnemonic(54) // rldicr
	MNEMONIC_RLDIMI = Mnemonic(55) // rldimi
	MNEMONIC_RLWIMI = Mnemonic(56) // rlwimi
	MNEMONIC_RLWINM = Mnemonic(57) // rlwinm
	MNEMONIC_RLWNM  = Mnemonic(58) // rlwnm

	// Integer shift
	MNEMONIC_SLD   = Mnemonic(59) // sld
	MNEMONIC_SLW   = Mnemonic(60) // slw
	MNEMONIC_SRAD  = Mnemonic(61) // srad
	MNEMONIC_SRADI = Mnemonic(62) // sradi
	MNEMONIC_SRAW  = Mnemonic(63) // sraw
	MNEMONIC_SRAWI = Mnemonic(64) // srawi
	MNEMONIC_SRD   = Mnemonic(65) // srd
	MNEMONIC_SRW   = Mnemonic(66) // srw

	// Branch and system, recognized but not lifted
	MNEMONIC_B     = Mnemonic(67) // b
	MNEMONIC_BC    = Mnemonic(68) // bc
	MNEMONIC_BCCTR = Mnemonic(69) // bcctr
	MNEMONIC_BCLR  = Mnemonic(70) // bclr
	MNEMONIC_SC    = Mnemonic(71) // sc

	MNEMONIC_LBZ  = Mnemonic(72) // lbz
	MNEMONIC_LHA  = Mnemonic(73) // lha
	MNEMONIC_LHZ  = Mnemonic(74) // lhz
	MNEMONIC_LWZ  = Mnemonic(75) // lwz
	MNEMONIC_LD   = Mnemonic(76) // ld
	MNEMONIC_LWZX = Mnemonic(77) // lwzx
	MNEMONIC_STB  = Mnemonic(78) // stb
	MNEMONIC_STH  = Mnemonic(79) // sth
	MNEMONIC_STW  = Mnemonic(80) // stw
	MNEMONIC_STD  = Mnemonic(81) // std
	MNEMONIC_STWX = Mnemonic(82) // stwx

	MNEMONIC_MFCR  = Mnemonic(83) // mfcr
	MNEMONIC_MFSPR = Mnemonic(84) // mfspr
	MNEMONIC_MTCRF = Mnemonic(85) // mtcrf
	MNEMONIC_MTSPR = Mnemonic(86) // mtspr
	MNEMONIC_SYNC  = Mnemonic(87) // sync
)

// MNEMONIC_COUNT is the number of defined mnemonics.
const MNEMONIC_COUNT = MNEMONIC_SYNC + 1
