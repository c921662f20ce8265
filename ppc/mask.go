package ppc

// Mask returns the 64-bit PowerPC mask with ones from big-endian bit mstart
// through mstop inclusive, bit 0 being the most significant. When mstart is
// after mstop the mask wraps around.
//
// Both positions are taken modulo 64.
func Mask(mstart, mstop uint32) (value uint64) {
	mstart &= 63
	mstop &= 63

	value = ^uint64(0) >> mstart
	if mstop < 63 {
		value ^= ^uint64(0) >> (mstop + 1)
	}
	if mstart > mstop {
		value = ^value
	}

	return
}
