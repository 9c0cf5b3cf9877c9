package types

// Compact target ("bits") encoding: the top byte is a base-256 exponent (number of significant bytes),
// the low 23 bits are the mantissa, bit 23 is a sign bit. Negative targets are not valid and decode to zero.

const (
	compactMantissaMask = 0x00ffffff
	compactSignBit      = 0x00800000
)

// Uint256FromCompactBits expands a compact target into mantissa * 256^(exponent-3).
// Bits shifted past 256 are lost.
func Uint256FromCompactBits(bits uint32) Uint256 {
	exponent := bits >> 24
	mantissa := bits & compactMantissaMask

	var shift uint
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
	} else {
		shift = 8 * uint(exponent-3)
	}

	if mantissa > compactMantissaMask>>1 {
		return Uint256{}
	}
	return Uint256FromUint64(uint64(mantissa)).Lsh(shift)
}

// CompactBits encodes u into its compact form, keeping the 23 most significant mantissa bits.
// Uint256FromCompactBits(u.CompactBits()) is at most u and differs from it only below those bits.
func (u Uint256) CompactBits() uint32 {
	size := uint32((u.BitLen() + 7) / 8)

	var mantissa uint32
	if size <= 3 {
		mantissa = uint32(u[0] << (8 * (3 - size)))
	} else {
		mantissa = uint32(u.Rsh(8 * uint(size-3))[0])
	}

	// keep the sign bit clear by moving one byte into the exponent
	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		size++
	}

	return size<<24 | mantissa
}
