package crypto

import "math/bits"

// KeccakStateLanes number of 64-bit lanes in a Keccak-f[1600] state, lane (x, y) lives at index x + 5*y
const KeccakStateLanes = 25

// KeccakRounds rounds of Keccak-f[1600]
const KeccakRounds = 24

var keccakRoundConstants = [KeccakRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotation offsets and destinations of the combined rho and pi steps, walking the lane cycle starting at lane 1
var keccakRotations = [KeccakRounds]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var keccakPiLanes = [KeccakRounds]uint8{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// KeccakF1600 applies the full 24 round Keccak-f[1600] permutation to a in place
func KeccakF1600(a *[KeccakStateLanes]uint64) {
	var bc [5]uint64

	for round := range KeccakRounds {
		// theta
		for i := range 5 {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := range 5 {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < KeccakStateLanes; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho and pi
		t := a[1]
		for i, j := range keccakPiLanes {
			bc[0] = a[j]
			a[j] = bits.RotateLeft64(t, keccakRotations[i])
			t = bc[0]
		}

		// chi
		for j := 0; j < KeccakStateLanes; j += 5 {
			bc[0], bc[1], bc[2], bc[3], bc[4] = a[j], a[j+1], a[j+2], a[j+3], a[j+4]
			for i := range 5 {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= keccakRoundConstants[round]
	}
}
