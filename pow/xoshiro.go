package pow

import (
	"math/bits"

	"git.gammaspectra.live/P2Pool/spectrex/types"
)

// xoShiRo256PlusPlus matrix generator stream, seeded with the little-endian words of the pre-image hash
type xoShiRo256PlusPlus struct {
	s0 uint64
	s1 uint64
	s2 uint64
	s3 uint64
}

func newxoShiRo256PlusPlus(seed types.Uint256) *xoShiRo256PlusPlus {
	return &xoShiRo256PlusPlus{
		s0: seed[0],
		s1: seed[1],
		s2: seed[2],
		s3: seed[3],
	}
}

func (x *xoShiRo256PlusPlus) Uint64() uint64 {
	res := bits.RotateLeft64(x.s0+x.s3, 23) + x.s0
	t := x.s1 << 17
	x.s2 ^= x.s0
	x.s3 ^= x.s1
	x.s1 ^= x.s2
	x.s0 ^= x.s3

	x.s2 ^= t
	x.s3 = bits.RotateLeft64(x.s3, 45)
	return res
}
