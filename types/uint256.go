package types

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	fasthex "github.com/tmthrgd/go-hex"
)

// Uint256 256-bit unsigned integer stored as four little-endian 64-bit words.
// Value is w[0] + w[1]<<64 + w[2]<<128 + w[3]<<192.
type Uint256 [4]uint64

var MaxUint256 = Uint256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}

func Uint256FromUint64(v uint64) Uint256 {
	return Uint256{v}
}

// Uint256FromBytes interprets buf as a little-endian number
func Uint256FromBytes(buf [HashSize]byte) (u Uint256) {
	for i := range u {
		u[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return u
}

// Uint256FromBigEndianBytes interprets buf as a big-endian number
func Uint256FromBigEndianBytes(buf [HashSize]byte) (u Uint256) {
	for i := range u {
		u[i] = binary.BigEndian.Uint64(buf[HashSize-8*(i+1):])
	}
	return u
}

// Uint256FromBig returns the low 256 bits of b, and false when b is negative or does not fit
func Uint256FromBig(b *big.Int) (u Uint256, ok bool) {
	if b.Sign() < 0 || b.BitLen() > 256 {
		return u, false
	}
	var buf [HashSize]byte
	b.FillBytes(buf[:])
	return Uint256FromBigEndianBytes(buf), true
}

// Bytes little-endian serialization
func (u Uint256) Bytes() (buf [HashSize]byte) {
	for i, w := range u {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return buf
}

// BigEndianBytes big-endian serialization, the byte order used by targets and printed hashes
func (u Uint256) BigEndianBytes() (buf [HashSize]byte) {
	for i, w := range u {
		binary.BigEndian.PutUint64(buf[HashSize-8*(i+1):], w)
	}
	return buf
}

func (u Uint256) Big() *big.Int {
	buf := u.BigEndianBytes()
	return new(big.Int).SetBytes(buf[:])
}

func (u Uint256) IsZero() bool {
	return u[0]|u[1]|u[2]|u[3] == 0
}

func (u Uint256) Equals(other Uint256) bool {
	return u == other
}

// Cmp numeric comparison
func (u Uint256) Cmp(other Uint256) int {
	for i := len(u) - 1; i >= 0; i-- {
		if u[i] < other[i] {
			return -1
		} else if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

func (u Uint256) BitLen() int {
	for i := len(u) - 1; i >= 0; i-- {
		if u[i] != 0 {
			return i*64 + bits.Len64(u[i])
		}
	}
	return 0
}

// Lsh shifts left by n bits, dropping bits shifted past 256
func (u Uint256) Lsh(n uint) (r Uint256) {
	if n >= 256 {
		return r
	}
	words, shift := int(n/64), n%64
	for i := len(u) - 1; i >= words; i-- {
		r[i] = u[i-words] << shift
		if shift != 0 && i-words-1 >= 0 {
			r[i] |= u[i-words-1] >> (64 - shift)
		}
	}
	return r
}

// Rsh shifts right by n bits
func (u Uint256) Rsh(n uint) (r Uint256) {
	if n >= 256 {
		return r
	}
	words, shift := int(n/64), n%64
	for i := 0; i < len(u)-words; i++ {
		r[i] = u[i+words] >> shift
		if shift != 0 && i+words+1 < len(u) {
			r[i] |= u[i+words+1] << (64 - shift)
		}
	}
	return r
}

// String big-endian hex, the form targets and proof-of-work values are usually displayed in
func (u Uint256) String() string {
	buf := u.BigEndianBytes()
	return fasthex.EncodeToString(buf[:])
}

func (u Uint256) MarshalJSON() ([]byte, error) {
	h := Hash(u.BigEndianBytes())
	return h.MarshalJSON()
}

func (u *Uint256) UnmarshalJSON(b []byte) error {
	var h Hash
	if err := h.UnmarshalJSON(b); err != nil {
		return err
	}
	*u = Uint256FromBigEndianBytes(h)
	return nil
}
