package types

import (
	"errors"
	"math/big"
	"math/bits"
	"strings"

	"git.gammaspectra.live/P2Pool/spectrex/utils"
	fasthex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

// Difficulty expected number of hashes needed to find a value at or below the matching target.
// A proof-of-work value v satisfies difficulty d when v * d fits in 256 bits.
//
//nolint:recvcheck
type Difficulty uint128.Uint128

var ZeroDifficulty = Difficulty(uint128.Zero)
var MaxDifficulty = Difficulty(uint128.Max)

func NewDifficulty(lo, hi uint64) Difficulty {
	return Difficulty{Lo: lo, Hi: hi}
}

func DifficultyFrom64(v uint64) Difficulty {
	return NewDifficulty(v, 0)
}

func (d Difficulty) u() uint128.Uint128 {
	return uint128.Uint128(d)
}

func (d Difficulty) IsZero() bool {
	return d.u().IsZero()
}

func (d Difficulty) Equals(other Difficulty) bool {
	return d.u().Equals(other.u())
}

func (d Difficulty) Cmp(other Difficulty) int {
	return d.u().Cmp(other.u())
}

func (d Difficulty) Add(other Difficulty) Difficulty {
	return Difficulty(d.u().AddWrap(other.u()))
}

func (d Difficulty) Div(other Difficulty) Difficulty {
	return Difficulty(d.u().Div(other.u()))
}

func (d Difficulty) Div64(v uint64) Difficulty {
	return Difficulty(d.u().Div64(v))
}

func (d Difficulty) Float64() float64 {
	return float64(d.Hi)*(1<<64) + float64(d.Lo)
}

func (d Difficulty) Big() *big.Int {
	return d.u().Big()
}

// DifficultyFromTarget floor((2^256 - 1) / target), saturating at MaxDifficulty
func DifficultyFromTarget(target Uint256) Difficulty {
	if target.IsZero() {
		return MaxDifficulty
	}
	q := new(big.Int).Div(MaxUint256.Big(), target.Big())
	if q.BitLen() > 128 {
		return MaxDifficulty
	}
	return Difficulty(uint128.FromBig(q))
}

// DifficultyFromCompactBits difficulty of a compact encoded target
func DifficultyFromCompactBits(bits uint32) Difficulty {
	return DifficultyFromTarget(Uint256FromCompactBits(bits))
}

// Target largest proof-of-work value accepted at this difficulty, floor((2^256 - 1) / d)
func (d Difficulty) Target() Uint256 {
	if d.IsZero() {
		return MaxUint256
	}
	t, _ := Uint256FromBig(new(big.Int).Div(MaxUint256.Big(), d.Big()))
	return t
}

// CheckPoW verifies pow * d < 2^256 without allocating
func (d Difficulty) CheckPoW(pow Uint256) bool {
	var r [6]uint64
	for j, b := range [2]uint64{d.Lo, d.Hi} {
		var carry uint64
		for i, a := range pow {
			hi, lo := bits.Mul64(a, b)
			var c uint64
			lo, c = bits.Add64(lo, r[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			r[i+j] = lo
			carry = hi
		}
		r[j+len(pow)] = carry
	}
	return r[4] == 0 && r[5] == 0
}

// CheckPoWHash verifies a big-endian proof-of-work hash as returned by the job calculation
func (d Difficulty) CheckPoWHash(h Hash) bool {
	return d.CheckPoW(Uint256FromBigEndianBytes(h))
}

// String 32 hex characters, big-endian
func (d Difficulty) String() string {
	var buf [16]byte
	d.u().PutBytesBE(buf[:])
	return fasthex.EncodeToString(buf[:])
}

func DifficultyFromString(s string) (Difficulty, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) > 32 {
		return ZeroDifficulty, utils.ErrInvalidStringLength
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	var buf [16]byte
	if err := utils.DecodeHexTo(buf[16-len(s)/2:], s); err != nil {
		return ZeroDifficulty, err
	}
	return Difficulty(uint128.FromBytesBE(buf[:])), nil
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	if d.Hi == 0 {
		return []byte(d.u().String()), nil
	}
	buf := make([]byte, 0, 2+2+32)
	buf = append(buf, '"', '0', 'x')
	buf = append(buf, strings.TrimLeft(d.String(), "0")...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON accepts a JSON number or a "0x" prefixed hex string
func (d *Difficulty) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return errors.New("empty difficulty")
	}
	if b[0] == '"' {
		if len(b) < 2 || b[len(b)-1] != '"' {
			return errors.New("invalid difficulty")
		}
		diff, err := DifficultyFromString(string(b[1 : len(b)-1]))
		if err != nil {
			return err
		}
		*d = diff
		return nil
	}

	var v uint64
	if err := utils.UnmarshalJSON(b, &v); err != nil {
		return err
	}
	*d = DifficultyFrom64(v)
	return nil
}
