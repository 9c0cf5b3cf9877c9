package types

import (
	"encoding/binary"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint256FromCompactBits(t *testing.T) {
	check := func(bits uint32, expected string) {
		t.Helper()
		require.Equal(t, expected, Uint256FromCompactBits(bits).String(), "bits %08x", bits)
	}

	check(0x1d00ffff, "00000000ffff0000000000000000000000000000000000000000000000000000")
	check(0x207fffff, "7fffff0000000000000000000000000000000000000000000000000000000000")
	check(0x1b0404cb, "00000000000404cb000000000000000000000000000000000000000000000000")
	check(0x03123456, "0000000000000000000000000000000000000000000000000000000000123456")
	check(0x02123456, "0000000000000000000000000000000000000000000000000000000000001234")
	check(0x01123456, "0000000000000000000000000000000000000000000000000000000000000012")
	check(0x00123456, "0000000000000000000000000000000000000000000000000000000000000000")

	// sign bit set: negative targets are invalid
	check(0x04923456, "0000000000000000000000000000000000000000000000000000000000000000")
	check(0x03800000, "0000000000000000000000000000000000000000000000000000000000000000")
	// shifted below the sign bit before the check
	check(0x02800000, "0000000000000000000000000000000000000000000000000000000000008000")

	// exponent past 32 bytes shifts bits out
	check(0x23000001, "0000000000000000000000000000000000000000000000000000000000000000")
	check(0x22000001, "0100000000000000000000000000000000000000000000000000000000000000")
}

func TestUint256_CompactBits(t *testing.T) {
	for _, bits := range []uint32{0x1d00ffff, 0x207fffff, 0x1b0404cb, 0x03123456, 0x1e7fffff, 0x1f00ffff, 0x21008000} {
		require.Equal(t, bits, Uint256FromCompactBits(bits).CompactBits(), "bits %08x", bits)
	}

	require.Equal(t, uint32(0), Uint256{}.CompactBits())
	require.Equal(t, uint32(0x01120000), Uint256FromUint64(0x12).CompactBits())
	// 0x80 would set the sign bit, so it is stored with one more exponent byte
	require.Equal(t, uint32(0x02008000), Uint256FromUint64(0x80).CompactBits())
	require.Equal(t, uint32(0x04123456), Uint256FromUint64(0x12345678).CompactBits())
}

// compactWindow number of low bits that the compact encoding of u does not carry
func compactWindow(u Uint256) uint {
	size := (u.BitLen() + 7) / 8
	if size <= 3 {
		return 0
	}
	if u.Rsh(uint(8*(size-3)))[0]&compactSignBit != 0 {
		size++
	}
	return uint(8 * (size - 3))
}

func TestUint256_CompactRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 10000 {
		var buf [HashSize]byte
		for i := 0; i < HashSize; i += 8 {
			binary.LittleEndian.PutUint64(buf[i:], rng.Uint64())
		}
		u := Uint256FromBytes(buf).Rsh(uint(rng.IntN(256)))

		decoded := Uint256FromCompactBits(u.CompactBits())
		require.LessOrEqual(t, decoded.Cmp(u), 0, "decoded %s > original %s", decoded, u)

		window := compactWindow(u)
		require.Equal(t, u.Rsh(window), decoded.Rsh(window), "value %s differs above the rounding window of %d bits", u, window)
	}
}
