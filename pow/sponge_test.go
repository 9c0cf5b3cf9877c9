package pow

import (
	"encoding/binary"
	"runtime"
	"testing"

	"git.gammaspectra.live/P2Pool/spectrex/types"
	"golang.org/x/crypto/sha3"
)

// cShakePowHash cSHAKE256 of PRE_POW_HASH || TIMESTAMP || 32 zero bytes || NONCE
func cShakePowHash(prePowHash types.Uint256, timestamp, nonce uint64) types.Uint256 {
	var buf [types.HashSize + 8 + 32 + 8]byte
	b := prePowHash.Bytes()
	copy(buf[:], b[:])
	binary.LittleEndian.PutUint64(buf[types.HashSize:], timestamp)
	binary.LittleEndian.PutUint64(buf[types.HashSize+8+32:], nonce)

	h := sha3.NewCShake256(nil, []byte("ProofOfWorkHash"))
	_, _ = h.Write(buf[:])
	var out [types.HashSize]byte
	_, _ = h.Read(out[:])
	return types.Uint256FromBytes(out)
}

func cShakeHeavyHash(in types.Uint256) types.Uint256 {
	b := in.Bytes()
	h := sha3.NewCShake256(nil, []byte("HeavyHash"))
	_, _ = h.Write(b[:])
	var out [types.HashSize]byte
	_, _ = h.Read(out[:])
	return types.Uint256FromBytes(out)
}

func TestPowHasher(t *testing.T) {
	prePowHash := types.Uint256{1, 2, 3, 4}
	hasher := NewPowHasher(prePowHash, 1)

	for _, nonce := range []uint64{0, 1, 2, 0xdeadbeef, ^uint64(0)} {
		expected := cShakePowHash(prePowHash, 1, nonce)
		if result := hasher.FinalizeWithNonce(nonce); result != expected {
			t.Fatalf("nonce %d: expected %s, got %s", nonce, expected, result)
		}
	}

	// the base is reusable
	if hasher != NewPowHasher(prePowHash, 1) {
		t.Fatal("base state was modified")
	}
}

func TestPowHasher_KnownAnswer(t *testing.T) {
	result := NewPowHasher(types.Uint256{1, 2, 3, 4}, 1).FinalizeWithNonce(1)

	const expected = "eebf6da247cc11fa7660423b40c19e00cf94d83d5fd2148b413a925eeaeab701"
	if digest := types.Hash(result.Bytes()).String(); digest != expected {
		t.Fatalf("expected %s, got %s", expected, digest)
	}
}

func TestPowHasher_Timestamp(t *testing.T) {
	prePowHash := types.Uint256{1, 2, 3, 4}

	a := NewPowHasher(prePowHash, 1).FinalizeWithNonce(1)
	b := NewPowHasher(prePowHash, 2).FinalizeWithNonce(1)
	if a == b {
		t.Fatal("timestamp is not absorbed")
	}
	if b != cShakePowHash(prePowHash, 2, 1) {
		t.Fatalf("expected %s, got %s", cShakePowHash(prePowHash, 2, 1), b)
	}
}

func TestHeavyHasher(t *testing.T) {
	for _, in := range []types.Uint256{{}, {1, 2, 3, 4}, types.MaxUint256} {
		expected := cShakeHeavyHash(in)
		if result := HeavyHash(in); result != expected {
			t.Fatalf("input %s: expected %s, got %s", in, expected, result)
		}
	}
}

func FuzzPowHasher(f *testing.F) {
	f.Add(uint64(1), uint64(2), uint64(3), uint64(4), uint64(1), uint64(1))
	f.Add(uint64(0), uint64(0), uint64(0), uint64(0), uint64(0), uint64(0))
	f.Add(^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0))

	f.Fuzz(func(t *testing.T, w0, w1, w2, w3, timestamp, nonce uint64) {
		prePowHash := types.Uint256{w0, w1, w2, w3}

		expected := cShakePowHash(prePowHash, timestamp, nonce)
		if result := NewPowHasher(prePowHash, timestamp).FinalizeWithNonce(nonce); result != expected {
			t.Fatalf("expected %s, got %s", expected, result)
		}

		expected = cShakeHeavyHash(prePowHash)
		if result := HeavyHash(prePowHash); result != expected {
			t.Fatalf("heavy: expected %s, got %s", expected, result)
		}
	})
}

func BenchmarkPowHasher_FinalizeWithNonce(b *testing.B) {
	hasher := NewPowHasher(types.Uint256{1, 2, 3, 4}, 1)
	var result types.Uint256
	b.ReportAllocs()
	var nonce uint64
	for b.Loop() {
		result = hasher.FinalizeWithNonce(nonce)
		nonce++
	}
	runtime.KeepAlive(result)
}
