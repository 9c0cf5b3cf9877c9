package crypto

import (
	"encoding/binary"
	"hash"

	"git.gammaspectra.live/P2Pool/spectrex/types"
	"golang.org/x/crypto/blake2b"
)

// BlockHashKey key of the BLAKE2b digest that produces block pre-image hashes
const BlockHashKey = "BlockHash"

// HeaderHasher keyed BLAKE2b-256 over serialized block header bytes.
// A finalized hasher must not be written to again.
type HeaderHasher struct {
	h hash.Hash
}

func NewHeaderHasher() *HeaderHasher {
	h, err := blake2b.New256([]byte(BlockHashKey))
	if err != nil {
		// only returned for keys longer than 64 bytes
		panic(err)
	}
	return &HeaderHasher{h: h}
}

// Write absorbs p. Consecutive writes are equivalent to one write of the concatenation.
func (h *HeaderHasher) Write(p []byte) (n int, err error) {
	return h.h.Write(p)
}

// Update absorbs p and returns h for chaining
func (h *HeaderHasher) Update(p []byte) *HeaderHasher {
	_, _ = h.h.Write(p)
	return h
}

func (h *HeaderHasher) WriteUint16(v uint16) *HeaderHasher {
	return h.Update(binary.LittleEndian.AppendUint16(make([]byte, 0, 2), v))
}

func (h *HeaderHasher) WriteUint32(v uint32) *HeaderHasher {
	return h.Update(binary.LittleEndian.AppendUint32(make([]byte, 0, 4), v))
}

func (h *HeaderHasher) WriteUint64(v uint64) *HeaderHasher {
	return h.Update(binary.LittleEndian.AppendUint64(make([]byte, 0, 8), v))
}

// WriteVarBytes absorbs the length of p as a little-endian uint64 followed by p
func (h *HeaderHasher) WriteVarBytes(p []byte) *HeaderHasher {
	return h.WriteUint64(uint64(len(p))).Update(p)
}

// Finalize returns the 32 byte digest read as four little-endian words
func (h *HeaderHasher) Finalize() types.Uint256 {
	var buf [types.HashSize]byte
	h.h.Sum(buf[:0])
	return types.Uint256FromBytes(buf)
}

// BlockHash keyed pre-image hash of the concatenation of data
func BlockHash(data ...[]byte) types.Uint256 {
	h := NewHeaderHasher()
	for _, b := range data {
		_, _ = h.Write(b)
	}
	return h.Finalize()
}
