package types

import (
	"bytes"
	"errors"

	"git.gammaspectra.live/P2Pool/spectrex/utils"
	fasthex "github.com/tmthrgd/go-hex"
)

const HashSize = 32

// Hash raw 32 bytes as exchanged with callers.
// Proof-of-work results use the big-endian convention, see Uint256 for the internal little-endian form.
//
//nolint:recvcheck
type Hash [HashSize]byte

var ZeroHash Hash

func (h Hash) MarshalJSON() ([]byte, error) {
	var buf [HashSize*2 + 2]byte
	buf[0] = '"'
	buf[HashSize*2+1] = '"'
	fasthex.Encode(buf[1:], h[:])
	return buf[:], nil
}

func MustBytes32FromString[T ~[32]byte](s string) T {
	if h, err := Bytes32FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

// Bytes32FromString decodes exactly 64 hex characters
func Bytes32FromString[T ~[32]byte](s string) (T, error) {
	var h T
	if err := utils.DecodeHexTo(h[:], s); err != nil {
		return h, err
	}
	return h, nil
}

func MustHashFromString(s string) Hash {
	return MustBytes32FromString[Hash](s)
}

func HashFromString(s string) (Hash, error) {
	return Bytes32FromString[Hash](s)
}

// HashFromBytes copies buf, which must be exactly HashSize long
func HashFromBytes(buf []byte) (h Hash, ok bool) {
	if len(buf) != HashSize {
		return h, false
	}
	copy(h[:], buf)
	return h, true
}

// Compare orders hashes as big-endian numbers
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

// Reverse returns the hash with its byte order flipped, converting between big and little-endian conventions
func (h Hash) Reverse() (r Hash) {
	for i := range h {
		r[HashSize-1-i] = h[i]
	}
	return r
}

func (h Hash) Slice() []byte {
	return h[:]
}

func (h Hash) String() string {
	return fasthex.EncodeToString(h[:])
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("invalid hash")
	}

	return utils.DecodeHexTo(h[:], b[1:len(b)-1])
}

//nolint:recvcheck
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(b)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], b)
	return buf, nil
}

func (b Bytes) String() string {
	return fasthex.EncodeToString(b)
}

func (b *Bytes) UnmarshalJSON(buf []byte) error {
	if len(buf) < 2 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("invalid bytes")
	}

	decoded, err := utils.DecodeHex(buf[1 : len(buf)-1])
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
