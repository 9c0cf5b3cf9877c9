package utils

import (
	"errors"
	"fmt"

	fasthex "github.com/tmthrgd/go-hex"
)

var (
	ErrOddLength           = errors.New("hex: odd length")
	ErrInvalidStringLength = errors.New("hex: invalid string length")
)

// InvalidHexCharacterError reports the first byte that is not a hex digit and its offset in the input
type InvalidHexCharacterError struct {
	Char  byte
	Index int
}

func (e *InvalidHexCharacterError) Error() string {
	return fmt.Sprintf("hex: invalid character %q at position %d", rune(e.Char), e.Index)
}

func hexValue(c byte, index int) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, &InvalidHexCharacterError{Char: c, Index: index}
}

// DecodeHexTo decodes src into dst, which must be exactly half as long as src.
// Nothing is truncated or padded.
func DecodeHexTo[T ~string | ~[]byte](dst []byte, src T) error {
	if len(src)%2 != 0 {
		return ErrOddLength
	}
	if len(src)/2 != len(dst) {
		return ErrInvalidStringLength
	}

	for i := range dst {
		hi, err := hexValue(src[2*i], 2*i)
		if err != nil {
			return err
		}
		lo, err := hexValue(src[2*i+1], 2*i+1)
		if err != nil {
			return err
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

// DecodeHex decodes any even length hex input
func DecodeHex[T ~string | ~[]byte](src T) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddLength
	}
	buf := make([]byte, len(src)/2)
	if err := DecodeHexTo(buf, src); err != nil {
		return nil, err
	}
	return buf, nil
}

// EncodeHex lowercase hex encoding
func EncodeHex(src []byte) string {
	return fasthex.EncodeToString(src)
}
