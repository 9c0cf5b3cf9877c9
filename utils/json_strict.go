package utils

import (
	"errors"
	"io"
)

// DecodeJSONStrict decodes exactly one JSON value from reader into val, rejecting unknown fields and trailing values
func DecodeJSONStrict(reader io.Reader, val any) error {
	decoder := NewJSONDecoder(reader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(val); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
