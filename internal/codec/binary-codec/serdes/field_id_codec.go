package serdes

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/serdes/interfaces"
)

var (
	// ErrInvalidFieldID is returned when a field header cannot be decoded.
	ErrInvalidFieldID = errors.New("invalid field id")
)

// FieldIDCodec encodes field names to their wire headers and back.
type FieldIDCodec struct {
	definitions interfaces.Definitions
}

// NewFieldIDCodec returns a codec backed by defs.
func NewFieldIDCodec(defs interfaces.Definitions) *FieldIDCodec {
	return &FieldIDCodec{definitions: defs}
}

// Encode returns the 1 to 3 byte header of fieldName.
func (f *FieldIDCodec) Encode(fieldName string) ([]byte, error) {
	fh, err := f.definitions.GetFieldHeaderByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return encodeFieldHeader(*fh)
}

// Decode resolves a hex encoded field header to a field name.
func (f *FieldIDCodec) Decode(h string) (string, error) {
	b, err := hex.DecodeString(h)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFieldID, err)
	}
	fh, err := decodeFieldHeader(b)
	if err != nil {
		return "", err
	}
	return f.definitions.GetFieldNameByFieldHeader(fh)
}

func encodeFieldHeader(fh definitions.FieldHeader) ([]byte, error) {
	t, n := fh.TypeCode, fh.FieldCode
	if t < 1 || t > 255 || n < 1 || n > 255 {
		return nil, fmt.Errorf("%w: type %d field %d out of range", ErrInvalidFieldID, t, n)
	}
	switch {
	case t < 16 && n < 16:
		return []byte{byte(t<<4 | n)}, nil
	case t >= 16 && n < 16:
		return []byte{byte(n), byte(t)}, nil
	case t < 16 && n >= 16:
		return []byte{byte(t << 4), byte(n)}, nil
	default:
		return []byte{0, byte(t), byte(n)}, nil
	}
}

func decodeFieldHeader(b []byte) (definitions.FieldHeader, error) {
	var fh definitions.FieldHeader
	switch len(b) {
	case 1:
		fh.TypeCode, fh.FieldCode = int32(b[0]>>4), int32(b[0]&0x0F)
	case 2:
		if b[0]>>4 == 0 {
			fh.TypeCode, fh.FieldCode = int32(b[1]), int32(b[0]&0x0F)
		} else {
			fh.TypeCode, fh.FieldCode = int32(b[0]>>4), int32(b[1])
		}
	case 3:
		fh.TypeCode, fh.FieldCode = int32(b[1]), int32(b[2])
	default:
		return fh, fmt.Errorf("%w: header of %d bytes", ErrInvalidFieldID, len(b))
	}
	return fh, nil
}
