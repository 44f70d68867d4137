package serdes

import (
	"errors"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/serdes/interfaces"
)

const maxLengthPrefix = 918744

var (
	// ErrLengthPrefixTooLong is returned when a VL payload exceeds 918744 bytes.
	ErrLengthPrefixTooLong = errors.New("length of value must not exceed 918744 bytes of data")
)

// BinarySerializer accumulates the canonical encoding of an object.
type BinarySerializer struct {
	sink         []byte
	fieldIDCodec *FieldIDCodec
}

// NewBinarySerializer returns an empty serializer.
func NewBinarySerializer(fieldIDCodec *FieldIDCodec) *BinarySerializer {
	return &BinarySerializer{fieldIDCodec: fieldIDCodec}
}

// WriteFieldAndValue appends the field header followed by value, length
// prefixed when the field is VL encoded.
func (s *BinarySerializer) WriteFieldAndValue(fieldInstance definitions.FieldInstance, value []byte) error {
	header, err := s.fieldIDCodec.Encode(fieldInstance.FieldName)
	if err != nil {
		return err
	}
	s.put(header)

	if fieldInstance.IsVLEncoded {
		vl, err := encodeVariableLength(len(value))
		if err != nil {
			return err
		}
		s.put(vl)
	}
	s.put(value)

	switch fieldInstance.Type {
	case "STObject":
		s.put([]byte{ObjectEndMarker})
	case "STArray":
		s.put([]byte{ArrayEndMarker})
	}
	return nil
}

// Definitions returns the table backing the field id codec.
func (s *BinarySerializer) Definitions() interfaces.Definitions {
	return s.fieldIDCodec.definitions
}

// GetSink returns the bytes written so far.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink
}

func (s *BinarySerializer) put(v []byte) {
	s.sink = append(s.sink, v...)
}

// encodeVariableLength returns the 1 to 3 byte VL prefix of a payload of
// the given length.
func encodeVariableLength(length int) ([]byte, error) {
	if length <= 192 {
		return []byte{byte(length)}, nil
	}
	if length <= 12480 {
		length -= 193
		return []byte{byte((length >> 8) + 193), byte(length & 0xFF)}, nil
	}
	if length <= maxLengthPrefix {
		length -= 12481
		return []byte{
			byte((length >> 16) + 241),
			byte((length >> 8) & 0xFF),
			byte(length & 0xFF),
		}, nil
	}
	return nil, ErrLengthPrefixTooLong
}
