package serdes

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/serdes/interfaces"
)

const (
	// ObjectEndMarker terminates an inner STObject.
	ObjectEndMarker byte = 0xE1
	// ArrayEndMarker terminates an STArray.
	ArrayEndMarker byte = 0xF1
)

var (
	// ErrParserOutOfBound is returned when reading past the end of the input.
	ErrParserOutOfBound = errors.New("parser out of bounds")
	// ErrInvalidVariableLength is returned for a VL prefix starting with 0xFF.
	ErrInvalidVariableLength = errors.New("invalid variable length indicator")
)

// BinaryParser reads canonical encodings field by field.
type BinaryParser struct {
	data        []byte
	definitions interfaces.Definitions
}

// NewBinaryParser returns a parser over data.
func NewBinaryParser(data []byte, defs interfaces.Definitions) *BinaryParser {
	return &BinaryParser{data: data, definitions: defs}
}

// ReadByte consumes one byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	if len(p.data) == 0 {
		return 0, ErrParserOutOfBound
	}
	b := p.data[0]
	p.data = p.data[1:]
	return b, nil
}

// Peek returns the next byte without consuming it.
func (p *BinaryParser) Peek() (byte, error) {
	if len(p.data) == 0 {
		return 0, ErrParserOutOfBound
	}
	return p.data[0], nil
}

// ReadBytes consumes n bytes.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > len(p.data) {
		return nil, ErrParserOutOfBound
	}
	out := p.data[:n]
	p.data = p.data[n:]
	return out, nil
}

// Definitions returns the table the parser resolves fields against.
func (p *BinaryParser) Definitions() interfaces.Definitions {
	return p.definitions
}

// HasMore reports whether unread bytes remain.
func (p *BinaryParser) HasMore() bool {
	return len(p.data) > 0
}

// ReadField consumes a field header and resolves it against the definitions.
func (p *BinaryParser) ReadField() (*definitions.FieldInstance, error) {
	fh, err := p.readFieldHeader()
	if err != nil {
		return nil, err
	}
	name, err := p.definitions.GetFieldNameByFieldHeader(fh)
	if err != nil {
		return nil, err
	}
	return p.definitions.GetFieldInstanceByFieldName(name)
}

func (p *BinaryParser) readFieldHeader() (definitions.FieldHeader, error) {
	first, err := p.ReadByte()
	if err != nil {
		return definitions.FieldHeader{}, err
	}
	typeCode, fieldCode := int32(first>>4), int32(first&0x0F)

	if typeCode == 0 {
		b, err := p.ReadByte()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		typeCode = int32(b)
		if typeCode < 16 {
			return definitions.FieldHeader{}, fmt.Errorf("%w: type code %d must be encoded in one nibble", ErrInvalidFieldID, typeCode)
		}
	}
	if fieldCode == 0 {
		b, err := p.ReadByte()
		if err != nil {
			return definitions.FieldHeader{}, err
		}
		fieldCode = int32(b)
		if fieldCode < 16 {
			return definitions.FieldHeader{}, fmt.Errorf("%w: field code %d must be encoded in one nibble", ErrInvalidFieldID, fieldCode)
		}
	}
	return p.definitions.CreateFieldHeader(typeCode, fieldCode), nil
}

// ReadVariableLength consumes a VL prefix and returns the payload length.
func (p *BinaryParser) ReadVariableLength() (int, error) {
	b1, err := p.ReadByte()
	if err != nil {
		return 0, err
	}
	switch {
	case b1 <= 192:
		return int(b1), nil
	case b1 <= 240:
		b2, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return 193 + (int(b1)-193)*256 + int(b2), nil
	case b1 <= 254:
		rest, err := p.ReadBytes(2)
		if err != nil {
			return 0, err
		}
		return 12481 + (int(b1)-241)*65536 + int(rest[0])*256 + int(rest[1]), nil
	}
	return 0, ErrInvalidVariableLength
}
