//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"math"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

// UInt8 represents an 8-bit unsigned integer.
type UInt8 struct{}

// FromJSON encodes a numeric value as one byte.
func (u *UInt8) FromJSON(value any) ([]byte, error) {
	v, err := toUint(value, math.MaxUint8)
	if err != nil {
		return nil, err
	}
	return []byte{byte(v)}, nil
}

// ToJSON reads one byte.
func (u *UInt8) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadByte()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UInt16 represents a 16-bit unsigned integer.
type UInt16 struct{}

// FromJSON encodes a numeric value as two big-endian bytes.
func (u *UInt16) FromJSON(value any) ([]byte, error) {
	v, err := toUint(value, math.MaxUint16)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint16(nil, uint16(v)), nil
}

// ToJSON reads two big-endian bytes.
func (u *UInt16) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// UInt32 represents a 32-bit unsigned integer.
type UInt32 struct{}

// FromJSON encodes a numeric value as four big-endian bytes.
func (u *UInt32) FromJSON(value any) ([]byte, error) {
	v, err := toUint(value, math.MaxUint32)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint32(nil, uint32(v)), nil
}

// ToJSON reads four big-endian bytes.
func (u *UInt32) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.Uint32(b), nil
}
