//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"strings"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

// UInt64 represents a 64-bit unsigned integer.
type UInt64 struct{}

// ErrInvalidUInt64String is returned when a value is not a valid string representation of a UInt64.
var ErrInvalidUInt64String = errors.New("invalid UInt64 string, value should be a hex string of at most 16 digits")

// FromJSON encodes a UInt64. Strings are hex (without leading zeros, like "a"
// for 10), matching rippled's JSON rendering; plain numbers are accepted too.
func (u *UInt64) FromJSON(value any) ([]byte, error) {
	strVal, ok := value.(string)
	if !ok {
		v, err := toUint(value, math.MaxUint64)
		if err != nil {
			return nil, ErrInvalidUInt64String
		}
		return binary.BigEndian.AppendUint64(nil, v), nil
	}

	if strVal == "" || len(strVal) > 16 {
		return nil, ErrInvalidUInt64String
	}
	decoded, err := hex.DecodeString(strings.Repeat("0", 16-len(strVal)) + strVal)
	if err != nil {
		return nil, ErrInvalidUInt64String
	}
	return decoded, nil
}

// ToJSON reads eight bytes and renders them as lowercase hex with leading
// zeros stripped.
func (u *UInt64) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	hexStr := strings.TrimLeft(hex.EncodeToString(b), "0")
	if hexStr == "" {
		hexStr = "0"
	}
	return hexStr, nil
}
