// Package types implements the serialized field types of the XRPL binary
// format. Every type converts between a JSON value and its canonical bytes.
//
//revive:disable:var-naming
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

// SerializedType converts a JSON value of one wire type to bytes and back.
//
// ToJSON receives the payload length as its first option when the field is
// VL encoded.
type SerializedType interface {
	FromJSON(json any) ([]byte, error)
	ToJSON(parser interfaces.BinaryParser, opts ...int) (any, error)
}

var (
	// ErrUnsupportedType is returned for a wire type this codec cannot handle.
	ErrUnsupportedType = errors.New("unsupported serialized type")
	// ErrInvalidValue is returned when a JSON value has the wrong shape for its type.
	ErrInvalidValue = errors.New("invalid value for serialized type")
	// ErrMissingLength is returned when a VL type is read without its length.
	ErrMissingLength = errors.New("no length provided for variable length type")
)

// GetSerializedType returns the codec of the named leaf wire type, or nil.
// STObject and STArray need a definitions table and are built by STObject.
func GetSerializedType(t string) SerializedType {
	switch t {
	case "UInt8":
		return &UInt8{}
	case "UInt16":
		return &UInt16{}
	case "UInt32":
		return &UInt32{}
	case "UInt64":
		return &UInt64{}
	case "Hash128":
		return NewHash128()
	case "Hash160":
		return NewHash160()
	case "Hash192":
		return NewHash192()
	case "Hash256":
		return NewHash256()
	case "AccountID":
		return &AccountID{}
	case "Amount":
		return &Amount{}
	case "Blob":
		return &Blob{}
	case "Currency":
		return &Currency{}
	case "Issue":
		return &Issue{}
	case "PathSet":
		return &PathSet{}
	case "Vector256":
		return &Vector256{}
	}
	return nil
}

// toUint converts the numeric shapes a decoded JSON document can hold to
// an unsigned integer no larger than limit.
func toUint(value any, limit uint64) (uint64, error) {
	var v uint64
	switch n := value.(type) {
	case uint8:
		v = uint64(n)
	case uint16:
		v = uint64(n)
	case uint32:
		v = uint64(n)
	case uint64:
		v = n
	case uint:
		v = uint64(n)
	case int:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative integer %d", ErrInvalidValue, n)
		}
		v = uint64(n)
	case int32:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative integer %d", ErrInvalidValue, n)
		}
		v = uint64(n)
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative integer %d", ErrInvalidValue, n)
		}
		v = uint64(n)
	case float64:
		if n < 0 || n != math.Trunc(n) || n > math.MaxUint64 {
			return 0, fmt.Errorf("%w: %v is not an unsigned integer", ErrInvalidValue, n)
		}
		v = uint64(n)
	case json.Number:
		return toUint(string(n), limit)
	case string:
		parsed, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidValue, n)
		}
		v = parsed
	default:
		return 0, fmt.Errorf("%w: %T is not an unsigned integer", ErrInvalidValue, value)
	}
	if v > limit {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrInvalidValue, v, limit)
	}
	return v, nil
}

func lengthOption(opts []int) (int, error) {
	if len(opts) == 0 {
		return 0, ErrMissingLength
	}
	return opts[0], nil
}
