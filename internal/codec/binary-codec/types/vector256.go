//revive:disable:var-naming
package types

import (
	"fmt"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

const hash256Length = 32

// Vector256 is a VL encoded list of 256-bit hashes.
type Vector256 struct{}

// FromJSON encodes a list of 64 digit hex strings.
func (v *Vector256) FromJSON(value any) ([]byte, error) {
	var items []string
	switch s := value.(type) {
	case []string:
		items = s
	case []any:
		items = make([]string, 0, len(s))
		for _, e := range s {
			h, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: Vector256 entries must be strings, got %T", ErrInvalidValue, e)
			}
			items = append(items, h)
		}
	default:
		return nil, fmt.Errorf("%w: Vector256 must be a list, got %T", ErrInvalidValue, value)
	}

	out := make([]byte, 0, len(items)*hash256Length)
	for _, h := range items {
		b, err := NewHash256().FromJSON(h)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// ToJSON reads opts[0] bytes of hashes.
func (v *Vector256) ToJSON(p interfaces.BinaryParser, opts ...int) (any, error) {
	n, err := lengthOption(opts)
	if err != nil {
		return nil, err
	}
	if n%hash256Length != 0 {
		return nil, fmt.Errorf("%w: Vector256 of %d bytes", ErrInvalidValue, n)
	}
	out := make([]string, 0, n/hash256Length)
	for range n / hash256Length {
		h, err := NewHash256().ToJSON(p)
		if err != nil {
			return nil, err
		}
		out = append(out, h.(string))
	}
	return out, nil
}
