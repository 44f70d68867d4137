//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

// Blob is a variable length byte string rendered as uppercase hex.
type Blob struct{}

// FromJSON decodes a hex string.
func (b *Blob) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: blob must be a hex string, got %T", ErrInvalidValue, value)
	}
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return out, nil
}

// ToJSON reads opts[0] bytes.
func (b *Blob) ToJSON(p interfaces.BinaryParser, opts ...int) (any, error) {
	n, err := lengthOption(opts)
	if err != nil {
		return nil, err
	}
	v, err := p.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(v)), nil
}
