//revive:disable:var-naming
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

// Hash is a fixed-width opaque value rendered as uppercase hex.
type Hash struct {
	length int
}

// NewHash128 returns the 16-byte hash type.
func NewHash128() *Hash { return &Hash{length: 16} }

// NewHash160 returns the 20-byte hash type.
func NewHash160() *Hash { return &Hash{length: 20} }

// NewHash192 returns the 24-byte hash type.
func NewHash192() *Hash { return &Hash{length: 24} }

// NewHash256 returns the 32-byte hash type.
func NewHash256() *Hash { return &Hash{length: 32} }

// FromJSON decodes a hex string of exactly the hash width.
func (h *Hash) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: hash must be a hex string, got %T", ErrInvalidValue, value)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if len(b) != h.length {
		return nil, fmt.Errorf("%w: hash of %d bytes, want %d", ErrInvalidValue, len(b), h.length)
	}
	return b, nil
}

// ToJSON reads the hash width.
func (h *Hash) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(h.length)
	if err != nil {
		return nil, err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
