//revive:disable:var-naming
package types

import (
	"fmt"

	addresscodec "github.com/LeJamon/goXRPLkit/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

// AccountID is a 20-byte account identifier rendered as a classic address.
type AccountID struct{}

// FromJSON decodes a classic address.
func (a *AccountID) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: account must be a classic address, got %T", ErrInvalidValue, value)
	}
	_, accountID, err := addresscodec.DecodeClassicAddressToAccountID(s)
	if err != nil {
		return nil, err
	}
	return accountID, nil
}

// ToJSON reads an account ID. Inside a VL field the length comes from opts[0].
func (a *AccountID) ToJSON(p interfaces.BinaryParser, opts ...int) (any, error) {
	n := addresscodec.AccountAddressLength
	if len(opts) > 0 {
		n = opts[0]
	}
	b, err := p.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return addresscodec.EncodeAccountIDToClassicAddress(b)
}
