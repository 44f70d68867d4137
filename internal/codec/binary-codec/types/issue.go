//revive:disable:var-naming
package types

import (
	"fmt"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

// Issue identifies an asset: XRP, or a currency with its issuer.
type Issue struct{}

// FromJSON encodes {"currency": "XRP"} or {"currency": ..., "issuer": ...}.
func (i *Issue) FromJSON(value any) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: issue must be an object, got %T", ErrInvalidValue, value)
	}
	currency, _ := m["currency"].(string)
	if currency == "XRP" {
		if _, hasIssuer := m["issuer"]; hasIssuer {
			return nil, fmt.Errorf("%w: XRP issue must not carry an issuer", ErrInvalidValue)
		}
		return make([]byte, CurrencyCodeByteLength), nil
	}

	code, err := serializeIssuedCurrencyCode(currency)
	if err != nil {
		return nil, err
	}
	issuer, err := (&AccountID{}).FromJSON(m["issuer"])
	if err != nil {
		return nil, err
	}
	return append(code, issuer...), nil
}

// ToJSON reads an issue.
func (i *Issue) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	code, err := p.ReadBytes(CurrencyCodeByteLength)
	if err != nil {
		return nil, err
	}
	if isZero(code) {
		return map[string]any{"currency": "XRP"}, nil
	}
	issuer, err := (&AccountID{}).ToJSON(p)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"currency": currencyCodeToJSON(code),
		"issuer":   issuer,
	}, nil
}
