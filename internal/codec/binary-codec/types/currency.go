//revive:disable:var-naming
package types

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

const (
	// CurrencyCodeByteLength is the width of a serialized currency code.
	CurrencyCodeByteLength = 20

	isoCurrencyChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789<>(){}[]|?!@#$%^&*"
)

var (
	// ErrInvalidCurrency is returned for a malformed currency code.
	ErrInvalidCurrency = errors.New("invalid currency code")
	// ErrXRPCurrencyNotAllowed is returned when XRP is used as an issued currency.
	ErrXRPCurrencyNotAllowed = errors.New("XRP is not a valid issued currency code")

	xrpHexCode = [CurrencyCodeByteLength]byte{12: 'X', 13: 'R', 14: 'P'}
)

// Currency is a 20-byte currency code. "XRP" maps to all zeros.
type Currency struct{}

// FromJSON encodes "XRP", a three character ISO style code or 40 hex digits.
func (c *Currency) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: currency must be a string, got %T", ErrInvalidCurrency, value)
	}
	if s == "XRP" {
		return make([]byte, CurrencyCodeByteLength), nil
	}
	return serializeIssuedCurrencyCode(s)
}

// ToJSON reads a currency code.
func (c *Currency) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(CurrencyCodeByteLength)
	if err != nil {
		return nil, err
	}
	return currencyCodeToJSON(b), nil
}

// serializeIssuedCurrencyCode encodes a non-XRP currency code.
func serializeIssuedCurrencyCode(currency string) ([]byte, error) {
	if len(currency) == 40 {
		b, err := hex.DecodeString(currency)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
		}
		if bytes.Equal(b, xrpHexCode[:]) {
			return nil, ErrXRPCurrencyNotAllowed
		}
		return b, nil
	}

	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	if currency == "XRP" {
		return nil, ErrXRPCurrencyNotAllowed
	}
	for _, r := range currency {
		if !strings.ContainsRune(isoCurrencyChars, r) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
		}
	}
	out := make([]byte, CurrencyCodeByteLength)
	copy(out[12:15], currency)
	return out, nil
}

func currencyCodeToJSON(b []byte) string {
	if isZero(b) {
		return "XRP"
	}
	if isZero(b[:12]) && isZero(b[15:]) {
		code := string(b[12:15])
		if code != "XRP" && !strings.ContainsFunc(code, func(r rune) bool {
			return !strings.ContainsRune(isoCurrencyChars, r)
		}) {
			return code
		}
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
