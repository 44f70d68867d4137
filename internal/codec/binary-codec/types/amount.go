//revive:disable:var-naming
package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types/interfaces"
)

const (
	MinIOUExponent  = -96
	MaxIOUExponent  = 80
	MaxIOUPrecision = 16
	MinIOUMantissa  = 1000000000000000
	MaxIOUMantissa  = 9999999999999999

	NotXRPBitMask            = 0x80
	PosSignBitMask           = 0x4000000000000000
	ZeroCurrencyAmountHex    = 0x8000000000000000
	MPTBitMask               = 0x20
	NativeAmountByteLength   = 8
	CurrencyAmountByteLength = 48
	MPTAmountByteLength      = 33
	MPTIssuanceIDByteLength  = 24

	maxDrops = 100000000000000000
)

var (
	// ErrInvalidXRPValue is returned for a drops string that is not a whole,
	// non-negative amount within the XRP supply.
	ErrInvalidXRPValue = errors.New("invalid XRP value")
	// ErrInvalidAmount is returned for an amount of unrecognized shape.
	ErrInvalidAmount = errors.New("invalid amount")

	tenInt = big.NewInt(10)
)

// OutOfRangeError reports an issued currency value whose exponent or
// precision cannot be represented.
type OutOfRangeError struct {
	Type string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s is out of range", e.Type)
}

// Amount is an XRP, issued currency or MPT amount.
//
//	XRP:  "1000"                                        (drops)
//	IOU:  {"currency": "USD", "issuer": "r...", "value": "1.5"}
//	MPT:  {"mpt_issuance_id": "00...", "value": "100"}
type Amount struct{}

// FromJSON encodes any of the three amount shapes.
func (a *Amount) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return serializeXrpAmount(v)
	case map[string]any:
		if _, ok := v["mpt_issuance_id"]; ok {
			return serializeMPTAmount(v)
		}
		return serializeIssuedCurrencyAmount(v)
	}
	return nil, fmt.Errorf("%w: unexpected %T", ErrInvalidAmount, value)
}

// ToJSON reads an amount, dispatching on the leading flag bits.
func (a *Amount) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	first, err := p.Peek()
	if err != nil {
		return nil, err
	}
	switch {
	case !isNative(first):
		return deserializeIssuedCurrencyAmount(p)
	case first&MPTBitMask != 0:
		return deserializeMPTAmount(p)
	}

	b, err := p.ReadBytes(NativeAmountByteLength)
	if err != nil {
		return nil, err
	}
	raw := binary.BigEndian.Uint64(b)
	drops := fmt.Sprintf("%d", raw&^(uint64(0xC0)<<56))
	if !isPositive(first) && drops != "0" {
		drops = "-" + drops
	}
	return drops, nil
}

func isNative(b byte) bool {
	return b&NotXRPBitMask == 0
}

func isPositive(b byte) bool {
	return b&0x40 > 0
}

// verifyXrpValue checks that value is a whole number of drops within the
// XRP supply.
func verifyXrpValue(value string) error {
	if strings.ContainsAny(value, ".eE") {
		return fmt.Errorf("%w: %q is not a whole number of drops", ErrInvalidXRPValue, value)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidXRPValue, value)
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(maxDrops)) {
		return fmt.Errorf("%w: %q out of range", ErrInvalidXRPValue, value)
	}
	return nil
}

func serializeXrpAmount(value string) ([]byte, error) {
	if err := verifyXrpValue(value); err != nil {
		return nil, err
	}
	d, _ := decimal.NewFromString(value)
	return binary.BigEndian.AppendUint64(nil, uint64(d.IntPart())|PosSignBitMask), nil
}

// normalizeIOU returns the 16 digit mantissa and exponent of a non-zero
// value, or an OutOfRangeError.
func normalizeIOU(d decimal.Decimal) (mantissa uint64, exponent int, err error) {
	coef := new(big.Int).Abs(d.Coefficient())
	exponent = int(d.Exponent())

	r := new(big.Int)
	for {
		q, m := new(big.Int).QuoRem(coef, tenInt, r)
		if m.Sign() != 0 {
			break
		}
		coef = q
		exponent++
	}

	digits := len(coef.String())
	if digits > MaxIOUPrecision {
		return 0, 0, &OutOfRangeError{Type: "Precision"}
	}
	pad := MaxIOUPrecision - digits
	coef.Mul(coef, new(big.Int).Exp(tenInt, big.NewInt(int64(pad)), nil))
	exponent -= pad

	if exponent < MinIOUExponent || exponent > MaxIOUExponent {
		return 0, 0, &OutOfRangeError{Type: "Exponent"}
	}
	return coef.Uint64(), exponent, nil
}

// verifyIOUValue checks that an issued currency value is representable.
func verifyIOUValue(value string) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	if d.IsZero() {
		return nil
	}
	_, _, err = normalizeIOU(d)
	return err
}

func serializeIssuedValue(value string) ([]byte, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	if d.IsZero() {
		return binary.BigEndian.AppendUint64(nil, ZeroCurrencyAmountHex), nil
	}
	mantissa, exponent, err := normalizeIOU(d)
	if err != nil {
		return nil, err
	}
	v := uint64(ZeroCurrencyAmountHex) | mantissa | uint64(exponent+97)<<54
	if d.IsPositive() {
		v |= PosSignBitMask
	}
	return binary.BigEndian.AppendUint64(nil, v), nil
}

func serializeIssuedCurrencyAmount(m map[string]any) ([]byte, error) {
	value, ok := m["value"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: value must be a string", ErrInvalidAmount)
	}
	currency, ok := m["currency"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: currency must be a string", ErrInvalidAmount)
	}

	out, err := serializeIssuedValue(value)
	if err != nil {
		return nil, err
	}
	code, err := serializeIssuedCurrencyCode(currency)
	if err != nil {
		return nil, err
	}
	issuer, err := (&AccountID{}).FromJSON(m["issuer"])
	if err != nil {
		return nil, err
	}
	out = append(out, code...)
	return append(out, issuer...), nil
}

func deserializeIssuedCurrencyAmount(p interfaces.BinaryParser) (any, error) {
	b, err := p.ReadBytes(NativeAmountByteLength)
	if err != nil {
		return nil, err
	}
	code, err := p.ReadBytes(CurrencyCodeByteLength)
	if err != nil {
		return nil, err
	}
	issuer, err := (&AccountID{}).ToJSON(p)
	if err != nil {
		return nil, err
	}

	raw := binary.BigEndian.Uint64(b)
	value := "0"
	if mantissa := raw & 0x003FFFFFFFFFFFFF; mantissa != 0 {
		exponent := int32((raw>>54)&0xFF) - 97
		d := decimal.New(int64(mantissa), exponent)
		if raw&PosSignBitMask == 0 {
			d = d.Neg()
		}
		value = d.String()
	}
	return map[string]any{
		"value":    value,
		"currency": currencyCodeToJSON(code),
		"issuer":   issuer,
	}, nil
}

func serializeMPTAmount(m map[string]any) ([]byte, error) {
	value, ok := m["value"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: value must be a string", ErrInvalidAmount)
	}
	id, ok := m["mpt_issuance_id"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: mpt_issuance_id must be a string", ErrInvalidAmount)
	}
	issuance, err := hex.DecodeString(id)
	if err != nil || len(issuance) != MPTIssuanceIDByteLength {
		return nil, fmt.Errorf("%w: mpt_issuance_id must be %d bytes of hex", ErrInvalidAmount, MPTIssuanceIDByteLength)
	}

	d, err := decimal.NewFromString(value)
	if err != nil || !d.IsInteger() || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1<<63-1)) {
		return nil, fmt.Errorf("%w: MPT value %q", ErrInvalidAmount, value)
	}

	out := make([]byte, 0, MPTAmountByteLength)
	out = append(out, 0x60)
	out = binary.BigEndian.AppendUint64(out, uint64(d.IntPart()))
	return append(out, issuance...), nil
}

func deserializeMPTAmount(p interfaces.BinaryParser) (any, error) {
	b, err := p.ReadBytes(MPTAmountByteLength)
	if err != nil {
		return nil, err
	}
	value := fmt.Sprintf("%d", binary.BigEndian.Uint64(b[1:9]))
	if !isPositive(b[0]) && value != "0" {
		value = "-" + value
	}
	return map[string]any{
		"value":           value,
		"mpt_issuance_id": strings.ToUpper(hex.EncodeToString(b[9:])),
	}, nil
}
