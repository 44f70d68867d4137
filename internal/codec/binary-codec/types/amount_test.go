package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usdIssuer = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"

// Currency and issuer bytes shared by the USD vectors.
const usdTail = "0000000000000000000000005553440000000000" + "0a20b3c85f482532a9578dbb3950b85ca06594d1"

func usd(value string) map[string]any {
	return map[string]any{"currency": "USD", "issuer": usdIssuer, "value": value}
}

func TestAmountEncoding(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"zero drops", "0", "4000000000000000"},
		{"one drop", "1", "4000000000000001"},
		{"one XRP", "1000000", "40000000000f4240"},
		{"10000 XRP", "10000000000", "40000002540be400"},
		{"XRP supply", "100000000000000000", "416345785d8a0000"},
		{"1 USD", usd("1"), "d4838d7ea4c68000" + usdTail},
		{"10 USD", usd("10"), "d4c38d7ea4c68000" + usdTail},
		{"100 USD", usd("100"), "d5038d7ea4c68000" + usdTail},
		{"zero USD", usd("0"), "8000000000000000" + usdTail},
		{"-2 USD", usd("-2"), "94871afd498d0000" + usdTail},
		{"3.1 USD", usd("3.1"), "d48b036efecdc000" + usdTail},
		{"0.31 USD", usd("0.31"), "d44b036efecdc000" + usdTail},
		{"1 EUR", map[string]any{"currency": "EUR", "issuer": usdIssuer, "value": "1"},
			"d4838d7ea4c680000000000000000000000000004555520000000000" + "0a20b3c85f482532a9578dbb3950b85ca06594d1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := (&Amount{}).FromJSON(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(b))
		})
	}
}

func TestAmountRoundtrip(t *testing.T) {
	for _, input := range []any{
		"0",
		"100",
		"1000000000",
		usd("1"),
		usd("0"),
		usd("-100"),
		map[string]any{"currency": "EUR", "issuer": usdIssuer, "value": "3.14159"},
	} {
		b, err := (&Amount{}).FromJSON(input)
		require.NoError(t, err)

		out, err := (&Amount{}).ToJSON(parserFor(t, b))
		require.NoError(t, err)
		assert.Equal(t, input, out)
	}
}

func TestAmountEncoding_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"negative drops", "-1"},
		{"fractional drops", "1.5"},
		{"drops above supply", "100000000000000001"},
		{"XRP as issued currency", map[string]any{"currency": "XRP", "issuer": usdIssuer, "value": "1"}},
		{"too many digits", usd("12345678901234567")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Amount{}).FromJSON(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestVerifyIOUValue_Range(t *testing.T) {
	tests := []struct {
		value string
		err   string
	}{
		{"1e-81", ""},
		{"1e95", ""},
		{"9999999999999999", ""},
		{"1e-82", "Exponent"},
		{"1e96", "Exponent"},
		{"12345678901234567", "Precision"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := verifyIOUValue(tt.value)
			if tt.err == "" {
				assert.NoError(t, err)
				return
			}
			var rangeErr *OutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.err, rangeErr.Type)
		})
	}
}

func TestVerifyXrpValue(t *testing.T) {
	for _, ok := range []string{"1", "666666", "100000000000000000"} {
		assert.NoError(t, verifyXrpValue(ok), ok)
	}
	for _, bad := range []string{"1.1", "1e3", "-1", "100000000000000001", "abc"} {
		assert.ErrorIs(t, verifyXrpValue(bad), ErrInvalidXRPValue, bad)
	}
}

func TestIssuedCurrencyCode(t *testing.T) {
	tests := []struct {
		currency string
		wantErr  bool
	}{
		{"USD", false},
		{"A*B", false},
		{"0000000000000000000000004555520000000000", false},
		{"XRP", true},
		{"US", true},
		{"USDD", true},
		{"0000000000000000000000005852500000000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			_, err := serializeIssuedCurrencyCode(tt.currency)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestAmountHeaderBits(t *testing.T) {
	assert.True(t, isNative(0x40))
	assert.True(t, isNative(0x00))
	assert.False(t, isNative(0xC0))
	assert.True(t, isPositive(0xC0))
	assert.False(t, isPositive(0x80))
}
