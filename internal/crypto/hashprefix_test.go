package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

// makeHashPrefix mirrors rippled's detail::make_hash_prefix().
func makeHashPrefix(a, b, c byte) uint32 {
	return (uint32(a) << 24) + (uint32(b) << 16) + (uint32(c) << 8)
}

func TestHashPrefixValues(t *testing.T) {
	tests := []struct {
		name     string
		prefix   HashPrefix
		chars    string
		expected string
	}{
		{"transactionID", HashPrefixTransactionID, "TXN", "54584e00"},
		{"txSign", HashPrefixTxSign, "STX", "53545800"},
		{"txMultiSign", HashPrefixTxMultiSign, "SMT", "534d5400"},
		{"paymentChannelClaim", HashPrefixPaymentChannelClaim, "CLM", "434c4d00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, hex.EncodeToString(tc.prefix.Bytes()))
			assert.Equal(t, uint32(tc.prefix), makeHashPrefix(tc.chars[0], tc.chars[1], tc.chars[2]))
		})
	}
}

func TestPrependHashPrefix(t *testing.T) {
	data := []byte{0xAA, 0xBB}
	out := PrependHashPrefix(HashPrefixTxSign, data)
	assert.Equal(t, "53545800aabb", hex.EncodeToString(out))
	assert.Equal(t, []byte{0xAA, 0xBB}, data)
}

func TestTransactionID(t *testing.T) {
	blob := []byte{0x12, 0x00, 0x00}
	id := TransactionID(blob)
	assert.Len(t, id, 32)
	assert.NotEqual(t, TransactionID([]byte{0x12, 0x00, 0x01}), id)
	assert.Equal(t, id, TransactionID(blob))
}
