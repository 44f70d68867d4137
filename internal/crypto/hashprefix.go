package crypto

import (
	"encoding/binary"

	"github.com/LeJamon/goXRPLkit/internal/crypto/common"
)

// HashPrefix represents hash prefixes used in XRPL for domain separation.
// These prefixes are inserted before the source material to put each hash
// in its own "space", ensuring different types of objects produce different hashes.
type HashPrefix uint32

const (
	// HashPrefixTransactionID is the prefix for transaction ID calculation (TXN\0).
	HashPrefixTransactionID HashPrefix = 0x54584E00

	// HashPrefixTxSign is the prefix for a transaction to sign (STX\0).
	HashPrefixTxSign HashPrefix = 0x53545800

	// HashPrefixTxMultiSign is the prefix for a transaction to multi-sign (SMT\0).
	HashPrefixTxMultiSign HashPrefix = 0x534D5400

	// HashPrefixPaymentChannelClaim is the prefix for payment channel claim (CLM\0).
	HashPrefixPaymentChannelClaim HashPrefix = 0x434C4D00
)

// Bytes returns the hash prefix as a 4-byte big-endian slice.
func (hp HashPrefix) Bytes() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(hp))
	return b
}

// PrependHashPrefix returns prefix||data in a new slice.
func PrependHashPrefix(prefix HashPrefix, data []byte) []byte {
	out := make([]byte, 0, 4+len(data))
	out = append(out, prefix.Bytes()...)
	return append(out, data...)
}

// TransactionID computes the identifying hash of a serialized, signed
// transaction.
func TransactionID(blob []byte) [32]byte {
	return common.Sha512Half(PrependHashPrefix(HashPrefixTransactionID, blob))
}
