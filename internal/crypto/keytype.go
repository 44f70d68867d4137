// Package crypto holds the XRPL hashing, identifier and signature rules
// shared by the key families.
package crypto

import "encoding/hex"

// PublicKeyLength is the size of a compressed secp256k1 or prefixed
// Ed25519 public key.
const PublicKeyLength = 33

// KeyType is the key family a public key belongs to.
type KeyType int

const (
	KeyTypeUnknown KeyType = iota
	KeyTypeSecp256k1
	KeyTypeEd25519
)

// PublicKeyType tells the family from the leading byte: 0xED for Ed25519,
// 0x02 or 0x03 for a compressed secp256k1 point.
func PublicKeyType(pubKey []byte) KeyType {
	if len(pubKey) != PublicKeyLength {
		return KeyTypeUnknown
	}
	switch pubKey[0] {
	case 0xED:
		return KeyTypeEd25519
	case 0x02, 0x03:
		return KeyTypeSecp256k1
	}
	return KeyTypeUnknown
}

// PublicKeyTypeHex is PublicKeyType for a hex encoded key. Invalid hex is
// KeyTypeUnknown.
func PublicKeyTypeHex(pubKey string) KeyType {
	b, err := hex.DecodeString(pubKey)
	if err != nil {
		return KeyTypeUnknown
	}
	return PublicKeyType(b)
}
