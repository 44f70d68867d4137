// Package addresscodec encodes and decodes XRPL base58 identifiers: classic
// addresses, family seeds and public keys.
package addresscodec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/LeJamon/goXRPLkit/internal/crypto"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/ed25519"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/secp256k1"
)

const (
	// Lengths in bytes
	AccountAddressLength   = 20
	AccountPublicKeyLength = 33
	FamilySeedLength       = 16
	NodePublicKeyLength    = 33
	PrivateKeyLength       = 32

	// AccountAddressPrefix is the version byte of classic addresses.
	AccountAddressPrefix byte = 0x00
	// AccountPublicKeyPrefix is the version byte of account public keys.
	AccountPublicKeyPrefix byte = 0x23
	// AccountSecretKeyPrefix is the version byte of account private keys.
	AccountSecretKeyPrefix byte = 0x22
	// NodePublicKeyPrefix is the version byte of node/validator public keys.
	NodePublicKeyPrefix byte = 0x1C
	// NodePrivateKeyPrefix is the version byte of node/validator private keys.
	NodePrivateKeyPrefix byte = 0x20
)

var (
	ErrInvalidSeed           = errors.New("invalid seed; could not determine encoding algorithm")
	ErrInvalidClassicAddress = errors.New("invalid classic address")
	ErrPrefixMismatch        = errors.New("b58string prefix and typeprefix not equal")
)

// EncodeLengthError reports an input of the wrong size.
type EncodeLengthError struct {
	Instance string
	Input    int
	Expected int
}

func (e *EncodeLengthError) Error() string {
	return fmt.Sprintf("`%v` length should be %v not %v", e.Instance, e.Expected, e.Input)
}

// Encode returns the base58check encoding of b with the given type prefix,
// ensuring b is the expected length.
func Encode(b []byte, typePrefix []byte, expectedLength int) (string, error) {
	if len(b) != expectedLength {
		return "", &EncodeLengthError{Instance: "Payload", Input: len(b), Expected: expectedLength}
	}
	return Base58CheckEncode(b, typePrefix...), nil
}

// Decode returns the payload of a base58check string after checking its type prefix.
func Decode(b58string string, typePrefix []byte) ([]byte, error) {
	decoded, err := Base58CheckDecode(b58string)
	if err != nil {
		return nil, err
	}
	if len(decoded) < len(typePrefix) || !bytes.Equal(decoded[:len(typePrefix)], typePrefix) {
		return nil, ErrPrefixMismatch
	}
	return decoded[len(typePrefix):], nil
}

// EncodeAccountIDToClassicAddress encodes a 20-byte account ID as an r-address.
func EncodeAccountIDToClassicAddress(accountID []byte) (string, error) {
	return Encode(accountID, []byte{AccountAddressPrefix}, AccountAddressLength)
}

// DecodeClassicAddressToAccountID returns the version prefix and the 20-byte
// account ID of a classic address.
func DecodeClassicAddressToAccountID(cAddress string) (typePrefix, accountID []byte, err error) {
	decoded, err := Base58CheckDecode(cAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidClassicAddress, cAddress)
	}
	if len(decoded) != AccountAddressLength+1 || decoded[0] != AccountAddressPrefix {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidClassicAddress, cAddress)
	}
	return decoded[:1], decoded[1:], nil
}

// IsValidClassicAddress reports whether cAddress decodes to an account ID.
func IsValidClassicAddress(cAddress string) bool {
	_, _, err := DecodeClassicAddressToAccountID(cAddress)
	return err == nil
}

// EncodeClassicAddressFromPublicKeyHex derives the classic address of a
// 33-byte public key. A bare 32-byte Ed25519 key gets its 0xED prefix added.
func EncodeClassicAddressFromPublicKeyHex(pubkeyhex string) (string, error) {
	pubkey, err := hex.DecodeString(pubkeyhex)
	if err != nil {
		return "", err
	}

	if len(pubkey) == AccountPublicKeyLength-1 {
		pubkey = append([]byte{ed25519.ED25519_PREFIX}, pubkey...)
	} else if len(pubkey) != AccountPublicKeyLength {
		return "", &EncodeLengthError{Instance: "PublicKey", Expected: AccountPublicKeyLength, Input: len(pubkey)}
	}

	accountID := crypto.CalcAccountID(pubkey)
	return EncodeAccountIDToClassicAddress(accountID[:])
}

// Sha256RipeMD160 returns RIPEMD160(SHA256(b)), the account/node ID hash.
func Sha256RipeMD160(b []byte) []byte {
	id := crypto.CalcAccountID(b)
	return id[:]
}

// EncodeSeed encodes 16 bytes of entropy as a family seed of the given algorithm.
func EncodeSeed(entropy []byte, encodingType crypto.Algorithm) (string, error) {
	if len(entropy) != FamilySeedLength {
		return "", &EncodeLengthError{Instance: "Entropy", Input: len(entropy), Expected: FamilySeedLength}
	}
	if encodingType == nil {
		return "", errors.New("encoding type must be `ed25519` or `secp256k1`")
	}
	return Encode(entropy, encodingType.FamilySeedPrefix(), FamilySeedLength)
}

// DecodeSeed returns the entropy of a family seed and the algorithm its
// prefix selects.
func DecodeSeed(seed string) ([]byte, crypto.Algorithm, error) {
	decoded, err := Base58CheckDecode(seed)
	if err != nil {
		return nil, nil, ErrInvalidSeed
	}

	edPrefix := ed25519.ED25519FamilySeedPrefix
	switch {
	case len(decoded) == len(edPrefix)+FamilySeedLength && bytes.Equal(decoded[:len(edPrefix)], edPrefix):
		return decoded[len(edPrefix):], ed25519.ED25519(), nil
	case len(decoded) == 1+FamilySeedLength && decoded[0] == secp256k1.SECP256K1_FAMILY_SEED_PREFIX:
		return decoded[1:], secp256k1.SECP256K1(), nil
	default:
		return nil, nil, ErrInvalidSeed
	}
}

// EncodeNodePublicKey returns the node public key encoding of b.
func EncodeNodePublicKey(b []byte) (string, error) {
	if len(b) != NodePublicKeyLength {
		return "", &EncodeLengthError{Instance: "NodePublicKey", Expected: NodePublicKeyLength, Input: len(b)}
	}
	return Base58CheckEncode(b, NodePublicKeyPrefix), nil
}

// DecodeNodePublicKey decodes a node public key.
func DecodeNodePublicKey(key string) ([]byte, error) {
	return Decode(key, []byte{NodePublicKeyPrefix})
}

// EncodeAccountPublicKey returns the account public key encoding of b.
func EncodeAccountPublicKey(b []byte) (string, error) {
	if len(b) != AccountPublicKeyLength {
		return "", &EncodeLengthError{Instance: "AccountPublicKey", Expected: AccountPublicKeyLength, Input: len(b)}
	}
	return Base58CheckEncode(b, AccountPublicKeyPrefix), nil
}

// DecodeAccountPublicKey decodes an account public key.
func DecodeAccountPublicKey(key string) ([]byte, error) {
	return Decode(key, []byte{AccountPublicKeyPrefix})
}
