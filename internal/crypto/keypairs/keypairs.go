// Package keypairs derives XRPL keypairs from family seeds and signs with them.
package keypairs

import (
	"errors"
	"fmt"
	"strings"

	addresscodec "github.com/LeJamon/goXRPLkit/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLkit/internal/crypto"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/ed25519"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/secp256k1"
	"github.com/LeJamon/goXRPLkit/internal/crypto/common"
)

var (
	// ErrUnknownKeyType is returned for a key whose family cannot be told from its prefix.
	ErrUnknownKeyType = errors.New("unknown key type")
)

// SeedFromPassphrase returns the 16 byte seed entropy rippled derives from a
// passphrase: the first half of SHA-512Half(passphrase).
func SeedFromPassphrase(passphrase string) []byte {
	h := common.Sha512Half([]byte(passphrase))
	return h[:addresscodec.FamilySeedLength]
}

// EncodedSeedFromPassphrase returns the base58 family seed of a passphrase
// for the given key family.
func EncodedSeedFromPassphrase(passphrase string, alg crypto.Algorithm) (string, error) {
	entropy := SeedFromPassphrase(passphrase)
	defer crypto.SecureErase(entropy)
	return addresscodec.EncodeSeed(entropy, alg)
}

// DeriveKeypair derives the keypair of an encoded family seed. The key
// family is read from the seed's version prefix.
func DeriveKeypair(seed string, validator bool) (privateKey, publicKey string, err error) {
	entropy, alg, err := addresscodec.DecodeSeed(seed)
	if err != nil {
		return "", "", err
	}
	defer crypto.SecureErase(entropy)
	return alg.DeriveKeypair(entropy, validator)
}

// DeriveClassicAddress returns the classic address of a hex public key.
func DeriveClassicAddress(publicKey string) (string, error) {
	return addresscodec.EncodeClassicAddressFromPublicKeyHex(publicKey)
}

// Sign signs message with a hex private key of either family.
func Sign(message []byte, privateKey string) (string, error) {
	alg, err := algorithmForPrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	return alg.SignMessage(message, privateKey)
}

// Validate reports whether signature is a valid signature of message by publicKey.
func Validate(message []byte, publicKey, signature string) bool {
	switch crypto.PublicKeyTypeHex(publicKey) {
	case crypto.KeyTypeEd25519:
		return ed25519.ED25519().VerifySignature(message, publicKey, signature)
	case crypto.KeyTypeSecp256k1:
		return secp256k1.SECP256K1().VerifySignature(message, publicKey, signature)
	}
	return false
}

func algorithmForPrivateKey(privateKey string) (crypto.Algorithm, error) {
	switch {
	case len(privateKey) == 66 && strings.HasPrefix(strings.ToUpper(privateKey), "ED"):
		return ed25519.ED25519(), nil
	case len(privateKey) == 66 && strings.HasPrefix(privateKey, "00"), len(privateKey) == 64:
		return secp256k1.SECP256K1(), nil
	}
	return nil, fmt.Errorf("%w: private key of %d hex digits", ErrUnknownKeyType, len(privateKey))
}
