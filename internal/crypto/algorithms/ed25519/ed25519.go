// Package ed25519 implements the XRPL Ed25519 key family.
package ed25519

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/LeJamon/goXRPLkit/internal/crypto"
	"github.com/LeJamon/goXRPLkit/internal/crypto/common"
)

const (
	// ED25519_PREFIX is the key prefix of Ed25519 public and private keys.
	ED25519_PREFIX byte = 0xED
)

// ED25519FamilySeedPrefix are the base58 version bytes of Ed25519 seeds.
var ED25519FamilySeedPrefix = []byte{0x01, 0xE1, 0x4B}

var (
	ErrValidatorNotSupported = errors.New("validator keypairs cannot use Ed25519")
	ErrInvalidPrivateKey     = errors.New("invalid private key format")
)

var _ crypto.Algorithm = ED25519CryptoAlgorithm{}

// ED25519CryptoAlgorithm is the Ed25519 key family.
type ED25519CryptoAlgorithm struct {
	prefix byte
}

// ED25519 returns the Ed25519 key family.
func ED25519() ED25519CryptoAlgorithm {
	return ED25519CryptoAlgorithm{prefix: ED25519_PREFIX}
}

func (c ED25519CryptoAlgorithm) Prefix() byte {
	return c.prefix
}

func (c ED25519CryptoAlgorithm) FamilySeedPrefix() []byte {
	return append([]byte(nil), ED25519FamilySeedPrefix...)
}

// DeriveKeypair uses SHA512-Half(seed) as the Ed25519 private seed.
func (c ED25519CryptoAlgorithm) DeriveKeypair(seed []byte, validator bool) (string, string, error) {
	if validator {
		return "", "", ErrValidatorNotSupported
	}

	keyMaterial := common.Sha512Half(seed)
	defer crypto.SecureErase(keyMaterial[:])

	privKey := ed25519.NewKeyFromSeed(keyMaterial[:])
	defer crypto.SecureErase(privKey)
	pubKey := privKey.Public().(ed25519.PublicKey)

	public := strings.ToUpper(hex.EncodeToString(append([]byte{c.prefix}, pubKey...)))
	private := strings.ToUpper(hex.EncodeToString(append([]byte{c.prefix}, keyMaterial[:]...)))
	return private, public, nil
}

// SignMessage signs message as-is; Ed25519 does its own hashing.
func (c ED25519CryptoAlgorithm) SignMessage(message []byte, privateKeyHex string) (string, error) {
	raw, err := hex.DecodeString(privateKeyHex)
	if err != nil || len(raw) != 33 || raw[0] != c.prefix {
		return "", ErrInvalidPrivateKey
	}
	defer crypto.SecureErase(raw)

	signingKey := ed25519.NewKeyFromSeed(raw[1:])
	defer crypto.SecureErase(signingKey)

	return strings.ToUpper(hex.EncodeToString(ed25519.Sign(signingKey, message))), nil
}

func (c ED25519CryptoAlgorithm) VerifySignature(message []byte, publicKeyHex, signatureHex string) bool {
	pubKeyBytes, err := hex.DecodeString(publicKeyHex)
	if err != nil || len(pubKeyBytes) != 33 || pubKeyBytes[0] != c.prefix {
		return false
	}
	sigBytes, err := hex.DecodeString(signatureHex)
	if err != nil || !crypto.Ed25519Canonical(sigBytes) {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKeyBytes[1:]), message, sigBytes)
}
