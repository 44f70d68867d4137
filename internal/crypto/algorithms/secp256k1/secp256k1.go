// Package secp256k1 implements the XRPL secp256k1 key family: rippled's
// deterministic root/account key derivation and DER-encoded ECDSA signing.
package secp256k1

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/LeJamon/goXRPLkit/internal/crypto"
	"github.com/LeJamon/goXRPLkit/internal/crypto/common"
)

const (
	// SECP256K1_PREFIX is the key prefix of secp256k1 private keys.
	SECP256K1_PREFIX byte = 0x00
	// SECP256K1_FAMILY_SEED_PREFIX is the base58 version byte of secp256k1 seeds.
	SECP256K1_FAMILY_SEED_PREFIX byte = 0x21
)

var (
	ErrInvalidPrivateKey = errors.New("invalid private key format")
	ErrInvalidSignature  = errors.New("invalid signature format")
	ErrDerivationFailed  = errors.New("secp256k1 key derivation exhausted")
)

var _ crypto.Algorithm = SECP256K1CryptoAlgorithm{}

// SECP256K1CryptoAlgorithm is the secp256k1 key family.
type SECP256K1CryptoAlgorithm struct {
	prefix           byte
	familySeedPrefix byte
}

// SECP256K1 returns the secp256k1 key family.
func SECP256K1() SECP256K1CryptoAlgorithm {
	return SECP256K1CryptoAlgorithm{
		prefix:           SECP256K1_PREFIX,
		familySeedPrefix: SECP256K1_FAMILY_SEED_PREFIX,
	}
}

func (c SECP256K1CryptoAlgorithm) Prefix() byte {
	return c.prefix
}

func (c SECP256K1CryptoAlgorithm) FamilySeedPrefix() []byte {
	return []byte{c.familySeedPrefix}
}

// deriveScalar hashes bytes (plus an optional discriminator) with an
// incrementing counter until the result is a valid non-zero scalar.
func deriveScalar(data []byte, discrim *uint32) (*btcec.ModNScalar, error) {
	buf := make([]byte, 0, len(data)+8)
	for i := uint32(0); i < 0xFFFFFFFF; i++ {
		buf = append(buf[:0], data...)
		if discrim != nil {
			buf = binary.BigEndian.AppendUint32(buf, *discrim)
		}
		buf = binary.BigEndian.AppendUint32(buf, i)

		hash := common.Sha512Half(buf)
		var s btcec.ModNScalar
		if overflow := s.SetByteSlice(hash[:]); !overflow && !s.IsZero() {
			return &s, nil
		}
	}
	return nil, ErrDerivationFailed
}

// DeriveKeypair derives a keypair from a 16-byte family seed. Validator keys
// are the root keypair; account keys add the account-0 tweak derived from the
// root public key.
func (c SECP256K1CryptoAlgorithm) DeriveKeypair(seed []byte, validator bool) (string, string, error) {
	root, err := deriveScalar(seed, nil)
	if err != nil {
		return "", "", err
	}
	if validator {
		return formatKeypair(root)
	}

	rootPriv := btcec.PrivKeyFromScalar(root)
	var accountIndex uint32
	tweak, err := deriveScalar(rootPriv.PubKey().SerializeCompressed(), &accountIndex)
	if err != nil {
		return "", "", err
	}
	root.Add(tweak)
	return formatKeypair(root)
}

func formatKeypair(scalar *btcec.ModNScalar) (string, string, error) {
	priv := btcec.PrivKeyFromScalar(scalar)
	defer priv.Zero()

	raw := priv.Serialize()
	defer crypto.SecureErase(raw)

	privHex := strings.ToUpper(hex.EncodeToString(append([]byte{SECP256K1_PREFIX}, raw...)))
	pubHex := strings.ToUpper(hex.EncodeToString(priv.PubKey().SerializeCompressed()))
	return privHex, pubHex, nil
}

func parsePrivateKey(privateKeyHex string) (*btcec.PrivateKey, error) {
	var raw []byte
	var err error
	switch {
	case len(privateKeyHex) == 66 && strings.HasPrefix(privateKeyHex, "00"):
		raw, err = hex.DecodeString(privateKeyHex[2:])
	case len(privateKeyHex) == 64:
		raw, err = hex.DecodeString(privateKeyHex)
	default:
		return nil, ErrInvalidPrivateKey
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	defer crypto.SecureErase(raw)

	priv, _ := btcec.PrivKeyFromBytes(raw)
	return priv, nil
}

// SignMessage signs SHA512-Half(message) and returns the DER signature.
// Signatures are deterministic (RFC 6979) and fully canonical.
func (c SECP256K1CryptoAlgorithm) SignMessage(message []byte, privateKeyHex string) (string, error) {
	priv, err := parsePrivateKey(privateKeyHex)
	if err != nil {
		return "", err
	}
	defer priv.Zero()

	hash := common.Sha512Half(message)
	sig := ecdsa.Sign(priv, hash[:]).Serialize()
	if crypto.ECDSACanonicality(sig) != crypto.FullyCanonical {
		sig = crypto.CanonicalizeECDSA(sig)
		if sig == nil {
			return "", ErrInvalidSignature
		}
	}
	return strings.ToUpper(hex.EncodeToString(sig)), nil
}

// VerifySignature checks a DER signature over SHA512-Half(message). Only
// fully canonical signatures are accepted.
func (c SECP256K1CryptoAlgorithm) VerifySignature(message []byte, publicKeyHex, signatureHex string) bool {
	pubBytes, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return false
	}
	pub, err := btcec.ParsePubKey(pubBytes)
	if err != nil {
		return false
	}

	sigBytes, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}
	if crypto.ECDSACanonicality(sigBytes) != crypto.FullyCanonical {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return false
	}

	hash := common.Sha512Half(message)
	return sig.Verify(hash[:], pub)
}
