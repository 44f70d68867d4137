package probe

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/Peersyst/xrpl-go/xrpl/wallet"

	binarycodec "github.com/LeJamon/goXRPLkit/internal/codec/binary-codec"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/secp256k1"
	"github.com/LeJamon/goXRPLkit/internal/crypto/keypairs"
)

//go:generate mockgen -destination=mock_probe/signer.go -package=mock_probe . Signer

// Signer signs a transaction object under a definitions table and returns
// the serialized signed transaction as uppercase hex.
type Signer interface {
	Sign(tx map[string]any, defs *definitions.Definitions) (string, error)
}

// ErrCustomDefinitions is returned by signers that can only serialize with
// the default XRPL table.
var ErrCustomDefinitions = errors.New("signer does not support custom definitions")

// PassphraseSigner signs with the secp256k1 key derived from a passphrase.
type PassphraseSigner struct {
	address    string
	publicKey  string
	privateKey string
}

var _ Signer = (*PassphraseSigner)(nil)

// NewPassphraseSigner derives the signing key of passphrase. The empty
// passphrase yields the well-known throwaway key used for fee probes.
func NewPassphraseSigner(passphrase string) (*PassphraseSigner, error) {
	seed, err := keypairs.EncodedSeedFromPassphrase(passphrase, secp256k1.SECP256K1())
	if err != nil {
		return nil, fmt.Errorf("encode seed: %w", err)
	}
	priv, pub, err := keypairs.DeriveKeypair(seed, false)
	if err != nil {
		return nil, fmt.Errorf("derive keypair: %w", err)
	}
	addr, err := keypairs.DeriveClassicAddress(pub)
	if err != nil {
		return nil, fmt.Errorf("derive address: %w", err)
	}
	return &PassphraseSigner{address: addr, publicKey: pub, privateKey: priv}, nil
}

// Address returns the classic address of the signing key.
func (s *PassphraseSigner) Address() string { return s.address }

// PublicKey returns the hex public key written into SigningPubKey.
func (s *PassphraseSigner) PublicKey() string { return s.publicKey }

// Sign sets SigningPubKey, signs the signing serialization and returns the
// full serialization with TxnSignature. tx is not modified.
func (s *PassphraseSigner) Sign(tx map[string]any, defs *definitions.Definitions) (string, error) {
	if defs == nil {
		defs = definitions.Get()
	}
	signed := maps.Clone(tx)
	signed["SigningPubKey"] = s.publicKey
	delete(signed, "TxnSignature")

	encoded, err := binarycodec.EncodeForSigningWithDefinitions(signed, defs)
	if err != nil {
		return "", err
	}
	msg, err := hex.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	sig, err := keypairs.Sign(msg, s.privateKey)
	if err != nil {
		return "", err
	}
	signed["TxnSignature"] = sig

	return binarycodec.EncodeWithDefinitions(signed, defs)
}

// WalletSigner delegates signing to an xrpl-go wallet. xrpl-go serializes
// with its bundled XRPL table only.
type WalletSigner struct {
	wallet *wallet.Wallet
}

var _ Signer = (*WalletSigner)(nil)

func NewWalletSigner(w *wallet.Wallet) *WalletSigner {
	return &WalletSigner{wallet: w}
}

func (s *WalletSigner) Sign(tx map[string]any, defs *definitions.Definitions) (string, error) {
	if defs != nil && defs != definitions.Get() {
		return "", ErrCustomDefinitions
	}
	blob, _, err := s.wallet.Sign(walletValues(tx).(map[string]any))
	if err != nil {
		return "", err
	}
	return blob, nil
}

// walletValues copies v, turning integral JSON numbers into ints, the
// numeric shape xrpl-go's encoder expects.
func walletValues(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = walletValues(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = walletValues(e)
		}
		return out
	case uint32:
		return int(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		return t.String()
	}
	return v
}
