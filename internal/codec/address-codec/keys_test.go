package addresscodec

import (
	"encoding/hex"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLkit/internal/crypto"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/ed25519"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/secp256k1"
)

// Encodings of the "masterpassphrase" account keys, as published by rippled.
func TestMasterPassphraseKeyEncodings(t *testing.T) {
	tests := []struct {
		name          string
		alg           crypto.Algorithm
		address       string
		accountPublic string
		accountSecret string
		nodePublic    string
		nodePrivate   string
		nodeID        string
	}{
		{
			name:          "secp256k1",
			alg:           secp256k1.SECP256K1(),
			address:       "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
			accountPublic: "aBQG8RQAzjs1eTKFEAQXr2gS4utcDiEC9wmi7pfUPTi27VCahwgw",
			accountSecret: "p9JfM6HHi64m6mvB6v5k7G2b1cXzGmYiCNJf6GHPKvFTWdeRVjh",
		},
		{
			// Ed25519 node keys are the account keys under other prefixes.
			name:          "ed25519",
			alg:           ed25519.ED25519(),
			address:       "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf",
			accountPublic: "aKGheSBjmCsKJVuLNKRAKpZXT6wpk2FCuEZAXJupXgdAxX5THCqR",
			accountSecret: "pwDQjwEhbUBmPuEjFpEG75bFhv2obkCB7NxQsfFxM7xGHBMVPu9",
			nodePublic:    "nHUeeJCSY2dM71oxM8Cgjouf5ekTuev2mwDpc374aLMxzDLXNmjf",
			nodePrivate:   "paKv46LztLqK3GaKz1rG2nQGN6M4JLyRtxFBYFTw4wAVHtGys36",
			nodeID:        "AA066C988C712815CC37AF71472B7CBBBD4E2A0A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			privHex, pubHex, err := tt.alg.DeriveKeypair(slices.Clone(passphraseEntropy("masterpassphrase")), false)
			require.NoError(t, err)
			pub, err := hex.DecodeString(pubHex)
			require.NoError(t, err)
			priv, err := hex.DecodeString(privHex)
			require.NoError(t, err)
			require.Len(t, priv, PrivateKeyLength+1)
			secret := priv[1:]

			address, err := EncodeClassicAddressFromPublicKeyHex(pubHex)
			require.NoError(t, err)
			assert.Equal(t, tt.address, address)
			assert.True(t, IsValidClassicAddress(address))

			accountPublic, err := EncodeAccountPublicKey(pub)
			require.NoError(t, err)
			assert.Equal(t, tt.accountPublic, accountPublic)
			assert.Equal(t, tt.accountSecret, Base58CheckEncode(secret, AccountSecretKeyPrefix))

			if tt.nodePublic == "" {
				return
			}
			nodePublic, err := EncodeNodePublicKey(pub)
			require.NoError(t, err)
			assert.Equal(t, tt.nodePublic, nodePublic)
			assert.Equal(t, tt.nodePrivate, Base58CheckEncode(secret, NodePrivateKeyPrefix))
			assert.Equal(t, tt.nodeID, strings.ToUpper(hex.EncodeToString(Sha256RipeMD160(pub))))
		})
	}
}

func TestPublicKeyPrefixes(t *testing.T) {
	pub, err := hex.DecodeString("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
	require.NoError(t, err)

	account, err := EncodeAccountPublicKey(pub)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(account, "a"))
	node, err := EncodeNodePublicKey(pub)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(node, "n"))

	decoded, err := DecodeAccountPublicKey(account)
	require.NoError(t, err)
	assert.Equal(t, pub, decoded)
	decoded, err = DecodeNodePublicKey(node)
	require.NoError(t, err)
	assert.Equal(t, pub, decoded)

	// The two encodings are not interchangeable.
	_, err = DecodeAccountPublicKey(node)
	assert.ErrorIs(t, err, ErrPrefixMismatch)

	_, err = EncodeAccountPublicKey(pub[:32])
	var lengthErr *EncodeLengthError
	assert.ErrorAs(t, err, &lengthErr)
}

func TestIsValidClassicAddress(t *testing.T) {
	assert.True(t, IsValidClassicAddress("rn6wZZM41JAeKh9ht6JjbyWHccejBZCqUv"))
	assert.False(t, IsValidClassicAddress("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi"))
	assert.False(t, IsValidClassicAddress("rOOOOJAWyB4rj91VRWn96DkukG4bwdtyTh"))
	assert.False(t, IsValidClassicAddress("snoPBrXtMeMyMHUVTgbuqAfg1SUTb"))
}
