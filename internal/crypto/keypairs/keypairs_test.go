package keypairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLkit/internal/crypto"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/ed25519"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/secp256k1"
)

func TestMasterPassphrase(t *testing.T) {
	seed, err := EncodedSeedFromPassphrase("masterpassphrase", secp256k1.SECP256K1())
	require.NoError(t, err)
	assert.Equal(t, "snoPBrXtMeMyMHUVTgbuqAfg1SUTb", seed)

	priv, pub, err := DeriveKeypair(seed, false)
	require.NoError(t, err)
	assert.Equal(t, "001ACAAEDECE405B2A958212629E16F2EB46B153EEE94CDD350FDEFF52795525B7", priv)
	assert.Equal(t, "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020", pub)

	addr, err := DeriveClassicAddress(pub)
	require.NoError(t, err)
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", addr)
}

func TestSeedFromPassphrase(t *testing.T) {
	assert.Len(t, SeedFromPassphrase(""), 16)
	assert.Equal(t, SeedFromPassphrase(""), SeedFromPassphrase(""))
	assert.NotEqual(t, SeedFromPassphrase(""), SeedFromPassphrase("masterpassphrase"))
}

func TestSignAndValidate(t *testing.T) {
	tests := []struct {
		name string
		alg  crypto.Algorithm
	}{
		{"secp256k1", secp256k1.SECP256K1()},
		{"ed25519", ed25519.ED25519()},
	}
	msg := []byte("probe")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seed, err := EncodedSeedFromPassphrase("", tc.alg)
			require.NoError(t, err)
			priv, pub, err := DeriveKeypair(seed, false)
			require.NoError(t, err)

			sig, err := Sign(msg, priv)
			require.NoError(t, err)
			assert.True(t, Validate(msg, pub, sig))
			assert.False(t, Validate([]byte("other"), pub, sig))

			again, err := Sign(msg, priv)
			require.NoError(t, err)
			assert.Equal(t, sig, again, "signatures are deterministic")
		})
	}
}

func TestSign_UnknownKey(t *testing.T) {
	_, err := Sign([]byte("x"), "ABCD")
	assert.ErrorIs(t, err, ErrUnknownKeyType)
}

func TestValidate_BadPublicKey(t *testing.T) {
	assert.False(t, Validate([]byte("x"), "zz", "00"))
	assert.False(t, Validate([]byte("x"), "0430E7FC", "00"))
}

func TestDeriveKeypair_InvalidSeed(t *testing.T) {
	_, _, err := DeriveKeypair("not a seed", false)
	assert.Error(t, err)
}
