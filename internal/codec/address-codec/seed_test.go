package addresscodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLkit/internal/crypto"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/ed25519"
	"github.com/LeJamon/goXRPLkit/internal/crypto/algorithms/secp256k1"
	"github.com/LeJamon/goXRPLkit/internal/crypto/common"
)

// passphraseEntropy is the seed entropy rippled derives from a passphrase.
func passphraseEntropy(passphrase string) []byte {
	h := common.Sha512Half([]byte(passphrase))
	return h[:FamilySeedLength]
}

func TestEncodeSeed_Passphrases(t *testing.T) {
	tests := []struct {
		passphrase string
		seed       string
	}{
		{"masterpassphrase", "snoPBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"Non-Random Passphrase", "snMKnVku798EnBwUfxeSD8953sLYA"},
		{"cookies excitement hand public", "sspUXGrmjQhq6mgc24jiRuevZiwKT"},
	}

	for _, tt := range tests {
		t.Run(tt.passphrase, func(t *testing.T) {
			seed, err := EncodeSeed(passphraseEntropy(tt.passphrase), secp256k1.SECP256K1())
			require.NoError(t, err)
			assert.Equal(t, tt.seed, seed)
		})
	}
}

func TestEncodeSeed_WrongLength(t *testing.T) {
	_, err := EncodeSeed(make([]byte, FamilySeedLength-1), secp256k1.SECP256K1())
	var lengthErr *EncodeLengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, FamilySeedLength, lengthErr.Expected)
}

func TestSeedRoundTrip(t *testing.T) {
	algorithms := map[string]crypto.Algorithm{
		"secp256k1": secp256k1.SECP256K1(),
		"ed25519":   ed25519.ED25519(),
	}
	passphrases := []string{"masterpassphrase", "Non-Random Passphrase", "this is a test passphrase for roundtrip"}

	for name, alg := range algorithms {
		for _, passphrase := range passphrases {
			t.Run(name+"/"+passphrase, func(t *testing.T) {
				entropy := passphraseEntropy(passphrase)
				seed, err := EncodeSeed(entropy, alg)
				require.NoError(t, err)

				decoded, got, err := DecodeSeed(seed)
				require.NoError(t, err)
				assert.Equal(t, entropy, decoded)
				assert.Equal(t, alg, got)
			})
		}
	}
}

func TestDecodeSeed_Algorithm(t *testing.T) {
	_, alg, err := DecodeSeed("snoPBrXtMeMyMHUVTgbuqAfg1SUTb")
	require.NoError(t, err)
	assert.Equal(t, secp256k1.SECP256K1(), alg)

	_, alg, err = DecodeSeed("sEdTzRkEgPoxDG1mJ6WkSucHWnMkm1H")
	require.NoError(t, err)
	assert.Equal(t, ed25519.ED25519(), alg)
}

func TestDecodeSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{"empty", ""},
		{"missing last char", "sspUXGrmjQhq6mgc24jiRuevZiwK"},
		{"extra char", "sspUXGrmjQhq6mgc24jiRuevZiwKTT"},
		{"bad checksum", "snoPBrXtMeMyMHUVTgbuqAfg1SUTa"},
		{"char 0", "sn0PBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"char O", "sspOXGrmjQhq6mgc24jiRuevZiwKT"},
		{"char I", "snIPBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"char l", "snlPBrXtMeMyMHUVTgbuqAfg1SUTb"},
		{"char /", "ssp/XGrmjQhq6mgc24jiRuevZiwKT"},
		{"classic address", "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeSeed(tt.seed)
			assert.ErrorIs(t, err, ErrInvalidSeed)
		})
	}
}
