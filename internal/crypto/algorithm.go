package crypto

// Algorithm is a signing key family (secp256k1 or Ed25519) able to derive
// keypairs from a 16-byte family seed and sign with them.
//
// Keys are exchanged as uppercase hex. Public keys are 33 bytes; private keys
// carry a one-byte family prefix (0x00 for secp256k1, 0xED for Ed25519).
type Algorithm interface {
	// Prefix returns the key prefix byte of the family.
	Prefix() byte

	// FamilySeedPrefix returns the base58 version bytes of encoded seeds.
	FamilySeedPrefix() []byte

	// DeriveKeypair derives the account (or validator) keypair from seed.
	DeriveKeypair(seed []byte, validator bool) (privateKey, publicKey string, err error)

	// SignMessage signs message with privateKey and returns the signature hex.
	SignMessage(message []byte, privateKey string) (string, error)

	// VerifySignature reports whether signature is valid for message.
	VerifySignature(message []byte, publicKey, signature string) bool
}
