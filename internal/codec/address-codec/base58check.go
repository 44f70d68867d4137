package addresscodec

import (
	"crypto/sha256"
	"errors"

	"github.com/mr-tron/base58"
)

// XRPLAlphabet is the base58 dictionary of the XRP Ledger.
const XRPLAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var xrplAlphabet = base58.NewAlphabet(XRPLAlphabet)

var (
	// ErrChecksum indicates that the checksum of a check-encoded string does not verify.
	ErrChecksum = errors.New("checksum error")
	// ErrInvalidFormat indicates that version and/or checksum bytes are missing.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
)

// EncodeBase58 encodes b with the XRPL alphabet.
func EncodeBase58(b []byte) string {
	return base58.EncodeAlphabet(b, xrplAlphabet)
}

// DecodeBase58 decodes s with the XRPL alphabet.
func DecodeBase58(s string) ([]byte, error) {
	return base58.DecodeAlphabet(s, xrplAlphabet)
}

// checksum: first four bytes of sha256^2
func checksum(input []byte) (cksum [4]byte) {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(cksum[:], h2[:4])
	return cksum
}

// Base58CheckEncode prepends the version prefix, appends a four byte checksum
// and returns the base58 encoding.
func Base58CheckEncode(input []byte, prefix ...byte) string {
	b := make([]byte, 0, len(prefix)+len(input)+4)
	b = append(b, prefix...)
	b = append(b, input...)

	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return EncodeBase58(b)
}

// Base58CheckDecode decodes a check-encoded string and verifies its checksum.
// The returned payload still carries the version prefix.
func Base58CheckDecode(input string) ([]byte, error) {
	decoded, err := DecodeBase58(input)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	if len(decoded) < 5 {
		return nil, ErrInvalidFormat
	}

	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	if checksum(decoded[:len(decoded)-4]) != cksum {
		return nil, ErrChecksum
	}
	return decoded[:len(decoded)-4], nil
}
