// Package common holds hashing helpers shared by the key families and codecs.
package common

import "crypto/sha512"

// Sha512Half returns the first 32 bytes of the SHA-512 hash of msg.
func Sha512Half(msg []byte) [32]byte {
	h := sha512.Sum512(msg)
	var result [32]byte
	copy(result[:], h[:32])
	return result
}
