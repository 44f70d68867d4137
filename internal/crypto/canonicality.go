package crypto

import (
	"math/big"
	"slices"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Canonicality grades an ECDSA signature the way rippled does before it
// accepts a transaction signature.
type Canonicality int

const (
	// NotCanonical is a malformed DER signature or one with R or S out of range.
	NotCanonical Canonicality = iota
	// Canonical is a well-formed signature whose S is in the upper half of the
	// group order, so (R, N-S) verifies as well.
	Canonical
	// FullyCanonical is a well-formed signature with S <= N/2.
	FullyCanonical
)

var (
	curveOrder     = btcec.S256().Params().N
	curveHalfOrder = new(big.Int).Rsh(curveOrder, 1)

	// Order L of the Ed25519 base point subgroup.
	ed25519Order, _ = new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)
)

// DER bounds: 30 len 02 rlen R 02 slen S, each integer 1 to 33 bytes.
const (
	minDERSignatureLen = 8
	maxDERSignatureLen = 72
	maxDERIntegerLen   = 33
)

// ECDSACanonicality grades a DER-encoded secp256k1 signature.
func ECDSACanonicality(sig []byte) Canonicality {
	_, s, ok := parseDERSignature(sig)
	if !ok {
		return NotCanonical
	}
	if s.Cmp(curveHalfOrder) > 0 {
		return Canonical
	}
	return FullyCanonical
}

// CanonicalizeECDSA returns sig with S replaced by N-S when S is in the
// upper half of the group order, or nil when sig is not a valid signature.
// The result never aliases sig.
func CanonicalizeECDSA(sig []byte) []byte {
	r, s, ok := parseDERSignature(sig)
	if !ok {
		return nil
	}
	if s.Cmp(curveHalfOrder) <= 0 {
		return slices.Clone(sig)
	}
	return marshalDERSignature(r, new(big.Int).Sub(curveOrder, s))
}

// Ed25519Canonical reports whether a 64 byte Ed25519 signature has its
// little-endian S below the subgroup order.
func Ed25519Canonical(sig []byte) bool {
	if len(sig) != 64 {
		return false
	}
	s := slices.Clone(sig[32:])
	slices.Reverse(s)
	return new(big.Int).SetBytes(s).Cmp(ed25519Order) < 0
}

func parseDERSignature(sig []byte) (r, s *big.Int, ok bool) {
	if len(sig) < minDERSignatureLen || len(sig) > maxDERSignatureLen {
		return nil, nil, false
	}
	if sig[0] != 0x30 || int(sig[1]) != len(sig)-2 {
		return nil, nil, false
	}
	r, rest, ok := parseDERInteger(sig[2:])
	if !ok {
		return nil, nil, false
	}
	s, rest, ok = parseDERInteger(rest)
	if !ok || len(rest) != 0 {
		return nil, nil, false
	}
	if !inCurveRange(r) || !inCurveRange(s) {
		return nil, nil, false
	}
	return r, s, true
}

// parseDERInteger reads one minimally encoded, non-negative INTEGER and
// returns the bytes that follow it.
func parseDERInteger(data []byte) (*big.Int, []byte, bool) {
	if len(data) < 2 || data[0] != 0x02 {
		return nil, nil, false
	}
	n := int(data[1])
	if n < 1 || n > maxDERIntegerLen || len(data) < 2+n {
		return nil, nil, false
	}
	v := data[2 : 2+n]
	if v[0]&0x80 != 0 {
		return nil, nil, false
	}
	// A leading zero is only there to clear the sign bit of the next byte.
	if v[0] == 0 && (n == 1 || v[1]&0x80 == 0) {
		return nil, nil, false
	}
	return new(big.Int).SetBytes(v), data[2+n:], true
}

func inCurveRange(v *big.Int) bool {
	return v.Sign() > 0 && v.Cmp(curveOrder) < 0
}

func marshalDERSignature(r, s *big.Int) []byte {
	rb, sb := derInteger(r), derInteger(s)
	out := make([]byte, 0, 2+len(rb)+len(sb))
	out = append(out, 0x30, byte(len(rb)+len(sb)))
	out = append(out, rb...)
	return append(out, sb...)
}

// derInteger encodes a positive integer as a DER INTEGER element.
func derInteger(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 || b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return append([]byte{0x02, byte(len(b))}, b...)
}
