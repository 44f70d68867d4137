// Package binarycodec converts XRPL JSON objects to their canonical binary
// encoding and back, and builds the prefixed payloads that get signed.
package binarycodec

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	addresscodec "github.com/LeJamon/goXRPLkit/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLkit/internal/codec/binary-codec/types"
	"github.com/LeJamon/goXRPLkit/internal/crypto"
)

var (
	txSigPrefix               = prefixHex(crypto.HashPrefixTxSign)
	txMultiSigPrefix          = prefixHex(crypto.HashPrefixTxMultiSign)
	paymentChannelClaimPrefix = prefixHex(crypto.HashPrefixPaymentChannelClaim)
)

var (
	// ErrInvalidHex is returned by Decode for input that is not hex.
	ErrInvalidHex = errors.New("invalid hex string")
	// ErrInvalidClaim is returned for a payment channel claim without a
	// channel or a drops amount.
	ErrInvalidClaim = errors.New("invalid payment channel claim")
	// ErrSigningPubKeyNotEmpty is returned when multisigning a transaction
	// that carries a single-signer public key.
	ErrSigningPubKeyNotEmpty = errors.New("SigningPubKey must be empty for multisigning")
)

func prefixHex(p crypto.HashPrefix) string {
	return strings.ToUpper(hex.EncodeToString(p.Bytes()))
}

// Encode serializes a transaction or ledger object with the default
// definitions and returns uppercase hex.
func Encode(json map[string]any) (string, error) {
	return EncodeWithDefinitions(json, definitions.Get())
}

// EncodeWithDefinitions is Encode against a custom definitions table.
func EncodeWithDefinitions(json map[string]any, defs *definitions.Definitions) (string, error) {
	b, err := encode(json, defs, false)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// EncodeForSigning returns the single-signing payload: the STX prefix
// followed by the signing fields of json.
func EncodeForSigning(json map[string]any) (string, error) {
	return EncodeForSigningWithDefinitions(json, definitions.Get())
}

// EncodeForSigningWithDefinitions is EncodeForSigning against a custom table.
func EncodeForSigningWithDefinitions(json map[string]any, defs *definitions.Definitions) (string, error) {
	b, err := encode(json, defs, true)
	if err != nil {
		return "", err
	}
	return txSigPrefix + strings.ToUpper(hex.EncodeToString(b)), nil
}

// EncodeForMultisigning returns the payload a multisigner signs: the SMT
// prefix, the signing fields and the signer's account ID.
func EncodeForMultisigning(json map[string]any, xrpAccountID string) (string, error) {
	if pk, ok := json["SigningPubKey"]; ok && pk != "" {
		return "", ErrSigningPubKeyNotEmpty
	}
	tx := make(map[string]any, len(json)+1)
	for k, v := range json {
		tx[k] = v
	}
	tx["SigningPubKey"] = ""

	b, err := encode(tx, definitions.Get(), true)
	if err != nil {
		return "", err
	}
	_, accountID, err := addresscodec.DecodeClassicAddressToAccountID(xrpAccountID)
	if err != nil {
		return "", err
	}
	return txMultiSigPrefix + strings.ToUpper(hex.EncodeToString(append(b, accountID...))), nil
}

// EncodeForSigningClaim returns the payload signed to authorize a payment
// channel claim: the CLM prefix, the channel ID and the drops amount.
func EncodeForSigningClaim(json map[string]any) (string, error) {
	channel, ok := json["Channel"].(string)
	if !ok {
		return "", fmt.Errorf("%w: missing Channel", ErrInvalidClaim)
	}
	channelID, err := hex.DecodeString(channel)
	if err != nil || len(channelID) != 32 {
		return "", fmt.Errorf("%w: Channel must be 32 bytes of hex", ErrInvalidClaim)
	}
	amount, ok := json["Amount"].(string)
	if !ok {
		return "", fmt.Errorf("%w: Amount must be a drops string", ErrInvalidClaim)
	}
	drops, err := strconv.ParseUint(amount, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: Amount must be a drops string", ErrInvalidClaim)
	}

	b := binary.BigEndian.AppendUint64(channelID, drops)
	return paymentChannelClaimPrefix + strings.ToUpper(hex.EncodeToString(b)), nil
}

// Decode parses a hex encoded object with the default definitions.
func Decode(hexEncoded string) (map[string]any, error) {
	return DecodeWithDefinitions(hexEncoded, definitions.Get())
}

// DecodeWithDefinitions is Decode against a custom definitions table.
func DecodeWithDefinitions(hexEncoded string, defs *definitions.Definitions) (map[string]any, error) {
	b, err := hex.DecodeString(hexEncoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	v, err := types.NewSTObject(nil).ToJSON(serdes.NewBinaryParser(b, defs))
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

func encode(json map[string]any, defs *definitions.Definitions, signingOnly bool) ([]byte, error) {
	st := types.NewSTObject(serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs)))
	if signingOnly {
		st.SigningFieldsOnly()
	}
	return st.FromJSON(json)
}
