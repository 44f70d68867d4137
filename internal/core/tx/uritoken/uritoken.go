// Package uritoken decodes the URIToken transactions of hook enabled
// networks.
package uritoken

import (
	"strings"

	"github.com/LeJamon/goXRPLkit/internal/core/tx"
	"github.com/LeJamon/goXRPLkit/internal/locale"
)

// URITokenEntryType is the ledger entry type of a URI token.
const URITokenEntryType = "URIToken"

// URITokenMintFlagBurnable allows the issuer to burn the token
const URITokenMintFlagBurnable uint32 = 0x00000001

var (
	mintFields = []string{"URI", "Digest", "Amount", "Destination"}
	burnFields = []string{"URITokenID"}
	buyFields  = []string{"URITokenID", "Amount"}
)

func init() {
	tx.Register(tx.TypeURITokenMint, mintFields, func(base tx.BaseTransaction, o tx.Object) tx.Transaction {
		return &URITokenMint{
			BaseTransaction: base,
			uri:             o.Str("URI"),
			digest:          o.Str("Digest"),
			amount:          o.Amount("Amount"),
			destination:     o.Str("Destination"),
		}
	})
	tx.Register(tx.TypeURITokenBurn, burnFields, func(base tx.BaseTransaction, o tx.Object) tx.Transaction {
		return &URITokenBurn{
			BaseTransaction: base,
			uriTokenID:      o.Str("URITokenID"),
		}
	})
	tx.Register(tx.TypeURITokenBuy, buyFields, func(base tx.BaseTransaction, o tx.Object) tx.Transaction {
		return &URITokenBuy{
			BaseTransaction: base,
			uriTokenID:      o.Str("URITokenID"),
			amount:          o.Amount("Amount"),
		}
	})
}

// URITokenMint issues a token pointing at a URI, optionally offering it for
// sale.
type URITokenMint struct {
	tx.BaseTransaction

	uri         *string
	digest      *string
	amount      *tx.Amount
	destination *string
}

// NewURITokenMint decodes a URITokenMint from raw ledger JSON.
func NewURITokenMint(raw, meta []byte) *URITokenMint {
	return tx.New(tx.TypeURITokenMint, raw, meta).(*URITokenMint)
}

func (u *URITokenMint) URI() (string, bool)         { return tx.Get(u.uri) }
func (u *URITokenMint) Digest() (string, bool)      { return tx.Get(u.digest) }
func (u *URITokenMint) Amount() (tx.Amount, bool)   { return tx.Get(u.amount) }
func (u *URITokenMint) Destination() (string, bool) { return tx.Get(u.destination) }

// URITokenID returns the id of the token object created by the mint.
func (u *URITokenMint) URITokenID() (string, bool) {
	for _, n := range u.Meta().Nodes(tx.CreatedNode, URITokenEntryType) {
		if n.LedgerIndex != "" {
			return n.LedgerIndex, true
		}
	}
	return "", false
}

func (u *URITokenMint) Field(name string) (any, bool) {
	switch name {
	case "URI":
		return tx.Opt(u.uri)
	case "Digest":
		return tx.Opt(u.digest)
	case "Amount":
		return tx.Opt(u.amount)
	case "Destination":
		return tx.Opt(u.destination)
	}
	return u.BaseTransaction.Field(name)
}

func (u *URITokenMint) Derived() map[string]any {
	out := map[string]any{}
	if id, ok := u.URITokenID(); ok {
		out["URITokenID"] = id
	}
	return out
}

// URITokenBurn destroys a URI token.
type URITokenBurn struct {
	tx.BaseTransaction

	uriTokenID *string
}

// NewURITokenBurn decodes a URITokenBurn from raw ledger JSON.
func NewURITokenBurn(raw, meta []byte) *URITokenBurn {
	return tx.New(tx.TypeURITokenBurn, raw, meta).(*URITokenBurn)
}

func (u *URITokenBurn) URITokenID() (string, bool) { return tx.Get(u.uriTokenID) }

func (u *URITokenBurn) Field(name string) (any, bool) {
	if name == "URITokenID" {
		return tx.Opt(u.uriTokenID)
	}
	return u.BaseTransaction.Field(name)
}

// URITokenBuy accepts a URI token sell offer.
type URITokenBuy struct {
	tx.BaseTransaction

	uriTokenID *string
	amount     *tx.Amount
}

// NewURITokenBuy decodes a URITokenBuy from raw ledger JSON.
func NewURITokenBuy(raw, meta []byte) *URITokenBuy {
	return tx.New(tx.TypeURITokenBuy, raw, meta).(*URITokenBuy)
}

func (u *URITokenBuy) URITokenID() (string, bool) { return tx.Get(u.uriTokenID) }
func (u *URITokenBuy) Amount() (tx.Amount, bool)  { return tx.Get(u.amount) }

func (u *URITokenBuy) Field(name string) (any, bool) {
	switch name {
	case "URITokenID":
		return tx.Opt(u.uriTokenID)
	case "Amount":
		return tx.Opt(u.amount)
	}
	return u.BaseTransaction.Field(name)
}

// BurnInfo renders URITokenBurn for humans.
var BurnInfo burnInfo

type burnInfo struct{}

func (burnInfo) Label() string {
	return locale.T(locale.KeyBurnURIToken)
}

func (burnInfo) Description(u *URITokenBurn) string {
	var lines []string
	if id, ok := u.URITokenID(); ok {
		lines = append(lines, locale.T(locale.KeyTheURITokenIDIs, id))
	}
	return strings.Join(lines, "\n")
}
