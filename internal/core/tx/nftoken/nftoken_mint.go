// Package nftoken decodes NFToken transactions.
package nftoken

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/LeJamon/goXRPLkit/internal/core/tx"
	"github.com/LeJamon/goXRPLkit/internal/locale"
)

// NFTokenPageEntryType is the ledger entry type holding minted tokens.
const NFTokenPageEntryType = "NFTokenPage"

// NFTokenMint flags
const (
	// NFTokenMintFlagBurnable allows the issuer to burn the token
	NFTokenMintFlagBurnable uint32 = 0x00000001
	// NFTokenMintFlagOnlyXRP allows only XRP for sale
	NFTokenMintFlagOnlyXRP uint32 = 0x00000002
	// NFTokenMintFlagTransferable allows the token to be transferred
	NFTokenMintFlagTransferable uint32 = 0x00000008
)

// transferFeeScale converts the ledger's 1/100,000 units to percent.
var transferFeeScale = decimal.NewFromInt(1000)

var mintFields = []string{"NFTokenTaxon", "TransferFee", "Issuer", "URI"}

func init() {
	tx.Register(tx.TypeNFTokenMint, mintFields, func(base tx.BaseTransaction, o tx.Object) tx.Transaction {
		return &NFTokenMint{
			BaseTransaction: base,
			nftokenTaxon:    o.Uint32("NFTokenTaxon"),
			transferFee:     o.Uint32("TransferFee"),
			issuer:          o.Str("Issuer"),
			uri:             o.Str("URI"),
		}
	})
}

// NFTokenMint creates a non-fungible token.
type NFTokenMint struct {
	tx.BaseTransaction

	nftokenTaxon *uint32
	transferFee  *uint32
	issuer       *string
	uri          *string
}

// NewNFTokenMint decodes an NFTokenMint from raw ledger JSON.
func NewNFTokenMint(raw, meta []byte) *NFTokenMint {
	return tx.New(tx.TypeNFTokenMint, raw, meta).(*NFTokenMint)
}

func (n *NFTokenMint) NFTokenTaxon() (uint32, bool) { return tx.Get(n.nftokenTaxon) }
func (n *NFTokenMint) Issuer() (string, bool)       { return tx.Get(n.issuer) }
func (n *NFTokenMint) URI() (string, bool)          { return tx.Get(n.uri) }

// TransferFee returns the secondary sale fee as a percent, e.g. "2.5" for a
// ledger value of 2500.
func (n *NFTokenMint) TransferFee() (string, bool) {
	if n.transferFee == nil {
		return "", false
	}
	return decimal.NewFromInt(int64(*n.transferFee)).Div(transferFeeScale).String(), true
}

// URIText returns the URI decoded from hex, when it is valid UTF-8.
func (n *NFTokenMint) URIText() (string, bool) {
	if n.uri == nil {
		return "", false
	}
	b, err := hex.DecodeString(*n.uri)
	if err != nil || !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

func (n *NFTokenMint) IsBurnable() bool     { return n.Common().HasFlag(NFTokenMintFlagBurnable) }
func (n *NFTokenMint) IsOnlyXRP() bool      { return n.Common().HasFlag(NFTokenMintFlagOnlyXRP) }
func (n *NFTokenMint) IsTransferable() bool { return n.Common().HasFlag(NFTokenMintFlagTransferable) }

// NFTokenID returns the id of the minted token. Newer servers report it in
// metadata directly; otherwise it is the one token present in the
// NFTokenPage objects after execution and absent before.
func (n *NFTokenMint) NFTokenID() (string, bool) {
	m := n.Meta()
	if m == nil {
		return "", false
	}
	if m.NFTokenID != nil {
		return *m.NFTokenID, true
	}

	before := map[string]bool{}
	var after []string
	for _, node := range m.AffectedNodes {
		if node.LedgerEntryType != NFTokenPageEntryType {
			continue
		}
		for _, id := range pageTokenIDs(node.PreviousFields) {
			before[id] = true
		}
		switch node.Kind {
		case tx.CreatedNode:
			after = append(after, pageTokenIDs(node.NewFields)...)
		case tx.ModifiedNode:
			after = append(after, pageTokenIDs(node.FinalFields)...)
		}
	}
	// A page split moves existing tokens into a created page, so tokens are
	// matched against every page's previous contents, not just their own.
	// Pages whose token list did not change held their final tokens before.
	for _, node := range m.AffectedNodes {
		if node.Kind == tx.ModifiedNode && node.LedgerEntryType == NFTokenPageEntryType && !node.PreviousFields.Has("NFTokens") {
			for _, id := range pageTokenIDs(node.FinalFields) {
				before[id] = true
			}
		}
	}
	for _, id := range after {
		if !before[id] {
			return id, true
		}
	}
	return "", false
}

func pageTokenIDs(fields tx.Object) []string {
	var ids []string
	for _, w := range fields.Array("NFTokens") {
		if id := w.Object("NFToken").Str("NFTokenID"); id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

func (n *NFTokenMint) Field(name string) (any, bool) {
	switch name {
	case "NFTokenTaxon":
		return tx.Opt(n.nftokenTaxon)
	case "TransferFee":
		v, ok := n.TransferFee()
		return v, ok
	case "Issuer":
		return tx.Opt(n.issuer)
	case "URI":
		return tx.Opt(n.uri)
	}
	return n.BaseTransaction.Field(name)
}

func (n *NFTokenMint) Derived() map[string]any {
	out := map[string]any{}
	if id, ok := n.NFTokenID(); ok {
		out["NFTokenID"] = id
	}
	if uri, ok := n.URIText(); ok {
		out["URIText"] = uri
	}
	return out
}

// MintInfo renders NFTokenMint for humans.
var MintInfo mintInfo

type mintInfo struct{}

func (mintInfo) Label() string {
	return locale.T(locale.KeyMintNFT)
}

// Description lists the token id, the transfer fee and the taxon. The id
// and taxon lines are left out when the metadata or the field is missing.
func (mintInfo) Description(n *NFTokenMint) string {
	var lines []string
	if id, ok := n.NFTokenID(); ok {
		lines = append(lines, locale.T(locale.KeyTheTokenIDIs, id))
	}

	feeLine := locale.T(locale.KeyTheTokenHasNoTransferFee)
	if fee, ok := n.TransferFee(); ok && fee != "0" {
		feeLine = locale.T(locale.KeyTheTokenHasATransferFee, fee)
	}
	lines = append(lines, feeLine)

	// Passed as a string: the printer would group digits.
	if taxon, ok := n.NFTokenTaxon(); ok {
		lines = append(lines, locale.T(locale.KeyTheTokenTaxonIs, strconv.FormatUint(uint64(taxon), 10)))
	}
	return strings.Join(lines, "\n")
}
