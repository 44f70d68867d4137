package nftoken

import "github.com/LeJamon/goXRPLkit/internal/core/tx"

var burnFields = []string{"NFTokenID", "Owner"}

func init() {
	tx.Register(tx.TypeNFTokenBurn, burnFields, func(base tx.BaseTransaction, o tx.Object) tx.Transaction {
		return &NFTokenBurn{
			BaseTransaction: base,
			nftokenID:       o.Str("NFTokenID"),
			owner:           o.Str("Owner"),
		}
	})
}

// NFTokenBurn destroys a token.
type NFTokenBurn struct {
	tx.BaseTransaction

	nftokenID *string
	owner     *string
}

// NewNFTokenBurn decodes an NFTokenBurn from raw ledger JSON.
func NewNFTokenBurn(raw, meta []byte) *NFTokenBurn {
	return tx.New(tx.TypeNFTokenBurn, raw, meta).(*NFTokenBurn)
}

func (n *NFTokenBurn) NFTokenID() (string, bool) { return tx.Get(n.nftokenID) }

// Owner returns the token holder when the issuer burns a token it does not
// hold.
func (n *NFTokenBurn) Owner() (string, bool) { return tx.Get(n.owner) }

func (n *NFTokenBurn) Field(name string) (any, bool) {
	switch name {
	case "NFTokenID":
		return tx.Opt(n.nftokenID)
	case "Owner":
		return tx.Opt(n.owner)
	}
	return n.BaseTransaction.Field(name)
}
