package paychan

import "github.com/LeJamon/goXRPLkit/internal/core/tx"

// PaymentChannelCreate opens a unidirectional XRP channel.
type PaymentChannelCreate struct {
	tx.BaseTransaction

	destination    *string
	destinationTag *uint32
	amount         *tx.Amount
	settleDelay    *uint32
	publicKey      *string
	cancelAfter    *uint32
}

// NewPaymentChannelCreate decodes a PaymentChannelCreate from raw ledger JSON.
func NewPaymentChannelCreate(raw, meta []byte) *PaymentChannelCreate {
	return tx.New(tx.TypePaymentChannelCreate, raw, meta).(*PaymentChannelCreate)
}

func (p *PaymentChannelCreate) Destination() (string, bool)    { return tx.Get(p.destination) }
func (p *PaymentChannelCreate) DestinationTag() (uint32, bool) { return tx.Get(p.destinationTag) }
func (p *PaymentChannelCreate) Amount() (tx.Amount, bool)      { return tx.Get(p.amount) }
func (p *PaymentChannelCreate) SettleDelay() (uint32, bool)    { return tx.Get(p.settleDelay) }
func (p *PaymentChannelCreate) PublicKey() (string, bool)      { return tx.Get(p.publicKey) }
func (p *PaymentChannelCreate) CancelAfter() (uint32, bool)    { return tx.Get(p.cancelAfter) }

// ChannelID returns the id of the channel object created by the transaction.
func (p *PaymentChannelCreate) ChannelID() (string, bool) {
	for _, n := range p.Meta().Nodes(tx.CreatedNode, PayChannelEntryType) {
		if n.LedgerIndex != "" {
			return n.LedgerIndex, true
		}
	}
	return "", false
}

func (p *PaymentChannelCreate) Field(name string) (any, bool) {
	switch name {
	case "Destination":
		return tx.Opt(p.destination)
	case "DestinationTag":
		return tx.Opt(p.destinationTag)
	case "Amount":
		return tx.Opt(p.amount)
	case "SettleDelay":
		return tx.Opt(p.settleDelay)
	case "PublicKey":
		return tx.Opt(p.publicKey)
	case "CancelAfter":
		return tx.Opt(p.cancelAfter)
	}
	return p.BaseTransaction.Field(name)
}

func (p *PaymentChannelCreate) Derived() map[string]any {
	out := map[string]any{}
	if id, ok := p.ChannelID(); ok {
		out["ChannelID"] = id
	}
	return out
}
