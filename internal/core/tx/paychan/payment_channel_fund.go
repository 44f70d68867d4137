package paychan

import "github.com/LeJamon/goXRPLkit/internal/core/tx"

// PaymentChannelFund adds XRP to an open channel.
type PaymentChannelFund struct {
	tx.BaseTransaction

	channel    *string
	amount     *tx.Amount
	expiration *uint32
}

// NewPaymentChannelFund decodes a PaymentChannelFund from raw ledger JSON.
func NewPaymentChannelFund(raw, meta []byte) *PaymentChannelFund {
	return tx.New(tx.TypePaymentChannelFund, raw, meta).(*PaymentChannelFund)
}

func (p *PaymentChannelFund) Channel() (string, bool)    { return tx.Get(p.channel) }
func (p *PaymentChannelFund) Amount() (tx.Amount, bool)  { return tx.Get(p.amount) }
func (p *PaymentChannelFund) Expiration() (uint32, bool) { return tx.Get(p.expiration) }

func (p *PaymentChannelFund) Field(name string) (any, bool) {
	switch name {
	case "Channel":
		return tx.Opt(p.channel)
	case "Amount":
		return tx.Opt(p.amount)
	case "Expiration":
		return tx.Opt(p.expiration)
	}
	return p.BaseTransaction.Field(name)
}
