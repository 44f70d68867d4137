package paychan

import (
	"strings"

	"github.com/LeJamon/goXRPLkit/internal/core/tx"
	"github.com/LeJamon/goXRPLkit/internal/locale"
)

// PaymentChannelClaim claims XRP from a payment channel, optionally closing it.
type PaymentChannelClaim struct {
	tx.BaseTransaction

	channel   *string
	balance   *tx.Amount
	amount    *tx.Amount
	signature *string
	publicKey *string
}

// NewPaymentChannelClaim decodes a PaymentChannelClaim from raw ledger JSON.
func NewPaymentChannelClaim(raw, meta []byte) *PaymentChannelClaim {
	return tx.New(tx.TypePaymentChannelClaim, raw, meta).(*PaymentChannelClaim)
}

func (p *PaymentChannelClaim) Channel() (string, bool)    { return tx.Get(p.channel) }
func (p *PaymentChannelClaim) Balance() (tx.Amount, bool) { return tx.Get(p.balance) }
func (p *PaymentChannelClaim) Amount() (tx.Amount, bool)  { return tx.Get(p.amount) }
func (p *PaymentChannelClaim) Signature() (string, bool)  { return tx.Get(p.signature) }
func (p *PaymentChannelClaim) PublicKey() (string, bool)  { return tx.Get(p.publicKey) }

// IsClosed reports whether executing the claim deleted the channel.
func (p *PaymentChannelClaim) IsClosed() bool {
	return p.Meta().Any(isPayChannelDeletion)
}

// IsCloseRequested reports whether the claim carries tfClose.
func (p *PaymentChannelClaim) IsCloseRequested() bool {
	return p.Common().HasFlag(PaymentChannelClaimFlagClose)
}

// IsRenewRequested reports whether the claim carries tfRenew.
func (p *PaymentChannelClaim) IsRenewRequested() bool {
	return p.Common().HasFlag(PaymentChannelClaimFlagRenew)
}

func (p *PaymentChannelClaim) Field(name string) (any, bool) {
	switch name {
	case "Channel":
		return tx.Opt(p.channel)
	case "Balance":
		return tx.Opt(p.balance)
	case "Amount":
		return tx.Opt(p.amount)
	case "Signature":
		return tx.Opt(p.signature)
	case "PublicKey":
		return tx.Opt(p.publicKey)
	}
	return p.BaseTransaction.Field(name)
}

func (p *PaymentChannelClaim) Derived() map[string]any {
	return map[string]any{
		"IsClosed":         p.IsClosed(),
		"IsCloseRequested": p.IsCloseRequested(),
	}
}

// ClaimInfo renders PaymentChannelClaim for humans.
var ClaimInfo claimInfo

type claimInfo struct{}

func (claimInfo) Label() string {
	return locale.T(locale.KeyClaimPaymentChannel)
}

// Description lists the channel, the claimed balance and whether the
// channel was closed.
func (claimInfo) Description(p *PaymentChannelClaim) string {
	var lines []string
	if ch, ok := p.Channel(); ok {
		lines = append(lines, locale.T(locale.KeyTheChannelIDIs, ch))
	}
	if b, ok := p.Balance(); ok {
		lines = append(lines, locale.T(locale.KeyTheClaimBalanceIs, b.Value, b.Currency))
	}
	switch {
	case p.IsClosed():
		lines = append(lines, locale.T(locale.KeyTheChannelWasClosed))
	case p.IsCloseRequested():
		lines = append(lines, locale.T(locale.KeyTheChannelCloseWasRequested))
	}
	return strings.Join(lines, "\n")
}
